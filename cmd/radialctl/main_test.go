package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes rootCmd with args and returns its output. Flag variables are
// reset first because cobra keeps them across Execute calls.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, segments = "", 0
	viewportW, viewportH = 640, 480

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestTable(t *testing.T) {
	out, err := run(t, "table", "--segments", "4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"Segments: 4",
		"Width: 90.00°",
		"Winding: clockwise",
		"0         315.00     45.00      0.00",
		"3         225.00    315.00    270.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTable_Degenerate(t *testing.T) {
	out, err := run(t, "table", "-n", "72")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "No slots") {
		t.Errorf("expected degenerate notice, got:\n%s", out)
	}
}

func TestTable_NoSegments(t *testing.T) {
	out, err := run(t, "table", "--segments=-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "segment count is below 1") {
		t.Errorf("expected segment count notice, got:\n%s", out)
	}
	if strings.Contains(out, "below the minimum angle") {
		t.Errorf("segment count reported as a width problem:\n%s", out)
	}
}

func TestTable_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	data := "segments: 2\nclockwise: false\noverrides:\n  - {slot: 5, min: 10, max: 20}\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "table", "--config", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "counter-clockwise") {
		t.Errorf("expected counter-clockwise winding:\n%s", out)
	}
	if !strings.Contains(out, "5          10.00     20.00     15.00") {
		t.Errorf("expected override row:\n%s", out)
	}
}

func TestTable_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("deadZoneRadius: -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "table", "--config", path); err == nil {
		t.Error("expected validation error")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		angle string
		want  string
	}{
		{"0", "slot: 0"},
		{"350", "slot: 0"},
		{"90", "slot: 1"},
		{"200", "slot: 2"},
		{"300", "slot: 3"},
	}
	for _, tt := range tests {
		t.Run(tt.angle, func(t *testing.T) {
			out, err := run(t, "resolve", "-n", "4", tt.angle)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strings.TrimSpace(out) != tt.want {
				t.Errorf("resolve %s = %q, want %q", tt.angle, out, tt.want)
			}
		})
	}
}

func TestResolve_BadArgument(t *testing.T) {
	if _, err := run(t, "resolve", "north"); err == nil {
		t.Error("expected parse error")
	}
}

func TestPoint(t *testing.T) {
	out, err := run(t, "point", "-n", "4", "--width", "200", "--height", "200", "150", "100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "center: (100.0, 100.0)") || !strings.Contains(out, "slot: 1") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestPoint_DeadZone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dz.yaml")
	if err := os.WriteFile(path, []byte("segments: 4\ndeadZoneRadius: 60\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "point", "-c", path, "--width", "200", "--height", "200", "150", "100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "inside dead zone") {
		t.Errorf("expected dead zone notice:\n%s", out)
	}
}

func TestStick(t *testing.T) {
	out, err := run(t, "stick", "-n", "4", "--", "1", "0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "slot: 3") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, err = run(t, "stick", "0", "0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "stick centered") {
		t.Errorf("expected centered notice:\n%s", out)
	}
}
