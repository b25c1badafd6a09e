// Package radial is a radial ("pie") selection menu for [Ebitengine].
//
// A [Menu] divides the circle around a center point into segments, one per
// button slot, and hovers whichever button owns the angle between the center
// and the pointer or gamepad stick. Clicks go to the hovered button.
//
// # Quick start
//
//	host := &radial.WidgetHost{}
//	host.Add(radial.NewColorButton("attack", 0), radial.NewColorButton("defend", 1))
//
//	input := radial.NewEbitenInput()
//	cfg := radial.DefaultConfig()
//	cfg.Segments = 2
//	menu := radial.NewMenu("combat", cfg, host, input, nil)
//	menu.Setup()
//
// Then, in the game's Update:
//
//	input.Update()
//	input.Feed(menu)
//
// and in Layout forward to host.Layout so the menu knows the screen size.
//
// # Angles
//
// Angles are degrees in [0, 360). 0° points up; with Config.Clockwise angles
// grow clockwise. Slot 0 is centered on 0° and wraps around it, slot i is
// centered on i times the slot width. See [Partition] and [SegmentTable].
//
// # Hosts
//
// The menu does not render. It talks to its UI through [Host] (viewport size,
// child buttons, restyling) and [InputSource] (pointer, click binding).
// [WidgetHost] and [EbitenInput] implement both for plain ebiten games; other
// frameworks implement the interfaces themselves. [ScreenDirection] and
// [SegmentTable.Mid] give a renderer the screen position of each slot; the
// examples/wheel program draws a menu with ebiten's vector package.
//
// # Notifications
//
// Hover and click notifications go, in order, to the [Listener], the hovered
// [ButtonWidget] (clicks only), callbacks registered with [Menu.OnHover] and
// [Menu.OnClick], and an optional [EventStore]. The ecs sub-package bridges
// the EventStore to a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package radial
