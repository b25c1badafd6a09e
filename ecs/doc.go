// Package ecs provides ECS adapters for radial's menu event system.
//
// The primary adapter is [NewDonburiStore], which bridges menu events
// (hover, click, setup) into a [Donburi] world as typed events.
// Subscribe to [MenuEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	menu.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
