// Package ecs provides ECS adapters for trellis widget events.
//
// The primary adapter is [NewDonburiSink], which bridges trellis widget
// events (slider drags and value changes, toggle flips) into a [Donburi]
// world as typed events. Subscribe to [WidgetEventType] in your ECS systems
// to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
