// Package ecs provides ECS adapters for sway's motion system.
//
// [NewDonburiNotifier] bridges motion status events into a [Donburi] world
// as typed events; subscribe to [MotionEventType] in your ECS systems to
// receive them. [MotionsComponent] attaches movers to entities so a single
// [AdvanceMotions] call in your update system drives every animation in
// the world.
//
// Usage:
//
//	motion.Notifier = ecs.NewDonburiNotifier(world)
//	ecs.Attach(entry, motion)
//	...
//	ecs.AdvanceMotions(world, dt) // each tick
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
