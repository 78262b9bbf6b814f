// Package ecs forwards glide tween lifecycle events into an ECS world.
//
// [NewDonburiStore] publishes every [glide.TweenEvent] to a [Donburi]
// world as a typed event. Subscribe to [TweenEventType] in your systems
// and process the queue once per frame:
//
//	anim.SetEventStore(ecs.NewDonburiStore(world))
//	ecs.TweenEventType.Subscribe(world, onTween)
//	...
//	ecs.TweenEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
