// Package ecs provides ECS adapters for tilekit's invalidation events.
//
// The primary adapter is [NewDonburiSink], which bridges tilemap
// invalidation events into a [Donburi] world as typed events. Subscribe to
// [InvalidationEventType] in your ECS systems to learn which tilemaps need
// redrawing.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	tilemap.SetInvalidationSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
