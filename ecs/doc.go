// Package ecs provides ECS adapters for dotmesh's contact event system.
//
// The primary adapter is [NewDonburiHub], which bridges dotmesh contacts
// found by World.Step into a [Donburi] world as typed events. Subscribe to
// [ContactEventType] in your ECS systems to receive them.
//
// Usage:
//
//	hub := ecs.NewDonburiHub(world)
//	dmWorld.SetContactSink(hub)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
