// Package ecs provides ECS adapters for longpress detectors.
//
// The primary adapter is [NewDonburiSink], which bridges detector
// transitions (start, fire, finish, cancel) into a [Donburi] world as typed
// events. Subscribe to [NoticeEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	det := longpress.NewDetector(cb, longpress.Options{Sink: sink})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
