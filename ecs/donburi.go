package ecs

import (
	"github.com/phanxgames/longpress"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// NoticeEventType is the Donburi event type for longpress notices.
// Subscribe to this in your ECS systems to receive press transitions.
var NoticeEventType = events.NewEventType[longpress.Notice]()

type donburiSink struct {
	world donburi.World
}

var _ longpress.Sink = (*donburiSink)(nil)

// NewDonburiSink creates a Sink backed by a Donburi world.
// Notices are published to NoticeEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) longpress.Sink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitNotice(n longpress.Notice) {
	NoticeEventType.Publish(s.world, n)
}
