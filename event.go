package longpress

import "reflect"

// Event is an opaque interaction event handed to a Handler.
type Event interface {
	ImplementsEvent()
}

// Source identifies which low-level signal produced an event.
type Source uint8

const (
	SourceDown Source = iota
	SourceMove
	SourceUp
	SourceLeave
)

func (s Source) String() string {
	switch s {
	case SourceDown:
		return "down"
	case SourceMove:
		return "move"
	case SourceUp:
		return "up"
	case SourceLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// Persister is implemented by events that are recycled by their host once
// the synchronous handler returns. Persist asks the host to keep the event
// valid for deferred use.
type Persister interface {
	Persist()
}

// TouchLister is implemented by events that carry a touch list. It is used
// to recognize touch payloads when the environment has no native touch
// event type (see Classifier.TouchFallback).
type TouchLister interface {
	TouchList() []Touch
}

// PointerEvent is a pointer (mouse or pen) contact.
type PointerEvent struct {
	X, Y      float64
	Button    MouseButton
	Modifiers KeyModifiers
	Source    Source

	persisted bool
}

func (*PointerEvent) ImplementsEvent() {}

// Persist marks the event as retained.
func (e *PointerEvent) Persist() { e.persisted = true }

// Persisted reports whether Persist was called.
func (e *PointerEvent) Persisted() bool { return e.persisted }

// Touch is a single contact point of a touch event.
type Touch struct {
	ID   int
	X, Y float64
}

// TouchEvent is a touch contact. Touches[0] is the first contact point.
type TouchEvent struct {
	Touches []Touch
	Source  Source

	persisted bool
}

func (*TouchEvent) ImplementsEvent() {}

// TouchList returns the active contact points.
func (e *TouchEvent) TouchList() []Touch { return e.Touches }

// Persist marks the event as retained.
func (e *TouchEvent) Persist() { e.persisted = true }

// Persisted reports whether Persist was called.
func (e *TouchEvent) Persisted() bool { return e.persisted }

// Kind is the result of classifying an Event.
type Kind uint8

const (
	KindUnrecognized Kind = iota
	KindPointer
	KindTouch
)

func (k Kind) String() string {
	switch k {
	case KindPointer:
		return "pointer"
	case KindTouch:
		return "touch"
	default:
		return "unrecognized"
	}
}

// Classifier decides whether an event is a pointer or a touch contact.
//
// By default touch is recognized by type identity (*TouchEvent). Some hosts
// deliver touch payloads through their own event types without a native
// touch type; for those set TouchFallback and any event implementing
// TouchLister is treated as touch.
type Classifier struct {
	TouchFallback bool
}

// IsTouch reports whether e is a touch contact.
func (c Classifier) IsTouch(e Event) bool {
	if e == nil {
		return false
	}
	if !c.TouchFallback {
		t, ok := e.(*TouchEvent)
		return ok && t != nil
	}
	_, ok := e.(TouchLister)
	return ok && !isNilPointer(e)
}

// IsPointer reports whether e is a pointer contact.
func (c Classifier) IsPointer(e Event) bool {
	p, ok := e.(*PointerEvent)
	return ok && p != nil
}

// Classify returns the kind of e. It never panics.
func (c Classifier) Classify(e Event) Kind {
	switch {
	case c.IsTouch(e):
		return KindTouch
	case c.IsPointer(e):
		return KindPointer
	default:
		return KindUnrecognized
	}
}

// Position returns the coordinate of e: the first contact point for touch,
// the event's own coordinate for pointer. ok is false for unrecognized
// events and for touch events with an empty touch list.
func (c Classifier) Position(e Event) (pos Vec2, ok bool) {
	switch c.Classify(e) {
	case KindTouch:
		touches := e.(TouchLister).TouchList()
		if len(touches) == 0 {
			return Vec2{}, false
		}
		return Vec2{X: touches[0].X, Y: touches[0].Y}, true
	case KindPointer:
		p := e.(*PointerEvent)
		return Vec2{X: p.X, Y: p.Y}, true
	default:
		return Vec2{}, false
	}
}

// isNilPointer reports whether e holds a typed nil of any nilable kind, so
// the fallback path never calls methods on a nil receiver.
func isNilPointer(e Event) bool {
	v := reflect.ValueOf(e)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
