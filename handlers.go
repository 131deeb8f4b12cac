package longpress

import (
	"reflect"
	"time"
)

// HandlerName names a handler in a Handlers mapping.
type HandlerName string

const (
	PointerDown  HandlerName = "PointerDown"
	PointerMove  HandlerName = "PointerMove"
	PointerUp    HandlerName = "PointerUp"
	PointerLeave HandlerName = "PointerLeave"
	TouchStart   HandlerName = "TouchStart"
	TouchMove    HandlerName = "TouchMove"
	TouchEnd     HandlerName = "TouchEnd"
)

// Handler receives one low-level signal from the host.
type Handler func(e Event)

// Handlers maps handler names to the functions a host attaches to its
// interactive element. The pointer family holds PointerDown, PointerMove,
// PointerUp and PointerLeave; the touch family holds TouchStart, TouchMove
// and TouchEnd. An empty mapping means detection is disabled and the host
// should remove its bindings.
type Handlers map[HandlerName]Handler

// Dispatch calls the named handler if the mapping has one. It reports
// whether a handler ran.
func (h Handlers) Dispatch(name HandlerName, e Event) bool {
	fn, ok := h[name]
	if !ok || fn == nil {
		return false
	}
	fn(e)
	return true
}

// producerKey is the configuration a handler mapping depends on. A new
// Producer is only built when it changes.
type producerKey struct {
	threshold   time.Duration
	capture     bool
	detect      Detect
	movement    MovementPolicy
	observerRev uint64
	enabled     bool
}

// Producer builds handler mappings bound to a Detector. Producers are
// memoized by Detector.Producer, so hosts can compare them by identity to
// decide whether bindings need to be replaced.
type Producer struct {
	d   *Detector
	key producerKey

	last    Handlers
	lastCtx any
	hasLast bool
}

// Producer returns the handler producer for the current configuration. The
// same *Producer is returned until the threshold, capture flag, signal
// family, movement policy, observer set or callback presence changes.
func (d *Detector) Producer() *Producer {
	key := producerKey{
		threshold:   d.opts.threshold(),
		capture:     d.opts.CaptureEvent,
		detect:      d.opts.Detect,
		movement:    d.opts.CancelOnMovement,
		observerRev: d.observerRev,
		enabled:     d.callback != nil,
	}
	if d.producer == nil || d.producer.key != key {
		d.producer = &Producer{d: d, key: key}
	}
	return d.producer
}

// Enabled reports whether the producer yields handlers at all.
func (p *Producer) Enabled() bool {
	return p.key.enabled
}

// Bind returns the handler mapping for ctx. ctx is passed to every observer
// and to the long-press callback of presses started through the mapping.
// Binding an equal comparable context again returns the same mapping.
func (p *Producer) Bind(ctx any) Handlers {
	if !p.key.enabled {
		return Handlers{}
	}
	if p.hasLast && sameContext(p.lastCtx, ctx) {
		return p.last
	}

	d := p.d
	start := func(e Event) { d.Start(e, ctx) }
	move := func(e Event) { d.Move(e, ctx) }
	end := func(e Event) { d.End(e, ctx) }

	h := make(Handlers, 7)
	if p.key.detect != DetectTouch {
		h[PointerDown] = start
		h[PointerMove] = move
		h[PointerUp] = end
		h[PointerLeave] = end
	}
	if p.key.detect != DetectPointer {
		h[TouchStart] = start
		h[TouchMove] = move
		h[TouchEnd] = end
	}

	p.last, p.lastCtx, p.hasLast = h, ctx, true
	return h
}

// sameContext compares two contexts without panicking on values that are
// not comparable (slices, maps, funcs, or structs holding them).
func sameContext(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}
