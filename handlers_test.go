package longpress

import (
	"testing"
	"time"
)

func noop(Event, Meta) {}

func TestBindFamilies(t *testing.T) {
	pointer := []HandlerName{PointerDown, PointerMove, PointerUp, PointerLeave}
	touch := []HandlerName{TouchStart, TouchMove, TouchEnd}

	tests := []struct {
		name   string
		detect Detect
		want   []HandlerName
		absent []HandlerName
	}{
		{"both", DetectBoth, append(append([]HandlerName{}, pointer...), touch...), nil},
		{"pointer", DetectPointer, pointer, touch},
		{"touch", DetectTouch, touch, pointer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDetector(noop, Options{Detect: tt.detect})
			h := d.Producer().Bind(nil)
			if len(h) != len(tt.want) {
				t.Errorf("len = %d, want %d", len(h), len(tt.want))
			}
			for _, n := range tt.want {
				if h[n] == nil {
					t.Errorf("missing %s", n)
				}
			}
			for _, n := range tt.absent {
				if _, ok := h[n]; ok {
					t.Errorf("unexpected %s", n)
				}
			}
		})
	}
}

func TestBindDisabledIsEmpty(t *testing.T) {
	d := NewDetector(nil, Options{})
	h := d.Producer().Bind("ctx")
	if h == nil || len(h) != 0 {
		t.Errorf("disabled mapping = %v, want empty", h)
	}
	if d.Producer().Enabled() {
		t.Error("producer should report disabled")
	}
	if h.Dispatch(PointerDown, &PointerEvent{}) {
		t.Error("dispatch on empty mapping should report false")
	}

	d.SetCallback(noop)
	if len(d.Producer().Bind("ctx")) == 0 {
		t.Error("mapping should be populated once a callback is set")
	}
}

func TestProducerStability(t *testing.T) {
	d := NewDetector(noop, Options{Threshold: 300 * time.Millisecond})
	p := d.Producer()

	if d.Producer() != p {
		t.Fatal("producer changed without a config change")
	}

	// Swapping one callback for another keeps the producer.
	d.SetCallback(func(Event, Meta) {})
	if d.Producer() != p {
		t.Error("callback swap should not rebuild the producer")
	}

	// Same scalar config, no observers: stable.
	d.Configure(Options{Threshold: 300 * time.Millisecond})
	if d.Producer() != p {
		t.Error("identical config should not rebuild the producer")
	}

	changes := []struct {
		name  string
		apply func()
	}{
		{"threshold", func() { d.Configure(Options{Threshold: time.Second}) }},
		{"capture", func() { d.Configure(Options{Threshold: time.Second, CaptureEvent: true}) }},
		{"detect", func() { d.Configure(Options{Threshold: time.Second, CaptureEvent: true, Detect: DetectTouch}) }},
		{"movement", func() {
			d.Configure(Options{Threshold: time.Second, CaptureEvent: true, Detect: DetectTouch, CancelOnMovement: CancelBeyond(5)})
		}},
		{"observers", func() {
			d.Configure(Options{Threshold: time.Second, CaptureEvent: true, Detect: DetectTouch, CancelOnMovement: CancelBeyond(5), OnStart: noop})
		}},
		{"disabled", func() { d.SetCallback(nil) }},
	}
	prev := p
	for _, c := range changes {
		c.apply()
		next := d.Producer()
		if next == prev {
			t.Errorf("%s change should rebuild the producer", c.name)
		}
		prev = next
	}
}

func TestBindCachesByContext(t *testing.T) {
	d := NewDetector(noop, Options{})
	p := d.Producer()

	a := p.Bind("row-1")
	b := p.Bind("row-1")
	if len(a) == 0 || !sameMapping(a, b) {
		t.Error("equal contexts should return the same mapping")
	}
	c := p.Bind("row-2")
	if sameMapping(a, c) {
		t.Error("different contexts should return a new mapping")
	}

	// Non-comparable contexts must not panic and are never cached.
	s1 := p.Bind([]int{1})
	s2 := p.Bind([]int{1})
	if sameMapping(s1, s2) {
		t.Error("non-comparable contexts should not be cached")
	}
	type holder struct{ v any }
	p.Bind(holder{v: []int{1}})
	p.Bind(holder{v: []int{1}})
}

// sameMapping reports whether a and b are the same map value.
func sameMapping(a, b Handlers) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	// Maps are reference types: a write through one is visible in the other.
	a["probe"] = nil
	_, ok := b["probe"]
	delete(a, "probe")
	return ok
}

func TestBindFunction(t *testing.T) {
	fired := 0
	tl := NewTimeline()
	d, use := Bind(func(Event, Meta) { fired++ }, Options{Scheduler: tl})

	h := use(nil)
	h.Dispatch(TouchStart, touchAt(SourceDown, 0, 0))
	// The pointer family reports the same contact; only one start counts.
	h.Dispatch(PointerDown, &PointerEvent{})
	tl.Advance(time.Second)
	h.Dispatch(TouchEnd, touchAt(SourceUp, 0, 0))

	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
	if d.Pressed() {
		t.Error("press should be over")
	}
}

func TestHandlersReadLatestOptions(t *testing.T) {
	var r recorder
	d, tl := newTestDetector(&r, Options{})
	h := d.Producer().Bind(nil)

	var cancelReasons []Reason
	opts := d.Options()
	opts.CancelOnMovement = CancelBeyond(1)
	opts.OnCancel = func(_ Event, m Meta) { cancelReasons = append(cancelReasons, m.Reason) }
	d.Configure(opts)

	// The stale mapping still dispatches with the new configuration.
	h.Dispatch(PointerDown, down(0, 0))
	h.Dispatch(PointerMove, moveTo(5, 0))
	tl.Advance(time.Second)

	if len(cancelReasons) != 1 || cancelReasons[0] != CanceledByMovement {
		t.Errorf("cancel reasons = %v, want [movement]", cancelReasons)
	}
	if r.fired != 0 {
		t.Errorf("fired = %d, want 0", r.fired)
	}
}
