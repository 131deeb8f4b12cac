package longpress

import (
	"testing"
	"time"
)

const testTick = time.Second / 60

// tick consumes one injected frame the way Surface.Update does, advancing tl
// by one 60 TPS tick. It reports false once nothing is left to inject.
func tick(s *Surface, tl *Timeline) bool {
	if s.script != nil {
		s.script.step(s)
	}
	f, ok := s.popInjected()
	if !ok {
		return false
	}
	s.process(f)
	tl.Advance(testTick)
	return true
}

func drain(s *Surface, tl *Timeline) {
	for tick(s, tl) {
	}
}

// newTestSurface returns a surface over (100,100)-(200,200) so the real
// cursor at the origin is never inside it.
func newTestSurface(r *recorder, o Options) (*Surface, *Timeline) {
	d, tl := newTestDetector(r, o)
	return NewSurface(d, Rect{X: 100, Y: 100, Width: 100, Height: 100}), tl
}

func TestSurfaceHold(t *testing.T) {
	var r recorder
	s, tl := newTestSurface(&r, Options{})

	// 40 ticks is about 650ms.
	s.InjectHold(150, 150, 40)
	if s.Pending() != 40 {
		t.Fatalf("Pending = %d, want 40", s.Pending())
	}
	drain(s, tl)

	if r.started != 1 || r.fired != 1 || r.finished != 1 || r.canceled != 0 {
		t.Errorf("started=%d fired=%d finished=%d canceled=%d, want 1/1/1/0",
			r.started, r.fired, r.finished, r.canceled)
	}
}

func TestSurfaceShortClickCancels(t *testing.T) {
	var r recorder
	s, tl := newTestSurface(&r, Options{})

	s.InjectHold(150, 150, 5)
	drain(s, tl)

	if r.fired != 0 || r.canceled != 1 || r.reasons[0] != CanceledByTimeout {
		t.Errorf("fired=%d canceled=%d reasons=%v, want 0/1/[timeout]", r.fired, r.canceled, r.reasons)
	}
}

func TestSurfacePressOutsideBoundsIgnored(t *testing.T) {
	var r recorder
	s, tl := newTestSurface(&r, Options{})

	s.InjectHold(20, 20, 40)
	drain(s, tl)

	if r.started != 0 || r.fired != 0 {
		t.Errorf("started=%d fired=%d, want 0/0", r.started, r.fired)
	}
}

func TestSurfaceLeaveEndsPress(t *testing.T) {
	var r recorder
	s, tl := newTestSurface(&r, Options{})

	s.InjectPress(150, 150)
	s.InjectMove(160, 150)
	s.InjectLeave()
	s.InjectWait(40)
	s.InjectRelease(99, 99)
	drain(s, tl)

	// One move when the cursor first appears inside, one drag.
	if r.moved != 2 {
		t.Errorf("moved = %d, want 2", r.moved)
	}
	if r.canceled != 1 || r.fired != 0 {
		t.Errorf("canceled=%d fired=%d, want 1/0", r.canceled, r.fired)
	}
}

func TestSurfaceLeaveFullScreenBounds(t *testing.T) {
	var r recorder
	d, tl := newTestDetector(&r, Options{})
	s := NewSurface(d, Rect{})

	s.InjectPress(50, 50)
	s.InjectLeave()
	s.InjectWait(40)
	s.InjectRelease(50, 50)
	drain(s, tl)

	if r.started != 1 || r.canceled != 1 || r.fired != 0 {
		t.Errorf("started=%d canceled=%d fired=%d, want 1/1/0", r.started, r.canceled, r.fired)
	}
}

func TestSurfaceDragCancelsOnMovement(t *testing.T) {
	var r recorder
	s, tl := newTestSurface(&r, Options{CancelOnMovement: CancelOnMovement()})

	s.InjectPress(120, 120)
	s.InjectMove(130, 130)
	s.InjectMove(180, 120)
	s.InjectWait(40)
	s.InjectRelease(180, 120)
	drain(s, tl)

	if r.canceled != 1 || r.reasons[0] != CanceledByMovement || r.fired != 0 {
		t.Errorf("canceled=%d reasons=%v fired=%d, want 1/[movement]/0", r.canceled, r.reasons, r.fired)
	}
}

func TestSurfaceTouchHold(t *testing.T) {
	var r recorder
	s, tl := newTestSurface(&r, Options{CaptureEvent: true})

	var startEvent Event
	opts := s.Detector().Options()
	opts.OnStart = func(e Event, _ Meta) { startEvent = e }
	s.Detector().Configure(opts)

	s.InjectTouchStart(7, 150, 150)
	s.InjectTouchMove(7, 152, 151)
	s.InjectWait(30)
	s.InjectTouchEnd(7)
	drain(s, tl)

	te, ok := startEvent.(*TouchEvent)
	if !ok || len(te.Touches) != 1 || te.Touches[0].ID != 7 || !te.Persisted() {
		t.Fatalf("start event = %#v", startEvent)
	}
	if r.fired != 1 || r.finished != 1 {
		t.Errorf("fired=%d finished=%d, want 1/1", r.fired, r.finished)
	}
}

func TestSurfaceSecondTouchIsNotPrimary(t *testing.T) {
	var r recorder
	s, tl := newTestSurface(&r, Options{})

	s.InjectTouchStart(1, 150, 150)
	s.InjectTouchStart(2, 160, 160)
	s.InjectTouchEnd(1)
	// Touch 2 was already down; lifting touch 1 must not start a new press.
	s.InjectWait(40)
	s.InjectTouchEnd(2)
	drain(s, tl)

	if r.started != 1 || r.canceled != 1 || r.fired != 0 {
		t.Errorf("started=%d canceled=%d fired=%d, want 1/1/0", r.started, r.canceled, r.fired)
	}
}

func TestSurfaceMouseAndTouchSameContact(t *testing.T) {
	var r recorder
	s, tl := newTestSurface(&r, Options{})

	// Some platforms report a tap through both families.
	s.injectQueue = append(s.injectQueue, inputFrame{
		hasMouse: true, mouseX: 150, mouseY: 150, mousePressed: true,
		hasTouch: true, touches: []Touch{{ID: 1, X: 150, Y: 150}},
	})
	drain(s, tl)

	if r.started != 1 {
		t.Errorf("started = %d, want 1", r.started)
	}
}

func TestSurfaceRespectsDetectFamily(t *testing.T) {
	var r recorder
	s, tl := newTestSurface(&r, Options{Detect: DetectTouch})

	s.InjectHold(150, 150, 40)
	drain(s, tl)
	if r.started != 0 {
		t.Errorf("pointer input started a touch-only detector")
	}
}

func TestSurfaceDisabledDetector(t *testing.T) {
	var r recorder
	s, tl := newTestSurface(&r, Options{})
	s.Detector().SetCallback(nil)

	s.InjectHold(150, 150, 40)
	drain(s, tl)
	if r.started != 0 {
		t.Errorf("started = %d with detection disabled, want 0", r.started)
	}
}

func TestSurfaceContext(t *testing.T) {
	tl := NewTimeline()
	var got any
	d := NewDetector(func(_ Event, m Meta) { got = m.Context }, Options{Scheduler: tl})
	s := NewSurface(d, Rect{X: 100, Y: 100, Width: 50, Height: 50})
	s.Context = 42

	s.InjectHold(120, 120, 40)
	drain(s, tl)
	if got != 42 {
		t.Errorf("context = %v, want 42", got)
	}
}

func TestSurfaceUpdateConsumesInjectedFrame(t *testing.T) {
	var r recorder
	s, _ := newTestSurface(&r, Options{})

	s.InjectPress(150, 150)
	s.Update()
	if s.Pending() != 0 || r.started != 1 {
		t.Errorf("pending=%d started=%d, want 0/1", s.Pending(), r.started)
	}
}

func TestInjectHoldMinimumFrames(t *testing.T) {
	s := NewSurface(NewDetector(noop, Options{}), Rect{})
	s.InjectHold(1, 1, 0)
	if s.Pending() != 2 {
		t.Errorf("Pending = %d, want 2", s.Pending())
	}
}

func TestInjectTouchUnknownID(t *testing.T) {
	s := NewSurface(NewDetector(noop, Options{}), Rect{})
	s.InjectTouchMove(9, 1, 1)
	s.InjectTouchEnd(9)
	if s.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", s.Pending())
	}
}
