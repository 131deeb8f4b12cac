package longpress

import (
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Timer is a pending scheduled call.
type Timer interface {
	// Stop prevents the call from running. It reports whether the call was
	// still pending.
	Stop() bool
}

// Scheduler arms one-shot timers. Callbacks must run on the same goroutine
// that drives the detector's handlers.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timeline is a single-threaded Scheduler driven by the host's game loop.
// Nothing fires until Update or Advance is called, and due callbacks run
// synchronously inside that call in deadline order.
//
// The zero value is ready to use.
type Timeline struct {
	now     time.Duration
	seq     uint64
	pending []*timelineTimer
}

type timelineTimer struct {
	tl       *Timeline
	deadline time.Duration
	seq      uint64
	fn       func()
	stopped  bool
}

func (t *timelineTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	t.tl.remove(t)
	return true
}

// NewTimeline returns an empty Timeline at time zero.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// AfterFunc schedules fn to run once d has elapsed on the timeline.
func (tl *Timeline) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	tl.seq++
	t := &timelineTimer{tl: tl, deadline: tl.now + d, seq: tl.seq, fn: fn}
	tl.pending = append(tl.pending, t)
	sort.SliceStable(tl.pending, func(i, j int) bool {
		a, b := tl.pending[i], tl.pending[j]
		if a.deadline != b.deadline {
			return a.deadline < b.deadline
		}
		return a.seq < b.seq
	})
	return t
}

// Now returns the time elapsed on the timeline.
func (tl *Timeline) Now() time.Duration {
	return tl.now
}

// Pending returns the number of timers that have not fired or been stopped.
func (tl *Timeline) Pending() int {
	return len(tl.pending)
}

// Update advances the timeline by one Ebiten tick (1/TPS seconds).
func (tl *Timeline) Update() {
	tps := ebiten.TPS()
	if tps <= 0 {
		// SyncWithFPS; ticks track frames, assume the default rate.
		tps = ebiten.DefaultTPS
	}
	tl.Advance(time.Second / time.Duration(tps))
}

// Advance moves the timeline forward by d, running every timer whose
// deadline falls within the window. Timers scheduled by a callback run in
// the same call if they are already due.
func (tl *Timeline) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := tl.now + d
	for len(tl.pending) > 0 && tl.pending[0].deadline <= target {
		t := tl.pending[0]
		copy(tl.pending, tl.pending[1:])
		tl.pending[len(tl.pending)-1] = nil
		tl.pending = tl.pending[:len(tl.pending)-1]

		t.stopped = true
		tl.now = t.deadline
		t.fn()
	}
	tl.now = target
}

func (tl *Timeline) remove(t *timelineTimer) {
	for i, p := range tl.pending {
		if p == t {
			copy(tl.pending[i:], tl.pending[i+1:])
			tl.pending[len(tl.pending)-1] = nil
			tl.pending = tl.pending[:len(tl.pending)-1]
			return
		}
	}
}
