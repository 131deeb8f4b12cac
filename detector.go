package longpress

import "math"

// Detector is the long-press state machine for one attachment.
//
// A Detector is not safe for concurrent use. All handlers, the scheduler's
// timer callbacks and reconfiguration calls must run on the host's event
// goroutine (for Ebiten hosts, inside Game.Update).
type Detector struct {
	opts     Options
	callback Callback // read only when the threshold timer fires

	pressed  bool
	fired    bool
	timer    Timer
	start    Vec2
	hasStart bool
	kind     Kind // kind of the accepted start signal

	disposed    bool
	owned       *Timeline // used when opts.Scheduler is nil
	observerRev uint64
	producer    *Producer
}

// NewDetector creates a detector that calls cb once a contact has been held
// for the configured threshold. A nil cb disables detection: Producer then
// yields empty handler mappings.
func NewDetector(cb Callback, opts Options) *Detector {
	d := &Detector{callback: cb, opts: opts}
	if opts.hasObservers() {
		d.observerRev = 1
	}
	return d
}

// Bind creates a detector and returns it together with the handler producer
// for it: calling the function with a context yields the handler mapping to
// attach for the current frame.
func Bind(cb Callback, opts Options) (*Detector, func(ctx any) Handlers) {
	d := NewDetector(cb, opts)
	return d, func(ctx any) Handlers {
		return d.Producer().Bind(ctx)
	}
}

// SetCallback replaces the long-press callback. A press already in progress
// calls the new callback when its threshold elapses. Passing nil disables
// detection.
func (d *Detector) SetCallback(cb Callback) {
	d.callback = cb
}

// Configure replaces the options. Handlers read options when invoked, so the
// change applies to the next signal, including signals of a press already
// in progress.
func (d *Detector) Configure(opts Options) {
	// Funcs are not comparable; any observer set counts as a new one.
	if d.opts.hasObservers() || opts.hasObservers() {
		d.observerRev++
	}
	d.opts = opts
}

// Options returns the current options.
func (d *Detector) Options() Options {
	return d.opts
}

// Pressed reports whether a press cycle is in progress.
func (d *Detector) Pressed() bool { return d.pressed }

// Fired reports whether the current press cycle has reached the threshold.
func (d *Detector) Fired() bool { return d.fired }

// IsDisposed reports whether Dispose has been called.
func (d *Detector) IsDisposed() bool { return d.disposed }

// Update advances the detector's own timeline by one Ebiten tick. When
// Options.Scheduler is set the host drives that scheduler instead, and
// Update only keeps ticking the own timeline until timers armed on it
// before the switch have run out.
func (d *Detector) Update() {
	if d.owned == nil {
		return
	}
	if d.opts.Scheduler != nil && d.owned.Pending() == 0 {
		return
	}
	d.owned.Update()
}

// Dispose tears the detector down. Any pending timer is cancelled even if no
// terminal signal was received, and every later signal is ignored.
func (d *Detector) Dispose() {
	if d.disposed {
		return
	}
	d.stopTimer()
	d.pressed = false
	d.fired = false
	d.hasStart = false
	d.disposed = true
	d.debugLog("disposed")
}

// Start handles a down signal (pointer down or touch start).
func (d *Detector) Start(e Event, ctx any) {
	if d.disposed {
		return
	}
	// Pointer and touch handlers can both report the same physical contact;
	// only the first start of a cycle counts.
	if d.pressed {
		return
	}
	kind := d.opts.Classifier.Classify(e)
	if kind == KindUnrecognized {
		d.debugDiscard("start", e)
		return
	}
	if d.opts.Filter != nil && !d.opts.Filter(e) {
		return
	}

	d.start, d.hasStart = d.opts.Classifier.Position(e)
	d.kind = kind
	fwd := d.forward(e)

	call(d.opts.OnStart, fwd, Meta{Context: ctx})
	d.emit(PhaseStart, ctx, ReasonNone)
	d.pressed = true

	d.stopTimer()
	threshold := d.opts.threshold()
	d.timer = d.scheduler().AfterFunc(threshold, func() {
		d.fire(fwd, ctx)
	})
	d.debugLog("start %s at (%.1f, %.1f), threshold %v", kind, d.start.X, d.start.Y, threshold)
}

// Move handles a move signal. The move observer runs whether or not a press
// is in progress.
func (d *Detector) Move(e Event, ctx any) {
	if d.disposed {
		return
	}
	if d.opts.Classifier.Classify(e) == KindUnrecognized {
		d.debugDiscard("move", e)
		return
	}
	call(d.opts.OnMove, d.forward(e), Meta{Context: ctx})

	tolerance, on := d.opts.CancelOnMovement.Tolerance()
	if !on || !d.hasStart {
		return
	}
	pos, ok := d.opts.Classifier.Position(e)
	if !ok {
		return
	}
	dx := math.Abs(pos.X - d.start.X)
	dy := math.Abs(pos.Y - d.start.Y)
	if dx > tolerance || dy > tolerance {
		d.debugLog("moved (%.1f, %.1f) beyond tolerance %.1f", dx, dy, tolerance)
		d.end(e, ctx, CanceledByMovement)
	}
}

// End handles a terminal signal (pointer up, pointer leave or touch end).
func (d *Detector) End(e Event, ctx any) {
	if d.disposed {
		return
	}
	if d.opts.Classifier.Classify(e) == KindUnrecognized {
		d.debugDiscard("end", e)
		return
	}
	d.end(e, ctx, CanceledByTimeout)
}

func (d *Detector) end(e Event, ctx any, reason Reason) {
	fwd := d.forward(e)

	if d.fired {
		call(d.opts.OnFinish, fwd, Meta{Context: ctx})
		d.emit(PhaseFinish, ctx, ReasonNone)
		d.debugLog("finish")
	} else if d.pressed {
		call(d.opts.OnCancel, fwd, Meta{Context: ctx, Reason: reason})
		d.emit(PhaseCancel, ctx, reason)
		d.debugLog("cancel: %s", reason)
	}
	// A leave without a prior down reaches here with neither flag set and
	// notifies nobody.

	d.hasStart = false
	d.fired = false
	d.pressed = false
	d.stopTimer()
}

func (d *Detector) fire(e Event, ctx any) {
	d.timer = nil
	if !d.pressed || d.disposed {
		return
	}
	cb := d.callback
	if cb == nil {
		d.debugLog("threshold elapsed with detection disabled")
		return
	}
	// The callback may end the press; notify before it runs so observers see
	// fire ahead of finish.
	d.fired = true
	d.emit(PhaseFire, ctx, ReasonNone)
	d.debugLog("fired")
	cb(e, Meta{Context: ctx})
}

// forward returns the event to hand to callbacks: nil unless CaptureEvent is
// set, in which case the host is asked to persist it first.
func (d *Detector) forward(e Event) Event {
	if !d.opts.CaptureEvent {
		return nil
	}
	if p, ok := e.(Persister); ok {
		p.Persist()
	}
	return e
}

func (d *Detector) stopTimer() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Detector) scheduler() Scheduler {
	if d.opts.Scheduler != nil {
		return d.opts.Scheduler
	}
	if d.owned == nil {
		d.owned = NewTimeline()
	}
	return d.owned
}

func (d *Detector) emit(phase Phase, ctx any, reason Reason) {
	if d.opts.Sink == nil {
		return
	}
	d.opts.Sink.EmitNotice(Notice{
		Phase:    phase,
		Kind:     d.kind,
		Context:  ctx,
		Reason:   reason,
		Start:    d.start,
		HasStart: d.hasStart,
	})
}

func call(cb Callback, e Event, meta Meta) {
	if cb != nil {
		cb(e, meta)
	}
}
