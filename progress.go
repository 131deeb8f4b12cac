package longpress

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Progress tracks how far the current press is toward the threshold as an
// eased value in [0, 1], for drawing a hold indicator. Wire it to a detector
// with Observe and call Update(dt) each frame.
//
// There is no global animation manager; users call Update themselves.
type Progress struct {
	det       *Detector // set by Track
	threshold time.Duration
	fn        ease.TweenFunc
	tween     *gween.Tween
	value     float64
	active    bool
}

// NewProgress returns an idle Progress. A nil fn uses ease.Linear.
func NewProgress(fn ease.TweenFunc) *Progress {
	if fn == nil {
		fn = ease.Linear
	}
	return &Progress{threshold: DefaultThreshold, fn: fn}
}

// Observe returns a copy of opts whose OnStart, OnFinish and OnCancel also
// drive p. The original observers still run first. The threshold is taken
// from opts once; a later Configure that changes it is only followed after
// Track.
func (p *Progress) Observe(opts Options) Options {
	p.threshold = opts.threshold()
	onStart, onFinish, onCancel := opts.OnStart, opts.OnFinish, opts.OnCancel
	opts.OnStart = func(e Event, meta Meta) {
		call(onStart, e, meta)
		p.Begin()
	}
	opts.OnFinish = func(e Event, meta Meta) {
		call(onFinish, e, meta)
		p.Reset()
	}
	opts.OnCancel = func(e Event, meta Meta) {
		call(onCancel, e, meta)
		p.Reset()
	}
	return opts
}

// Track wires p into the current options of d and makes every press read
// the threshold d holds at that moment. Call it once per detector.
func (p *Progress) Track(d *Detector) {
	p.det = d
	d.Configure(p.Observe(d.Options()))
}

// Begin restarts the tween from zero.
func (p *Progress) Begin() {
	if p.det != nil {
		p.threshold = p.det.Options().threshold()
	}
	p.tween = gween.New(0, 1, float32(p.threshold.Seconds()), p.fn)
	p.value = 0
	p.active = true
}

// Reset stops tracking and returns the value to zero.
func (p *Progress) Reset() {
	p.tween = nil
	p.value = 0
	p.active = false
}

// Update advances the tween by dt seconds and returns the current value.
// The value stays at 1 once the threshold is reached until Reset.
func (p *Progress) Update(dt float32) float64 {
	if !p.active || p.tween == nil {
		return p.value
	}
	val, finished := p.tween.Update(dt)
	p.value = float64(val)
	if finished {
		p.value = 1
	}
	return p.value
}

// Value returns the last computed value.
func (p *Progress) Value() float64 {
	return p.value
}

// Active reports whether a press is being tracked.
func (p *Progress) Active() bool {
	return p.active
}
