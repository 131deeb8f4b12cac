package longpress

import "time"

// Vec2 is a 2D coordinate in page space.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Detect selects which signal family a detector binds.
type Detect uint8

const (
	DetectBoth    Detect = iota // pointer and touch handlers (default)
	DetectPointer               // pointer handlers only
	DetectTouch                 // touch handlers only
)

func (d Detect) String() string {
	switch d {
	case DetectBoth:
		return "both"
	case DetectPointer:
		return "pointer"
	case DetectTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// Reason tags why a press cycle ended without firing.
type Reason string

const (
	ReasonNone Reason = ""
	// CanceledByTimeout is reported when the contact was released before the
	// threshold elapsed.
	CanceledByTimeout Reason = "canceled-by-timeout"
	// CanceledByMovement is reported when the contact moved outside the
	// movement tolerance box while pressed.
	CanceledByMovement Reason = "canceled-by-movement"
)

// Meta is passed to the long-press callback and to every observer.
type Meta struct {
	// Context is the value given to Producer.Bind for the handler mapping
	// that received the signal.
	Context any
	// Reason is only set for OnCancel.
	Reason Reason
}

// Callback receives the triggering event and its metadata. The event is nil
// unless Options.CaptureEvent is set.
type Callback func(e Event, meta Meta)

const (
	// DefaultThreshold is used when Options.Threshold is zero or negative.
	DefaultThreshold = 400 * time.Millisecond
	// DefaultMovementTolerance is the tolerance used by CancelOnMovement.
	DefaultMovementTolerance = 25.0
)

// MovementPolicy controls whether moving a pressed contact cancels the press.
// The zero value disables movement cancellation.
type MovementPolicy struct {
	enabled   bool
	tolerance float64
}

// NoMovementCancel never cancels a press because of movement.
var NoMovementCancel = MovementPolicy{}

// CancelOnMovement cancels a press once the contact moves more than
// DefaultMovementTolerance units from its start on either axis.
func CancelOnMovement() MovementPolicy {
	return MovementPolicy{enabled: true, tolerance: DefaultMovementTolerance}
}

// CancelBeyond cancels a press once the contact moves more than tolerance
// units from its start on either axis. Displacement equal to the tolerance
// does not cancel.
func CancelBeyond(tolerance float64) MovementPolicy {
	if tolerance < 0 {
		tolerance = 0
	}
	return MovementPolicy{enabled: true, tolerance: tolerance}
}

// Tolerance returns the tolerance and whether movement cancellation is on.
func (m MovementPolicy) Tolerance() (float64, bool) {
	return m.tolerance, m.enabled
}

// Options configures a Detector. All fields are optional.
type Options struct {
	// Threshold is how long a contact must be held. Defaults to 400ms.
	Threshold time.Duration
	// CaptureEvent forwards the triggering event to callbacks. Events that
	// implement Persister are asked to persist before any deferred use.
	CaptureEvent bool
	// Detect selects the signal family bound by the handler mapping.
	Detect Detect
	// CancelOnMovement cancels the press when the contact strays too far.
	CancelOnMovement MovementPolicy

	// Filter, when set, discards start signals for which it returns false.
	Filter func(Event) bool

	OnStart  Callback
	OnMove   Callback
	OnFinish Callback
	OnCancel Callback

	// Classifier describes the input environment. The zero value treats
	// only *TouchEvent as touch; see Classifier.
	Classifier Classifier
	// Scheduler arms the threshold timer. When nil the detector owns a
	// Timeline advanced by Detector.Update.
	Scheduler Scheduler
	// Sink, when set, receives a Notice for every observable transition.
	Sink Sink
	// Debug logs transitions to stderr.
	Debug bool
}

func (o Options) threshold() time.Duration {
	if o.Threshold <= 0 {
		return DefaultThreshold
	}
	return o.Threshold
}

func (o Options) hasObservers() bool {
	return o.OnStart != nil || o.OnMove != nil || o.OnFinish != nil || o.OnCancel != nil
}
