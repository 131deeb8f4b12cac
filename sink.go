package longpress

// Sink is the interface for optional event bus integration.
// When set in Options, every observable transition is forwarded as a Notice.
type Sink interface {
	EmitNotice(n Notice)
}

// Phase identifies a detector transition.
type Phase uint8

const (
	PhaseStart  Phase = iota // a press cycle was accepted
	PhaseFire                // the threshold elapsed while pressed
	PhaseFinish              // a fired press was released
	PhaseCancel              // a press ended before firing
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseFire:
		return "fire"
	case PhaseFinish:
		return "finish"
	case PhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Notice carries one transition for the Sink bridge.
type Notice struct {
	Phase   Phase
	Kind    Kind
	Context any
	Reason  Reason
	// Start is the press start coordinate; HasStart is false when it could
	// not be extracted from the start signal.
	Start    Vec2
	HasStart bool
}
