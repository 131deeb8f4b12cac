package longpress

import (
	"fmt"
	"os"
)

// debugLog prints a transition to stderr when Options.Debug is set.
func (d *Detector) debugLog(format string, args ...any) {
	if !d.opts.Debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[longpress] "+format+"\n", args...)
}

// debugDiscard reports a signal dropped because it could not be classified.
func (d *Detector) debugDiscard(op string, e Event) {
	if !d.opts.Debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[longpress] warning: %s discarded unrecognized event %T\n", op, e)
}
