package longpress

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	ID     int     `json:"id,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for a gesture script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "release": true, "leave": true,
	"hold": true, "wait": true,
	"touchstart": true, "touchmove": true, "touchend": true,
}

// Script replays a recorded gesture through a Surface, one step per tick
// once the previous step's injected frames have drained. Attach it with
// Surface.SetScript.
//
//	{"steps": [
//		{"action": "press", "x": 40, "y": 40},
//		{"action": "wait", "frames": 30},
//		{"action": "release", "x": 40, "y": 40}
//	]}
type Script struct {
	steps  []scriptStep
	cursor int
	done   bool
}

// LoadScript parses a JSON gesture script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range f.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a script to the surface. Its steps are injected from
// Surface.Update before input is read.
func (s *Surface) SetScript(script *Script) {
	s.script = script
}

// Done reports whether every step has been injected and consumed.
func (sc *Script) Done() bool {
	return sc.done
}

// step injects the next action. Called from Surface.Update.
func (sc *Script) step(s *Surface) {
	if sc.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if sc.cursor >= len(sc.steps) {
		sc.done = true
		return
	}

	st := sc.steps[sc.cursor]
	sc.cursor++

	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "leave":
		s.InjectLeave()
	case "hold":
		s.InjectHold(st.X, st.Y, st.Frames)
	case "wait":
		s.InjectWait(st.Frames)
	case "touchstart":
		s.InjectTouchStart(st.ID, st.X, st.Y)
	case "touchmove":
		s.InjectTouchMove(st.ID, st.X, st.Y)
	case "touchend":
		s.InjectTouchEnd(st.ID)
	}
}
