package longpress

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Surface feeds Ebiten mouse and touch input for one rectangular region into
// a detector's handler mapping. Call Update once per tick from Game.Update.
//
// The mouse produces PointerDown when a button is pressed inside Bounds,
// PointerMove while the cursor moves inside Bounds, PointerUp on release and
// PointerLeave when the cursor exits Bounds. The first touch that begins
// inside Bounds is tracked as the primary contact and produces TouchStart,
// TouchMove and TouchEnd; further touches are reported in the touch list.
type Surface struct {
	// Bounds is the interactive region in screen coordinates. A zero-size
	// rectangle covers the whole screen.
	Bounds Rect
	// Context is bound to the handler mapping each tick.
	Context any

	det *Detector

	mouseInside  bool
	mouseDown    bool // a press began inside Bounds and has not ended
	mouseWasDown bool // any button held last tick
	lastX, lastY float64

	primaryActive bool
	primaryID     int
	primaryLast   Touch
	seenTouches   []int // touch IDs active last tick

	prevTouchIDs []ebiten.TouchID
	releasedIDs  []ebiten.TouchID

	injectQueue []inputFrame
	injMouse    inputFrame
	injTouches  []Touch

	script *Script
}

// inputFrame is the input state of a single tick.
type inputFrame struct {
	hasMouse     bool
	mouseX       float64
	mouseY       float64
	mousePressed bool
	button       MouseButton
	mods         KeyModifiers
	left         bool // cursor reported outside Bounds whatever its position

	hasTouch bool
	touches  []Touch // active this tick
	released []Touch // lifted this tick
}

// NewSurface binds a detector to the given screen region.
func NewSurface(d *Detector, bounds Rect) *Surface {
	return &Surface{det: d, Bounds: bounds}
}

// Detector returns the detector the surface drives.
func (s *Surface) Detector() *Detector {
	return s.det
}

// Update reads one tick of input, dispatches it and advances the detector's
// timeline. Injected input, when queued, replaces real input for the tick.
func (s *Surface) Update() {
	if s.script != nil {
		s.script.step(s)
	}
	frame, ok := s.popInjected()
	if !ok {
		frame = s.readFrame()
	}
	s.process(frame)
	s.det.Update()
}

func (s *Surface) contains(x, y float64) bool {
	if s.Bounds.Width == 0 && s.Bounds.Height == 0 {
		return true
	}
	return s.Bounds.Contains(x, y)
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// readFrame polls Ebiten for the current tick.
func (s *Surface) readFrame() inputFrame {
	mx, my := ebiten.CursorPosition()
	f := inputFrame{
		hasMouse: true,
		mouseX:   float64(mx),
		mouseY:   float64(my),
		mods:     readModifiers(),
		hasTouch: true,
	}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		f.mousePressed = true
		switch {
		case left:
			f.button = MouseButtonLeft
		case right:
			f.button = MouseButtonRight
		default:
			f.button = MouseButtonMiddle
		}
	}

	s.prevTouchIDs = ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	for _, id := range s.prevTouchIDs {
		tx, ty := ebiten.TouchPosition(id)
		f.touches = append(f.touches, Touch{ID: int(id), X: float64(tx), Y: float64(ty)})
	}
	s.releasedIDs = inpututil.AppendJustReleasedTouchIDs(s.releasedIDs[:0])
	for _, id := range s.releasedIDs {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		f.released = append(f.released, Touch{ID: int(id), X: float64(tx), Y: float64(ty)})
	}
	return f
}

// process dispatches one tick of input to the current handler mapping.
func (s *Surface) process(f inputFrame) {
	h := s.det.Producer().Bind(s.Context)
	if f.hasMouse {
		s.processMouse(h, f)
	}
	if f.hasTouch {
		s.processTouch(h, f)
	}
}

func (s *Surface) processMouse(h Handlers, f inputFrame) {
	x, y := f.mouseX, f.mouseY
	inside := !f.left && s.contains(x, y)
	pointer := func(src Source) *PointerEvent {
		return &PointerEvent{X: x, Y: y, Button: f.button, Modifiers: f.mods, Source: src}
	}

	if x != s.lastX || y != s.lastY || inside != s.mouseInside {
		if inside {
			h.Dispatch(PointerMove, pointer(SourceMove))
		} else if s.mouseInside {
			h.Dispatch(PointerLeave, pointer(SourceLeave))
			s.mouseDown = false
		}
	}
	s.mouseInside = inside
	s.lastX, s.lastY = x, y

	switch {
	case f.mousePressed && !s.mouseWasDown:
		if inside {
			s.mouseDown = true
			h.Dispatch(PointerDown, pointer(SourceDown))
		}
	case !f.mousePressed && s.mouseWasDown:
		if s.mouseDown {
			s.mouseDown = false
			h.Dispatch(PointerUp, pointer(SourceUp))
		}
	}
	s.mouseWasDown = f.mousePressed
}

func (s *Surface) processTouch(h Handlers, f inputFrame) {
	defer s.rememberTouches(f.touches)

	if s.primaryActive {
		cur, active := findTouch(f.touches, s.primaryID)
		if active {
			if cur.X != s.primaryLast.X || cur.Y != s.primaryLast.Y {
				s.primaryLast = cur
				h.Dispatch(TouchMove, &TouchEvent{Touches: primaryFirst(f.touches, s.primaryID), Source: SourceMove})
			}
			return
		}
		last := s.primaryLast
		if rel, ok := findTouch(f.released, s.primaryID); ok {
			last = rel
		}
		s.primaryActive = false
		h.Dispatch(TouchEnd, &TouchEvent{Touches: []Touch{last}, Source: SourceUp})
	}

	for _, t := range f.touches {
		if s.seen(t.ID) || !s.contains(t.X, t.Y) {
			continue
		}
		s.primaryActive = true
		s.primaryID = t.ID
		s.primaryLast = t
		h.Dispatch(TouchStart, &TouchEvent{Touches: primaryFirst(f.touches, t.ID), Source: SourceDown})
		return
	}
}

func (s *Surface) seen(id int) bool {
	for _, v := range s.seenTouches {
		if v == id {
			return true
		}
	}
	return false
}

func (s *Surface) rememberTouches(touches []Touch) {
	s.seenTouches = s.seenTouches[:0]
	for _, t := range touches {
		s.seenTouches = append(s.seenTouches, t.ID)
	}
}

func findTouch(touches []Touch, id int) (Touch, bool) {
	for _, t := range touches {
		if t.ID == id {
			return t, true
		}
	}
	return Touch{}, false
}

// primaryFirst returns a copy of touches with the primary contact moved to
// the front, so that position extraction reads the tracked contact.
func primaryFirst(touches []Touch, id int) []Touch {
	out := make([]Touch, 0, len(touches))
	for _, t := range touches {
		if t.ID == id {
			out = append(out, t)
		}
	}
	for _, t := range touches {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}
