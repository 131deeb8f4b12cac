package longpress

// Injected input replaces real input one tick at a time. Each Inject call
// queues one frame (InjectHold and InjectWait queue several); Surface.Update
// consumes one frame per tick. Mouse frames and touch frames are independent:
// a mouse frame leaves the touch state untouched and vice versa.

// InjectPress queues a left button press at the given screen coordinates.
func (s *Surface) InjectPress(x, y float64) {
	s.injMouse = inputFrame{hasMouse: true, mouseX: x, mouseY: y, mousePressed: true, button: MouseButtonLeft}
	s.injectQueue = append(s.injectQueue, s.injMouse)
}

// InjectMove queues a cursor move to the given screen coordinates. The button
// state of the previous injected mouse frame is kept, so a move between
// InjectPress and InjectRelease is a drag.
func (s *Surface) InjectMove(x, y float64) {
	s.injMouse.hasMouse = true
	s.injMouse.mouseX, s.injMouse.mouseY = x, y
	s.injMouse.left = false
	s.injectQueue = append(s.injectQueue, s.injMouse)
}

// InjectRelease queues a button release at the given screen coordinates.
func (s *Surface) InjectRelease(x, y float64) {
	s.injMouse = inputFrame{hasMouse: true, mouseX: x, mouseY: y, button: s.injMouse.button}
	s.injectQueue = append(s.injectQueue, s.injMouse)
}

// InjectLeave queues a cursor move to just outside the top-left corner of
// Bounds, keeping the current button state. The cursor counts as outside
// until the next injected move, press or release, even when a zero-size
// Bounds covers the whole screen.
func (s *Surface) InjectLeave() {
	s.injMouse.hasMouse = true
	s.injMouse.mouseX, s.injMouse.mouseY = s.Bounds.X-1, s.Bounds.Y-1
	s.injMouse.left = true
	s.injectQueue = append(s.injectQueue, s.injMouse)
}

// InjectHold queues a press at (x, y), frames-2 ticks of holding still and a
// release. The total sequence consumes frames ticks; the minimum is 2.
func (s *Surface) InjectHold(x, y float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(x, y)
	s.InjectWait(frames - 2)
	s.InjectRelease(x, y)
}

// InjectWait queues frames ticks that repeat the last injected state.
func (s *Surface) InjectWait(frames int) {
	for i := 0; i < frames; i++ {
		f := s.injMouse
		f.hasTouch = len(s.injTouches) > 0
		f.touches = s.touchSnapshot()
		s.injectQueue = append(s.injectQueue, f)
	}
}

// InjectTouchStart queues a new touch contact with the given ID.
func (s *Surface) InjectTouchStart(id int, x, y float64) {
	s.injTouches = append(s.injTouches, Touch{ID: id, X: x, Y: y})
	s.queueTouchFrame(nil)
}

// InjectTouchMove queues a move of the touch contact with the given ID.
// Unknown IDs are ignored.
func (s *Surface) InjectTouchMove(id int, x, y float64) {
	for i := range s.injTouches {
		if s.injTouches[i].ID == id {
			s.injTouches[i].X, s.injTouches[i].Y = x, y
			s.queueTouchFrame(nil)
			return
		}
	}
}

// InjectTouchEnd queues the lift of the touch contact with the given ID.
// Unknown IDs are ignored.
func (s *Surface) InjectTouchEnd(id int) {
	for i := range s.injTouches {
		if s.injTouches[i].ID == id {
			lifted := s.injTouches[i]
			copy(s.injTouches[i:], s.injTouches[i+1:])
			s.injTouches = s.injTouches[:len(s.injTouches)-1]
			s.queueTouchFrame([]Touch{lifted})
			return
		}
	}
}

// Pending returns the number of injected frames not yet consumed.
func (s *Surface) Pending() int {
	return len(s.injectQueue)
}

func (s *Surface) touchSnapshot() []Touch {
	if len(s.injTouches) == 0 {
		return nil
	}
	out := make([]Touch, len(s.injTouches))
	copy(out, s.injTouches)
	return out
}

func (s *Surface) queueTouchFrame(released []Touch) {
	s.injectQueue = append(s.injectQueue, inputFrame{
		hasTouch: true,
		touches:  s.touchSnapshot(),
		released: released,
	})
}

// popInjected removes and returns the next injected frame.
func (s *Surface) popInjected() (inputFrame, bool) {
	if len(s.injectQueue) == 0 {
		return inputFrame{}, false
	}
	f := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue[len(s.injectQueue)-1] = inputFrame{}
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	return f, true
}
