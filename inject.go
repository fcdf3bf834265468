package trellis

// pointerSample is one frame of scripted pointer state: where the left
// button is and whether it is held.
type pointerSample struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

func (s *Scene) inject(x, y float64, pressed bool) {
	s.injectQueue = append(s.injectQueue, pointerSample{x: x, y: y, pressed: pressed, button: MouseButtonLeft})
}

// InjectPress schedules the left button going down at (x, y). Each queued
// sample is turned into EventMotion and EventButtonDown/Up events by a later
// Update, one sample per frame, and suppresses polled input for that frame.
func (s *Scene) InjectPress(x, y float64) { s.inject(x, y, true) }

// InjectMove schedules pointer motion to (x, y) with the left button held.
func (s *Scene) InjectMove(x, y float64) { s.inject(x, y, true) }

// InjectRelease schedules the left button coming up at (x, y).
func (s *Scene) InjectRelease(x, y float64) { s.inject(x, y, false) }

// InjectClick schedules a press and a release at (x, y) on two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag schedules a press at the start point, frames-2 evenly spaced
// held samples and a release at the end point. frames below 2 is raised
// to 2.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	s.InjectPress(fromX, fromY)
	n := frames - 2
	for i := 1; i <= n; i++ {
		f := float64(i) / float64(n+1)
		s.InjectMove(Lerp(f, fromX, toX), Lerp(f, fromY, toY))
	}
	s.InjectRelease(toX, toY)
}

// processInjectedInput pops one event from the inject queue and dispatches
// it as the discrete events real input would produce: a motion event when
// the position changed, then a button edge when the pressed state changed.
// Returns true if an event was consumed (real input is skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	p := Vec2{evt.x, evt.y}
	if !s.cursorKnown || p != s.cursor {
		s.Dispatch(Event{Type: EventMotion, X: p.X, Y: p.Y})
	}
	if evt.pressed && !s.injectDown {
		s.injectDown = true
		s.Dispatch(Event{Type: EventButtonDown, Button: evt.button, X: p.X, Y: p.Y})
	} else if !evt.pressed && s.injectDown {
		s.injectDown = false
		s.Dispatch(Event{Type: EventButtonUp, Button: evt.button, X: p.X, Y: p.Y})
	}
	return true
}
