package trellis

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestOnDispatchByType(t *testing.T) {
	s := NewScene()
	var downs, ups int
	s.On(EventButtonDown, func(e Event) {
		downs++
		if e.Button != MouseButtonRight || e.Point() != (Vec2{3, 4}) {
			t.Errorf("event = %+v", e)
		}
	})
	s.On(EventButtonUp, func(Event) { ups++ })

	s.Dispatch(Event{Type: EventButtonDown, Button: MouseButtonRight, X: 3, Y: 4})

	if downs != 1 || ups != 0 {
		t.Errorf("downs=%d ups=%d", downs, ups)
	}
	if s.Cursor() != (Vec2{3, 4}) {
		t.Errorf("Cursor = %v", s.Cursor())
	}
}

func TestCallbackRemove(t *testing.T) {
	s := NewScene()
	var calls int
	h := s.On(EventMotion, func(Event) { calls++ })
	if !h.Active() {
		t.Fatal("handle should be active")
	}
	s.Dispatch(Event{Type: EventMotion})
	h.Remove()
	h.Remove()
	s.Dispatch(Event{Type: EventMotion})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if h.Active() {
		t.Error("handle should be inactive after Remove")
	}
	CallbackHandle{}.Remove() // zero handle is safe
}

func TestRemoveDuringDispatch(t *testing.T) {
	s := NewScene()
	var log []string
	var second CallbackHandle
	s.On(EventButtonUp, func(Event) {
		log = append(log, "first")
		second.Remove()
	})
	second = s.On(EventButtonUp, func(Event) { log = append(log, "second") })
	s.On(EventButtonUp, func(Event) { log = append(log, "third") })

	s.Dispatch(Event{Type: EventButtonUp})

	if got := strings.Join(log, ","); got != "first,third" {
		t.Errorf("dispatch = %s", got)
	}
}

func TestSubscribeDuringDispatchFiresNextEvent(t *testing.T) {
	s := NewScene()
	var late int
	subscribed := false
	s.On(EventMotion, func(Event) {
		if !subscribed {
			subscribed = true
			s.On(EventMotion, func(Event) { late++ })
		}
	})

	s.Dispatch(Event{Type: EventMotion})
	if late != 0 {
		t.Fatal("handler added mid-dispatch fired for the same event")
	}
	s.Dispatch(Event{Type: EventMotion})
	if late != 1 {
		t.Errorf("late = %d, want 1", late)
	}
}

func TestResizeEventDoesNotMoveCursor(t *testing.T) {
	s := NewScene()
	s.Dispatch(Event{Type: EventMotion, X: 7, Y: 8})
	var got Event
	s.On(EventResize, func(e Event) { got = e })
	s.Resize(320, 200)

	if got.Width != 320 || got.Height != 200 {
		t.Errorf("resize event = %+v", got)
	}
	if s.Cursor() != (Vec2{7, 8}) {
		t.Errorf("Cursor = %v, want (7, 8)", s.Cursor())
	}
}

func TestOnUnknownTypePanics(t *testing.T) {
	s := NewScene()
	mustPanic(t, "unknown event type", func() { s.On(numEventTypes, func(Event) {}) })
}

// fakePointers is a scripted pointerSource; tests edit it between frames.
type fakePointers struct {
	mx, my       int
	leftPressed  bool
	leftReleased bool

	touchPressed   []ebiten.TouchID
	touchReleased  bool
	tx, ty         int
	prevTx, prevTy int
}

func (f *fakePointers) CursorPosition() (int, int) { return f.mx, f.my }

func (f *fakePointers) IsMouseButtonJustPressed(b ebiten.MouseButton) bool {
	return b == ebiten.MouseButtonLeft && f.leftPressed
}

func (f *fakePointers) IsMouseButtonJustReleased(b ebiten.MouseButton) bool {
	return b == ebiten.MouseButtonLeft && f.leftReleased
}

func (f *fakePointers) AppendJustPressedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return append(ids, f.touchPressed...)
}

func (f *fakePointers) IsTouchJustReleased(ebiten.TouchID) bool { return f.touchReleased }

func (f *fakePointers) TouchPosition(ebiten.TouchID) (int, int) { return f.tx, f.ty }

func (f *fakePointers) TouchPositionInPreviousTick(ebiten.TouchID) (int, int) {
	return f.prevTx, f.prevTy
}

// eventTrace subscribes to pointer events and records them as strings.
func eventTrace(s *Scene) *[]string {
	var log []string
	s.On(EventMotion, func(e Event) { log = append(log, fmt.Sprintf("move %v,%v", e.X, e.Y)) })
	s.On(EventButtonDown, func(e Event) { log = append(log, fmt.Sprintf("down %v,%v", e.X, e.Y)) })
	s.On(EventButtonUp, func(e Event) { log = append(log, fmt.Sprintf("up %v,%v", e.X, e.Y)) })
	return &log
}

func TestPollMouse(t *testing.T) {
	s := NewScene()
	fp := &fakePointers{mx: 10, my: 10}
	s.pointers = fp
	log := eventTrace(s)

	s.Update(0)
	fp.leftPressed = true
	s.Update(0)
	fp.leftPressed = false
	fp.mx, fp.my = 20, 5
	s.Update(0)
	fp.leftReleased = true
	s.Update(0)

	want := "move 10,10|down 10,10|move 20,5|up 20,5"
	if got := strings.Join(*log, "|"); got != want {
		t.Errorf("events = %s, want %s", got, want)
	}
}

// On touch devices the cursor position stays at the origin while a finger
// moves; it must not be reported as pointer motion during a touch drag.
func TestPollTouchIgnoresStaleCursor(t *testing.T) {
	s := NewScene()
	fp := &fakePointers{}
	s.pointers = fp
	s.Update(0) // first mouse sample
	log := eventTrace(s)

	fp.touchPressed = []ebiten.TouchID{7}
	fp.tx, fp.ty = 50, 50
	s.Update(0)
	fp.touchPressed = nil
	fp.tx = 60
	s.Update(0)
	s.Update(0) // no change
	fp.tx = 70
	s.Update(0)
	fp.touchReleased = true
	fp.prevTx, fp.prevTy = 70, 50
	s.Update(0)

	want := "move 50,50|down 50,50|move 60,50|move 70,50|up 70,50"
	if got := strings.Join(*log, "|"); got != want {
		t.Errorf("events = %s, want %s", got, want)
	}
	if s.touchActive {
		t.Error("touch should be released")
	}
}
