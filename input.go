package trellis

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Event is a discrete input record delivered synchronously to subscribers.
type Event struct {
	Type   EventType
	Button MouseButton // EventButtonDown, EventButtonUp
	X, Y   float64     // pointer position in pixels; button and motion events
	Width  int         // EventResize
	Height int         // EventResize
}

// Point returns the pointer position carried by the event.
func (e Event) Point() Vec2 {
	return Vec2{e.X, e.Y}
}

// --- Handler registry ---

type eventHandler struct {
	id      uint32
	fn      func(Event)
	removed bool
}

type handlerRegistry struct {
	byType [numEventTypes][]*eventHandler
	nextID uint32
}

// CallbackHandle allows removing a registered event callback.
type CallbackHandle struct {
	h     *eventHandler
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Calling Remove
// again, or on the zero CallbackHandle, does nothing. A callback removed
// while an event is being dispatched does not fire for the rest of that
// dispatch.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.h.removed {
		return
	}
	h.h.removed = true
	// Build a fresh slice so an in-flight dispatch keeps its snapshot.
	list := h.reg.byType[h.event]
	next := make([]*eventHandler, 0, len(list))
	for _, e := range list {
		if e != h.h {
			next = append(next, e)
		}
	}
	h.reg.byType[h.event] = next
}

// Active reports whether the callback is still registered.
func (h CallbackHandle) Active() bool {
	return h.reg != nil && !h.h.removed
}

// On registers fn for events of type t. Callbacks fire in registration
// order. A callback registered during a dispatch first fires on the next
// event.
func (s *Scene) On(t EventType, fn func(Event)) CallbackHandle {
	if t >= numEventTypes {
		panic("trellis: unknown event type")
	}
	s.handlers.nextID++
	h := &eventHandler{id: s.handlers.nextID, fn: fn}
	s.handlers.byType[t] = append(s.handlers.byType[t], h)
	return CallbackHandle{h: h, reg: &s.handlers, event: t}
}

// Dispatch delivers e to every callback subscribed to its type.
func (s *Scene) Dispatch(e Event) {
	if e.Type >= numEventTypes {
		return
	}
	if e.Type != EventResize {
		s.cursor = e.Point()
		s.cursorKnown = true
	}
	for _, h := range s.handlers.byType[e.Type] {
		if h.removed {
			continue
		}
		h.fn(e)
	}
}

// --- Ebitengine polling ---

// pointerSource is the per-tick pointer state the poller reads.
type pointerSource interface {
	CursorPosition() (int, int)
	IsMouseButtonJustPressed(b ebiten.MouseButton) bool
	IsMouseButtonJustReleased(b ebiten.MouseButton) bool
	AppendJustPressedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	IsTouchJustReleased(id ebiten.TouchID) bool
	TouchPosition(id ebiten.TouchID) (int, int)
	TouchPositionInPreviousTick(id ebiten.TouchID) (int, int)
}

// ebitenPointers reads the live ebiten input state.
type ebitenPointers struct{}

func (ebitenPointers) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenPointers) IsMouseButtonJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

func (ebitenPointers) IsMouseButtonJustReleased(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(b)
}

func (ebitenPointers) AppendJustPressedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return inpututil.AppendJustPressedTouchIDs(ids)
}

func (ebitenPointers) IsTouchJustReleased(id ebiten.TouchID) bool {
	return inpututil.IsTouchJustReleased(id)
}

func (ebitenPointers) TouchPosition(id ebiten.TouchID) (int, int) { return ebiten.TouchPosition(id) }

func (ebitenPointers) TouchPositionInPreviousTick(id ebiten.TouchID) (int, int) {
	return inpututil.TouchPositionInPreviousTick(id)
}

var polledButtons = [...]struct {
	button MouseButton
	eb     ebiten.MouseButton
}{
	{MouseButtonLeft, ebiten.MouseButtonLeft},
	{MouseButtonRight, ebiten.MouseButtonRight},
	{MouseButtonMiddle, ebiten.MouseButtonMiddle},
}

// processInput runs once per frame from Scene.Update. Injected events take
// priority; real input is polled only when the scene is driven by Run.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if s.pointers != nil {
		s.pollMouse()
		s.pollTouch()
	}
}

// pollMouse turns the per-frame mouse state into discrete events: motion
// first, then button edges. The mouse and the tracked touch keep separate
// last positions, and the mouse is not polled while a touch is down.
func (s *Scene) pollMouse() {
	if s.touchActive {
		return
	}
	mx, my := s.pointers.CursorPosition()
	p := Vec2{float64(mx), float64(my)}
	if !s.mouseKnown || p != s.lastMouse {
		s.lastMouse, s.mouseKnown = p, true
		s.Dispatch(Event{Type: EventMotion, X: p.X, Y: p.Y})
	}
	for _, b := range polledButtons {
		if s.pointers.IsMouseButtonJustPressed(b.eb) {
			s.Dispatch(Event{Type: EventButtonDown, Button: b.button, X: p.X, Y: p.Y})
		}
		if s.pointers.IsMouseButtonJustReleased(b.eb) {
			s.Dispatch(Event{Type: EventButtonUp, Button: b.button, X: p.X, Y: p.Y})
		}
	}
}

// pollTouch maps the first active touch onto the left button.
func (s *Scene) pollTouch() {
	if s.touchActive {
		if s.pointers.IsTouchJustReleased(s.touchID) {
			tx, ty := s.pointers.TouchPositionInPreviousTick(s.touchID)
			s.touchActive = false
			s.Dispatch(Event{Type: EventButtonUp, Button: MouseButtonLeft, X: float64(tx), Y: float64(ty)})
			return
		}
		tx, ty := s.pointers.TouchPosition(s.touchID)
		p := Vec2{float64(tx), float64(ty)}
		if p != s.lastTouch {
			s.lastTouch = p
			s.Dispatch(Event{Type: EventMotion, X: p.X, Y: p.Y})
		}
		return
	}
	s.touchBuf = s.pointers.AppendJustPressedTouchIDs(s.touchBuf[:0])
	if len(s.touchBuf) == 0 {
		return
	}
	s.touchID = s.touchBuf[0]
	s.touchActive = true
	tx, ty := s.pointers.TouchPosition(s.touchID)
	s.lastTouch = Vec2{float64(tx), float64(ty)}
	s.Dispatch(Event{Type: EventMotion, X: s.lastTouch.X, Y: s.lastTouch.Y})
	s.Dispatch(Event{Type: EventButtonDown, Button: MouseButtonLeft, X: s.lastTouch.X, Y: s.lastTouch.Y})
}
