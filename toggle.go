package trellis

import (
	"time"

	"github.com/tanema/gween/ease"
)

// ToggleConfig describes a Toggle. Positions and the click area are relative
// to the toggle's own resolved rectangle.
type ToggleConfig struct {
	Shape RelativeRect

	OffPosition RelativePosition
	OnPosition  RelativePosition

	// ClickArea is the region that flips the state on button release. It
	// does not follow the handle.
	ClickArea RelativeRect

	State bool

	// ScrollTime is how long the handle takes to travel between positions.
	// Zero snaps.
	ScrollTime time.Duration

	// Easing shapes the travel. Defaults to ease.Linear.
	Easing ease.TweenFunc

	Button MouseButton

	RenderOrder    int
	RenderDisabled bool
}

// Toggle is a two-state switch. Its single child, the handle, is laid out
// with its parent rectangle's origin at a point between OffPosition and
// OnPosition that travels toward the current state during the update pass.
type Toggle struct {
	Slot

	OffPosition RelativePosition
	OnPosition  RelativePosition
	ClickArea   RelativeRect
	ScrollTime  time.Duration
	Easing      ease.TweenFunc
	Button      MouseButton

	// OnToggle is called after the state flips through input or SetState.
	OnToggle func(state bool)

	scene  *Scene
	render *RenderHandle
	update *UpdateHandle

	state  bool
	travel float64 // applied progress in [0, 1]

	offPos    Vec2
	onPos     Vec2
	curPos    Vec2
	clickRect Rect
}

// NewToggle creates a toggle, registers it for rendering and updating, and
// subscribes it to button release events.
func NewToggle(s *Scene, cfg ToggleConfig) *Toggle {
	t := &Toggle{
		OffPosition: cfg.OffPosition,
		OnPosition:  cfg.OnPosition,
		ClickArea:   cfg.ClickArea,
		ScrollTime:  max(cfg.ScrollTime, 0),
		Easing:      cfg.Easing,
		Button:      cfg.Button,
		scene:       s,
		state:       cfg.State,
	}
	if t.Easing == nil {
		t.Easing = ease.Linear
	}
	if t.state {
		t.travel = 1
	}
	t.Init(t, cfg.Shape)

	t.render = s.AddRenderable(t, cfg.RenderOrder, !cfg.RenderDisabled)
	t.update = s.AddUpdateable(t)
	up := s.On(EventButtonUp, t.onButtonUp)
	t.Hold(t.render.Release)
	t.Hold(t.update.Release)
	t.Hold(up.Remove)
	return t
}

// RenderHandle returns the toggle's render registry membership.
func (t *Toggle) RenderHandle() *RenderHandle { return t.render }

// UpdateHandle returns the toggle's update registry membership.
func (t *Toggle) UpdateHandle() *UpdateHandle { return t.update }

// State returns the current state. The handle may still be travelling.
func (t *Toggle) State() bool { return t.state }

// SetState changes the state. The handle starts travelling on the next
// update.
func (t *Toggle) SetState(state bool) {
	if state == t.state {
		return
	}
	t.state = state
	if t.OnToggle != nil {
		t.OnToggle(state)
	}
	v := 0.0
	if state {
		v = 1
	}
	t.scene.emitWidgetEvent(WidgetToggled, t, v, t.Progress())
}

// Progress returns the un-eased travel fraction of the handle as last laid
// out: 0 at OffPosition, 1 at OnPosition. After SetState it changes from the
// next update.
func (t *Toggle) Progress() float64 { return t.travel }

// HandlePoint returns the absolute handle point.
func (t *Toggle) HandlePoint() Vec2 { return t.curPos }

// ClickRect returns the absolute click area.
func (t *Toggle) ClickRect() Rect { return t.clickRect }

// Update advances the handle toward the current state. A ScrollTime change
// keeps the fraction already travelled.
func (t *Toggle) Update(dt time.Duration) {
	switch {
	case t.ScrollTime <= 0 && t.state:
		t.travel = 1
	case t.ScrollTime <= 0:
		t.travel = 0
	case t.state:
		t.travel = min(t.travel+float64(dt)/float64(t.ScrollTime), 1)
	default:
		t.travel = max(t.travel-float64(dt)/float64(t.ScrollTime), 0)
	}
	t.curPos = t.position().Get(t.rect)
	t.placeHandle()
}

// position returns the eased relative handle position.
func (t *Toggle) position() RelativePosition {
	f := t.Progress()
	if f > 0 && f < 1 {
		f = float64(t.Easing(float32(f), 0, 1, 1))
	}
	return LerpPosition(f, t.OffPosition, t.OnPosition)
}

// SetParentShape recomputes the end points, the handle point and the click
// area, then lays out the handle.
func (t *Toggle) SetParentShape(parent Rect) {
	r := t.Resolve(parent)
	t.offPos = t.OffPosition.Get(r)
	t.onPos = t.OnPosition.Get(r)
	t.curPos = t.position().Get(r)
	t.clickRect = t.ClickArea.Get(r)
	t.placeHandle()
}

func (t *Toggle) placeHandle() {
	if h := t.Handle(); h != nil {
		h.SetParentShape(RectFrom(t.curPos, t.rect.Size()))
	}
}

func (t *Toggle) onButtonUp(e Event) {
	if e.Button != t.Button || !t.clickRect.ContainsPoint(e.Point()) {
		return
	}
	t.SetState(!t.state)
}

// Render draws the click area (yellow) and the travel line (red) in debug
// mode.
func (t *Toggle) Render(dst Surface) {
	if !t.scene.debug {
		return
	}
	dst.SetColor(ColorYellow)
	dst.DrawRect(t.clickRect)
	dst.SetColor(ColorRed)
	dst.DrawLine(t.offPos, t.onPos)
}
