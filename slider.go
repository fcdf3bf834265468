package trellis

// SliderConfig describes a Slider. Positions are relative to the slider's
// own resolved rectangle.
type SliderConfig[T Number] struct {
	Shape RelativeRect

	// MinPosition and MaxPosition are the ends of the track the handle
	// point moves along. The track may be diagonal.
	MinPosition RelativePosition
	MaxPosition RelativePosition

	// HandleShape is the handle's hit area, relative to the handle point and
	// sized against the slider's rectangle.
	HandleShape RelativeRect

	Min, Max, Value T

	// Button is the pointer button that drags the handle.
	Button MouseButton

	// DisableClickWarp ignores presses on the track outside the handle.
	// By default such a press warps the handle to the pointer and starts a
	// drag.
	DisableClickWarp bool

	RenderOrder    int
	RenderDisabled bool
}

// Slider maps a linear value range onto a track. Its single child, the
// handle, is laid out with its parent rectangle's origin at the current
// handle point and the slider's size.
//
// A press inside the handle (or anywhere on the track when click-warp is on)
// starts a drag. While dragging, pointer motion is projected onto the track,
// clamped to its ends, and mapped to the value range. Releasing the button
// ends the drag; integer sliders then snap the handle to the rounded value.
type Slider[T Number] struct {
	Slot

	MinPosition RelativePosition
	MaxPosition RelativePosition
	HandleShape RelativeRect
	Min, Max    T
	Button      MouseButton
	ClickWarp   bool

	// OnChange is called after the value changes through input or SetValue.
	OnChange func(value T)

	scene  *Scene
	render *RenderHandle
	motion CallbackHandle

	value    T
	norm     float64
	position RelativePosition

	minPos     Vec2
	maxPos     Vec2
	curPos     Vec2
	handleRect Rect // relative to curPos
	area       Rect
	grab       Vec2 // pointer position within the handle rect, normalised
	dragging   bool
}

// FloatSlider is a slider over a continuous range.
type FloatSlider = Slider[float64]

// IntSlider is a slider over an integer range.
type IntSlider = Slider[int]

// NewSlider creates a slider, registers it for rendering and subscribes it
// to pointer button events. The initial value is clamped to [Min, Max].
func NewSlider[T Number](s *Scene, cfg SliderConfig[T]) *Slider[T] {
	sl := &Slider[T]{
		MinPosition: cfg.MinPosition,
		MaxPosition: cfg.MaxPosition,
		HandleShape: cfg.HandleShape,
		Min:         cfg.Min,
		Max:         cfg.Max,
		Button:      cfg.Button,
		ClickWarp:   !cfg.DisableClickWarp,
		scene:       s,
	}
	sl.Init(sl, cfg.Shape)
	sl.value = sl.clamp(cfg.Value)
	sl.norm = clamp01(InverseLerp(sl.value, sl.Min, sl.Max))
	sl.position = LerpPosition(sl.norm, sl.MinPosition, sl.MaxPosition)

	sl.render = s.AddRenderable(sl, cfg.RenderOrder, !cfg.RenderDisabled)
	down := s.On(EventButtonDown, sl.onButtonDown)
	up := s.On(EventButtonUp, sl.onButtonUp)
	sl.Hold(sl.render.Release)
	sl.Hold(down.Remove)
	sl.Hold(up.Remove)
	sl.Hold(func() { sl.motion.Remove() })
	return sl
}

// NewFloatSlider is NewSlider for float64 values.
func NewFloatSlider(s *Scene, cfg SliderConfig[float64]) *FloatSlider {
	return NewSlider(s, cfg)
}

// NewIntSlider is NewSlider for int values.
func NewIntSlider(s *Scene, cfg SliderConfig[int]) *IntSlider {
	return NewSlider(s, cfg)
}

// RenderHandle returns the slider's render registry membership.
func (sl *Slider[T]) RenderHandle() *RenderHandle { return sl.render }

// Value returns the current value.
func (sl *Slider[T]) Value() T { return sl.value }

// Norm returns the value's fraction of [Min, Max].
func (sl *Slider[T]) Norm() float64 {
	return InverseLerp(sl.value, sl.Min, sl.Max)
}

// Position returns the handle's fraction along the track. For integer
// sliders it differs from Norm while a drag is in progress.
func (sl *Slider[T]) Position() float64 { return sl.norm }

// HandlePoint returns the absolute handle point.
func (sl *Slider[T]) HandlePoint() Vec2 { return sl.curPos }

// HandleRect returns the absolute hit area of the handle.
func (sl *Slider[T]) HandleRect() Rect { return sl.handleRect.Translate(sl.curPos) }

// TrackArea returns the absolute area that accepts click-warp presses.
func (sl *Slider[T]) TrackArea() Rect { return sl.area }

// Dragging reports whether the handle is being dragged.
func (sl *Slider[T]) Dragging() bool { return sl.dragging }

// SetValue moves the handle to v, clamped to [Min, Max].
func (sl *Slider[T]) SetValue(v T) {
	v = sl.clamp(v)
	sl.apply(clamp01(InverseLerp(v, sl.Min, sl.Max)), v)
}

func (sl *Slider[T]) clamp(v T) T {
	lo, hi := sl.Min, sl.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	return min(max(v, lo), hi)
}

// SetParentShape recomputes the track ends, the handle point, the handle hit
// area and the click-warp area, then lays out the handle.
func (sl *Slider[T]) SetParentShape(parent Rect) {
	r := sl.Resolve(parent)
	sl.minPos = sl.MinPosition.Get(r)
	sl.maxPos = sl.MaxPosition.Get(r)
	sl.curPos = sl.position.Get(r)
	sl.handleRect = sl.HandleShape.Get(Rect{Width: r.Width, Height: r.Height})
	sl.area = RectFrom(
		sl.handleRect.Pos().Add(sl.minPos),
		sl.handleRect.Size().Add(sl.maxPos.Sub(sl.minPos)),
	).Canon()
	sl.placeHandle()
}

func (sl *Slider[T]) placeHandle() {
	if h := sl.Handle(); h != nil {
		h.SetParentShape(RectFrom(sl.curPos, sl.rect.Size()))
	}
}

// setFromNorm moves the handle to fraction t of the track and derives the
// value from it.
func (sl *Slider[T]) setFromNorm(t float64) {
	sl.apply(t, Lerp(t, sl.Min, sl.Max))
}

func (sl *Slider[T]) apply(t float64, v T) {
	sl.norm = t
	sl.position = LerpPosition(t, sl.MinPosition, sl.MaxPosition)
	sl.curPos = sl.position.Get(sl.rect)
	sl.placeHandle()

	if v == sl.value {
		return
	}
	sl.value = v
	if sl.OnChange != nil {
		sl.OnChange(v)
	}
	sl.scene.emitWidgetEvent(WidgetSliderChanged, sl, float64(v), sl.Norm())
}

// setFromPoint drags the handle so the grabbed point follows p.
func (sl *Slider[T]) setFromPoint(p Vec2) {
	anchor := p.Sub(sl.handleRect.NormToPoint(sl.grab))
	sl.setFromNorm(ProjectClamped(anchor, sl.minPos, sl.maxPos))
}

func (sl *Slider[T]) onButtonDown(e Event) {
	if e.Button != sl.Button || sl.dragging {
		return
	}
	p := e.Point()
	hit := sl.HandleRect()
	if !hit.ContainsPoint(p) {
		if !sl.ClickWarp || !sl.area.ContainsPoint(p) {
			return
		}
		sl.setFromNorm(ProjectClamped(p, sl.minPos, sl.maxPos))
		hit = sl.HandleRect()
	}
	sl.grab = hit.PointToNorm(p)
	sl.startDrag()
}

func (sl *Slider[T]) onButtonUp(e Event) {
	if e.Button != sl.Button || !sl.dragging {
		return
	}
	sl.dragging = false
	sl.motion.Remove()
	sl.motion = CallbackHandle{}

	if isIntegral[T]() {
		sl.norm = clamp01(InverseLerp(sl.value, sl.Min, sl.Max))
		sl.position = LerpPosition(sl.norm, sl.MinPosition, sl.MaxPosition)
		sl.curPos = sl.position.Get(sl.rect)
		sl.placeHandle()
	}
	sl.scene.emitWidgetEvent(WidgetDragEnd, sl, float64(sl.value), sl.Norm())
}

func (sl *Slider[T]) startDrag() {
	sl.dragging = true
	sl.motion = sl.scene.On(EventMotion, func(e Event) {
		sl.setFromPoint(e.Point())
	})
	sl.scene.emitWidgetEvent(WidgetDragStart, sl, float64(sl.value), sl.Norm())
}

// Render draws the slider's guides in debug mode: the click-warp area
// (yellow), the handle hit area (green), the track (red) and, while
// dragging, the grabbed point (white). Skins are attached as children.
func (sl *Slider[T]) Render(dst Surface) {
	if !sl.scene.debug {
		return
	}
	if sl.ClickWarp {
		dst.SetColor(ColorYellow)
		dst.DrawRect(sl.area)
	}
	dst.SetColor(ColorGreen)
	dst.DrawRect(sl.HandleRect())
	dst.SetColor(ColorRed)
	dst.DrawLine(sl.minPos, sl.maxPos)
	if sl.dragging {
		dst.SetColor(ColorWhite)
		dst.DrawPoint(sl.handleRect.NormToPoint(sl.grab).Add(sl.curPos))
	}
}
