package trellis

// Skins are leaf renderables. Each caches its absolute rectangle when the
// parent reshapes and paints it during the render pass.

// FilledRect paints its shape with a solid color.
type FilledRect struct {
	Node
	Fill Color

	render *RenderHandle
}

// NewFilledRect creates a filled rectangle registered for rendering at order.
func NewFilledRect(s *Scene, order int, shape RelativeRect, fill Color) *FilledRect {
	r := &FilledRect{Fill: fill}
	r.Init(r, shape)
	r.render = s.AddRenderable(r, order, true)
	r.Hold(r.render.Release)
	return r
}

// RenderHandle returns the renderable's registry membership.
func (r *FilledRect) RenderHandle() *RenderHandle { return r.render }

// Render fills the cached rectangle.
func (r *FilledRect) Render(dst Surface) {
	dst.SetColor(r.Fill)
	dst.FillRect(r.rect)
}

// BorderedRect outlines its shape.
type BorderedRect struct {
	Node
	Border Color

	render *RenderHandle
}

// NewBorderedRect creates an outlined rectangle registered for rendering at
// order.
func NewBorderedRect(s *Scene, order int, shape RelativeRect, border Color) *BorderedRect {
	r := &BorderedRect{Border: border}
	r.Init(r, shape)
	r.render = s.AddRenderable(r, order, true)
	r.Hold(r.render.Release)
	return r
}

// RenderHandle returns the renderable's registry membership.
func (r *BorderedRect) RenderHandle() *RenderHandle { return r.render }

// Render outlines the cached rectangle.
func (r *BorderedRect) Render(dst Surface) {
	dst.SetColor(r.Border)
	dst.DrawRect(r.rect)
}

// BorderedFilledRect fills its shape and then outlines it.
type BorderedFilledRect struct {
	Node
	Fill   Color
	Border Color

	render *RenderHandle
}

// NewBorderedFilledRect creates a filled, outlined rectangle registered for
// rendering at order.
func NewBorderedFilledRect(s *Scene, order int, shape RelativeRect, fill, border Color) *BorderedFilledRect {
	r := &BorderedFilledRect{Fill: fill, Border: border}
	r.Init(r, shape)
	r.render = s.AddRenderable(r, order, true)
	r.Hold(r.render.Release)
	return r
}

// RenderHandle returns the renderable's registry membership.
func (r *BorderedFilledRect) RenderHandle() *RenderHandle { return r.render }

// Render fills the cached rectangle, then outlines it.
func (r *BorderedFilledRect) Render(dst Surface) {
	dst.SetColor(r.Fill)
	dst.FillRect(r.rect)
	dst.SetColor(r.Border)
	dst.DrawRect(r.rect)
}
