package trellis

// RelativePosition is a point that knows how to place itself inside a parent
// rectangle. Anchor is a normalised fraction of the parent size, (0, 0) at the
// parent's top-left and (1, 1) at its bottom-right; Offset is a constant in
// parent units added after the anchor is resolved.
type RelativePosition struct {
	Anchor Vec2
	Offset Vec2
}

// Pos is shorthand for a RelativePosition literal.
func Pos(ax, ay, ox, oy float64) RelativePosition {
	return RelativePosition{Anchor: Vec2{ax, ay}, Offset: Vec2{ox, oy}}
}

// Get evaluates p against parent: origin + size*anchor + offset.
func (p RelativePosition) Get(parent Rect) Vec2 {
	return parent.Pos().Add(parent.Size().Mul(p.Anchor)).Add(p.Offset)
}

// Add returns p + o, component-wise on anchor and offset.
func (p RelativePosition) Add(o RelativePosition) RelativePosition {
	return RelativePosition{p.Anchor.Add(o.Anchor), p.Offset.Add(o.Offset)}
}

// Sub returns p - o, component-wise on anchor and offset.
func (p RelativePosition) Sub(o RelativePosition) RelativePosition {
	return RelativePosition{p.Anchor.Sub(o.Anchor), p.Offset.Sub(o.Offset)}
}

// Scale multiplies both anchor and offset by f.
func (p RelativePosition) Scale(f float64) RelativePosition {
	return RelativePosition{p.Anchor.Scale(f), p.Offset.Scale(f)}
}

// Div divides both anchor and offset by f.
func (p RelativePosition) Div(f float64) RelativePosition {
	return RelativePosition{p.Anchor.Div(f), p.Offset.Div(f)}
}

// RelativeSize is a size that scales with its parent. Anchor is a fraction of
// the parent size and Offset a constant added to it.
type RelativeSize struct {
	Anchor Vec2
	Offset Vec2
}

// Size is shorthand for a RelativeSize literal.
func Size(ax, ay, ox, oy float64) RelativeSize {
	return RelativeSize{Anchor: Vec2{ax, ay}, Offset: Vec2{ox, oy}}
}

// Get evaluates s against parent: size*anchor + offset.
func (s RelativeSize) Get(parent Rect) Vec2 {
	return parent.Size().Mul(s.Anchor).Add(s.Offset)
}

// Add returns s + o, component-wise on anchor and offset.
func (s RelativeSize) Add(o RelativeSize) RelativeSize {
	return RelativeSize{s.Anchor.Add(o.Anchor), s.Offset.Add(o.Offset)}
}

// Sub returns s - o, component-wise on anchor and offset.
func (s RelativeSize) Sub(o RelativeSize) RelativeSize {
	return RelativeSize{s.Anchor.Sub(o.Anchor), s.Offset.Sub(o.Offset)}
}

// Scale multiplies both anchor and offset by f.
func (s RelativeSize) Scale(f float64) RelativeSize {
	return RelativeSize{s.Anchor.Scale(f), s.Offset.Scale(f)}
}

// Div divides both anchor and offset by f.
func (s RelativeSize) Div(f float64) RelativeSize {
	return RelativeSize{s.Anchor.Div(f), s.Offset.Div(f)}
}

// RelativeRect pairs a RelativePosition for the top-left corner with a
// RelativeSize.
type RelativeRect struct {
	Position RelativePosition
	Size     RelativeSize
}

// RectOf builds a RelativeRect from its four components: position anchor,
// position offset, size anchor and size offset.
func RectOf(posAnchor, posOffset, sizeAnchor, sizeOffset Vec2) RelativeRect {
	return RelativeRect{
		Position: RelativePosition{posAnchor, posOffset},
		Size:     RelativeSize{sizeAnchor, sizeOffset},
	}
}

// Fill is the RelativeRect that resolves to exactly its parent.
var Fill = RelativeRect{Size: RelativeSize{Anchor: Vec2{1, 1}}}

// Get evaluates r against parent into an absolute rectangle.
func (r RelativeRect) Get(parent Rect) Rect {
	return RectFrom(r.Position.Get(parent), r.Size.Get(parent))
}

// Move returns r with its position shifted by p.
func (r RelativeRect) Move(p RelativePosition) RelativeRect {
	return RelativeRect{r.Position.Add(p), r.Size}
}

// Grow returns r with its size increased by s.
func (r RelativeRect) Grow(s RelativeSize) RelativeRect {
	return RelativeRect{r.Position, r.Size.Add(s)}
}
