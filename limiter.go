package trellis

// Limiter is an ordered container that refuses to shrink below MinSize.
// When its resolved rectangle is narrower or shorter than MinSize, that axis
// grows to MinSize. GrowDirection picks the fixed edge per axis: -1 keeps
// the right/bottom edge, 0 grows evenly both ways, 1 keeps the left/top
// edge. Zero MinSize components are not limited.
type Limiter struct {
	Group
	MinSize       Vec2
	GrowDirection Vec2
}

// NewLimiter creates a Limiter with the given shape and minimum size.
func NewLimiter(shape RelativeRect, minSize Vec2) *Limiter {
	l := &Limiter{MinSize: minSize}
	l.Init(l, shape)
	return l
}

// SetParentShape resolves the shape, applies the minimum size and
// propagates the limited rectangle to the children.
func (l *Limiter) SetParentShape(parent Rect) {
	r := l.Resolve(parent)
	if diff := l.MinSize.X - r.Width; diff > 0 {
		r.Width = l.MinSize.X
		r.X += (l.GrowDirection.X - 1) * 0.5 * diff
	}
	if diff := l.MinSize.Y - r.Height; diff > 0 {
		r.Height = l.MinSize.Y
		r.Y += (l.GrowDirection.Y - 1) * 0.5 * diff
	}
	l.rect = r
	l.Propagate(r)
}
