package trellis

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ShapeTween animates the eight scalar components of a container's shape
// (position anchor and offset, size anchor and offset). It is registered in
// the scene's update pass, re-lays out the target each tick against its last
// parent rectangle, and releases its registration once finished. If the
// target is disposed the tween stops without writing.
type ShapeTween struct {
	tweens [8]*gween.Tween
	fields [8]*float64
	target Container
	handle *UpdateHandle
	Done   bool
}

// TweenShape starts animating c's shape toward to over duration using fn
// (ease.Linear when nil).
func TweenShape(s *Scene, c Container, to RelativeRect, duration time.Duration, fn ease.TweenFunc) *ShapeTween {
	if fn == nil {
		fn = ease.Linear
	}
	n := c.node()
	from := n.Shape
	g := &ShapeTween{target: c}
	g.fields = [8]*float64{
		&n.Shape.Position.Anchor.X, &n.Shape.Position.Anchor.Y,
		&n.Shape.Position.Offset.X, &n.Shape.Position.Offset.Y,
		&n.Shape.Size.Anchor.X, &n.Shape.Size.Anchor.Y,
		&n.Shape.Size.Offset.X, &n.Shape.Size.Offset.Y,
	}
	starts := [8]float64{
		from.Position.Anchor.X, from.Position.Anchor.Y,
		from.Position.Offset.X, from.Position.Offset.Y,
		from.Size.Anchor.X, from.Size.Anchor.Y,
		from.Size.Offset.X, from.Size.Offset.Y,
	}
	ends := [8]float64{
		to.Position.Anchor.X, to.Position.Anchor.Y,
		to.Position.Offset.X, to.Position.Offset.Y,
		to.Size.Anchor.X, to.Size.Anchor.Y,
		to.Size.Offset.X, to.Size.Offset.Y,
	}
	secs := float32(duration.Seconds())
	for i := range g.tweens {
		g.tweens[i] = gween.New(float32(starts[i]), float32(ends[i]), secs, fn)
	}
	g.handle = s.AddUpdateable(g)
	return g
}

// Update advances all components by dt, writes them into the target's shape
// and re-lays out the target.
func (g *ShapeTween) Update(dt time.Duration) {
	if g.Done {
		return
	}
	n := g.target.node()
	if n.IsDisposed() {
		g.Stop()
		return
	}

	allDone := true
	step := float32(dt.Seconds())
	for i, tw := range g.tweens {
		val, finished := tw.Update(step)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	n.Reshape()
	if allDone {
		g.Stop()
	}
}

// Stop ends the tween where it is and leaves the update pass.
func (g *ShapeTween) Stop() {
	g.Done = true
	g.handle.Release()
}
