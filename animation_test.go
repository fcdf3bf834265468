package trellis

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestTweenShapeReachesTarget(t *testing.T) {
	s := NewScene()
	panel := NewGroup(RectOf(Vec2{}, Vec2{10, 10}, Vec2{}, Vec2{20, 20}))
	s.Root().AddChild(panel)
	s.Resize(200, 200)

	to := RectOf(Vec2{0.5, 0}, Vec2{30, 10}, Vec2{0.5, 0}, Vec2{0, 60})
	g := TweenShape(s, panel, to, time.Second, ease.Linear)

	s.Update(500 * time.Millisecond)
	if g.Done {
		t.Fatal("Done after half the duration")
	}
	mid := panel.Rect()
	if math.Abs(mid.X-70) > 0.01 || math.Abs(mid.Width-60) > 0.01 || math.Abs(mid.Height-40) > 0.01 {
		t.Errorf("rect at midpoint = %+v", mid)
	}

	s.Update(500 * time.Millisecond)
	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if got := panel.Rect(); got != (Rect{X: 130, Y: 10, Width: 100, Height: 60}) {
		t.Errorf("final rect = %+v", got)
	}
	if n := len(s.updateables.entries); n != 0 {
		t.Errorf("finished tween still registered: %d entries", n)
	}
}

func TestTweenShapeDefaultsToLinear(t *testing.T) {
	s := NewScene()
	panel := NewGroup(RectOf(Vec2{}, Vec2{}, Vec2{}, Vec2{0, 0}))
	s.Root().AddChild(panel)
	s.Resize(100, 100)

	TweenShape(s, panel, RectOf(Vec2{}, Vec2{}, Vec2{}, Vec2{100, 0}), time.Second, nil)
	s.Update(250 * time.Millisecond)
	if w := panel.Rect().Width; math.Abs(w-25) > 0.01 {
		t.Errorf("Width = %v, want 25", w)
	}
}

func TestTweenShapeStopsOnDisposedTarget(t *testing.T) {
	s := NewScene()
	panel := NewGroup(Fill)
	s.Root().AddChild(panel)
	g := TweenShape(s, panel, RectOf(Vec2{}, Vec2{50, 50}, Vec2{}, Vec2{}), time.Second, ease.Linear)

	DeleteTree(panel)
	before := panel.Shape
	s.Update(500 * time.Millisecond)

	if !g.Done {
		t.Error("tween should stop once its target is disposed")
	}
	if panel.Shape != before {
		t.Errorf("disposed target was written: %+v", panel.Shape)
	}
}

func TestTweenShapePropagatesToChildren(t *testing.T) {
	s := NewScene()
	panel := NewGroup(RectOf(Vec2{}, Vec2{}, Vec2{}, Vec2{10, 10}))
	child := newLeaf("child")
	panel.AddChild(child)
	s.Root().AddChild(panel)
	s.Resize(100, 100)

	TweenShape(s, panel, RectOf(Vec2{}, Vec2{40, 0}, Vec2{}, Vec2{10, 10}), 100*time.Millisecond, ease.Linear)
	s.Update(100 * time.Millisecond)

	if got := child.Rect(); got != (Rect{X: 40, Y: 0, Width: 10, Height: 10}) {
		t.Errorf("child rect = %+v", got)
	}
}
