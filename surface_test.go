package trellis

import (
	"fmt"
	"testing"
)

// recordingSurface records every primitive drawn onto it.
type recordingSurface struct {
	color Color
	ops   []string
}

func (r *recordingSurface) SetColor(c Color) { r.color = c }

func (r *recordingSurface) DrawRect(rc Rect) {
	r.ops = append(r.ops, fmt.Sprintf("rect %v %v", r.color, rc))
}

func (r *recordingSurface) FillRect(rc Rect) {
	r.ops = append(r.ops, fmt.Sprintf("fill %v %v", r.color, rc))
}

func (r *recordingSurface) DrawLine(a, b Vec2) {
	r.ops = append(r.ops, fmt.Sprintf("line %v %v %v", r.color, a, b))
}

func (r *recordingSurface) DrawPoint(p Vec2) {
	r.ops = append(r.ops, fmt.Sprintf("point %v %v", r.color, p))
}

func TestDrawLines(t *testing.T) {
	var s recordingSurface
	DrawLines(&s, Vec2{0, 0}, Vec2{1, 0}, Vec2{1, 1})
	if len(s.ops) != 2 {
		t.Fatalf("ops = %v, want 2 segments", s.ops)
	}
	DrawLines(&s, Vec2{5, 5})
	if len(s.ops) != 2 {
		t.Errorf("a single point should draw nothing, ops = %v", s.ops)
	}
}
