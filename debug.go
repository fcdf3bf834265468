package trellis

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and registry sizes.
// Only populated when Scene.debug is true.
type debugStats struct {
	inputTime   time.Duration
	updateTime  time.Duration
	renderTime  time.Duration
	updateables int
	renderables int
}

// debugLog prints timing stats for one pass to stderr.
func (s *Scene) debugLog(pass string, stats debugStats) {
	if !s.debug {
		return
	}
	switch pass {
	case "update":
		_, _ = fmt.Fprintf(os.Stderr,
			"[trellis] input: %v | update: %v | updateables: %d\n",
			stats.inputTime, stats.updateTime, stats.updateables)
	case "render":
		_, _ = fmt.Fprintf(os.Stderr,
			"[trellis] render: %v | renderables: %d\n",
			stats.renderTime, stats.renderables)
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; {
		depth++
		if p.parent == nil {
			break
		}
		p = p.parent.node()
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[trellis] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.label())
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if c := n.NumChildren(); c > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[trellis] warning: node %q has %d children (threshold %d)\n",
			n.label(), c, debugMaxChildCount)
	}
}

// renderDebug draws the guides of every container reachable from the root:
// parents first, then shapes, then anchors, so anchors stay on top.
func (s *Scene) renderDebug(dst Surface) {
	var nodes []*Node
	Walk(s.root, func(c Container, _ int) {
		nodes = append(nodes, c.node())
	})
	for _, n := range nodes {
		dst.SetColor(ColorRed)
		drawExtent(dst, n.parentRect)
	}
	for _, n := range nodes {
		dst.SetColor(ColorAzure)
		drawExtent(dst, n.rect)
	}
	for _, n := range nodes {
		drawAnchors(dst, n)
	}
}

// drawExtent outlines r, degrading to a line or a point when r has no area.
func drawExtent(dst Surface, r Rect) {
	switch {
	case r.Width == 0 && r.Height == 0:
		dst.DrawPoint(r.Pos())
	case r.Width == 0 || r.Height == 0:
		dst.DrawLine(r.Pos(), r.BottomRight())
	default:
		dst.DrawRect(r)
	}
}

// drawAnchors marks the corners of the shape as resolved before offsets are
// applied: the anchor box within the parent.
func drawAnchors(dst Surface, n *Node) {
	p := n.parentRect
	box := RectFrom(
		p.Pos().Add(p.Size().Mul(n.Shape.Position.Anchor)),
		p.Size().Mul(n.Shape.Size.Anchor),
	)

	tl, tr := box.Pos(), box.TopRight()
	br, bl := box.BottomRight(), box.BottomLeft()

	dst.SetColor(ColorWhite)
	DrawLines(dst, tl, tl.Add(Vec2{-10, -4}), tl.Add(Vec2{-4, -10}), tl)
	DrawLines(dst, tr, tr.Add(Vec2{4, -10}), tr.Add(Vec2{10, -4}), tr)
	DrawLines(dst, br, br.Add(Vec2{10, 4}), br.Add(Vec2{4, 10}), br)
	DrawLines(dst, bl, bl.Add(Vec2{-4, 10}), bl.Add(Vec2{-10, 4}), bl)

	dst.SetColor(ColorOrange)
	drawExtent(dst, box)
}
