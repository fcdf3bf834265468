package trellis

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to a Surface backend.
type Color struct {
	R, G, B, A float64
}

// Common colors used by the built-in skins and the debug overlay.
var (
	ColorWhite        = Color{1, 1, 1, 1}
	ColorBlack        = Color{0, 0, 0, 1}
	ColorRed          = Color{1, 0, 0, 1}
	ColorGreen        = Color{0, 1, 0, 1}
	ColorYellow       = Color{1, 1, 0, 1}
	ColorOrange       = Color{1, 0.5, 0, 1}
	ColorAzure        = Color{0, 0.5, 1, 1}
	ColorGrey         = Color{0.5, 0.5, 0.5, 1}
	ColorLightGrey    = Color{0.75, 0.75, 0.75, 1}
	ColorVeryDarkGrey = Color{0.125, 0.125, 0.125, 1}
)

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for points, sizes, anchors and offsets.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Scale returns v * f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Div returns v / f.
func (v Vec2) Div(f float64) Vec2 { return Vec2{v.X / f, v.Y / f} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns v scaled to unit length, or the zero vector if v is zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFrom builds a Rect from an origin and a size.
func RectFrom(pos, size Vec2) Rect {
	return Rect{pos.X, pos.Y, size.X, size.Y}
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec2 { return Vec2{r.X, r.Y} }

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 { return Vec2{r.Width, r.Height} }

// TopRight returns the top-right corner.
func (r Rect) TopRight() Vec2 { return Vec2{r.X + r.Width, r.Y} }

// BottomLeft returns the bottom-left corner.
func (r Rect) BottomLeft() Vec2 { return Vec2{r.X, r.Y + r.Height} }

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Vec2 { return Vec2{r.X + r.Width, r.Y + r.Height} }

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{r.X + d.X, r.Y + d.Y, r.Width, r.Height}
}

// Canon returns r with negative extents flipped so Width and Height are
// non-negative and the rectangle covers the same area.
func (r Rect) Canon() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsPoint is Contains for a Vec2.
func (r Rect) ContainsPoint(p Vec2) bool {
	return r.Contains(p.X, p.Y)
}

// PointToNorm maps an absolute point to its fraction of the rectangle, where
// the origin maps to (0, 0) and the bottom-right corner to (1, 1). A zero
// extent maps to 0 on that axis.
func (r Rect) PointToNorm(p Vec2) Vec2 {
	var n Vec2
	if r.Width != 0 {
		n.X = (p.X - r.X) / r.Width
	}
	if r.Height != 0 {
		n.Y = (p.Y - r.Y) / r.Height
	}
	return n
}

// NormToPoint is the inverse of PointToNorm.
func (r Rect) NormToPoint(n Vec2) Vec2 {
	return Vec2{r.X + r.Width*n.X, r.Y + r.Height*n.Y}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventButtonDown EventType = iota // a pointer button was pressed
	EventButtonUp                    // a pointer button was released
	EventMotion                      // the pointer moved
	EventResize                      // the window changed size

	numEventTypes
)
