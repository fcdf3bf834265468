package trellis

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface accepts drawing primitives in absolute pixel coordinates. The
// current color applies to every primitive until it is changed.
type Surface interface {
	SetColor(c Color)
	DrawRect(r Rect)
	FillRect(r Rect)
	DrawLine(a, b Vec2)
	DrawPoint(p Vec2)
}

// DrawLines draws a connected polyline through points.
func DrawLines(dst Surface, points ...Vec2) {
	for i := 1; i < len(points); i++ {
		dst.DrawLine(points[i-1], points[i])
	}
}

// ImageSurface draws onto an *ebiten.Image with the vector package.
type ImageSurface struct {
	Image       *ebiten.Image
	StrokeWidth float32
	AntiAlias   bool

	color Color
}

// NewImageSurface wraps img with a 1px stroke width and antialiasing on.
func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{Image: img, StrokeWidth: 1, AntiAlias: true, color: ColorWhite}
}

// SetColor sets the color for subsequent primitives.
func (s *ImageSurface) SetColor(c Color) { s.color = c }

// DrawRect strokes the outline of r.
func (s *ImageSurface) DrawRect(r Rect) {
	vector.StrokeRect(s.Image, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		s.StrokeWidth, s.color.RGBA(), s.AntiAlias)
}

// FillRect fills r.
func (s *ImageSurface) FillRect(r Rect) {
	vector.DrawFilledRect(s.Image, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		s.color.RGBA(), s.AntiAlias)
}

// DrawLine strokes a segment from a to b.
func (s *ImageSurface) DrawLine(a, b Vec2) {
	vector.StrokeLine(s.Image, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
		s.StrokeWidth, s.color.RGBA(), s.AntiAlias)
}

// DrawPoint fills the pixel at p.
func (s *ImageSurface) DrawPoint(p Vec2) {
	vector.DrawFilledRect(s.Image, float32(p.X), float32(p.Y), 1, 1, s.color.RGBA(), false)
}
