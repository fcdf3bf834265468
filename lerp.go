package trellis

import "math"

// Number is the set of value domains a Slider can map onto.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// isIntegral reports whether T truncates fractions.
func isIntegral[T Number]() bool {
	half := 0.5
	return T(half) == 0
}

// Lerp interpolates between lo and hi by t. Integer domains round to the
// nearest integer.
func Lerp[T Number](t float64, lo, hi T) T {
	v := float64(lo) + (float64(hi)-float64(lo))*t
	if isIntegral[T]() {
		return T(math.Round(v))
	}
	return T(v)
}

// LerpClamped is Lerp with t clamped to [0, 1].
func LerpClamped[T Number](t float64, lo, hi T) T {
	return Lerp(clamp01(t), lo, hi)
}

// InverseLerp returns where v falls between lo and hi, unclamped. A
// degenerate range returns 0.
func InverseLerp[T Number](v, lo, hi T) float64 {
	if hi == lo {
		return 0
	}
	return (float64(v) - float64(lo)) / (float64(hi) - float64(lo))
}

// LerpVec2 interpolates between two points by t.
func LerpVec2(t float64, lo, hi Vec2) Vec2 {
	return lo.Add(hi.Sub(lo).Scale(t))
}

// LerpPosition blends two relative positions by t, anchors and offsets alike.
func LerpPosition(t float64, lo, hi RelativePosition) RelativePosition {
	return lo.Add(hi.Sub(lo).Scale(t))
}

// ProjectClamped projects p onto the segment lo..hi and returns the fraction
// along it, clamped to [0, 1]. The projection uses the segment direction, so
// diagonal segments work. A zero-length segment returns 0.
func ProjectClamped(p, lo, hi Vec2) float64 {
	return clamp01(Project(p, lo, hi))
}

// Project is ProjectClamped without the clamp.
func Project(p, lo, hi Vec2) float64 {
	d := hi.Sub(lo)
	l := d.Len()
	if l == 0 {
		return 0
	}
	return p.Sub(lo).Div(l).Dot(d.Div(l))
}
