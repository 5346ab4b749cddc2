package gamemath

import "math"

// Normalize scales (x, y) to unit length. The zero vector is returned as is.
func Normalize(x, y float64) (float64, float64) {
	length := math.Sqrt(x*x + y*y)
	if length > 0 {
		return x / length, y / length
	}
	return 0, 0
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampToRect clamps a circle centre so the whole circle stays inside the
// rectangle (minX, minY)-(maxX, maxY).
func ClampToRect(x, y, radius, minX, minY, maxX, maxY float64) (float64, float64) {
	return Clamp(x, minX+radius, maxX-radius), Clamp(y, minY+radius, maxY-radius)
}

// Lerp moves from toward to by t (0..1).
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
