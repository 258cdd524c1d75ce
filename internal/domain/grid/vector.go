package grid

import "math"

// Vector2 is a continuous map-space position or direction.
// Only used for geometry; never stored.
type Vector2 struct {
	X float64
	Y float64
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns the unit vector, or the zero vector for tiny inputs
func (v Vector2) Normalized() Vector2 {
	l := v.Len()
	if l < epsilon {
		return Vector2{}
	}
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// Cell floors each axis
func (v Vector2) Cell() Cell {
	return Cell{X: int(math.Floor(v.X)), Y: int(math.Floor(v.Y))}
}

// AngleDeg returns the unsigned angle between a and b in degrees (0..180).
// A zero-length input has no direction and yields 0.
func AngleDeg(a, b Vector2) float64 {
	denom := a.Len() * b.Len()
	if denom < epsilon {
		return 0
	}
	cos := a.Dot(b) / denom
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

// Lerp interpolates from a to b with t clamped to [0, 1]
func Lerp(a, b, t float64) float64 {
	if math.IsNaN(t) {
		t = 0
	}
	t = math.Max(0, math.Min(1, t))
	return a + (b-a)*t
}

const epsilon = 1e-9
