package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2_Normalized(t *testing.T) {
	n := Vector2{X: 3, Y: 4}.Normalized()
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)

	assert.Equal(t, Vector2{}, Vector2{}.Normalized(), "zero vector stays zero")
}

func TestAngleDeg(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector2
		want float64
	}{
		{name: "same direction", a: Vector2{1, 0}, b: Vector2{5, 0}, want: 0},
		{name: "perpendicular", a: Vector2{1, 0}, b: Vector2{0, 2}, want: 90},
		{name: "opposite", a: Vector2{1, 0}, b: Vector2{-1, 0}, want: 180},
		{name: "diagonal", a: Vector2{1, 0}, b: Vector2{1, 1}, want: 45},
		{name: "zero input", a: Vector2{}, b: Vector2{1, 1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleDeg(tt.a, tt.b)
			assert.False(t, math.IsNaN(got))
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestLerp_Clamps(t *testing.T) {
	assert.Equal(t, 90.0, Lerp(90, 30, -1))
	assert.Equal(t, 60.0, Lerp(90, 30, 0.5))
	assert.Equal(t, 30.0, Lerp(90, 30, 3))
	assert.Equal(t, 90.0, Lerp(90, 30, math.NaN()))
}

func TestCell_CenterRoundTrip(t *testing.T) {
	c := Cell{X: -2, Y: 7}
	assert.Equal(t, Vector2{X: -1.5, Y: 7.5}, c.Center())
	assert.Equal(t, c, c.Center().Cell())
	assert.Equal(t, "(-2, 7)", c.String())
}
