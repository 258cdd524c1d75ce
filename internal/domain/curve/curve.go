// Package curve implements the piecewise-linear response curves that map an
// attribute value to a scaling contribution.
package curve

import (
	"encoding/json"
	"sort"
)

// Point is one control point of a curve
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curve is a list of control points. Between points the curve is linear;
// outside them it holds the nearest end value. Points may be in any order.
type Curve []Point

// New builds a curve from points given in any order
func New(points ...Point) Curve {
	c := make(Curve, len(points))
	copy(c, points)
	c.sort()
	return c
}

func (c Curve) sort() {
	sort.SliceStable(c, func(i, j int) bool { return c[i].X < c[j].X })
}

func (c Curve) sorted() bool {
	return sort.SliceIsSorted(c, func(i, j int) bool { return c[i].X < c[j].X })
}

// UnmarshalJSON accepts points in any order
func (c *Curve) UnmarshalJSON(data []byte) error {
	var points []Point
	if err := json.Unmarshal(data, &points); err != nil {
		return err
	}
	*c = New(points...)
	return nil
}

// Evaluate returns the curve's value at x. An empty curve is 0 everywhere.
func (c Curve) Evaluate(x float64) float64 {
	if len(c) == 0 {
		return 0
	}
	// unsorted literals are evaluated on a sorted copy
	if !c.sorted() {
		c = New(c...)
	}
	if x <= c[0].X {
		return c[0].Y
	}
	last := c[len(c)-1]
	if x >= last.X {
		return last.Y
	}

	for i := 1; i < len(c); i++ {
		hi := c[i]
		if x > hi.X {
			continue
		}
		lo := c[i-1]
		if hi.X == lo.X {
			return hi.Y
		}
		t := (x - lo.X) / (hi.X - lo.X)
		return lo.Y + (hi.Y-lo.Y)*t
	}
	return last.Y
}
