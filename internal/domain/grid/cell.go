package grid

import "fmt"

// Cell is an integer grid coordinate. Vertical position is not modelled.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Center returns the continuous position of the cell's centre
func (c Cell) Center() Vector2 {
	return Vector2{X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5}
}

// Sub returns the integer offset from o to c
func (c Cell) Sub(o Cell) Cell {
	return Cell{X: c.X - o.X, Y: c.Y - o.Y}
}

// LengthSquared is the squared euclidean length of c treated as an offset
func (c Cell) LengthSquared() int {
	return c.X*c.X + c.Y*c.Y
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
