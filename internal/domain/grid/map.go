package grid

// Occupant is anything standing in a cell that the safety check cares about
type Occupant struct {
	ID      string
	Faction string
}

// Map is the world model the targeting engine reads from.
// Implementations must be safe for concurrent reads.
type Map interface {
	// InBounds reports whether c lies on the map
	InBounds(c Cell) bool

	// IsOccupied reports whether c is filled by an impassable structure
	IsOccupied(c Cell) bool

	// LineOfSight reports whether to is visible from from.
	// skipFirstCell ignores whatever stands on from itself.
	LineOfSight(from, to Cell, skipFirstCell bool) bool

	// RadialCellsAround returns cells within radius of center, nearest first
	RadialCellsAround(center Cell, radius float64, includeCenter bool) []Cell

	// DistanceBetween is the euclidean distance between cell centres
	DistanceBetween(a, b Cell) float64

	// OccupantsAt lists whoever stands in c
	OccupantsAt(c Cell) []Occupant
}
