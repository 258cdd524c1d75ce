package grid

import (
	"math"
	"sort"
	"sync"
)

// MemoryMap is a bounded in-memory Map. Walls fill their cell and block
// sight. It backs the CLI scenarios and the tests.
type MemoryMap struct {
	mu        sync.RWMutex
	width     int
	height    int
	walls     map[Cell]struct{}
	occupants map[Cell][]Occupant
}

// NewMemoryMap creates an empty width x height map with (0,0) in a corner
func NewMemoryMap(width, height int) *MemoryMap {
	return &MemoryMap{
		width:     max(width, 0),
		height:    max(height, 0),
		walls:     make(map[Cell]struct{}),
		occupants: make(map[Cell][]Occupant),
	}
}

func (m *MemoryMap) Width() int  { return m.width }
func (m *MemoryMap) Height() int { return m.height }

// SetWall fills c. Out of bounds cells are ignored.
func (m *MemoryMap) SetWall(c Cell) {
	if !m.InBounds(c) {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.walls[c] = struct{}{}
}

// ClearWall removes a wall from c
func (m *MemoryMap) ClearWall(c Cell) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.walls, c)
}

// Place puts an occupant in c, moving it if it already stands elsewhere
func (m *MemoryMap) Place(c Cell, o Occupant) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(o.ID)
	m.occupants[c] = append(m.occupants[c], o)
}

// Remove takes the occupant with the given id off the map
func (m *MemoryMap) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(id)
}

func (m *MemoryMap) removeLocked(id string) {
	for c, list := range m.occupants {
		for i, o := range list {
			if o.ID != id {
				continue
			}
			list = append(list[:i], list[i+1:]...)
			if len(list) == 0 {
				delete(m.occupants, c)
			} else {
				m.occupants[c] = list
			}
			return
		}
	}
}

func (m *MemoryMap) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < m.width && c.Y < m.height
}

func (m *MemoryMap) IsOccupied(c Cell) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, wall := m.walls[c]
	return wall
}

func (m *MemoryMap) blocksSight(c Cell) bool {
	if !m.InBounds(c) {
		return true
	}
	_, wall := m.walls[c]
	return wall
}

// LineOfSight walks the Bresenham line from from to to. Every walked cell
// before the destination must be see-through; the destination itself is
// not tested.
func (m *MemoryMap) LineOfSight(from, to Cell, skipFirstCell bool) bool {
	if !m.InBounds(to) {
		return false
	}
	if from == to {
		return true
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	dx := abs(to.X - from.X)
	dy := -abs(to.Y - from.Y)
	sx, sy := 1, 1
	if from.X > to.X {
		sx = -1
	}
	if from.Y > to.Y {
		sy = -1
	}
	e := dx + dy

	p := from
	for p != to {
		if !(skipFirstCell && p == from) && m.blocksSight(p) {
			return false
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			p.X += sx
		}
		if e2 <= dx {
			e += dx
			p.Y += sy
		}
	}
	return true
}

// RadialCellsAround returns the in-bounds cells whose offset from center is
// at most radius, ordered by distance then Y then X.
func (m *MemoryMap) RadialCellsAround(center Cell, radius float64, includeCenter bool) []Cell {
	if radius < 0 || math.IsNaN(radius) || m.width == 0 || m.height == 0 {
		return nil
	}

	minX := clampIndex(float64(center.X)-radius, m.width)
	maxX := clampIndex(float64(center.X)+radius, m.width)
	minY := clampIndex(float64(center.Y)-radius, m.height)
	maxY := clampIndex(float64(center.Y)+radius, m.height)
	r2 := radius * radius

	var cells []Cell
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			c := Cell{X: x, Y: y}
			if c == center && !includeCenter {
				continue
			}
			if float64(c.Sub(center).LengthSquared()) > r2 {
				continue
			}
			cells = append(cells, c)
		}
	}

	sort.SliceStable(cells, func(i, j int) bool {
		di, dj := cells[i].Sub(center).LengthSquared(), cells[j].Sub(center).LengthSquared()
		if di != dj {
			return di < dj
		}
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

func (m *MemoryMap) DistanceBetween(a, b Cell) float64 {
	return a.Center().Sub(b.Center()).Len()
}

func (m *MemoryMap) OccupantsAt(c Cell) []Occupant {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := m.occupants[c]
	if len(list) == 0 {
		return nil
	}
	out := make([]Occupant, len(list))
	copy(out, list)
	return out
}

// clampIndex floors v into [0, size-1]
func clampIndex(v float64, size int) int {
	if v <= 0 {
		return 0
	}
	if v >= float64(size-1) {
		return size - 1
	}
	return int(math.Floor(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
