package targeting

import (
	"math"
	"sort"

	"github.com/KirkDiggler/aoe-targeting/internal/domain/actor"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/grid"
)

// SprayParams are the resolved parameters of a spray
type SprayParams struct {
	Radius int
}

type scoredCell struct {
	cell  grid.Cell
	score float64
}

// ComputeSprayCells returns the cells a spray aimed at target hits, in fan
// order: the primary cell first, then neighbours ranked by how well they
// line up with the caster-to-target direction.
func ComputeSprayCells(caster *actor.Actor, target TargetSpec, radius int) (CellSet, error) {
	if err := validateCaster(caster); err != nil {
		return nil, err
	}
	m := caster.Map

	candidates := []scoredCell{{cell: target.Primary, score: math.Inf(1)}}

	if radius > 0 {
		center := target.Primary.Center()
		aim := center.Sub(caster.Position.Center()).Normalized()

		for _, c := range m.RadialCellsAround(target.Primary, float64(radius), true) {
			if c == target.Primary {
				continue
			}
			spread := c.Center().Sub(center).Normalized()
			candidates = append(candidates, scoredCell{cell: c, score: spread.Dot(aim)})
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].score > candidates[j].score
		})
	}

	cells := make(CellSet, 0, len(candidates))
	for _, sc := range candidates {
		c := sc.cell
		if c == caster.Position {
			continue
		}
		if !m.InBounds(c) || m.IsOccupied(c) {
			continue
		}
		if !m.LineOfSight(caster.Position, c, true) {
			continue
		}
		cells = append(cells, c)
	}
	return cells, nil
}
