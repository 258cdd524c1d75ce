package targeting

import (
	"github.com/KirkDiggler/aoe-targeting/internal/domain/actor"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/grid"
)

// ConeParams are the resolved parameters of a cone. Distances are in cells,
// angles are full cone widths in degrees.
type ConeParams struct {
	MaxDistance           float64
	MinDistance           float64
	MaxAngle              float64
	MinAngle              float64
	MaxConeLength         float64
	MinRadiusAroundTarget float64
	// WidthDistance is the range at which the width reaches MinAngle,
	// normally the unscaled MaxDistance. Zero means MaxDistance.
	WidthDistance float64

	// ClampBelowMinDistance makes the close-target clamp fire when the target
	// is nearer than MinDistance. By default it fires when the target is
	// nearer than MaxDistance, which is the long-standing behaviour.
	// TODO: drop the flag and pick one trigger once design confirms which
	// minimum range cones are meant to have.
	ClampBelowMinDistance bool
}

// ComputeConeCells returns the cells a cone from the caster towards target
// hits, plus a disc of MinRadiusAroundTarget around the target. The result
// has no duplicates; its order carries no meaning.
func ComputeConeCells(caster *actor.Actor, target TargetSpec, p ConeParams) (CellSet, error) {
	if err := validateCaster(caster); err != nil {
		return nil, err
	}
	m := caster.Map

	start := caster.Position.Center()
	originalStart := start
	aim := target.Primary.Center()

	clampBelow := p.MaxDistance
	if p.ClampBelowMinDistance {
		clampBelow = p.MinDistance
	}
	if aim.Sub(start).Len() < clampBelow {
		aim = start.Add(aim.Sub(start).Normalized().Scale(p.MinDistance))
	}

	if aim.Sub(start).Len() > p.MaxConeLength {
		start = aim.Sub(aim.Sub(start).Normalized().Scale(p.MaxConeLength))
	}

	axis := aim.Sub(start)
	reach := axis.Len()

	widthDistance := p.WidthDistance
	if widthDistance <= 0 {
		widthDistance = p.MaxDistance
	}
	fraction := 1.0
	if widthDistance > 0 {
		fraction = aim.Sub(originalStart).Len() / widthDistance
	}
	halfAngle := grid.Lerp(p.MaxAngle, p.MinAngle, fraction) / 2

	origin := start.Cell()
	seen := make(map[grid.Cell]struct{})
	var cells CellSet
	add := func(c grid.Cell) {
		if _, dup := seen[c]; dup {
			return
		}
		seen[c] = struct{}{}
		cells = append(cells, c)
	}

	for _, c := range m.RadialCellsAround(origin, reach, true) {
		if c == caster.Position || !m.InBounds(c) {
			continue
		}
		if grid.AngleDeg(c.Center().Sub(start), axis) > halfAngle {
			continue
		}
		if !m.LineOfSight(origin, c, true) {
			continue
		}
		add(c)
	}

	for _, c := range m.RadialCellsAround(target.Primary, p.MinRadiusAroundTarget, true) {
		if c == caster.Position || !m.InBounds(c) {
			continue
		}
		if !m.LineOfSight(target.Primary, c, true) {
			continue
		}
		add(c)
	}

	return cells, nil
}
