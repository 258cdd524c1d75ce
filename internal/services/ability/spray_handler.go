package ability

import (
	"math"

	"github.com/KirkDiggler/aoe-targeting/internal/domain/abilities"
	tgterr "github.com/KirkDiggler/aoe-targeting/internal/errors"
	"github.com/KirkDiggler/aoe-targeting/internal/targeting"
)

type sprayHandler struct{}

// NewSprayHandler resolves spray abilities. The radius is RadiusToHit scaled
// by the AoE entries, truncated to whole cells.
func NewSprayHandler() Handler {
	return sprayHandler{}
}

func (sprayHandler) Key() string { return string(abilities.ShapeSpray) }

func (h sprayHandler) radius(input *HandlerInput) (int, error) {
	if input.Definition.Spray == nil {
		return 0, tgterr.InvalidArgumentf("ability %s has no spray parameters", input.Definition.Key)
	}
	return int(input.scale(input.Definition.Spray.RadiusToHit, targeting.TagAoE)), nil
}

func (h sprayHandler) AffectedCells(input *HandlerInput) (targeting.CellSet, error) {
	radius, err := h.radius(input)
	if err != nil {
		return nil, err
	}
	return targeting.ComputeSprayCells(input.Caster, input.Target, radius)
}

// PreviewCells widens the spray by the payload's splash so the highlight
// covers everything the globs can reach
func (h sprayHandler) PreviewCells(input *HandlerInput) (targeting.CellSet, error) {
	radius, err := h.radius(input)
	if err != nil {
		return nil, err
	}
	if input.Payload.ExplosionRadius > 0 {
		radius += int(math.Floor(input.Payload.ExplosionRadius))
	}
	return targeting.ComputeSprayCells(input.Caster, input.Target, radius)
}
