package ability

import (
	"github.com/KirkDiggler/aoe-targeting/internal/domain/abilities"
	tgterr "github.com/KirkDiggler/aoe-targeting/internal/errors"
	"github.com/KirkDiggler/aoe-targeting/internal/targeting"
)

type coneHandler struct{}

// NewConeHandler resolves cone abilities. MaxDistance is scaled by the
// MaxRange entries and truncated to whole cells; everything else is used
// as defined.
func NewConeHandler() Handler {
	return coneHandler{}
}

func (coneHandler) Key() string { return string(abilities.ShapeCone) }

func (coneHandler) AffectedCells(input *HandlerInput) (targeting.CellSet, error) {
	cone := input.Definition.Cone
	if cone == nil {
		return nil, tgterr.InvalidArgumentf("ability %s has no cone parameters", input.Definition.Key)
	}

	maxDistance := int(input.scale(cone.MaxDistance, targeting.TagMaxRange))
	return targeting.ComputeConeCells(input.Caster, input.Target, cone.Params(float64(maxDistance)))
}

func (h coneHandler) PreviewCells(input *HandlerInput) (targeting.CellSet, error) {
	return h.AffectedCells(input)
}
