package ability

import (
	"github.com/KirkDiggler/aoe-targeting/internal/attributes"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/abilities"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/actor"
	"github.com/KirkDiggler/aoe-targeting/internal/targeting"
)

// Handler turns a definition of one shape into cells
type Handler interface {
	// Key returns the shape this handler resolves (e.g., "spray", "cone")
	Key() string

	// AffectedCells returns the cells the payloads are launched into
	AffectedCells(input *HandlerInput) (targeting.CellSet, error)

	// PreviewCells returns the cells shown while aiming. The AI safety
	// check inspects the same cells.
	PreviewCells(input *HandlerInput) (targeting.CellSet, error)
}

// HandlerInput contains what a handler needs to resolve one use
type HandlerInput struct {
	Definition *abilities.Definition
	Caster     *actor.Actor
	Target     targeting.TargetSpec
	// Payload is the variant already selected for the caster
	Payload    abilities.PayloadDefinition
	Attributes attributes.Source
}

func (in *HandlerInput) scale(base float64, tag string) float64 {
	return targeting.ScaleParameter(base, tag, in.Definition.Scaling, in.Caster, in.Attributes)
}
