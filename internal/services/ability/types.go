package ability

import (
	"context"

	"github.com/KirkDiggler/aoe-targeting/internal/domain/abilities"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/actor"
	"github.com/KirkDiggler/aoe-targeting/internal/targeting"
)

// Service resolves area abilities against the map: which cells they hit,
// whether an AI may safely use them, and launching their payloads
type Service interface {
	// RegisterHandler adds or replaces the handler for a shape
	RegisterHandler(handler Handler)

	// PreviewCells returns the cells to highlight while the caster aims
	PreviewCells(ctx context.Context, input *AreaInput) (*PreviewResult, error)

	// Cast computes the affected cells and launches one payload into each
	Cast(ctx context.Context, input *AreaInput) (*CastResult, error)

	// CanAITarget reports whether the caster may use the ability at the
	// target without catching its own faction
	CanAITarget(ctx context.Context, input *AreaInput) (bool, error)

	// EvaluateAITargets runs CanAITarget for many inputs concurrently.
	// Results are in input order.
	EvaluateAITargets(ctx context.Context, inputs []*AreaInput) ([]bool, error)
}

// AreaInput names an ability, who casts it and where
type AreaInput struct {
	AbilityKey string
	Caster     *actor.Actor
	Target     targeting.TargetSpec
}

// PreviewResult contains the cells to draw for an aimed ability
type PreviewResult struct {
	AbilityKey string
	Payload    abilities.PayloadDefinition
	Cells      targeting.CellSet
}

// CastResult contains the outcome of a cast
type CastResult struct {
	CastID     string
	AbilityKey string
	Payload    abilities.PayloadDefinition
	Cells      targeting.CellSet
	// Launched counts payload events delivered to the dispatcher
	Launched int
}
