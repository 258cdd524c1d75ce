package targeting

import (
	"github.com/KirkDiggler/aoe-targeting/internal/domain/actor"
	tgterr "github.com/KirkDiggler/aoe-targeting/internal/errors"
)

// Request describes one area computation. Exactly one of Spray and Cone
// must be set.
type Request struct {
	Caster *actor.Actor
	Target TargetSpec
	Spray  *SprayParams
	Cone   *ConeParams
}

// ComputeAffectedCells runs the spray or cone geometry for req
func ComputeAffectedCells(req *Request) (CellSet, error) {
	if req == nil {
		return nil, tgterr.InvalidArgument("request is required")
	}

	switch {
	case req.Spray != nil && req.Cone != nil:
		return nil, tgterr.InvalidArgument("request must describe either a spray or a cone, not both")
	case req.Spray != nil:
		return ComputeSprayCells(req.Caster, req.Target, req.Spray.Radius)
	case req.Cone != nil:
		return ComputeConeCells(req.Caster, req.Target, *req.Cone)
	default:
		return nil, tgterr.InvalidArgument("request has no area shape")
	}
}
