// Package targeting computes which grid cells an area-effect action
// touches. Every function here is synchronous and keeps its working slices
// local to the call, so concurrent calls for different casters are safe.
package targeting

import (
	"github.com/KirkDiggler/aoe-targeting/internal/domain/actor"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/grid"
	tgterr "github.com/KirkDiggler/aoe-targeting/internal/errors"
)

// PayloadID names the effect unit spawned into each affected cell
type PayloadID string

// Tags select which scaled parameter a ScalingEntry feeds
const (
	TagAoE      = "AoE"
	TagMaxRange = "MaxRange"
)

// TargetSpec is what the caster designated
type TargetSpec struct {
	Primary   grid.Cell  `json:"primary"`
	Secondary *grid.Cell `json:"secondary,omitempty"`
}

// CellSet is an ordered list of distinct cells, built fresh per call
type CellSet []grid.Cell

// Contains reports whether c is in the set
func (s CellSet) Contains(c grid.Cell) bool {
	for _, x := range s {
		if x == c {
			return true
		}
	}
	return false
}

func validateCaster(caster *actor.Actor) error {
	if caster == nil {
		return tgterr.InvalidArgument("caster is required")
	}
	if caster.Map == nil {
		return tgterr.InvalidArgumentf("caster %s has no map", caster.ID).WithMeta("caster_id", caster.ID)
	}
	return nil
}
