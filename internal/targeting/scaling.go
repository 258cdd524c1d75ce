package targeting

import (
	"github.com/KirkDiggler/aoe-targeting/internal/attributes"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/actor"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/curve"
)

// ScalingEntry feeds one attribute through a response curve into the
// parameter named by Tag. Additive entries shift the base value,
// the others add to a factor that starts at 1.
type ScalingEntry struct {
	Attribute string      `json:"attribute" jsonschema:"description=Attribute looked up on the caster"`
	Curve     curve.Curve `json:"curve" jsonschema:"description=Response curve from attribute value to contribution"`
	Tag       string      `json:"tag" jsonschema:"enum=AoE,enum=MaxRange,description=Parameter this entry scales"`
	Additive  bool        `json:"additive,omitempty" jsonschema:"description=Add to the base value instead of the factor"`
}

// ScaleParameter returns (base + offsets) * (1 + factors) over the entries
// tagged tag. Entries whose attribute cannot be resolved contribute nothing.
func ScaleParameter(base float64, tag string, entries []ScalingEntry, caster *actor.Actor, source attributes.Source) float64 {
	if caster == nil || source == nil {
		return base
	}

	offset := base
	factor := 1.0
	for _, e := range entries {
		if e.Tag != tag {
			continue
		}
		v, ok := source.AttributeValue(caster.ID, e.Attribute)
		if !ok {
			continue
		}
		if e.Additive {
			offset += e.Curve.Evaluate(v)
		} else {
			factor += e.Curve.Evaluate(v)
		}
	}
	return offset * factor
}
