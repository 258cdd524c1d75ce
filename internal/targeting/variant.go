package targeting

import (
	"github.com/KirkDiggler/aoe-targeting/internal/attributes"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/actor"
)

// neutralAttributeValue stands in for an attribute that is not configured
// or cannot be resolved
const neutralAttributeValue = 1.0

// VariantThreshold selects Payload once the attribute reaches MinValue
type VariantThreshold struct {
	MinValue float64   `json:"minValue"`
	Payload  PayloadID `json:"payload"`
}

// SelectPayload picks the entry with the greatest MinValue not above value.
// Of entries sharing a MinValue the first declared wins. fallback is
// returned when nothing qualifies.
func SelectPayload(value float64, table []VariantThreshold, fallback PayloadID) PayloadID {
	var best *VariantThreshold
	for i := range table {
		entry := &table[i]
		if entry.MinValue > value {
			continue
		}
		if best == nil || best.MinValue < entry.MinValue {
			best = entry
		}
	}
	if best == nil {
		return fallback
	}
	return best.Payload
}

// VariantTable is a threshold table driven by one caster attribute
type VariantTable struct {
	Attribute  string             `json:"attribute,omitempty"`
	Thresholds []VariantThreshold `json:"thresholds"`
}

// Value returns the caster's driving attribute value, or 1 when the table
// names no attribute or the lookup fails
func (t *VariantTable) Value(caster *actor.Actor, source attributes.Source) float64 {
	if t == nil || t.Attribute == "" || caster == nil || source == nil {
		return neutralAttributeValue
	}
	v, ok := source.AttributeValue(caster.ID, t.Attribute)
	if !ok {
		return neutralAttributeValue
	}
	return v
}

// Select resolves the payload for caster. A nil table yields fallback.
func (t *VariantTable) Select(caster *actor.Actor, source attributes.Source, fallback PayloadID) PayloadID {
	if t == nil {
		return fallback
	}
	return SelectPayload(t.Value(caster, source), t.Thresholds, fallback)
}
