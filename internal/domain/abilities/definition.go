// Package abilities holds the data-driven definitions of area abilities:
// which shape they use, which payload they launch, and how caster
// attributes scale them.
package abilities

import (
	"github.com/KirkDiggler/aoe-targeting/internal/attributes"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/actor"
	tgterr "github.com/KirkDiggler/aoe-targeting/internal/errors"
	"github.com/KirkDiggler/aoe-targeting/internal/targeting"
)

// Shape is the area geometry an ability uses
type Shape string

const (
	ShapeSpray Shape = "spray"
	ShapeCone  Shape = "cone"
)

// PayloadDefinition is the effect unit launched into each affected cell
type PayloadDefinition struct {
	ID              targeting.PayloadID `json:"id" jsonschema:"title=Payload id,description=Effect unit spawned into each affected cell"`
	ExplosionRadius float64             `json:"explosionRadius,omitempty" jsonschema:"minimum=0,description=Splash radius in cells. Widens the spray preview and the AI safety area"`
}

// PayloadVariant replaces the base payload once the attribute reaches MinValue
type PayloadVariant struct {
	MinValue float64           `json:"minValue"`
	Payload  PayloadDefinition `json:"payload"`
}

// PayloadVariants picks a stronger payload from a caster attribute
type PayloadVariants struct {
	Attribute string           `json:"attribute,omitempty" jsonschema:"description=Caster attribute compared against the thresholds"`
	Variants  []PayloadVariant `json:"variants"`
}

// SprayDefinition holds the unscaled spray parameters
type SprayDefinition struct {
	RadiusToHit float64 `json:"radiusToHit" jsonschema:"minimum=0,description=Unscaled spray radius in cells"`
}

// Definition describes one area ability
type Definition struct {
	Key             string                   `json:"key" jsonschema:"title=Ability key,pattern=^[a-z0-9_\-]+$"`
	Name            string                   `json:"name,omitempty"`
	Description     string                   `json:"description,omitempty"`
	Shape           Shape                    `json:"shape" jsonschema:"enum=spray,enum=cone"`
	Payload         PayloadDefinition        `json:"payload"`
	PayloadVariants *PayloadVariants         `json:"payloadVariants,omitempty"`
	Scaling         []targeting.ScalingEntry `json:"scaling,omitempty"`
	Spray           *SprayDefinition         `json:"spray,omitempty"`
	Cone            *ConeDefinition          `json:"cone,omitempty"`
}

// SelectPayload returns the payload the caster launches. Without a variant
// table it is the base payload.
func (d *Definition) SelectPayload(caster *actor.Actor, source attributes.Source) PayloadDefinition {
	if d.PayloadVariants == nil || len(d.PayloadVariants.Variants) == 0 {
		return d.Payload
	}

	byID := make(map[targeting.PayloadID]PayloadDefinition, len(d.PayloadVariants.Variants))
	table := &targeting.VariantTable{
		Attribute:  d.PayloadVariants.Attribute,
		Thresholds: make([]targeting.VariantThreshold, 0, len(d.PayloadVariants.Variants)),
	}
	for _, v := range d.PayloadVariants.Variants {
		if _, ok := byID[v.Payload.ID]; !ok {
			byID[v.Payload.ID] = v.Payload
		}
		table.Thresholds = append(table.Thresholds, targeting.VariantThreshold{
			MinValue: v.MinValue,
			Payload:  v.Payload.ID,
		})
	}

	chosen := table.Select(caster, source, d.Payload.ID)
	if p, ok := byID[chosen]; ok {
		return p
	}
	return d.Payload
}

// Validate checks the definition is usable
func (d *Definition) Validate() error {
	if d.Key == "" {
		return tgterr.Validation("ability key is required")
	}

	invalid := func(format string, args ...any) error {
		return tgterr.Validationf(format, args...).WithMeta("ability", d.Key)
	}

	if d.Payload.ID == "" {
		return invalid("ability %s has no payload", d.Key)
	}
	if d.Payload.ExplosionRadius < 0 {
		return invalid("ability %s has a negative explosion radius", d.Key)
	}

	switch d.Shape {
	case ShapeSpray:
		if d.Spray == nil || d.Cone != nil {
			return invalid("spray ability %s needs spray parameters only", d.Key)
		}
		if d.Spray.RadiusToHit < 0 {
			return invalid("ability %s has a negative spray radius", d.Key)
		}
	case ShapeCone:
		if d.Cone == nil || d.Spray != nil {
			return invalid("cone ability %s needs cone parameters only", d.Key)
		}
		if err := d.Cone.validate(); err != nil {
			return invalid("ability %s: %v", d.Key, err)
		}
	default:
		return invalid("ability %s has unknown shape %q", d.Key, d.Shape)
	}

	for i, s := range d.Scaling {
		if s.Tag != targeting.TagAoE && s.Tag != targeting.TagMaxRange {
			return invalid("ability %s scaling entry %d has unknown tag %q", d.Key, i, s.Tag)
		}
		if s.Attribute == "" {
			return invalid("ability %s scaling entry %d has no attribute", d.Key, i)
		}
	}

	if d.PayloadVariants != nil {
		for i, v := range d.PayloadVariants.Variants {
			if v.Payload.ID == "" {
				return invalid("ability %s variant %d has no payload", d.Key, i)
			}
		}
	}

	return nil
}

// Clone returns a copy that shares no slices or pointers with d
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	out := *d
	if d.PayloadVariants != nil {
		pv := *d.PayloadVariants
		pv.Variants = append([]PayloadVariant(nil), d.PayloadVariants.Variants...)
		out.PayloadVariants = &pv
	}
	if d.Scaling != nil {
		out.Scaling = make([]targeting.ScalingEntry, len(d.Scaling))
		for i, s := range d.Scaling {
			s.Curve = append(s.Curve[:0:0], s.Curve...)
			out.Scaling[i] = s
		}
	}
	if d.Spray != nil {
		spray := *d.Spray
		out.Spray = &spray
	}
	if d.Cone != nil {
		cone := *d.Cone
		out.Cone = &cone
	}
	return &out
}
