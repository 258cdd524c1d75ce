package testutils

import (
	"github.com/KirkDiggler/aoe-targeting/internal/attributes"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/abilities"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/actor"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/curve"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/grid"
	"github.com/KirkDiggler/aoe-targeting/internal/targeting"
)

// CreateTestSprayDefinition creates a spray ability whose radius grows with
// PsychicSensitivity and whose payload upgrades at 3
func CreateTestSprayDefinition(key string) *abilities.Definition {
	return &abilities.Definition{
		Key:     key,
		Name:    "Test Spray",
		Shape:   abilities.ShapeSpray,
		Payload: abilities.PayloadDefinition{ID: "glob", ExplosionRadius: 1.5},
		PayloadVariants: &abilities.PayloadVariants{
			Attribute: "PsychicSensitivity",
			Variants: []abilities.PayloadVariant{
				{MinValue: 3, Payload: abilities.PayloadDefinition{ID: "glob_strong", ExplosionRadius: 2}},
			},
		},
		Scaling: []targeting.ScalingEntry{
			{
				Attribute: "PsychicSensitivity",
				Curve:     curve.New(curve.Point{X: 0, Y: 0}, curve.Point{X: 4, Y: 2}),
				Tag:       targeting.TagAoE,
				Additive:  true,
			},
		},
		Spray: &abilities.SprayDefinition{RadiusToHit: 1},
	}
}

// CreateTestConeDefinition creates a cone ability with the default cone
// parameters and a MaxRange scaling entry
func CreateTestConeDefinition(key string) *abilities.Definition {
	cone := abilities.DefaultCone()
	return &abilities.Definition{
		Key:     key,
		Name:    "Test Cone",
		Shape:   abilities.ShapeCone,
		Payload: abilities.PayloadDefinition{ID: "flame"},
		Scaling: []targeting.ScalingEntry{
			{
				Attribute: "MeleeDamageFactor",
				Curve:     curve.New(curve.Point{X: 0, Y: 0}, curve.Point{X: 2, Y: 1}),
				Tag:       targeting.TagMaxRange,
			},
		},
		Cone: &cone,
	}
}

// CreateTestArena creates an empty width x height map
func CreateTestArena(width, height int) *grid.MemoryMap {
	return grid.NewMemoryMap(width, height)
}

// CreateTestActor creates an actor and places it on m
func CreateTestActor(m *grid.MemoryMap, id, faction string, pos grid.Cell) *actor.Actor {
	a := &actor.Actor{
		ID:       id,
		Name:     id,
		Position: pos,
		Faction:  faction,
		Map:      m,
	}
	m.Place(pos, a.Occupant())
	return a
}

// CreateTestAttributes creates a source holding values for one actor
func CreateTestAttributes(actorID string, values map[string]float64) *attributes.StaticSource {
	source := attributes.NewStaticSource()
	source.SetAll(actorID, values)
	return source
}
