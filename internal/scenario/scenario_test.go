package scenario

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/aoe-targeting/internal/domain/grid"
	tgterr "github.com/KirkDiggler/aoe-targeting/internal/errors"
)

const ambush = `{
  "name": "test",
  "width": 10,
  "height": 8,
  "walls": [{"x": 4, "y": 4}],
  "actors": [
    {"id": "wolf", "faction": "pack", "position": {"x": 1, "y": 1}, "attributes": {"PsychicSensitivity": 2}},
    {"id": "alpha", "name": "Alpha", "faction": "pack", "position": {"x": 2, "y": 1}},
    {"id": "deer", "position": {"x": 7, "y": 6}}
  ]
}`

func TestBuild(t *testing.T) {
	s, err := Decode(strings.NewReader(ambush))
	require.NoError(t, err)

	world, err := s.Build()
	require.NoError(t, err)

	assert.Equal(t, 10, world.Map.Width())
	assert.Equal(t, 8, world.Map.Height())
	assert.True(t, world.Map.IsOccupied(grid.Cell{X: 4, Y: 4}))

	wolf, err := world.Actor("wolf")
	require.NoError(t, err)
	assert.Equal(t, "wolf", wolf.Name)
	assert.Equal(t, "pack", wolf.Faction)
	assert.Equal(t, grid.Cell{X: 1, Y: 1}, wolf.Position)
	assert.Same(t, world.Map, wolf.Map)
	assert.Equal(t, []grid.Occupant{{ID: "wolf", Faction: "pack"}}, world.Map.OccupantsAt(wolf.Position))

	v, ok := world.Attributes.AttributeValue("wolf", "PsychicSensitivity")
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)

	_, ok = world.Attributes.AttributeValue("deer", "PsychicSensitivity")
	assert.False(t, ok)

	alpha, err := world.Actor("alpha")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", alpha.Name)

	deer, err := world.Actor("deer")
	require.NoError(t, err)
	assert.False(t, deer.HasFaction())

	ids := make([]string, 0, 3)
	for _, a := range world.Actors() {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"alpha", "deer", "wolf"}, ids)
}

func TestWorld_ActorNotFound(t *testing.T) {
	world, err := (&Scenario{Width: 2, Height: 2}).Build()
	require.NoError(t, err)

	_, err = world.Actor("ghost")
	assert.True(t, tgterr.IsNotFound(err))
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name     string
		scenario Scenario
	}{
		{
			name:     "zero size",
			scenario: Scenario{Width: 0, Height: 5},
		},
		{
			name:     "wall off map",
			scenario: Scenario{Width: 5, Height: 5, Walls: []grid.Cell{{X: 5, Y: 0}}},
		},
		{
			name:     "missing actor id",
			scenario: Scenario{Width: 5, Height: 5, Actors: []ActorSpec{{Position: grid.Cell{X: 1, Y: 1}}}},
		},
		{
			name: "duplicate actor id",
			scenario: Scenario{Width: 5, Height: 5, Actors: []ActorSpec{
				{ID: "a", Position: grid.Cell{X: 1, Y: 1}},
				{ID: "a", Position: grid.Cell{X: 2, Y: 1}},
			}},
		},
		{
			name:     "actor off map",
			scenario: Scenario{Width: 5, Height: 5, Actors: []ActorSpec{{ID: "a", Position: grid.Cell{X: -1, Y: 1}}}},
		},
		{
			name: "actor inside wall",
			scenario: Scenario{
				Width:  5,
				Height: 5,
				Walls:  []grid.Cell{{X: 2, Y: 2}},
				Actors: []ActorSpec{{ID: "a", Position: grid.Cell{X: 2, Y: 2}}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.scenario.Build()
			assert.True(t, tgterr.IsValidation(err), "got %v", err)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"width": "wide"}`))
	assert.True(t, tgterr.IsInvalidArgument(err))
}

func TestLoadFile_SampleScenario(t *testing.T) {
	s, err := LoadFile("../../configs/scenarios/ambush.json")
	require.NoError(t, err)

	world, err := s.Build()
	require.NoError(t, err)
	assert.Len(t, world.Actors(), 5)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("does-not-exist.json")
	assert.Error(t, err)
}
