package targeting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/aoe-targeting/internal/domain/grid"
)

func TestIsSafeForAI(t *testing.T) {
	m := grid.NewMemoryMap(10, 10)
	m.Place(grid.Cell{X: 2, Y: 2}, grid.Occupant{ID: "ally", Faction: "guild"})
	m.Place(grid.Cell{X: 4, Y: 4}, grid.Occupant{ID: "goblin", Faction: "horde"})
	m.Place(grid.Cell{X: 6, Y: 6}, grid.Occupant{ID: "rat"})

	tests := []struct {
		name    string
		cells   CellSet
		faction string
		want    bool
	}{
		{name: "only enemies", cells: CellSet{{X: 4, Y: 4}, {X: 5, Y: 5}}, faction: "guild", want: true},
		{name: "an ally in the area", cells: CellSet{{X: 4, Y: 4}, {X: 2, Y: 2}}, faction: "guild", want: false},
		{name: "unaligned occupants do not count", cells: CellSet{{X: 6, Y: 6}}, faction: "guild", want: true},
		{name: "empty area", cells: nil, faction: "guild", want: true},
		{name: "caster without a faction", cells: CellSet{{X: 2, Y: 2}, {X: 6, Y: 6}}, faction: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSafeForAI(m, tt.cells, tt.faction))
		})
	}
}

func TestIsSafeForAI_NoMap(t *testing.T) {
	assert.True(t, IsSafeForAI(nil, CellSet{{X: 1, Y: 1}}, "guild"))
}
