package targeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/aoe-targeting/internal/domain/grid"
	tgterr "github.com/KirkDiggler/aoe-targeting/internal/errors"
)

func TestComputeAffectedCells(t *testing.T) {
	m := grid.NewMemoryMap(21, 21)
	caster := newCaster(m, grid.Cell{X: 10, Y: 10})
	target := at(grid.Cell{X: 10, Y: 15})
	cone := wideCone()

	t.Run("spray", func(t *testing.T) {
		got, err := ComputeAffectedCells(&Request{Caster: caster, Target: target, Spray: &SprayParams{Radius: 1}})
		require.NoError(t, err)

		want, err := ComputeSprayCells(caster, target, 1)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("cone", func(t *testing.T) {
		got, err := ComputeAffectedCells(&Request{Caster: caster, Target: target, Cone: &cone})
		require.NoError(t, err)

		want, err := ComputeConeCells(caster, target, cone)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestComputeAffectedCells_Invalid(t *testing.T) {
	m := grid.NewMemoryMap(5, 5)
	caster := newCaster(m, grid.Cell{X: 1, Y: 1})
	cone := wideCone()

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "nil request", req: nil},
		{name: "no shape", req: &Request{Caster: caster}},
		{name: "both shapes", req: &Request{Caster: caster, Spray: &SprayParams{}, Cone: &cone}},
		{name: "no caster", req: &Request{Spray: &SprayParams{Radius: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells, err := ComputeAffectedCells(tt.req)
			assert.Nil(t, cells)
			assert.True(t, tgterr.IsInvalidArgument(err))
		})
	}
}
