package targeting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/aoe-targeting/internal/attributes"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/actor"
)

func TestSelectPayload(t *testing.T) {
	table := []VariantThreshold{
		{MinValue: 0, Payload: "A"},
		{MinValue: 5, Payload: "B"},
		{MinValue: 10, Payload: "C"},
	}

	tests := []struct {
		value float64
		want  PayloadID
	}{
		{value: -1, want: "D"},
		{value: 0, want: "A"},
		{value: 4.9, want: "A"},
		{value: 5, want: "B"},
		{value: 9.99, want: "B"},
		{value: 10, want: "C"},
		{value: 12, want: "C"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SelectPayload(tt.value, table, "D"), "value %v", tt.value)
	}
}

func TestSelectPayload_OrderDoesNotMatter(t *testing.T) {
	table := []VariantThreshold{
		{MinValue: 10, Payload: "C"},
		{MinValue: 0, Payload: "A"},
		{MinValue: 5, Payload: "B"},
	}

	assert.Equal(t, PayloadID("B"), SelectPayload(7, table, "D"))
	assert.Equal(t, PayloadID("C"), SelectPayload(10, table, "D"))
}

func TestSelectPayload_EmptyTable(t *testing.T) {
	assert.Equal(t, PayloadID("D"), SelectPayload(100, nil, "D"))
	assert.Equal(t, PayloadID("D"), SelectPayload(100, []VariantThreshold{}, "D"))
}

func TestSelectPayload_TieGoesToFirstDeclared(t *testing.T) {
	table := []VariantThreshold{
		{MinValue: 0, Payload: "A"},
		{MinValue: 5, Payload: "first"},
		{MinValue: 5, Payload: "second"},
	}

	for i := 0; i < 5; i++ {
		assert.Equal(t, PayloadID("first"), SelectPayload(6, table, "D"))
	}
}

func TestVariantTable_Select(t *testing.T) {
	caster := &actor.Actor{ID: "caster"}
	source := attributes.NewStaticSource()
	source.Set("caster", "PsychicSensitivity", 7)

	thresholds := []VariantThreshold{
		{MinValue: 0.5, Payload: "weak"},
		{MinValue: 2, Payload: "strong"},
		{MinValue: 6, Payload: "brutal"},
	}

	t.Run("driven by the caster attribute", func(t *testing.T) {
		table := &VariantTable{Attribute: "PsychicSensitivity", Thresholds: thresholds}
		assert.Equal(t, PayloadID("brutal"), table.Select(caster, source, "base"))
	})

	t.Run("no attribute means a value of 1", func(t *testing.T) {
		table := &VariantTable{Thresholds: thresholds}
		assert.Equal(t, 1.0, table.Value(caster, source))
		assert.Equal(t, PayloadID("weak"), table.Select(caster, source, "base"))
	})

	t.Run("unresolvable attribute means a value of 1", func(t *testing.T) {
		table := &VariantTable{Attribute: "NoSuchStat", Thresholds: thresholds}
		assert.Equal(t, PayloadID("weak"), table.Select(caster, source, "base"))
	})

	t.Run("nil table falls back", func(t *testing.T) {
		var table *VariantTable
		assert.Equal(t, PayloadID("base"), table.Select(caster, source, "base"))
	})

	t.Run("nothing qualifies falls back", func(t *testing.T) {
		table := &VariantTable{Thresholds: []VariantThreshold{{MinValue: 3, Payload: "strong"}}}
		assert.Equal(t, PayloadID("base"), table.Select(caster, source, "base"))
	})
}
