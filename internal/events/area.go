package events

import (
	"github.com/KirkDiggler/aoe-targeting/internal/domain/grid"
)

// BeforeAreaCastEvent is emitted after the cells are known and before any
// payload is launched
type BeforeAreaCastEvent struct {
	BaseEvent
	CastID     string
	AbilityKey string
	Payload    string
	Cells      []grid.Cell
}

// OnPayloadLaunchedEvent asks the dispatcher to fire one payload from
// Origin into Cell
type OnPayloadLaunchedEvent struct {
	BaseEvent
	CastID     string
	AbilityKey string
	Payload    string
	Origin     grid.Cell
	Cell       grid.Cell
	// Index is the cell's position in the cast's cell order
	Index int
}

// AfterAreaCastEvent closes a cast
type AfterAreaCastEvent struct {
	BaseEvent
	CastID     string
	AbilityKey string
	Payload    string
	CellCount  int
}
