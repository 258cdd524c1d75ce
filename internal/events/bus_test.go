package events_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/aoe-targeting/internal/domain/actor"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/grid"
	"github.com/KirkDiggler/aoe-targeting/internal/events"
)

func TestEventBus_PayloadLaunchFlow(t *testing.T) {
	bus := events.NewBus()
	caster := &actor.Actor{ID: "nightmare", Position: grid.Cell{X: 1, Y: 1}}

	var launched []grid.Cell
	bus.Subscribe(events.EventTypeOnPayloadLaunched, &events.ListenerFunc{
		ListenerID:       "dispatcher",
		ListenerPriority: events.PriorityDispatch,
		Handle: func(e events.Event) error {
			launch, ok := e.(*events.OnPayloadLaunchedEvent)
			require.True(t, ok)
			launched = append(launched, launch.Cell)
			return nil
		},
	})

	for i, c := range []grid.Cell{{X: 3, Y: 3}, {X: 3, Y: 4}} {
		err := bus.Emit(&events.OnPayloadLaunchedEvent{
			BaseEvent: events.BaseEvent{Type: events.EventTypeOnPayloadLaunched, Caster: caster},
			CastID:    "cast-1",
			Payload:   "acid_glob",
			Origin:    caster.Position,
			Cell:      c,
			Index:     i,
		})
		require.NoError(t, err)
	}

	assert.Equal(t, []grid.Cell{{X: 3, Y: 3}, {X: 3, Y: 4}}, launched)
}

func TestEventBus_Priority(t *testing.T) {
	bus := events.NewBus()

	var executionOrder []string
	listener := func(id string, priority int) *testListener {
		return &testListener{
			id:       id,
			priority: priority,
			handler: func(events.Event) error {
				executionOrder = append(executionOrder, id)
				return nil
			},
		}
	}

	// Subscribe out of order
	bus.Subscribe(events.EventTypeAfterAreaCast, listener("audit", events.PriorityAudit))
	bus.Subscribe(events.EventTypeAfterAreaCast, listener("validate", events.PriorityValidation))
	bus.Subscribe(events.EventTypeAfterAreaCast, listener("dispatch-a", events.PriorityDispatch))
	bus.Subscribe(events.EventTypeAfterAreaCast, listener("dispatch-b", events.PriorityDispatch))

	err := bus.Emit(&events.AfterAreaCastEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeAfterAreaCast},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"validate", "dispatch-a", "dispatch-b", "audit"}, executionOrder)
}

func TestEventBus_Cancellation(t *testing.T) {
	bus := events.NewBus()

	var firstExecuted, secondExecuted bool

	bus.Subscribe(events.EventTypeBeforeAreaCast, &testListener{
		id:       "veto",
		priority: 100,
		handler: func(e events.Event) error {
			firstExecuted = true
			e.Cancel()
			return nil
		},
	})
	bus.Subscribe(events.EventTypeBeforeAreaCast, &testListener{
		id:       "second",
		priority: 200,
		handler: func(e events.Event) error {
			secondExecuted = true
			return nil
		},
	})

	event := &events.BeforeAreaCastEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeBeforeAreaCast},
		Cells:     []grid.Cell{{X: 1, Y: 1}},
	}

	err := bus.Emit(event)
	require.NoError(t, err)

	assert.True(t, firstExecuted)
	assert.False(t, secondExecuted)
	assert.True(t, event.IsCancelled())
}

func TestEventBus_ListenerError(t *testing.T) {
	bus := events.NewBus()
	boom := errors.New("boom")

	bus.Subscribe(events.EventTypeAfterAreaCast, &testListener{
		id:       "broken",
		priority: 1,
		handler:  func(events.Event) error { return boom },
	})

	err := bus.Emit(&events.AfterAreaCastEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeAfterAreaCast}})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
}

func TestEventBus_UnsubscribeAndClear(t *testing.T) {
	bus := events.NewBus()
	noop := func(events.Event) error { return nil }

	bus.Subscribe(events.EventTypeAfterAreaCast, &testListener{id: "a", priority: 1, handler: noop})
	bus.Subscribe(events.EventTypeAfterAreaCast, &testListener{id: "b", priority: 2, handler: noop})
	bus.Subscribe(events.EventTypeBeforeAreaCast, &testListener{id: "c", priority: 1, handler: noop})

	bus.Unsubscribe(events.EventTypeAfterAreaCast, "a")
	bus.Unsubscribe(events.EventTypeAfterAreaCast, "missing")
	assert.Equal(t, 1, bus.ListenerCount(events.EventTypeAfterAreaCast))

	bus.Clear()
	assert.Equal(t, 0, bus.ListenerCount(events.EventTypeAfterAreaCast))
	assert.Equal(t, 0, bus.ListenerCount(events.EventTypeBeforeAreaCast))
}

// Test helper: simple event listener
type testListener struct {
	id       string
	priority int
	handler  func(events.Event) error
}

func (l *testListener) ID() string                       { return l.id }
func (l *testListener) Priority() int                    { return l.priority }
func (l *testListener) HandleEvent(e events.Event) error { return l.handler(e) }
