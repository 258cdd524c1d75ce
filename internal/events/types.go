package events

import (
	"github.com/KirkDiggler/aoe-targeting/internal/domain/actor"
)

// EventType represents the type of cast event
type EventType string

// Event is the base interface for all cast events
type Event interface {
	GetType() EventType
	GetCaster() *actor.Actor
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	Caster    *actor.Actor
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType      { return e.Type }
func (e *BaseEvent) GetCaster() *actor.Actor { return e.Caster }
func (e *BaseEvent) IsCancelled() bool       { return e.Cancelled }
func (e *BaseEvent) Cancel()                 { e.Cancelled = true }

// ListenerFunc adapts a plain function into an EventListener
type ListenerFunc struct {
	ListenerID       string
	ListenerPriority int
	Handle           func(Event) error
}

func (l *ListenerFunc) ID() string                { return l.ListenerID }
func (l *ListenerFunc) Priority() int             { return l.ListenerPriority }
func (l *ListenerFunc) HandleEvent(e Event) error { return l.Handle(e) }
