// Package attributes is the boundary to whatever owns actor statistics.
// The targeting engine only ever reads through Source.
package attributes

import "sync"

// Source looks up the current value of a named attribute for an actor.
// ok is false when the attribute cannot be resolved.
type Source interface {
	AttributeValue(actorID, attribute string) (value float64, ok bool)
}

// StaticSource is an in-memory attribute snapshot
type StaticSource struct {
	mu     sync.RWMutex
	values map[string]map[string]float64
}

func NewStaticSource() *StaticSource {
	return &StaticSource{values: make(map[string]map[string]float64)}
}

// Set stores value for the actor's attribute
func (s *StaticSource) Set(actorID, attribute string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byAttr, ok := s.values[actorID]
	if !ok {
		byAttr = make(map[string]float64)
		s.values[actorID] = byAttr
	}
	byAttr[attribute] = value
}

// SetAll stores every attribute in values for the actor
func (s *StaticSource) SetAll(actorID string, values map[string]float64) {
	for attr, v := range values {
		s.Set(actorID, attr, v)
	}
}

func (s *StaticSource) AttributeValue(actorID, attribute string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[actorID][attribute]
	return v, ok
}
