// Package uuid issues identifiers for area casts so dispatched payload
// events can be correlated. Wrapped behind an interface for mocking.
package uuid

import (
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks github.com/KirkDiggler/aoe-targeting/internal/uuid Generator

// Generator produces unique identifiers
type Generator interface {
	New() string
}

type randomGenerator struct{}

// NewGenerator returns a Generator backed by random (v4) UUIDs
func NewGenerator() Generator {
	return randomGenerator{}
}

func (randomGenerator) New() string {
	return uuid.NewString()
}
