package abilities

//go:generate mockgen -destination=mock/mock_repository.go -package=mockabilities -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/aoe-targeting/internal/domain/abilities"
)

// Repository defines the interface for ability definition storage
type Repository interface {
	// Create stores a new definition. The key must not be in use.
	Create(ctx context.Context, def *abilities.Definition) error

	// Get retrieves a definition by key
	Get(ctx context.Context, key string) (*abilities.Definition, error)

	// Update replaces an existing definition
	Update(ctx context.Context, def *abilities.Definition) error

	// Delete removes a definition
	Delete(ctx context.Context, key string) error

	// List returns every definition ordered by key
	List(ctx context.Context) ([]*abilities.Definition, error)
}
