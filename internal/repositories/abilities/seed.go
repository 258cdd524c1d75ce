package abilities

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/aoe-targeting/internal/domain/abilities"
	tgterr "github.com/KirkDiggler/aoe-targeting/internal/errors"
)

// Seed writes every definition in file to repo, replacing stored
// definitions that share a key. It returns how many were written.
func Seed(ctx context.Context, repo Repository, file *abilities.File) (int, error) {
	if file == nil {
		return 0, nil
	}

	for i := range file.Abilities {
		def := &file.Abilities[i]

		err := repo.Create(ctx, def)
		if tgterr.IsAlreadyExists(err) {
			err = repo.Update(ctx, def)
		}
		if err != nil {
			return i, fmt.Errorf("failed to seed ability %s: %w", def.Key, err)
		}
	}

	return len(file.Abilities), nil
}
