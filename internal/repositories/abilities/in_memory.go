package abilities

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/aoe-targeting/internal/domain/abilities"
	tgterr "github.com/KirkDiggler/aoe-targeting/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu          sync.RWMutex
	definitions map[string]*abilities.Definition
}

// NewInMemoryRepository creates a new in-memory ability repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		definitions: make(map[string]*abilities.Definition),
	}
}

func (r *inMemoryRepository) Create(ctx context.Context, def *abilities.Definition) error {
	if err := checkDefinition(def); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[def.Key]; exists {
		return tgterr.AlreadyExistsf("ability %s already exists", def.Key)
	}

	r.definitions[def.Key] = def.Clone()
	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, key string) (*abilities.Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, exists := r.definitions[key]
	if !exists {
		return nil, tgterr.NotFoundf("ability not found: %s", key)
	}

	return def.Clone(), nil
}

func (r *inMemoryRepository) Update(ctx context.Context, def *abilities.Definition) error {
	if err := checkDefinition(def); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[def.Key]; !exists {
		return tgterr.NotFoundf("ability not found: %s", def.Key)
	}

	r.definitions[def.Key] = def.Clone()
	return nil
}

func (r *inMemoryRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[key]; !exists {
		return tgterr.NotFoundf("ability not found: %s", key)
	}

	delete(r.definitions, key)
	return nil
}

func (r *inMemoryRepository) List(ctx context.Context) ([]*abilities.Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*abilities.Definition, 0, len(r.definitions))
	for _, def := range r.definitions {
		list = append(list, def.Clone())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Key < list[j].Key })

	return list, nil
}

func checkDefinition(def *abilities.Definition) error {
	if def == nil {
		return tgterr.InvalidArgument("ability definition cannot be nil")
	}
	return def.Validate()
}
