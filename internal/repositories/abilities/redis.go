package abilities

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/aoe-targeting/internal/domain/abilities"
	tgterr "github.com/KirkDiggler/aoe-targeting/internal/errors"
)

const (
	// Key patterns
	abilityKeyPattern = "ability:%s"
	allAbilitiesKey   = "abilities:all"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepository implements Repository using Redis. Definitions are stored
// as JSON with no expiry; abilities:all indexes their keys.
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed ability repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	return &redisRepository{
		client: cfg.Client,
	}
}

func abilityKey(key string) string {
	return fmt.Sprintf(abilityKeyPattern, key)
}

func (r *redisRepository) Create(ctx context.Context, def *abilities.Definition) error {
	if err := checkDefinition(def); err != nil {
		return err
	}

	data, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("failed to serialize ability: %w", err)
	}

	created, err := r.client.SetNX(ctx, abilityKey(def.Key), string(data), 0).Result()
	if err != nil {
		return tgterr.WrapWithCode(err, tgterr.CodeInternal, "failed to create ability")
	}
	if !created {
		return tgterr.AlreadyExistsf("ability %s already exists", def.Key)
	}

	if err := r.client.SAdd(ctx, allAbilitiesKey, def.Key).Err(); err != nil {
		return tgterr.WrapWithCode(err, tgterr.CodeInternal, "failed to index ability")
	}

	return nil
}

func (r *redisRepository) Get(ctx context.Context, key string) (*abilities.Definition, error) {
	data, err := r.client.Get(ctx, abilityKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, tgterr.NotFoundf("ability not found: %s", key)
		}
		return nil, tgterr.WrapWithCode(err, tgterr.CodeInternal, "failed to get ability")
	}

	var def abilities.Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to deserialize ability %s: %w", key, err)
	}

	return &def, nil
}

func (r *redisRepository) Update(ctx context.Context, def *abilities.Definition) error {
	if err := checkDefinition(def); err != nil {
		return err
	}

	data, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("failed to serialize ability: %w", err)
	}

	updated, err := r.client.SetXX(ctx, abilityKey(def.Key), string(data), 0).Result()
	if err != nil {
		return tgterr.WrapWithCode(err, tgterr.CodeInternal, "failed to update ability")
	}
	if !updated {
		return tgterr.NotFoundf("ability not found: %s", def.Key)
	}

	return nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, abilityKey(key))
	pipe.SRem(ctx, allAbilitiesKey, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return tgterr.WrapWithCode(err, tgterr.CodeInternal, "failed to delete ability")
	}
	if del.Val() == 0 {
		return tgterr.NotFoundf("ability not found: %s", key)
	}

	return nil
}

func (r *redisRepository) List(ctx context.Context) ([]*abilities.Definition, error) {
	keys, err := r.client.SMembers(ctx, allAbilitiesKey).Result()
	if err != nil {
		return nil, tgterr.WrapWithCode(err, tgterr.CodeInternal, "failed to list abilities")
	}
	sort.Strings(keys)

	defs := make([]*abilities.Definition, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		g.Go(func() error {
			def, err := r.Get(ctx, key)
			if tgterr.IsNotFound(err) {
				// index entry outlived its definition
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get ability %s: %w", key, err)
			}
			defs[i] = def
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	list := make([]*abilities.Definition, 0, len(defs))
	for _, def := range defs {
		if def != nil {
			list = append(list, def)
		}
	}

	return list, nil
}
