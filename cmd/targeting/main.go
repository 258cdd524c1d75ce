package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/aoe-targeting/internal/attributes"
	"github.com/KirkDiggler/aoe-targeting/internal/config"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/abilities"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/grid"
	"github.com/KirkDiggler/aoe-targeting/internal/events"
	abilityrepo "github.com/KirkDiggler/aoe-targeting/internal/repositories/abilities"
	"github.com/KirkDiggler/aoe-targeting/internal/scenario"
	"github.com/KirkDiggler/aoe-targeting/internal/services/ability"
	"github.com/KirkDiggler/aoe-targeting/internal/targeting"
)

type options struct {
	scenarioPath string
	abilityKey   string
	casterID     string
	targetX      int
	targetY      int
	mode         string
}

func main() {
	var opts options
	flag.StringVar(&opts.scenarioPath, "scenario", "configs/scenarios/ambush.json", "scenario to load")
	flag.StringVar(&opts.abilityKey, "ability", "acid_spray", "ability key")
	flag.StringVar(&opts.casterID, "caster", "nightmare", "id of the casting actor")
	flag.IntVar(&opts.targetX, "x", 0, "target cell x")
	flag.IntVar(&opts.targetY, "y", 0, "target cell y")
	flag.StringVar(&opts.mode, "mode", "preview", "preview, cast, ai or list")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	repo, closeRepo := newRepository(ctx, cfg.Redis)
	defer closeRepo()

	file, err := abilities.LoadFile(cfg.Targeting.DefinitionsPath)
	if err != nil {
		log.Fatalf("Failed to load ability definitions: %v", err)
	}
	n, err := abilityrepo.Seed(ctx, repo, file)
	if err != nil {
		log.Fatalf("Failed to seed abilities: %v", err)
	}
	log.Printf("Loaded %d abilities from %s", n, cfg.Targeting.DefinitionsPath)

	if err := run(ctx, os.Stdout, cfg, repo, &opts); err != nil {
		log.Fatalf("Failed to run %s: %v", opts.mode, err)
	}
}

// newRepository connects to Redis when configured and falls back to memory
func newRepository(ctx context.Context, cfg config.RedisConfig) (abilityrepo.Repository, func()) {
	noop := func() {}
	if !cfg.Enabled() {
		log.Println("No Redis configured, using in-memory repository")
		return abilityrepo.NewInMemoryRepository(), noop
	}

	var redisOpts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			log.Printf("Failed to parse Redis URL: %v", err)
			log.Println("Falling back to in-memory repository")
			return abilityrepo.NewInMemoryRepository(), noop
		}
		redisOpts = parsed
	} else {
		redisOpts = &redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}
	}

	client := redis.NewClient(redisOpts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory repository")
		_ = client.Close()
		return abilityrepo.NewInMemoryRepository(), noop
	}

	log.Println("Using Redis for ability definitions")
	return abilityrepo.NewRedisRepository(&abilityrepo.RedisRepoConfig{Client: client}), func() {
		if err := client.Close(); err != nil {
			log.Printf("Failed to close Redis client: %v", err)
		}
	}
}

// run executes one mode against a freshly built scenario
func run(ctx context.Context, out io.Writer, cfg *config.Config, repo abilityrepo.Repository, opts *options) error {
	if opts.mode == "list" {
		defs, err := repo.List(ctx)
		if err != nil {
			return err
		}
		return writeJSON(out, defs)
	}

	sc, err := scenario.LoadFile(opts.scenarioPath)
	if err != nil {
		return err
	}
	world, err := sc.Build()
	if err != nil {
		return err
	}

	caster, err := world.Actor(opts.casterID)
	if err != nil {
		return err
	}

	bus := events.NewBus()
	subscribeLogging(bus)

	svc := ability.NewService(&ability.ServiceConfig{
		Repository: repo,
		Attributes: attributes.NewCache(world.Attributes, &attributes.ManualTicker{}, cfg.Targeting.AttributeStaleTicks),
		EventBus:   bus,
	})

	input := &ability.AreaInput{
		AbilityKey: opts.abilityKey,
		Caster:     caster,
		Target:     targeting.TargetSpec{Primary: grid.Cell{X: opts.targetX, Y: opts.targetY}},
	}

	switch opts.mode {
	case "preview":
		result, err := svc.PreviewCells(ctx, input)
		if err != nil {
			return err
		}
		return writeJSON(out, cellsOutput{
			Ability: result.AbilityKey,
			Payload: result.Payload,
			Cells:   result.Cells,
		})

	case "cast":
		result, err := svc.Cast(ctx, input)
		if err != nil {
			return err
		}
		return writeJSON(out, cellsOutput{
			CastID:   result.CastID,
			Ability:  result.AbilityKey,
			Payload:  result.Payload,
			Cells:    result.Cells,
			Launched: result.Launched,
		})

	case "ai":
		return evaluateAll(ctx, out, svc, world, input)

	default:
		return fmt.Errorf("unknown mode %q", opts.mode)
	}
}

type cellsOutput struct {
	CastID   string                      `json:"castId,omitempty"`
	Ability  string                      `json:"ability"`
	Payload  abilities.PayloadDefinition `json:"payload"`
	Cells    targeting.CellSet           `json:"cells"`
	Launched int                         `json:"launched,omitempty"`
}

type aiOutput struct {
	Target string    `json:"target"`
	Cell   grid.Cell `json:"cell"`
	Safe   bool      `json:"safe"`
}

// evaluateAll asks whether the caster may aim at every other actor
func evaluateAll(ctx context.Context, out io.Writer, svc ability.Service, world *scenario.World, base *ability.AreaInput) error {
	var (
		inputs  []*ability.AreaInput
		targets []aiOutput
	)
	for _, a := range world.Actors() {
		if a.ID == base.Caster.ID {
			continue
		}
		inputs = append(inputs, &ability.AreaInput{
			AbilityKey: base.AbilityKey,
			Caster:     base.Caster,
			Target:     targeting.TargetSpec{Primary: a.Position},
		})
		targets = append(targets, aiOutput{Target: a.ID, Cell: a.Position})
	}

	results, err := svc.EvaluateAITargets(ctx, inputs)
	if err != nil {
		return err
	}
	for i, safe := range results {
		targets[i].Safe = safe
	}

	return writeJSON(out, targets)
}

func subscribeLogging(bus *events.Bus) {
	bus.Subscribe(events.EventTypeOnPayloadLaunched, &events.ListenerFunc{
		ListenerID:       "log-dispatch",
		ListenerPriority: events.PriorityDispatch,
		Handle: func(e events.Event) error {
			if launch, ok := e.(*events.OnPayloadLaunchedEvent); ok {
				log.Printf("Launched %s from %s into %s", launch.Payload, launch.Origin, launch.Cell)
			}
			return nil
		},
	})
	bus.Subscribe(events.EventTypeAfterAreaCast, &events.ListenerFunc{
		ListenerID:       "log-audit",
		ListenerPriority: events.PriorityAudit,
		Handle: func(e events.Event) error {
			if after, ok := e.(*events.AfterAreaCastEvent); ok {
				log.Printf("Cast %s of %s hit %d cells", after.CastID, after.AbilityKey, after.CellCount)
			}
			return nil
		},
	})
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
