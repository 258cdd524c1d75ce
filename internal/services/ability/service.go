package ability

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/aoe-targeting/internal/attributes"
	tgterr "github.com/KirkDiggler/aoe-targeting/internal/errors"
	"github.com/KirkDiggler/aoe-targeting/internal/events"
	abilityrepo "github.com/KirkDiggler/aoe-targeting/internal/repositories/abilities"
	"github.com/KirkDiggler/aoe-targeting/internal/targeting"
	"github.com/KirkDiggler/aoe-targeting/internal/uuid"
)

// maxConcurrentEvaluations bounds EvaluateAITargets
const maxConcurrentEvaluations = 8

type service struct {
	repository    abilityrepo.Repository
	attributes    attributes.Source
	eventBus      *events.Bus
	uuidGenerator uuid.Generator
	registry      *HandlerRegistry
}

// ServiceConfig holds configuration for the ability service
type ServiceConfig struct {
	Repository abilityrepo.Repository
	Attributes attributes.Source
	// EventBus receives cast events. Without one Cast computes cells but
	// launches nothing.
	EventBus      *events.Bus
	UUIDGenerator uuid.Generator
}

// NewService creates an ability service with the spray and cone handlers
// registered
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("ability repository is required")
	}
	if cfg.Attributes == nil {
		panic("attribute source is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		attributes:    cfg.Attributes,
		eventBus:      cfg.EventBus,
		uuidGenerator: cfg.UUIDGenerator,
		registry:      NewHandlerRegistry(),
	}

	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGenerator()
	}

	svc.RegisterHandler(NewSprayHandler())
	svc.RegisterHandler(NewConeHandler())

	return svc
}

// RegisterHandler allows external packages to register shape handlers
func (s *service) RegisterHandler(handler Handler) {
	s.registry.Register(handler)
}

// resolve loads the definition, picks its handler and selects the payload
func (s *service) resolve(ctx context.Context, input *AreaInput) (Handler, *HandlerInput, error) {
	if input == nil {
		return nil, nil, tgterr.InvalidArgument("input cannot be nil")
	}
	if input.AbilityKey == "" {
		return nil, nil, tgterr.InvalidArgument("ability key is required")
	}
	if input.Caster == nil {
		return nil, nil, tgterr.InvalidArgument("caster is required")
	}

	def, err := s.repository.Get(ctx, input.AbilityKey)
	if err != nil {
		return nil, nil, tgterr.Wrapf(err, "failed to get ability %s", input.AbilityKey)
	}

	handler, ok := s.registry.Get(string(def.Shape))
	if !ok {
		return nil, nil, tgterr.InvalidArgumentf("no handler for shape %s", def.Shape).
			WithMeta("ability", def.Key)
	}

	return handler, &HandlerInput{
		Definition: def,
		Caster:     input.Caster,
		Target:     input.Target,
		Payload:    def.SelectPayload(input.Caster, s.attributes),
		Attributes: s.attributes,
	}, nil
}

func (s *service) PreviewCells(ctx context.Context, input *AreaInput) (*PreviewResult, error) {
	handler, in, err := s.resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	cells, err := handler.PreviewCells(in)
	if err != nil {
		return nil, err
	}

	return &PreviewResult{
		AbilityKey: in.Definition.Key,
		Payload:    in.Payload,
		Cells:      cells,
	}, nil
}

func (s *service) Cast(ctx context.Context, input *AreaInput) (*CastResult, error) {
	handler, in, err := s.resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	cells, err := handler.AffectedCells(in)
	if err != nil {
		return nil, err
	}

	result := &CastResult{
		CastID:     s.uuidGenerator.New(),
		AbilityKey: in.Definition.Key,
		Payload:    in.Payload,
		Cells:      cells,
	}

	if s.eventBus == nil {
		return result, nil
	}

	base := func(t events.EventType) events.BaseEvent {
		return events.BaseEvent{Type: t, Caster: in.Caster}
	}
	payload := string(in.Payload.ID)

	before := &events.BeforeAreaCastEvent{
		BaseEvent:  base(events.EventTypeBeforeAreaCast),
		CastID:     result.CastID,
		AbilityKey: result.AbilityKey,
		Payload:    payload,
		Cells:      cells,
	}
	if err := s.eventBus.Emit(before); err != nil {
		return nil, tgterr.Wrap(err, "failed to emit before cast event")
	}
	if before.IsCancelled() {
		return nil, tgterr.Newf(tgterr.CodeCancelled, "cast of %s was cancelled", result.AbilityKey).
			WithMeta("cast_id", result.CastID)
	}

	for i, cell := range cells {
		if err := ctx.Err(); err != nil {
			return nil, tgterr.WrapWithCode(err, tgterr.CodeCancelled, "cast interrupted")
		}

		launch := &events.OnPayloadLaunchedEvent{
			BaseEvent:  base(events.EventTypeOnPayloadLaunched),
			CastID:     result.CastID,
			AbilityKey: result.AbilityKey,
			Payload:    payload,
			Origin:     in.Caster.Position,
			Cell:       cell,
			Index:      i,
		}
		if err := s.eventBus.Emit(launch); err != nil {
			return nil, tgterr.Wrapf(err, "failed to launch payload into %s", cell)
		}
		result.Launched++
	}

	after := &events.AfterAreaCastEvent{
		BaseEvent:  base(events.EventTypeAfterAreaCast),
		CastID:     result.CastID,
		AbilityKey: result.AbilityKey,
		Payload:    payload,
		CellCount:  len(cells),
	}
	if err := s.eventBus.Emit(after); err != nil {
		log.Printf("Failed to emit after cast event for %s: %v", result.CastID, err)
	}

	return result, nil
}

func (s *service) CanAITarget(ctx context.Context, input *AreaInput) (bool, error) {
	if input != nil && input.Caster != nil && !input.Caster.HasFaction() {
		return true, nil
	}

	handler, in, err := s.resolve(ctx, input)
	if err != nil {
		return false, err
	}

	cells, err := handler.PreviewCells(in)
	if err != nil {
		return false, err
	}

	return targeting.IsSafeForAI(in.Caster.Map, cells, in.Caster.Faction), nil
}

func (s *service) EvaluateAITargets(ctx context.Context, inputs []*AreaInput) ([]bool, error) {
	results := make([]bool, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentEvaluations)
	for i, input := range inputs {
		g.Go(func() error {
			safe, err := s.CanAITarget(ctx, input)
			if err != nil {
				return tgterr.Wrapf(err, "failed to evaluate target %d", i)
			}
			results[i] = safe
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
