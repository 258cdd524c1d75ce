// Package scenario loads the small JSON arenas the targeting CLI runs against
package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/KirkDiggler/aoe-targeting/internal/attributes"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/actor"
	"github.com/KirkDiggler/aoe-targeting/internal/domain/grid"
	tgterr "github.com/KirkDiggler/aoe-targeting/internal/errors"
)

// Scenario describes a map and who stands on it
type Scenario struct {
	Name   string      `json:"name"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Walls  []grid.Cell `json:"walls,omitempty"`
	Actors []ActorSpec `json:"actors"`
}

// ActorSpec places one actor. Attributes feed ability scaling.
type ActorSpec struct {
	ID         string             `json:"id"`
	Name       string             `json:"name,omitempty"`
	Faction    string             `json:"faction,omitempty"`
	Position   grid.Cell          `json:"position"`
	Attributes map[string]float64 `json:"attributes,omitempty"`
}

// World is a built scenario
type World struct {
	Map        *grid.MemoryMap
	Attributes *attributes.StaticSource
	actors     map[string]*actor.Actor
}

// Decode reads a scenario document
func Decode(r io.Reader) (*Scenario, error) {
	var s Scenario
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, tgterr.WrapWithCode(err, tgterr.CodeInvalidArgument, "failed to decode scenario")
	}
	return &s, nil
}

// LoadFile opens path and decodes it
func LoadFile(path string) (*Scenario, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario %s: %w", path, err)
	}
	defer fh.Close()

	return Decode(fh)
}

// Validate checks bounds and actor ids
func (s *Scenario) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return tgterr.Validationf("scenario size must be positive, got %dx%d", s.Width, s.Height)
	}

	inBounds := func(c grid.Cell) bool {
		return c.X >= 0 && c.Y >= 0 && c.X < s.Width && c.Y < s.Height
	}

	walls := make(map[grid.Cell]struct{}, len(s.Walls))
	for _, w := range s.Walls {
		if !inBounds(w) {
			return tgterr.Validationf("wall %s is outside the map", w)
		}
		walls[w] = struct{}{}
	}

	seen := make(map[string]struct{}, len(s.Actors))
	for _, a := range s.Actors {
		if a.ID == "" {
			return tgterr.Validation("actor id is required")
		}
		if _, dup := seen[a.ID]; dup {
			return tgterr.Validationf("duplicate actor id %s", a.ID).WithMeta("actor_id", a.ID)
		}
		seen[a.ID] = struct{}{}

		if !inBounds(a.Position) {
			return tgterr.Validationf("actor %s is outside the map at %s", a.ID, a.Position).WithMeta("actor_id", a.ID)
		}
		if _, blocked := walls[a.Position]; blocked {
			return tgterr.Validationf("actor %s stands in a wall at %s", a.ID, a.Position).WithMeta("actor_id", a.ID)
		}
	}

	return nil
}

// Build validates the scenario and creates its map, actors and attributes
func (s *Scenario) Build() (*World, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	m := grid.NewMemoryMap(s.Width, s.Height)
	for _, w := range s.Walls {
		m.SetWall(w)
	}

	world := &World{
		Map:        m,
		Attributes: attributes.NewStaticSource(),
		actors:     make(map[string]*actor.Actor, len(s.Actors)),
	}

	for _, spec := range s.Actors {
		name := spec.Name
		if name == "" {
			name = spec.ID
		}
		a := &actor.Actor{
			ID:       spec.ID,
			Name:     name,
			Position: spec.Position,
			Faction:  spec.Faction,
			Map:      m,
		}
		m.Place(a.Position, a.Occupant())
		world.Attributes.SetAll(a.ID, spec.Attributes)
		world.actors[a.ID] = a
	}

	return world, nil
}

// Actor returns the actor with the given id
func (w *World) Actor(id string) (*actor.Actor, error) {
	a, ok := w.actors[id]
	if !ok {
		return nil, tgterr.NotFoundf("actor not found: %s", id).WithMeta("actor_id", id)
	}
	return a, nil
}

// Actors returns every actor sorted by id
func (w *World) Actors() []*actor.Actor {
	out := make([]*actor.Actor, 0, len(w.actors))
	for _, a := range w.actors {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
