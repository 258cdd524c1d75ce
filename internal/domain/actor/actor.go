package actor

import "github.com/KirkDiggler/aoe-targeting/internal/domain/grid"

// Actor is anything that can cast an area effect
type Actor struct {
	ID       string
	Name     string
	Position grid.Cell
	// Faction is empty for actors that belong to no one
	Faction string
	// Map is the map the actor currently stands on; nil when despawned
	Map grid.Map
}

// HasFaction reports whether the actor belongs to a faction
func (a *Actor) HasFaction() bool {
	return a != nil && a.Faction != ""
}

// Occupant describes the actor as it appears in a map cell
func (a *Actor) Occupant() grid.Occupant {
	return grid.Occupant{ID: a.ID, Faction: a.Faction}
}
