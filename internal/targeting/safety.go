package targeting

import "github.com/KirkDiggler/aoe-targeting/internal/domain/grid"

// IsSafeForAI reports whether an AI caster of casterFaction may use an
// effect covering cells without hitting its own side. Casters without a
// faction have no one to protect.
func IsSafeForAI(m grid.Map, cells CellSet, casterFaction string) bool {
	if casterFaction == "" {
		return true
	}
	if m == nil {
		return true
	}
	for _, c := range cells {
		for _, o := range m.OccupantsAt(c) {
			if o.Faction == casterFaction {
				return false
			}
		}
	}
	return true
}
