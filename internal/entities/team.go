// Package entities contains core business entities.
package entities

// FormationRosters remembers the full player list as last seen under each
// formation index. encoding/json serializes the integer keys as decimal strings
// and parses them back, which is the persisted-form coercion the storage layout
// relies on.
type FormationRosters map[int][]Player

// Clone deep-copies the roster map.
func (r FormationRosters) Clone() FormationRosters {
	if r == nil {
		return nil
	}
	out := make(FormationRosters, len(r))
	for idx, players := range r {
		out[idx] = ClonePlayers(players)
	}
	return out
}

// Team aggregates a roster under a sport and a currently selected formation.
// Player order is insertion order, not display order.
type Team struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	SportID          SportID          `json:"sportId"`
	Players          []Player         `json:"players"`
	FormationIndex   int              `json:"formationIndex"`
	LastModified     int64            `json:"lastModified"`
	FormationRosters FormationRosters `json:"formationRosters,omitempty"`
}

// Clone deep-copies the team so callers can mutate freely.
func (t Team) Clone() Team {
	t.Players = ClonePlayers(t.Players)
	t.FormationRosters = t.FormationRosters.Clone()
	return t
}

// ClonePlayers copies a player slice, including slotIndex pointers.
func ClonePlayers(players []Player) []Player {
	if players == nil {
		return nil
	}
	out := make([]Player, len(players))
	for i, p := range players {
		if p.SlotIndex != nil {
			idx := *p.SlotIndex
			p.SlotIndex = &idx
		}
		out[i] = p
	}
	return out
}
