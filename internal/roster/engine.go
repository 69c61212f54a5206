// Package roster implements the reconciliation rules that keep player/slot
// assignments consistent across formation switches, slot fills and bench moves.
// All functions are pure: inputs are never mutated, fresh slices are returned.
package roster

import (
	"github.com/ZachR72/Lineup-Maker/internal/entities"
	"github.com/ZachR72/Lineup-Maker/internal/generator"
)

// SwitchFormation moves the team to the formation at targetIndex.
//
// The roster being left is snapshotted under the current formation index. If the
// target formation was visited before, its snapshot is restored verbatim.
// Otherwise a roster is synthesized from the current players: starters whose
// slotIndex fits the target formation keep their index and inherit the target
// slot's label and coordinates; starters whose index is out of bounds are
// benched. Bench players are untouched either way and no player is ever lost.
func SwitchFormation(team entities.Team, targetIndex int, target entities.Formation) entities.Team {
	team = team.Clone()

	rosters := team.FormationRosters
	if rosters == nil {
		rosters = entities.FormationRosters{}
	}
	rosters[team.FormationIndex] = entities.ClonePlayers(team.Players)

	var next []entities.Player
	if saved, ok := rosters[targetIndex]; ok {
		next = entities.ClonePlayers(saved)
	} else {
		next = make([]entities.Player, 0, len(team.Players))
		for _, p := range team.Players {
			if p.OnBench {
				next = append(next, p)
				continue
			}
			if p.SlotIndex != nil && *p.SlotIndex < len(target.Slots) {
				slot := target.Slots[*p.SlotIndex]
				p.Position = slot.Label
				p.X = slot.X
				p.Y = slot.Y
				next = append(next, p)
				continue
			}
			p.OnBench = true
			p.SlotIndex = nil
			next = append(next, p)
		}
		rosters[targetIndex] = entities.ClonePlayers(next)
	}

	team.FormationIndex = targetIndex
	team.Players = next
	team.FormationRosters = rosters
	return team
}

// FillSlot promotes the bench player with playerID into slotIndex, displacing
// any current occupant to the bench. Unknown playerID leaves the roster as is,
// so the slot-occupancy invariant is never broken by a stale identifier.
func FillSlot(players []entities.Player, slotIndex int, playerID string, slot entities.Slot) []entities.Player {
	if !containsPlayer(players, playerID) {
		return entities.ClonePlayers(players)
	}

	out := make([]entities.Player, 0, len(players))
	for _, p := range players {
		switch {
		case p.ID == playerID:
			p.OnBench = false
			p.SlotIndex = entities.SlotIndexOf(slotIndex)
			p.Position = slot.Label
			p.X = slot.X
			p.Y = slot.Y
		case !p.OnBench && p.SlotIndex != nil && *p.SlotIndex == slotIndex:
			p.OnBench = true
			p.SlotIndex = nil
		}
		out = append(out, p)
	}
	return out
}

// FillSlotWithNew appends a freshly generated starter at slotIndex. The slot is
// vacant by precondition, but an occupant found anyway is displaced to the
// bench first.
func FillSlotWithNew(players []entities.Player, slotIndex int, slot entities.Slot, gen generator.Generator) []entities.Player {
	out := make([]entities.Player, 0, len(players)+1)
	for _, p := range players {
		if !p.OnBench && p.SlotIndex != nil && *p.SlotIndex == slotIndex {
			p.OnBench = true
			p.SlotIndex = nil
		}
		out = append(out, p)
	}
	return append(out, entities.Player{
		ID:        gen.NextID(),
		Name:      gen.PlayerName(),
		Number:    gen.JerseyNumber(),
		Position:  slot.Label,
		X:         slot.X,
		Y:         slot.Y,
		OnBench:   false,
		SlotIndex: entities.SlotIndexOf(slotIndex),
	})
}

// ToggleBench benches a starter, or promotes a bench player into the lowest
// vacant slot. When the formation is full the promoted player takes the slot of
// the last starter in player-insertion order, who is benched in exchange.
// Unknown playerID is a no-op.
func ToggleBench(players []entities.Player, playerID string, formation entities.Formation) []entities.Player {
	var target *entities.Player
	for i := range players {
		if players[i].ID == playerID {
			target = &players[i]
			break
		}
	}
	if target == nil {
		return entities.ClonePlayers(players)
	}

	if !target.OnBench {
		return mapPlayers(players, func(p entities.Player) entities.Player {
			if p.ID == playerID {
				p.OnBench = true
				p.SlotIndex = nil
			}
			return p
		})
	}

	starters := make([]entities.Player, 0, len(players))
	occupied := make(map[int]bool, len(players))
	for _, p := range players {
		if p.OnBench {
			continue
		}
		starters = append(starters, p)
		if p.SlotIndex != nil {
			occupied[*p.SlotIndex] = true
		}
	}

	vacant := -1
	for i := range formation.Slots {
		if !occupied[i] {
			vacant = i
			break
		}
	}

	if vacant >= 0 {
		slot := formation.Slots[vacant]
		return mapPlayers(players, func(p entities.Player) entities.Player {
			if p.ID == playerID {
				p.OnBench = false
				p.SlotIndex = entities.SlotIndexOf(vacant)
				p.Position = slot.Label
				p.X = slot.X
				p.Y = slot.Y
			}
			return p
		})
	}

	// Formation full: the last slotted starter hands over their slot.
	var last entities.Player
	for i := len(starters) - 1; i >= 0; i-- {
		if starters[i].SlotIndex != nil {
			last = starters[i]
			break
		}
	}
	if last.SlotIndex == nil {
		return entities.ClonePlayers(players)
	}
	slotIdx := *last.SlotIndex
	slot := formation.Slots[slotIdx]
	return mapPlayers(players, func(p entities.Player) entities.Player {
		switch p.ID {
		case playerID:
			p.OnBench = false
			p.SlotIndex = entities.SlotIndexOf(slotIdx)
			p.Position = slot.Label
			p.X = slot.X
			p.Y = slot.Y
		case last.ID:
			p.OnBench = true
			p.SlotIndex = nil
		}
		return p
	})
}

// AddBenchPlayer appends a new substitute with no slot interaction.
func AddBenchPlayer(players []entities.Player, gen generator.Generator) []entities.Player {
	out := entities.ClonePlayers(players)
	return append(out, entities.Player{
		ID:       gen.NextID(),
		Name:     "New Prospect",
		Number:   gen.JerseyNumber(),
		Position: "SUB",
		OnBench:  true,
	})
}

// ApplyPatch merges recognized free-text edits into the player, returning a new
// value. Slot assignment, bench state and coordinates are untouched.
func ApplyPatch(p entities.Player, patch entities.PlayerPatch) entities.Player {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Number != nil {
		p.Number = *patch.Number
	}
	if patch.SecondaryPosition != nil {
		p.SecondaryPosition = *patch.SecondaryPosition
	}
	if patch.TertiaryPosition != nil {
		p.TertiaryPosition = *patch.TertiaryPosition
	}
	return p
}

// InitialLineup generates one starter per slot of the formation.
func InitialLineup(formation entities.Formation, gen generator.Generator) []entities.Player {
	players := make([]entities.Player, 0, len(formation.Slots))
	for idx, slot := range formation.Slots {
		players = append(players, entities.Player{
			ID:        gen.NextID(),
			Name:      gen.PlayerName(),
			Number:    gen.JerseyNumber(),
			Position:  slot.Label,
			X:         slot.X,
			Y:         slot.Y,
			OnBench:   false,
			SlotIndex: entities.SlotIndexOf(idx),
		})
	}
	return players
}

// StartersBySlot projects the current starters onto their slot indices.
// Slot-index uniqueness among starters makes this projection unambiguous.
func StartersBySlot(players []entities.Player) map[int]entities.Player {
	out := make(map[int]entities.Player)
	for _, p := range players {
		if !p.OnBench && p.SlotIndex != nil {
			out[*p.SlotIndex] = p
		}
	}
	return out
}

func containsPlayer(players []entities.Player, id string) bool {
	for _, p := range players {
		if p.ID == id {
			return true
		}
	}
	return false
}

func mapPlayers(players []entities.Player, fn func(entities.Player) entities.Player) []entities.Player {
	out := make([]entities.Player, 0, len(players))
	for _, p := range players {
		if p.SlotIndex != nil {
			idx := *p.SlotIndex
			p.SlotIndex = &idx
		}
		out = append(out, fn(p))
	}
	return out
}
