// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/ZachR72/Lineup-Maker/internal/api"
	"github.com/ZachR72/Lineup-Maker/internal/entities"
	"github.com/ZachR72/Lineup-Maker/internal/roster"
)

// ToAPIPlayer maps entities.Player to transport model.
func ToAPIPlayer(p entities.Player) api.Player {
	out := api.Player{
		Id:                p.ID,
		Name:              p.Name,
		Number:            p.Number,
		Position:          p.Position,
		SecondaryPosition: p.SecondaryPosition,
		TertiaryPosition:  p.TertiaryPosition,
		X:                 p.X,
		Y:                 p.Y,
		OnBench:           p.OnBench,
	}
	if p.SlotIndex != nil {
		idx := *p.SlotIndex
		out.SlotIndex = &idx
	}
	return out
}

// ToAPIPlayers maps a player slice to transport models.
func ToAPIPlayers(players []entities.Player) []api.Player {
	out := make([]api.Player, 0, len(players))
	for _, p := range players {
		out = append(out, ToAPIPlayer(p))
	}
	return out
}

// ToAPITeam maps entities.Team to transport model.
func ToAPITeam(t entities.Team) api.Team {
	return api.Team{
		Id:             t.ID,
		Name:           t.Name,
		SportId:        string(t.SportID),
		Players:        ToAPIPlayers(t.Players),
		FormationIndex: t.FormationIndex,
		LastModified:   t.LastModified,
	}
}

// ToAPITeamSummary maps a team to its dashboard projection.
func ToAPITeamSummary(t entities.Team) api.TeamSummary {
	starters := 0
	for _, p := range t.Players {
		if !p.OnBench {
			starters++
		}
	}
	return api.TeamSummary{
		Id:            t.ID,
		Name:          t.Name,
		SportId:       string(t.SportID),
		StartersCount: starters,
		PlayersCount:  len(t.Players),
		LastModified:  t.LastModified,
	}
}

// ToAPIFormation maps entities.Formation to transport model.
func ToAPIFormation(f entities.Formation) api.Formation {
	slots := make([]api.Slot, 0, len(f.Slots))
	for _, s := range f.Slots {
		slots = append(slots, api.Slot{Label: s.Label, X: s.X, Y: s.Y})
	}
	return api.Formation{Name: f.Name, Positions: slots}
}

// ToAPISport maps entities.Sport to transport model.
func ToAPISport(s entities.Sport) api.Sport {
	formations := make([]api.Formation, 0, len(s.Formations))
	for _, f := range s.Formations {
		formations = append(formations, ToAPIFormation(f))
	}
	examples := make([]string, len(s.Examples))
	copy(examples, s.Examples)
	return api.Sport{
		Id:         string(s.ID),
		Name:       s.Name,
		Icon:       s.Icon,
		Formations: formations,
		Examples:   examples,
	}
}

// ToEditorView composes the editor payload: the team, its derived current
// formation, the slot occupancy projection, the bench and the saved flag.
func ToEditorView(t entities.Team, formation entities.Formation, saved bool) api.EditorView {
	starters := make(map[int]api.Player)
	for idx, p := range roster.StartersBySlot(t.Players) {
		starters[idx] = ToAPIPlayer(p)
	}

	bench := make([]api.Player, 0)
	for _, p := range t.Players {
		if p.OnBench {
			bench = append(bench, ToAPIPlayer(p))
		}
	}

	return api.EditorView{
		Team:           ToAPITeam(t),
		Formation:      ToAPIFormation(formation),
		StartersBySlot: starters,
		Bench:          bench,
		Saved:          saved,
	}
}
