// Package domain contains application Usecases orchestrating domain logic by lineup.
package domain

import (
	"context"
	"fmt"

	"github.com/ZachR72/Lineup-Maker/internal/catalog"
	"github.com/ZachR72/Lineup-Maker/internal/entities"
	"github.com/ZachR72/Lineup-Maker/internal/roster"
)

// SwitchFormation moves the team to another formation of its sport, restoring
// the roster last arranged there or synthesizing one from the current starters.
func (u *Usecase) SwitchFormation(ctx context.Context, teamID string, targetIndex int) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	team, sport, err := u.teamWithSport(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if targetIndex < 0 || targetIndex >= len(sport.Formations) {
		return nil, fmt.Errorf("%w: formation index %d out of range", entities.ErrInvalidArgument, targetIndex)
	}

	team = roster.SwitchFormation(team, targetIndex, sport.Formations[targetIndex])
	// The switch manages formationRosters itself; commit must not overwrite
	// the snapshot of the formation just left.
	team = u.commit(ctx, team, false)
	u.log.Infow("formation switched", "team_id", teamID, "formation", targetIndex)
	return &team, nil
}

// FillSlot puts a player into the slot: the named bench player, or a freshly
// generated one when playerID is empty. Any previous occupant goes to the bench.
func (u *Usecase) FillSlot(ctx context.Context, teamID string, slotIndex int, playerID string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	team, sport, err := u.teamWithSport(ctx, teamID)
	if err != nil {
		return nil, err
	}

	formation := catalog.FormationAt(sport, team.FormationIndex)
	if slotIndex < 0 || slotIndex >= len(formation.Slots) {
		return nil, fmt.Errorf("%w: slot index %d out of range", entities.ErrInvalidArgument, slotIndex)
	}
	slot := formation.Slots[slotIndex]

	if playerID == "" {
		team.Players = roster.FillSlotWithNew(team.Players, slotIndex, slot, u.gen)
	} else {
		team.Players = roster.FillSlot(team.Players, slotIndex, playerID, slot)
	}

	team = u.commit(ctx, team, true)
	return &team, nil
}

// ToggleBench benches a starter or promotes a bench player. Unknown player ids
// are a silent no-op.
func (u *Usecase) ToggleBench(ctx context.Context, teamID, playerID string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	team, sport, err := u.teamWithSport(ctx, teamID)
	if err != nil {
		return nil, err
	}

	formation := catalog.FormationAt(sport, team.FormationIndex)
	team.Players = roster.ToggleBench(team.Players, playerID, formation)

	team = u.commit(ctx, team, true)
	return &team, nil
}

// AddBenchPlayer appends a new substitute to the roster.
func (u *Usecase) AddBenchPlayer(ctx context.Context, teamID string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	team, err := u.findTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	team.Players = roster.AddBenchPlayer(team.Players, u.gen)
	team = u.commit(ctx, team, true)
	return &team, nil
}

// UpdatePlayer merges free-text field edits into the identified player. Unknown
// player ids are a silent no-op.
func (u *Usecase) UpdatePlayer(ctx context.Context, teamID, playerID string, patch entities.PlayerPatch) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	team, err := u.findTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	players := entities.ClonePlayers(team.Players)
	for i, p := range players {
		if p.ID == playerID {
			players[i] = roster.ApplyPatch(p, patch)
			break
		}
	}
	team.Players = players

	team = u.commit(ctx, team, true)
	return &team, nil
}

// teamWithSport resolves the team and its catalog sport together.
func (u *Usecase) teamWithSport(ctx context.Context, teamID string) (entities.Team, entities.Sport, error) {
	if teamID == "" {
		return entities.Team{}, entities.Sport{}, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}

	team, err := u.findTeam(ctx, teamID)
	if err != nil {
		return entities.Team{}, entities.Sport{}, err
	}

	sport, ok := catalog.SportByID(team.SportID)
	if !ok {
		return entities.Team{}, entities.Sport{}, fmt.Errorf("%w: %s", entities.ErrSportNotFound, team.SportID)
	}
	return team, sport, nil
}
