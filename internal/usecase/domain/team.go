// Package domain contains application Usecases orchestrating domain logic by team.
package domain

import (
	"context"
	"fmt"
	"sort"

	"github.com/ZachR72/Lineup-Maker/internal/catalog"
	"github.com/ZachR72/Lineup-Maker/internal/entities"
	"github.com/ZachR72/Lineup-Maker/internal/roster"
)

// CreateTeam creates a team for the sport with a full starting lineup in the
// sport's first formation, and seeds the roster memory for formation 0.
func (u *Usecase) CreateTeam(ctx context.Context, name string, sportID entities.SportID) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	sport, ok := catalog.SportByID(sportID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrSportNotFound, sportID)
	}

	if name == "" {
		name = fmt.Sprintf("Untitled %s Team", sport.Name)
	}

	players := roster.InitialLineup(sport.Formations[0], u.gen)
	team := entities.Team{
		ID:             u.gen.NextID(),
		Name:           name,
		SportID:        sport.ID,
		Players:        players,
		FormationIndex: 0,
		FormationRosters: entities.FormationRosters{
			0: entities.ClonePlayers(players),
		},
	}

	team = u.commit(ctx, team, false)
	u.log.Infow("team created", "team_id", team.ID, "sport", sport.ID, "players", len(players))
	return &team, nil
}

// ListTeams returns all stored teams, most recently modified first.
func (u *Usecase) ListTeams(ctx context.Context) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	teams := u.repo.Load(ctx)
	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].LastModified > teams[j].LastModified
	})
	return teams, nil
}

// Team resolves a team by id for editor activation.
func (u *Usecase) Team(ctx context.Context, teamID string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}

	team, err := u.findTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// RenameTeam updates the team display name.
func (u *Usecase) RenameTeam(ctx context.Context, teamID, name string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}

	team, err := u.findTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	team.Name = name
	team = u.commit(ctx, team, true)
	return &team, nil
}

// DeleteTeam removes the team from the stored collection.
func (u *Usecase) DeleteTeam(ctx context.Context, teamID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}

	teams := u.repo.Load(ctx)
	kept := make([]entities.Team, 0, len(teams))
	found := false
	for _, t := range teams {
		if t.ID == teamID {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return entities.ErrTeamNotFound
	}

	u.repo.Save(ctx, kept)
	u.status.forget(teamID)
	u.log.Infow("team deleted", "team_id", teamID)
	return nil
}
