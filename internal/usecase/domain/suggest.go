// Package domain contains application Usecases orchestrating domain logic by suggestions.
package domain

import (
	"context"

	"github.com/ZachR72/Lineup-Maker/internal/entities"
)

const defaultSuggestCount = 5

// SuggestPlayers bulk-populates the bench with AI-suggested players. The
// collaborator is optional: a failed or empty result leaves the team untouched
// and is reported as zero additions, never as an error that blocks the editor.
func (u *Usecase) SuggestPlayers(ctx context.Context, teamID string, count int) (*entities.Team, int, error) {
	// No transport timeout here: generation latency is the suggester's to
	// bound, and the surrounding load/commit is synchronous local I/O.
	if count <= 0 {
		count = defaultSuggestCount
	}

	team, sport, err := u.teamWithSport(ctx, teamID)
	if err != nil {
		return nil, 0, err
	}

	suggestions, err := u.suggester.SuggestLineup(ctx, sport.Name, count)
	if err != nil {
		u.log.Warnw("lineup suggestion failed", "team_id", teamID, "error", err)
		return &team, 0, nil
	}
	if len(suggestions) == 0 {
		return &team, 0, nil
	}

	players := entities.ClonePlayers(team.Players)
	for _, s := range suggestions {
		number := s.Number
		if number == "" {
			number = u.gen.JerseyNumber()
		}
		name := s.Name
		if name == "" {
			name = u.gen.PlayerName()
		}
		position := s.Position
		if position == "" {
			position = "SUB"
		}
		players = append(players, entities.Player{
			ID:       u.gen.NextID(),
			Name:     name,
			Number:   number,
			Position: position,
			OnBench:  true,
		})
	}
	team.Players = players

	team = u.commit(ctx, team, true)
	u.log.Infow("suggestions applied", "team_id", teamID, "added", len(suggestions))
	return &team, len(suggestions), nil
}
