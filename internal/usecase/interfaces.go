package usecase

import (
	"context"

	"github.com/ZachR72/Lineup-Maker/internal/entities"
)

// TeamUsecaseInterface abstracts team lifecycle operations for the delivery layer.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, name string, sportID entities.SportID) (*entities.Team, error)
	ListTeams(ctx context.Context) ([]entities.Team, error)
	Team(ctx context.Context, teamID string) (*entities.Team, error)
	RenameTeam(ctx context.Context, teamID, name string) (*entities.Team, error)
	DeleteTeam(ctx context.Context, teamID string) error
}

// LineupUsecaseInterface abstracts roster edits against the active team.
type LineupUsecaseInterface interface {
	SwitchFormation(ctx context.Context, teamID string, targetIndex int) (*entities.Team, error)
	FillSlot(ctx context.Context, teamID string, slotIndex int, playerID string) (*entities.Team, error)
	ToggleBench(ctx context.Context, teamID, playerID string) (*entities.Team, error)
	AddBenchPlayer(ctx context.Context, teamID string) (*entities.Team, error)
	UpdatePlayer(ctx context.Context, teamID, playerID string, patch entities.PlayerPatch) (*entities.Team, error)
}

// SessionUsecaseInterface exposes the per-team saved indicator.
type SessionUsecaseInterface interface {
	Saved(teamID string) bool
}

// SuggestUsecaseInterface abstracts the optional AI bulk-populate flow.
type SuggestUsecaseInterface interface {
	SuggestPlayers(ctx context.Context, teamID string, count int) (*entities.Team, int, error)
}
