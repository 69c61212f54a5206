// Package domain contains the editor session controller: it orchestrates user
// edits against one team at a time, funneling every mutation through a single
// commit step so the persisted collection and the per-formation roster memory
// never drift apart.
package domain

import (
	"context"
	"sync"
	"time"

	"github.com/ZachR72/Lineup-Maker/internal/entities"
	"github.com/ZachR72/Lineup-Maker/internal/generator"
	"github.com/ZachR72/Lineup-Maker/internal/repository"
	"github.com/ZachR72/Lineup-Maker/internal/suggest"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx       context.Context
	log       *zap.SugaredLogger
	repo      repository.Repository
	gen       generator.Generator
	suggester suggest.Suggester
	timeout   time.Duration
	status    *saveStatus
	now       func() time.Time
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	gen generator.Generator,
	suggester suggest.Suggester,
	timeout time.Duration,
	autosaveDelay time.Duration,
) *Usecase {
	return &Usecase{
		ctx:       ctx,
		log:       log,
		repo:      repo,
		gen:       gen,
		suggester: suggester,
		timeout:   timeout,
		status:    newSaveStatus(autosaveDelay),
		now:       time.Now,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// findTeam resolves a team from the persisted collection.
func (u *Usecase) findTeam(ctx context.Context, teamID string) (entities.Team, error) {
	for _, t := range u.repo.Load(ctx) {
		if t.ID == teamID {
			return t, nil
		}
	}
	return entities.Team{}, entities.ErrTeamNotFound
}

// commit is the single funnel for mutations: refresh lastModified, keep the
// active formation's roster snapshot in sync (formation switches manage their
// rosters themselves and pass syncRoster=false), rewrite the whole collection
// and flip the saved indicator.
func (u *Usecase) commit(ctx context.Context, team entities.Team, syncRoster bool) entities.Team {
	team.LastModified = u.now().UnixMilli()

	if syncRoster {
		rosters := team.FormationRosters
		if rosters == nil {
			rosters = entities.FormationRosters{}
		}
		rosters[team.FormationIndex] = entities.ClonePlayers(team.Players)
		team.FormationRosters = rosters
	}

	teams := u.repo.Load(ctx)
	replaced := false
	for i := range teams {
		if teams[i].ID == team.ID {
			teams[i] = team.Clone()
			replaced = true
			break
		}
	}
	if !replaced {
		teams = append(teams, team.Clone())
	}
	u.repo.Save(ctx, teams)

	u.status.markUnsaved(team.ID)
	return team
}

// Saved reports the autosave indicator for a team: false immediately after any
// mutation, reverting to true once the configured delay elapses. The underlying
// write is synchronous and already complete either way.
func (u *Usecase) Saved(teamID string) bool {
	return u.status.saved(teamID)
}

// saveStatus tracks the cosmetic saved/unsaved flag per team. The revert timer
// is fire-and-forget; a sequence number keeps overlapping mutations from
// flipping the flag back early.
type saveStatus struct {
	mu    sync.Mutex
	delay time.Duration
	seq   map[string]uint64
	dirty map[string]bool
}

func newSaveStatus(delay time.Duration) *saveStatus {
	return &saveStatus{
		delay: delay,
		seq:   make(map[string]uint64),
		dirty: make(map[string]bool),
	}
}

func (s *saveStatus) markUnsaved(teamID string) {
	s.mu.Lock()
	s.seq[teamID]++
	n := s.seq[teamID]
	s.dirty[teamID] = true
	s.mu.Unlock()

	time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.seq[teamID] == n {
			s.dirty[teamID] = false
		}
	})
}

func (s *saveStatus) saved(teamID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.dirty[teamID]
}

func (s *saveStatus) forget(teamID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.seq, teamID)
	delete(s.dirty, teamID)
}
