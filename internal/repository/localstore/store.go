// Package localstore implements the repository over a single local JSON file,
// the key-value analogue of the browser storage the editor persists to. Storage
// granularity is whole-collection replace-on-write and the writer is always
// last-writer-wins; two processes editing the same file clobber each other,
// which is an accepted limitation of single-user local persistence.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZachR72/Lineup-Maker/internal/entities"

	"go.uber.org/zap"
)

// Store persists the team collection to one JSON file.
type Store struct {
	log  *zap.SugaredLogger
	path string
}

// New creates a file-backed store at path.
func New(log *zap.SugaredLogger, path string) *Store {
	return &Store{
		log:  log.Named("repo.localstore"),
		path: path,
	}
}

// OnStart ensures the parent directory exists.
func (s *Store) OnStart(_ context.Context) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return nil
}

// OnStop is a no-op; every Save is already durable.
func (s *Store) OnStop(_ context.Context) error {
	return nil
}

// Load reads the stored collection. A missing file or unparsable content is
// logged and treated as the empty collection, never surfaced as an error.
func (s *Store) Load(_ context.Context) []entities.Team {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Errorw("failed to read store", "path", s.path, "error", err)
		}
		return []entities.Team{}
	}

	var teams []entities.Team
	if err := json.Unmarshal(data, &teams); err != nil {
		s.log.Errorw("failed to parse store, starting empty", "path", s.path, "error", err)
		return []entities.Team{}
	}
	if teams == nil {
		teams = []entities.Team{}
	}
	return teams
}

// Save serializes the full collection and overwrites the stored value. Failures
// are logged and swallowed: the edit stays live in memory and may be lost if
// the session ends before a later successful write.
func (s *Store) Save(_ context.Context, teams []entities.Team) {
	data, err := json.Marshal(teams)
	if err != nil {
		s.log.Errorw("failed to serialize teams", "error", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.log.Errorw("failed to write store", "path", s.path, "error", err)
	}
}
