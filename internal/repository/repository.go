// Package repository provides factory for repositories.
package repository

import (
	"fmt"

	"github.com/ZachR72/Lineup-Maker/config"
	"github.com/ZachR72/Lineup-Maker/internal/repository/localstore"
	"github.com/ZachR72/Lineup-Maker/internal/repository/memstore"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	TeamInterface
}

// New constructs a repository backend by name.
func New(name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "file":
		return localstore.New(log, cfg.Storage.Path), nil
	case "memory":
		return memstore.New(), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
