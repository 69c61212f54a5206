// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/ZachR72/Lineup-Maker/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// TeamInterface exposes whole-collection team persistence. Both operations are
// best-effort by contract: Load yields the empty collection on a missing or
// malformed store, Save logs failures and never propagates them, so a storage
// problem can cost an edit but never crash the caller.
type TeamInterface interface {
	Load(ctx context.Context) []entities.Team
	Save(ctx context.Context, teams []entities.Team)
}
