package memstore

import (
	"context"
	"testing"

	"github.com/ZachR72/Lineup-Maker/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	teams := []entities.Team{
		{ID: "t1", Players: []entities.Player{{ID: "p1", SlotIndex: entities.SlotIndexOf(0)}}},
		{ID: "t2"},
	}
	s.Save(ctx, teams)

	require.Equal(t, teams, s.Load(ctx))
}

func TestStoreIsIsolatedFromCallers(t *testing.T) {
	s := New()
	ctx := context.Background()

	teams := []entities.Team{
		{ID: "t1", Players: []entities.Player{{ID: "p1", Name: "keep", SlotIndex: entities.SlotIndexOf(0)}}},
	}
	s.Save(ctx, teams)

	// Mutating the saved slice must not leak into the store.
	teams[0].Players[0].Name = "mutated"
	*teams[0].Players[0].SlotIndex = 7

	got := s.Load(ctx)
	require.Equal(t, "keep", got[0].Players[0].Name)
	require.Equal(t, 0, *got[0].Players[0].SlotIndex)

	// Mutating a loaded copy must not leak either.
	got[0].Players[0].Name = "mutated again"
	require.Equal(t, "keep", s.Load(ctx)[0].Players[0].Name)
}

func TestSaveReplacesCollection(t *testing.T) {
	s := New()
	ctx := context.Background()

	s.Save(ctx, []entities.Team{{ID: "old"}})
	s.Save(ctx, []entities.Team{{ID: "new"}})

	got := s.Load(ctx)
	require.Len(t, got, 1)
	require.Equal(t, "new", got[0].ID)
}
