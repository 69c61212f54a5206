package roster

import (
	"testing"

	"github.com/ZachR72/Lineup-Maker/internal/catalog"
	"github.com/ZachR72/Lineup-Maker/internal/entities"
	"github.com/ZachR72/Lineup-Maker/internal/generator"

	"github.com/stretchr/testify/require"
)

func soccer(t *testing.T) entities.Sport {
	t.Helper()
	sport, ok := catalog.SportByID(entities.SportSoccer)
	require.True(t, ok)
	return sport
}

func basketball(t *testing.T) entities.Sport {
	t.Helper()
	sport, ok := catalog.SportByID(entities.SportBasketball)
	require.True(t, ok)
	return sport
}

func newTeam(t *testing.T, sport entities.Sport) entities.Team {
	t.Helper()
	players := InitialLineup(sport.Formations[0], generator.NewSequence())
	return entities.Team{
		ID:             "team-1",
		Name:           "Test Team",
		SportID:        sport.ID,
		Players:        players,
		FormationIndex: 0,
		FormationRosters: entities.FormationRosters{
			0: entities.ClonePlayers(players),
		},
	}
}

func requireSlotInvariant(t *testing.T, players []entities.Player, formation entities.Formation) {
	t.Helper()
	seen := map[int]string{}
	for _, p := range players {
		if p.OnBench {
			require.Nil(t, p.SlotIndex, "bench player %s must have no slot", p.ID)
			continue
		}
		require.NotNil(t, p.SlotIndex, "starter %s must have a slot", p.ID)
		idx := *p.SlotIndex
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(formation.Slots))
		prev, dup := seen[idx]
		require.False(t, dup, "slot %d held by both %s and %s", idx, prev, p.ID)
		seen[idx] = p.ID
	}
}

func TestInitialLineupFillsEverySlot(t *testing.T) {
	sport := soccer(t)
	players := InitialLineup(sport.Formations[0], generator.NewSequence())

	require.Len(t, players, len(sport.Formations[0].Slots))
	requireSlotInvariant(t, players, sport.Formations[0])
	for i, p := range players {
		require.Equal(t, sport.Formations[0].Slots[i].Label, p.Position)
		require.Equal(t, sport.Formations[0].Slots[i].X, p.X)
		require.False(t, p.OnBench)
	}
}

func TestSwitchFormationSynthesizesRosterAndRelabels(t *testing.T) {
	sport := soccer(t)
	team := newTeam(t, sport)

	moved := SwitchFormation(team, 1, sport.Formations[1])

	require.Equal(t, 1, moved.FormationIndex)
	require.Len(t, moved.Players, len(team.Players))
	requireSlotInvariant(t, moved.Players, sport.Formations[1])

	// Same seat, new jersey: indices survive, labels and coordinates change.
	for i, p := range moved.Players {
		require.Equal(t, *team.Players[i].SlotIndex, *p.SlotIndex)
		slot := sport.Formations[1].Slots[*p.SlotIndex]
		require.Equal(t, slot.Label, p.Position)
		require.Equal(t, slot.X, p.X)
		require.Equal(t, slot.Y, p.Y)
	}

	// Both snapshots recorded.
	require.Len(t, moved.FormationRosters[0], len(team.Players))
	require.Len(t, moved.FormationRosters[1], len(team.Players))
}

func TestSwitchFormationRoundTripRestoresExactRoster(t *testing.T) {
	sport := soccer(t)
	team := newTeam(t, sport)

	before := entities.ClonePlayers(team.Players)
	there := SwitchFormation(team, 1, sport.Formations[1])
	back := SwitchFormation(there, 0, sport.Formations[0])

	require.Equal(t, 0, back.FormationIndex)
	require.Equal(t, before, back.Players)
}

func TestSwitchFormationRestoresSavedSnapshotVerbatim(t *testing.T) {
	sport := soccer(t)
	team := newTeam(t, sport)

	// Visit formation 1, arrange it (bench the GK), then leave and come back.
	there := SwitchFormation(team, 1, sport.Formations[1])
	there.Players = ToggleBench(there.Players, there.Players[0].ID, sport.Formations[1])
	there.FormationRosters[1] = entities.ClonePlayers(there.Players)

	away := SwitchFormation(there, 0, sport.Formations[0])
	back := SwitchFormation(away, 1, sport.Formations[1])

	require.Equal(t, there.Players, back.Players)
	require.True(t, back.Players[0].OnBench)
}

func TestSwitchToSmallerFormationBenchesOutOfBoundsOnly(t *testing.T) {
	// Soccer 11 slots down to basketball-sized is cross-sport; use a hand-built
	// 5-slot target against the 11 soccer starters instead.
	sport := soccer(t)
	team := newTeam(t, sport)
	small := entities.Formation{
		Name:  "Five",
		Slots: sport.Formations[0].Slots[:5],
	}

	moved := SwitchFormation(team, 1, small)

	require.Len(t, moved.Players, 11)
	requireSlotInvariant(t, moved.Players, small)
	for i, p := range moved.Players {
		if i < 5 {
			require.False(t, p.OnBench, "player %d should keep slot", i)
			require.Equal(t, i, *p.SlotIndex)
			require.Equal(t, small.Slots[i].Label, p.Position)
		} else {
			require.True(t, p.OnBench, "player %d should be benched", i)
			require.Nil(t, p.SlotIndex)
		}
	}

	// The formation left behind still remembers the full arrangement.
	require.Len(t, moved.FormationRosters[0], 11)
	for _, p := range moved.FormationRosters[0] {
		require.False(t, p.OnBench)
	}
}

func TestSwitchFormationDoesNotMutateInput(t *testing.T) {
	sport := soccer(t)
	team := newTeam(t, sport)
	before := entities.ClonePlayers(team.Players)

	_ = SwitchFormation(team, 1, sport.Formations[1])

	require.Equal(t, before, team.Players)
	require.Equal(t, 0, team.FormationIndex)
}

func TestFillSlotDisplacesOccupant(t *testing.T) {
	sport := basketball(t)
	formation := sport.Formations[0]
	gen := generator.NewSequence()
	players := InitialLineup(formation, gen)
	players = AddBenchPlayer(players, gen)
	sub := players[len(players)-1]

	occupant := players[2]
	out := FillSlot(players, 2, sub.ID, formation.Slots[2])

	requireSlotInvariant(t, out, formation)
	require.Len(t, out, len(players))

	bySlot := StartersBySlot(out)
	require.Equal(t, sub.ID, bySlot[2].ID)
	require.Equal(t, formation.Slots[2].Label, bySlot[2].Position)
	for _, p := range out {
		if p.ID == occupant.ID {
			require.True(t, p.OnBench)
			require.Nil(t, p.SlotIndex)
		}
	}
}

func TestFillSlotUnknownPlayerIsNoOp(t *testing.T) {
	sport := basketball(t)
	formation := sport.Formations[0]
	players := InitialLineup(formation, generator.NewSequence())

	out := FillSlot(players, 2, "missing", formation.Slots[2])

	require.Equal(t, players, out)
}

func TestFillSlotWithNewInVacantSlot(t *testing.T) {
	sport := basketball(t)
	formation := sport.Formations[0]
	gen := generator.NewSequence()
	players := InitialLineup(formation, gen)
	players = ToggleBench(players, players[3].ID, formation) // vacate slot 3

	out := FillSlotWithNew(players, 3, formation.Slots[3], gen)

	require.Len(t, out, len(players)+1)
	requireSlotInvariant(t, out, formation)
	created := out[len(out)-1]
	require.Equal(t, 3, *created.SlotIndex)
	require.Equal(t, formation.Slots[3].Label, created.Position)
	require.False(t, created.OnBench)
}

func TestFillSlotWithNewDisplacesUnexpectedOccupant(t *testing.T) {
	sport := basketball(t)
	formation := sport.Formations[0]
	gen := generator.NewSequence()
	players := InitialLineup(formation, gen)
	occupant := players[1]

	out := FillSlotWithNew(players, 1, formation.Slots[1], gen)

	requireSlotInvariant(t, out, formation)
	bySlot := StartersBySlot(out)
	require.NotEqual(t, occupant.ID, bySlot[1].ID)
	for _, p := range out {
		if p.ID == occupant.ID {
			require.True(t, p.OnBench)
		}
	}
}

func TestToggleBenchBenchesStarter(t *testing.T) {
	sport := basketball(t)
	formation := sport.Formations[0]
	players := InitialLineup(formation, generator.NewSequence())

	out := ToggleBench(players, players[0].ID, formation)

	require.Len(t, out, len(players))
	require.True(t, out[0].OnBench)
	require.Nil(t, out[0].SlotIndex)
	requireSlotInvariant(t, out, formation)
}

func TestToggleBenchPromotesIntoLowestVacantSlot(t *testing.T) {
	sport := basketball(t)
	formation := sport.Formations[0]
	gen := generator.NewSequence()
	players := InitialLineup(formation, gen)

	// Vacate slots 1 and 3, then promote one substitute.
	players = ToggleBench(players, players[1].ID, formation)
	players = ToggleBench(players, players[3].ID, formation)
	players = AddBenchPlayer(players, gen)
	sub := players[len(players)-1]

	out := ToggleBench(players, sub.ID, formation)

	requireSlotInvariant(t, out, formation)
	bySlot := StartersBySlot(out)
	require.Equal(t, sub.ID, bySlot[1].ID, "lowest vacant slot wins")
	require.Equal(t, formation.Slots[1].Label, bySlot[1].Position)
}

func TestToggleBenchPromoteIntoFullFormationDisplacesLastStarter(t *testing.T) {
	sport := basketball(t)
	formation := sport.Formations[0]
	gen := generator.NewSequence()
	players := InitialLineup(formation, gen)
	players = AddBenchPlayer(players, gen)
	sub := players[len(players)-1]

	// Last starter in insertion order holds slot 4.
	last := players[4]
	out := ToggleBench(players, sub.ID, formation)

	require.Len(t, out, len(players))
	requireSlotInvariant(t, out, formation)
	bySlot := StartersBySlot(out)
	require.Equal(t, sub.ID, bySlot[4].ID)
	for _, p := range out {
		if p.ID == last.ID {
			require.True(t, p.OnBench)
			require.Nil(t, p.SlotIndex)
		}
	}
}

func TestToggleBenchVacantThenFullScenario(t *testing.T) {
	sport := basketball(t)
	formation := sport.Formations[0]
	gen := generator.NewSequence()
	players := InitialLineup(formation, gen)

	// One vacant slot, two bench players.
	players = ToggleBench(players, players[2].ID, formation)
	players = AddBenchPlayer(players, gen)
	benchA := players[2]
	benchB := players[len(players)-1]

	// First promotion takes the vacant slot.
	players = ToggleBench(players, benchB.ID, formation)
	requireSlotInvariant(t, players, formation)
	require.Equal(t, benchB.ID, StartersBySlot(players)[2].ID)

	// Second promotion displaces the last starter in insertion order.
	starters := make([]entities.Player, 0)
	for _, p := range players {
		if !p.OnBench {
			starters = append(starters, p)
		}
	}
	lastStarter := starters[len(starters)-1]

	players = ToggleBench(players, benchA.ID, formation)
	requireSlotInvariant(t, players, formation)
	require.Equal(t, benchA.ID, StartersBySlot(players)[*lastStarter.SlotIndex].ID)
	for _, p := range players {
		if p.ID == lastStarter.ID {
			require.True(t, p.OnBench)
		}
	}
}

func TestToggleBenchRoundTripKeepsPlayerCount(t *testing.T) {
	sport := basketball(t)
	formation := sport.Formations[0]
	players := InitialLineup(formation, generator.NewSequence())
	id := players[0].ID

	out := ToggleBench(players, id, formation)
	out = ToggleBench(out, id, formation)

	require.Len(t, out, len(players))
	requireSlotInvariant(t, out, formation)
	for _, p := range out {
		if p.ID == id {
			require.False(t, p.OnBench)
		}
	}
}

func TestToggleBenchUnknownPlayerIsNoOp(t *testing.T) {
	sport := basketball(t)
	formation := sport.Formations[0]
	players := InitialLineup(formation, generator.NewSequence())

	out := ToggleBench(players, "missing", formation)

	require.Equal(t, players, out)
}

func TestAddBenchPlayer(t *testing.T) {
	players := AddBenchPlayer(nil, generator.NewSequence())

	require.Len(t, players, 1)
	require.True(t, players[0].OnBench)
	require.Nil(t, players[0].SlotIndex)
	require.Equal(t, "New Prospect", players[0].Name)
	require.Equal(t, "SUB", players[0].Position)
}

func TestApplyPatchMergesOnlyProvidedFields(t *testing.T) {
	p := entities.Player{
		ID:        "p1",
		Name:      "Old Name",
		Number:    "7",
		Position:  "GK",
		OnBench:   false,
		SlotIndex: entities.SlotIndexOf(0),
	}

	name := "New Name"
	secondary := "CB"
	out := ApplyPatch(p, entities.PlayerPatch{Name: &name, SecondaryPosition: &secondary})

	require.Equal(t, "New Name", out.Name)
	require.Equal(t, "CB", out.SecondaryPosition)
	require.Equal(t, "7", out.Number)
	require.Equal(t, "GK", out.Position)
	require.False(t, out.OnBench)
	require.Equal(t, 0, *out.SlotIndex)
}

func TestStartersBySlotSkipsBench(t *testing.T) {
	sport := basketball(t)
	formation := sport.Formations[0]
	players := InitialLineup(formation, generator.NewSequence())
	players = ToggleBench(players, players[4].ID, formation)

	bySlot := StartersBySlot(players)

	require.Len(t, bySlot, 4)
	_, ok := bySlot[4]
	require.False(t, ok)
}
