package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormationRostersJSONUsesStringKeys(t *testing.T) {
	team := Team{
		ID:      "t1",
		Name:    "Keys",
		SportID: SportSoccer,
		FormationRosters: FormationRosters{
			0: {{ID: "p1", Name: "A", OnBench: false, SlotIndex: SlotIndexOf(0)}},
			2: {{ID: "p2", Name: "B", OnBench: true}},
		},
	}

	data, err := json.Marshal(team)
	require.NoError(t, err)

	// Integer map keys must land as decimal strings in the persisted form.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	var rosters map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["formationRosters"], &rosters))
	require.Contains(t, rosters, "0")
	require.Contains(t, rosters, "2")

	var back Team
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, team.FormationRosters, back.FormationRosters)
}

func TestTeamJSONRoundTrip(t *testing.T) {
	team := Team{
		ID:             "t1",
		Name:           "Round Trip",
		SportID:        SportHockey,
		FormationIndex: 1,
		LastModified:   1700000000000,
		Players: []Player{
			{ID: "p1", Name: "A", Number: "9", Position: "C", X: 50, Y: 60, SlotIndex: SlotIndexOf(4)},
			{ID: "p2", Name: "B", Number: "31", Position: "SUB", OnBench: true},
		},
	}

	data, err := json.Marshal(team)
	require.NoError(t, err)

	var back Team
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, team, back)

	// Benched player's absent slotIndex stays absent, not zero.
	require.Nil(t, back.Players[1].SlotIndex)
}

func TestTeamCloneIsIndependent(t *testing.T) {
	team := Team{
		ID:      "t1",
		Players: []Player{{ID: "p1", SlotIndex: SlotIndexOf(3)}},
		FormationRosters: FormationRosters{
			0: {{ID: "p1", SlotIndex: SlotIndexOf(3)}},
		},
	}

	clone := team.Clone()
	*clone.Players[0].SlotIndex = 9
	clone.Players[0].Name = "changed"
	clone.FormationRosters[0][0].Name = "changed"

	require.Equal(t, 3, *team.Players[0].SlotIndex)
	require.Empty(t, team.Players[0].Name)
	require.Empty(t, team.FormationRosters[0][0].Name)
}
