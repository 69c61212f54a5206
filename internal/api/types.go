// Package api defines the transport DTOs and request bodies of the HTTP surface.
package api

// ErrorResponseErrorCode enumerates machine-readable error codes.
type ErrorResponseErrorCode string

const (
	// NOTFOUND marks missing-resource errors.
	NOTFOUND ErrorResponseErrorCode = "NOT_FOUND"
	// INVALIDARGUMENT marks failed request validation.
	INVALIDARGUMENT ErrorResponseErrorCode = "INVALID_ARGUMENT"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// Slot is a labeled field position.
type Slot struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Formation is a named ordered slot list.
type Formation struct {
	Name      string `json:"name"`
	Positions []Slot `json:"positions"`
}

// Sport is a catalog entry.
type Sport struct {
	Id         string      `json:"id"`
	Name       string      `json:"name"`
	Icon       string      `json:"icon"`
	Formations []Formation `json:"formations"`
	Examples   []string    `json:"examples"`
}

// Player mirrors the persisted player shape.
type Player struct {
	Id                string  `json:"id"`
	Name              string  `json:"name"`
	Number            string  `json:"number"`
	Position          string  `json:"position"`
	SecondaryPosition string  `json:"secondaryPosition,omitempty"`
	TertiaryPosition  string  `json:"tertiaryPosition,omitempty"`
	X                 float64 `json:"x"`
	Y                 float64 `json:"y"`
	OnBench           bool    `json:"onBench"`
	SlotIndex         *int    `json:"slotIndex,omitempty"`
}

// Team is the full team payload.
type Team struct {
	Id             string   `json:"id"`
	Name           string   `json:"name"`
	SportId        string   `json:"sportId"`
	Players        []Player `json:"players"`
	FormationIndex int      `json:"formationIndex"`
	LastModified   int64    `json:"lastModified"`
}

// TeamSummary is the dashboard projection of a team.
type TeamSummary struct {
	Id            string `json:"id"`
	Name          string `json:"name"`
	SportId       string `json:"sportId"`
	StartersCount int    `json:"startersCount"`
	PlayersCount  int    `json:"playersCount"`
	LastModified  int64  `json:"lastModified"`
}

// EditorView is the editor activation payload: the team plus its derived state.
type EditorView struct {
	Team           Team           `json:"team"`
	Formation      Formation      `json:"formation"`
	StartersBySlot map[int]Player `json:"startersBySlot"`
	Bench          []Player       `json:"bench"`
	Saved          bool           `json:"saved"`
}

// CreateTeamRequest creates a team; an empty name gets a sport-based default.
type CreateTeamRequest struct {
	Name    string `json:"name"`
	SportId string `json:"sportId"`
}

// RenameTeamRequest renames a team.
type RenameTeamRequest struct {
	Name string `json:"name"`
}

// SwitchFormationRequest selects a formation by index.
type SwitchFormationRequest struct {
	Index int `json:"index"`
}

// FillSlotRequest fills a slot from the bench, or with a generated player when
// PlayerId is empty.
type FillSlotRequest struct {
	PlayerId string `json:"playerId"`
}

// UpdatePlayerRequest patches free-text player fields; nil fields are untouched.
type UpdatePlayerRequest struct {
	Name              *string `json:"name,omitempty"`
	Number            *string `json:"number,omitempty"`
	SecondaryPosition *string `json:"secondaryPosition,omitempty"`
	TertiaryPosition  *string `json:"tertiaryPosition,omitempty"`
}

// SuggestRequest asks for AI player suggestions.
type SuggestRequest struct {
	Count int `json:"count"`
}

// SuggestResponse reports the refreshed view and how many players were added.
type SuggestResponse struct {
	View  EditorView `json:"view"`
	Added int        `json:"added"`
}
