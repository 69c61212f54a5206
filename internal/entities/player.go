// Package entities contains core business entities.
package entities

// Player is a member of a team roster. Coordinates mirror the assigned slot's
// coordinates while the player is a starter and are meaningless on the bench.
type Player struct {
	ID                string  `json:"id"`
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

// Starter reports whether the player currently occupies a slot.
func (p Player) Starter() bool {
	return !p.OnBench && p.SlotIndex != nil
}

// PlayerPatch carries free-text field edits for a player. Nil fields are left
// untouched; slot assignment and bench state are never part of a patch.
type PlayerPatch struct {
	Name              *string `json:"name,omitempty"`
	Number            *string `json:"number,omitempty"`
	SecondaryPosition *string `json:"secondaryPosition,omitempty"`
	TertiaryPosition  *string `json:"tertiaryPosition,omitempty"`
}

// SlotIndexOf returns a pointer to idx, for building players in place.
func SlotIndexOf(idx int) *int {
	return &idx
}
