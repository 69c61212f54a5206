// Package entities contains core business entities.
package entities

// SportID identifies a sport in the catalog.
type SportID string

const (
	// SportHockey is ice hockey.
	SportHockey SportID = "hockey"
	// SportSoccer is association football.
	SportSoccer SportID = "soccer"
	// SportBaseball is baseball.
	SportBaseball SportID = "baseball"
	// SportFootball is american football.
	SportFootball SportID = "football"
	// SportBasketball is basketball.
	SportBasketball SportID = "basketball"
)

// Slot is a labeled field position with percentage coordinates on a normalized field.
type Slot struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Formation is a named, ordered set of slots. Slot order defines slotIndex addressing,
// stable only within the formation.
type Formation struct {
	Name  string `json:"name"`
	Slots []Slot `json:"positions"`
}

// Sport is a catalog entry: display metadata plus an ordered, non-empty formation list.
type Sport struct {
	ID         SportID     `json:"id"`
	Name       string      `json:"name"`
	Icon       string      `json:"icon"`
	Formations []Formation `json:"formations"`
	Examples   []string    `json:"examples"`
}
