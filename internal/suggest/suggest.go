// Package suggest integrates the optional AI lineup suggestion collaborator.
// The core treats it purely as a bulk-populate source: a failed or empty result
// must never block an editor flow.
package suggest

import "context"

// Suggestion is one generated player proposal.
type Suggestion struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Number   string `json:"number"`
}

// Suggester produces fictional player suggestions for a sport.
type Suggester interface {
	SuggestLineup(ctx context.Context, sportName string, count int) ([]Suggestion, error)
}

// Disabled is the Suggester used when no API key is configured.
type Disabled struct{}

// SuggestLineup always returns no suggestions.
func (Disabled) SuggestLineup(_ context.Context, _ string, _ int) ([]Suggestion, error) {
	return nil, nil
}
