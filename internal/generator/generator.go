// Package generator provides the injected id/number/name generation capability
// so domain logic stays deterministic under test.
package generator

import (
	"math/rand"
	"strconv"

	"github.com/google/uuid"
)

// MockNames is the placeholder pool new players draw display names from.
var MockNames = []string{
	"Alexander", "Jordan", "Marcus", "Elena", "Lucas", "Sophie", "Ryan", "Maya",
	"Liam", "Noah", "Olivia", "James", "Benjamin", "Henry", "Theodore", "Jack",
}

// Generator produces identifiers, jersey numbers and placeholder names.
type Generator interface {
	NextID() string
	JerseyNumber() string
	PlayerName() string
}

// Random is the production generator: UUID ids, numbers 1-99, names from MockNames.
// The package-level rand source keeps it safe for concurrent handlers.
type Random struct{}

// NewRandom constructs a Random generator.
func NewRandom() *Random {
	return &Random{}
}

// NextID returns a fresh UUID string.
func (Random) NextID() string {
	return uuid.NewString()
}

// JerseyNumber returns a number between 1 and 99 as free text.
func (Random) JerseyNumber() string {
	return strconv.Itoa(rand.Intn(99) + 1)
}

// PlayerName draws a name from the mock pool.
func (Random) PlayerName() string {
	return MockNames[rand.Intn(len(MockNames))]
}

// Sequence is a deterministic generator for tests: ids p1, p2, ... with fixed
// number and cycling names.
type Sequence struct {
	n int
}

// NewSequence constructs a Sequence generator.
func NewSequence() *Sequence {
	return &Sequence{}
}

// NextID returns p1, p2, p3, ...
func (g *Sequence) NextID() string {
	g.n++
	return "p" + strconv.Itoa(g.n)
}

// JerseyNumber always returns "10".
func (g *Sequence) JerseyNumber() string {
	return "10"
}

// PlayerName cycles through the mock pool in order.
func (g *Sequence) PlayerName() string {
	return MockNames[g.n%len(MockNames)]
}
