package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Pair is an unordered couple of distinct members. The canonical form keeps
// the lexicographically smaller member first, so a pair is usable as a
// stable key regardless of the order the members were matched in.
type Pair struct {
	First  Member `json:"first"`
	Second Member `json:"second"`
}

// NewPair builds the canonical pair for a and b.
func NewPair(a, b Member) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{First: a, Second: b}
}

func (p Pair) String() string {
	return fmt.Sprintf("(%s, %s)", p.First, p.Second)
}

// PairingResult is the outcome of one pairing run. Every roster member
// appears exactly once, either inside Pairs or inside Ignored.
type PairingResult struct {
	Pairs   []Pair
	Ignored []Member
}

// Round is a persisted pairing run, kept so the reminder flow can check on
// the pairs produced by the previous invitation.
type Round struct {
	ID        uuid.UUID
	Pairs     []Pair
	CreatedAt time.Time
}
