// Package domain contains core concepts of the coffee-chat system.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"slices"

	"github.com/samber/lo"
)

// Member identifies a participant eligible to be paired. Members are only
// ever compared by equality and lexicographic order.
type Member string

// ChannelID identifies a channel on the messaging service.
type ChannelID string

// Roster is the full, deduplicated, sorted set of members for one pairing
// run. The sort order is load-bearing: distance matrix indices are positions
// in this slice, so a roster must never be re-sorted or mutated mid-run.
type Roster []Member

// NewRoster deduplicates and sorts the given members.
func NewRoster(members []Member) Roster {
	roster := Roster(lo.Uniq(members))
	slices.Sort(roster)
	return roster
}

// IndexOf returns the roster position of m. The boolean is false when m is
// not part of the roster.
func (r Roster) IndexOf(m Member) (int, bool) {
	return slices.BinarySearch(r, m)
}
