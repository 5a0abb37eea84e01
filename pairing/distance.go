// Package pairing implements the pair generation strategies: a randomized
// simple strategy and a distance-guided one that prefers members who rarely
// share a channel.
package pairing

import (
	"context"
	"time"

	"opencoffee/contract"
	"opencoffee/domain"
)

// DistanceMatrix counts, for every couple of roster members, the number of
// public channels both belong to. Only the upper triangle is stored; At
// canonicalizes the index order, so distance(i, j) == distance(j, i).
// Built once per run from channel membership, read-only afterwards.
type DistanceMatrix struct {
	n     int
	cells []int
}

func newDistanceMatrix(n int) *DistanceMatrix {
	return &DistanceMatrix{n: n, cells: make([]int, n*(n+1)/2)}
}

// offset maps a canonical (i <= j) coordinate onto the flat triangular
// storage: row i starts after the i previous rows of n, n-1, ... cells.
func (m *DistanceMatrix) offset(i, j int) int {
	if j < i {
		i, j = j, i
	}
	return i*m.n - i*(i-1)/2 + (j - i)
}

// At returns the co-occurrence count between roster positions i and j.
func (m *DistanceMatrix) At(i, j int) int {
	return m.cells[m.offset(i, j)]
}

func (m *DistanceMatrix) increment(i, j int) {
	m.cells[m.offset(i, j)]++
}

// Size returns the roster size the matrix was built for.
func (m *DistanceMatrix) Size() int {
	return m.n
}

// BuildDistanceMatrix scans every public channel visible to the service and
// counts shared memberships between roster members. The roster must already
// be sorted: matrix indices are roster positions.
//
// A courtesy delay is applied between successive remote calls to respect
// the service rate limits. Any remote failure aborts the build; a partial
// matrix is never returned.
func BuildDistanceMatrix(ctx context.Context, service contract.IMessagingService, roster domain.Roster, delay time.Duration) (*DistanceMatrix, error) {
	matrix := newDistanceMatrix(len(roster))

	channels, err := service.ListPublicChannels(ctx)
	if err != nil {
		return nil, err
	}

	for _, channel := range channels {
		time.Sleep(delay)

		members, err := service.ListChannelMembers(ctx, channel, nil)
		if err != nil {
			return nil, err
		}

		// Resolve channel members to roster positions; members outside the
		// roster do not contribute to any distance.
		present := make([]int, 0, len(members))
		for _, member := range members {
			if idx, ok := roster.IndexOf(member); ok {
				present = append(present, idx)
			}
		}

		for a := 0; a < len(present); a++ {
			for b := a + 1; b < len(present); b++ {
				matrix.increment(present[a], present[b])
			}
		}
	}

	return matrix, nil
}
