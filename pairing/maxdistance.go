package pairing

import (
	"context"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"opencoffee/contract"
	"opencoffee/domain"

	"github.com/samber/lo"
)

// MaxDistanceGenerator biases pairing toward members with the lowest
// channel co-occurrence: people who rarely meet get matched first. The
// recent-exchange exclusion still applies on top of the distance order.
type MaxDistanceGenerator struct {
	log      *slog.Logger
	cfg      Config
	rng      *rand.Rand
	progress contract.IProgressReporter
}

func NewMaxDistanceGenerator(log *slog.Logger, cfg Config, rng *rand.Rand, progress contract.IProgressReporter) *MaxDistanceGenerator {
	return &MaxDistanceGenerator{log: log, cfg: cfg, rng: rng, progress: progress}
}

// ComputePairs sorts the roster, builds the distance matrix, then consumes
// a shuffled working copy front to back. For each head member the remaining
// members are bucketed by distance; buckets are walked in ascending order
// and candidates drawn at random within a bucket, under one retry budget
// shared across the whole search for that member. The shuffle only breaks
// ties among equal-distance candidates.
func (g *MaxDistanceGenerator) ComputePairs(ctx context.Context, roster domain.Roster, service contract.IMessagingService) (domain.PairingResult, error) {
	// The sorted roster fixes the matrix row/column mapping and must stay
	// untouched for the whole run; only the working copy is consumed.
	sorted := domain.NewRoster(roster)

	matrix, err := BuildDistanceMatrix(ctx, service, sorted, g.cfg.CheckDelay)
	if err != nil {
		return domain.PairingResult{}, err
	}

	working := slices.Clone([]domain.Member(sorted))
	g.rng.Shuffle(len(working), func(i, j int) {
		working[i], working[j] = working[j], working[i]
	})

	var result domain.PairingResult
	g.progress.Start(len(working))

	for len(working) > 1 {
		current := working[0]
		working = working[1:]

		candidate, err := g.findCandidate(ctx, service, matrix, sorted, current, working)
		if err != nil {
			return domain.PairingResult{}, err
		}

		if candidate == nil {
			g.log.Debug("no valid pair found", "member", current)
			result.Ignored = append(result.Ignored, current)
			g.progress.Add(1)
		} else {
			idx := slices.Index(working, *candidate)
			working = slices.Delete(working, idx, idx+1)
			result.Pairs = append(result.Pairs, domain.NewPair(current, *candidate))
			g.progress.Add(2)
		}
	}

	g.progress.Add(len(working))
	result.Ignored = append(result.Ignored, working...)
	g.progress.Done()

	return result, nil
}

// findCandidate walks the distance buckets for current in ascending order,
// drawing and removing random candidates until one passes the eligibility
// check or the retry budget runs out. The initial check is free: the budget
// counts retries beyond it.
func (g *MaxDistanceGenerator) findCandidate(ctx context.Context, service contract.IMessagingService, matrix *DistanceMatrix, sorted domain.Roster, current domain.Member, working []domain.Member) (*domain.Member, error) {
	currentIdx, _ := sorted.IndexOf(current)

	buckets := make(map[int][]domain.Member)
	for _, member := range working {
		memberIdx, _ := sorted.IndexOf(member)
		distance := matrix.At(currentIdx, memberIdx)
		buckets[distance] = append(buckets[distance], member)
	}

	distances := lo.Keys(buckets)
	slices.Sort(distances)

	maxChecks := g.cfg.BacktrackMaxAttempts + 1
	checks := 0

	for _, distance := range distances {
		bucket := buckets[distance]

		// Candidates are removed from the bucket as they are tried, so an
		// ineligible member is never drawn twice. The bucket must be empty
		// before the next distance is considered.
		for len(bucket) > 0 && checks < maxChecks {
			idx := g.rng.Intn(len(bucket))
			candidate := bucket[idx]
			bucket = slices.Delete(bucket, idx, idx+1)

			if checks > 0 {
				time.Sleep(g.cfg.CheckDelay)
			}

			recent, err := service.HasRecentExchange(ctx, domain.NewPair(current, candidate), g.cfg.BacktrackDays, 1)
			if err != nil {
				return nil, err
			}
			checks++

			if !recent {
				return &candidate, nil
			}

			g.log.Debug("recent chat found, trying a different candidate",
				"current", current, "candidate", candidate, "distance", distance)
		}

		if checks >= maxChecks {
			break
		}
	}

	return nil, nil
}
