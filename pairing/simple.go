package pairing

import (
	"context"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"opencoffee/contract"
	"opencoffee/domain"
)

// SimpleGenerator pairs members at random, retrying a bounded number of
// times when the candidate pair already talked recently.
type SimpleGenerator struct {
	log      *slog.Logger
	cfg      Config
	rng      *rand.Rand
	progress contract.IProgressReporter
}

func NewSimpleGenerator(log *slog.Logger, cfg Config, rng *rand.Rand, progress contract.IProgressReporter) *SimpleGenerator {
	return &SimpleGenerator{log: log, cfg: cfg, rng: rng, progress: progress}
}

// ComputePairs shuffles a working copy of the roster and consumes it front
// to back: the head member is matched with a random remaining member that
// passes the recent-exchange check, or moved to Ignored once the retry
// budget is exhausted. An odd leftover ends in Ignored as well.
func (g *SimpleGenerator) ComputePairs(ctx context.Context, roster domain.Roster, service contract.IMessagingService) (domain.PairingResult, error) {
	working := slices.Clone([]domain.Member(roster))
	g.rng.Shuffle(len(working), func(i, j int) {
		working[i], working[j] = working[j], working[i]
	})

	var result domain.PairingResult
	g.progress.Start(len(working))

	for len(working) > 1 {
		current := working[0]
		working = working[1:]

		idx := g.rng.Intn(len(working))
		candidate := working[idx]

		recent, err := service.HasRecentExchange(ctx, domain.NewPair(current, candidate), g.cfg.BacktrackDays, 1)
		if err != nil {
			return domain.PairingResult{}, err
		}

		retry := 0
		for recent && retry < g.cfg.BacktrackMaxAttempts {
			g.log.Debug("recent chat found, trying a different candidate",
				"current", current, "candidate", candidate)

			idx = g.rng.Intn(len(working))
			candidate = working[idx]
			retry++

			time.Sleep(g.cfg.CheckDelay)

			recent, err = service.HasRecentExchange(ctx, domain.NewPair(current, candidate), g.cfg.BacktrackDays, 1)
			if err != nil {
				return domain.PairingResult{}, err
			}
		}

		if recent {
			g.log.Debug("no valid pair found", "member", current)
			result.Ignored = append(result.Ignored, current)
			g.progress.Add(1)
		} else {
			working = slices.Delete(working, idx, idx+1)
			result.Pairs = append(result.Pairs, domain.NewPair(current, candidate))
			g.progress.Add(2)
		}
	}

	// At most one member is left unconsumed; it has no possible partner.
	g.progress.Add(len(working))
	result.Ignored = append(result.Ignored, working...)
	g.progress.Done()

	return result, nil
}
