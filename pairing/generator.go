package pairing

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"opencoffee/contract"
	oerrors "opencoffee/errors"
)

// Algorithm selects the pair generation strategy.
type Algorithm string

const (
	AlgorithmSimple      Algorithm = "simple"
	AlgorithmMaxDistance Algorithm = "max-distance"
)

// Config carries the knobs shared by every generator.
type Config struct {
	// BacktrackDays is the recent-exchange window: a candidate pair that
	// talked within this many days is not eligible.
	BacktrackDays int
	// BacktrackMaxAttempts is the retry budget for finding an eligible
	// partner before a member is given up on and ignored.
	BacktrackMaxAttempts int
	// CheckDelay is a courtesy pause between successive remote eligibility
	// checks. It has no effect on the result; tests set it to zero.
	CheckDelay time.Duration
}

// NewGenerator builds the generator named by algorithm. The rand source is
// injected so matching runs are reproducible under test.
func NewGenerator(algorithm Algorithm, log *slog.Logger, cfg Config, rng *rand.Rand, progress contract.IProgressReporter) (contract.IPairGenerator, error) {
	switch algorithm {
	case AlgorithmSimple:
		return NewSimpleGenerator(log, cfg, rng, progress), nil
	case AlgorithmMaxDistance:
		return NewMaxDistanceGenerator(log, cfg, rng, progress), nil
	default:
		return nil, fmt.Errorf("%w: %q", oerrors.ErrUnknownAlgorithm, algorithm)
	}
}
