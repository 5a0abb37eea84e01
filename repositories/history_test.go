package repositories

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"opencoffee/domain"
	oerrors "opencoffee/errors"
)

func newTestRepository(t *testing.T) HistoryRepository {
	t.Helper()
	// Reduced to 16 Mo for testing (avoid gigabytes of preallocated storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewHistoryRepository(db, logs.GetLoggerFromLevel(slog.LevelError))
}

func TestHistoryRepository_LatestRoundReturnsNewest(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	older := domain.Round{
		ID:        uuid.New(),
		Pairs:     []domain.Pair{domain.NewPair("U1", "U2")},
		CreatedAt: time.Now().UTC().Add(-24 * time.Hour),
	}
	newer := domain.Round{
		ID:        uuid.New(),
		Pairs:     []domain.Pair{domain.NewPair("U3", "U4"), domain.NewPair("U5", "U6")},
		CreatedAt: time.Now().UTC(),
	}

	req.NoError(repository.StoreRound(older))
	req.NoError(repository.StoreRound(newer))

	latest, err := repository.LatestRound()
	req.NoError(err)
	req.Equal(newer.ID, latest.ID)
	req.Equal(newer.Pairs, latest.Pairs)
	req.True(newer.CreatedAt.Equal(latest.CreatedAt))
}

func TestHistoryRepository_LatestRoundOnEmptyStore(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	_, err := repository.LatestRound()
	req.ErrorIs(err, oerrors.ErrNoHistory)
}

func TestHistoryRepository_PairsSerializeAsTwoElementArrays(t *testing.T) {
	req := require.New(t)
	round := domain.Round{
		ID:        uuid.New(),
		Pairs:     []domain.Pair{domain.NewPair("U2", "U1")},
		CreatedAt: time.Now().UTC(),
	}

	bytes, err := json.Marshal(fromRound(round))
	req.NoError(err)
	req.Contains(string(bytes), `"pairs":[["U1","U2"]]`)

	var stored storedRound
	req.NoError(json.Unmarshal(bytes, &stored))
	restored, err := toRound(stored)
	req.NoError(err)
	req.Equal(round.ID, restored.ID)
	req.Equal(round.Pairs, restored.Pairs)
}
