//go:generate go run go.uber.org/mock/mockgen -source=history.go -destination=../mocks/mock_history_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"opencoffee/domain"
	oerrors "opencoffee/errors"
)

type IHistoryRepository interface {
	StoreRound(round domain.Round) error
	LatestRound() (domain.Round, error)
}

// HistoryRepository persists pairing rounds in BadgerDB so the reminder
// flow can come back to the pairs produced by the previous invitation.
type HistoryRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewHistoryRepository(db *badger.DB, log *slog.Logger) HistoryRepository {
	return HistoryRepository{db: db, log: log}
}

const roundKeyPrefix = "round:"

// storedRound is the on-disk shape. Pairs serialize as 2-element arrays.
type storedRound struct {
	ID    string             `json:"id"`
	At    time.Time          `json:"at"`
	Pairs [][2]domain.Member `json:"pairs"`
}

// StoreRound persists a round under the key "round:{timestamp_padded}:{uuid}":
//  1. The 19-digit zero padding keeps keys in chronological order under the
//     lexicographical ordering Badger iterates in.
//  2. The UUID disambiguates two rounds stored at the same nanosecond.
func (r HistoryRepository) StoreRound(round domain.Round) error {
	key := fmt.Sprintf("%s%019d:%s", roundKeyPrefix, round.CreatedAt.UnixNano(), round.ID)
	bytes, err := json.Marshal(fromRound(round))
	if err != nil {
		return err
	}
	r.log.Debug("storing pairing round", "key", key, "pairs", len(round.Pairs))
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// LatestRound retrieves the most recent round with a reverse prefix scan.
// Thanks to the padded timestamp the newest key is the first one seen.
// Returns ErrNoHistory when no round was ever stored.
func (r HistoryRepository) LatestRound() (domain.Round, error) {
	var raw []byte
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(roundKeyPrefix)
		// Seek past the highest possible timestamp, then walk backwards.
		seekKey := append([]byte(roundKeyPrefix), []byte("9999999999999999999")...)
		it.Seek(seekKey)

		if !it.ValidForPrefix(prefix) {
			return oerrors.ErrNoHistory
		}
		return it.Item().Value(func(val []byte) error {
			raw = slices.Clone(val)
			return nil
		})
	})
	if err != nil {
		return domain.Round{}, err
	}

	var stored storedRound
	if err := json.Unmarshal(raw, &stored); err != nil {
		return domain.Round{}, err
	}
	return toRound(stored)
}

func fromRound(round domain.Round) storedRound {
	return storedRound{
		ID: round.ID.String(),
		At: round.CreatedAt,
		Pairs: lo.Map(round.Pairs, func(p domain.Pair, _ int) [2]domain.Member {
			return [2]domain.Member{p.First, p.Second}
		}),
	}
}

func toRound(stored storedRound) (domain.Round, error) {
	parsedID, err := uuid.Parse(stored.ID)
	if err != nil {
		return domain.Round{}, err
	}
	return domain.Round{
		ID:        parsedID,
		CreatedAt: stored.At,
		Pairs: lo.Map(stored.Pairs, func(p [2]domain.Member, _ int) domain.Pair {
			return domain.NewPair(p[0], p[1])
		}),
	}, nil
}
