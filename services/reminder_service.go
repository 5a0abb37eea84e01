package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"opencoffee/contract"
	oerrors "opencoffee/errors"
	"opencoffee/repositories"
)

// reminderExchangeThreshold is the message count a pair must have reached
// for the reminder to be skipped. The value 5 includes the invitation
// message posted by the bot itself.
const reminderExchangeThreshold = 5

// ReminderConfig carries the boundary knobs of a reminder pass.
type ReminderConfig struct {
	// BacktrackDays is the window inspected for pair activity.
	BacktrackDays int
	Catalog       MessageCatalog
	SendDelay     time.Duration
}

// ReminderService revisits the pairs of the latest stored round and nudges
// the ones that never got their conversation going.
type ReminderService struct {
	log       *slog.Logger
	messaging contract.IMessagingService
	history   repositories.IHistoryRepository
	cfg       ReminderConfig
}

func NewReminderService(log *slog.Logger, messaging contract.IMessagingService, history repositories.IHistoryRepository, cfg ReminderConfig) *ReminderService {
	return &ReminderService{log: log, messaging: messaging, history: history, cfg: cfg}
}

// Run sends a reminder to every pair of the latest round that has not
// exchanged enough messages since the invitation. A missing history is not
// an error: there is simply nothing to remind. Activity checks are fatal on
// communication failure, sends are not.
func (s *ReminderService) Run(ctx context.Context) error {
	round, err := s.history.LatestRound()
	if errors.Is(err, oerrors.ErrNoHistory) {
		s.log.Warn("no valid round history found")
		return nil
	}
	if err != nil {
		return err
	}
	s.log.Info("working on round", "round", round.ID, "created_at", round.CreatedAt)

	sent := 0
	for _, pair := range round.Pairs {
		talked, err := s.messaging.HasRecentExchange(ctx, pair, s.cfg.BacktrackDays, reminderExchangeThreshold)
		if err != nil {
			return err
		}
		if talked {
			continue
		}

		s.log.Debug("sending reminder", "pair", pair.String())
		if err := s.messaging.SendMessageToPair(ctx, pair, s.cfg.Catalog.Reminder); err != nil {
			s.log.Warn("sending reminder failed, continuing with the next pair",
				"pair", pair.String(), "error", err)
		} else {
			sent++
		}
		time.Sleep(s.cfg.SendDelay)
	}

	s.log.Info("reminders sent", "count", sent)
	return nil
}
