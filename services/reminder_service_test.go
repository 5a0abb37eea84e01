package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"opencoffee/domain"
	oerrors "opencoffee/errors"
	"opencoffee/mocks"
)

func newReminderConfig() ReminderConfig {
	return ReminderConfig{
		BacktrackDays: 30,
		Catalog:       CatalogFor("en"),
		SendDelay:     0,
	}
}

func TestReminderService_RemindsOnlySilentPairs(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)

	messaging := mocks.NewMockIMessagingService(ctrl)
	history := mocks.NewMockIHistoryRepository(ctrl)
	cfg := newReminderConfig()

	talkative := domain.NewPair("U1", "U2")
	silent := domain.NewPair("U3", "U4")
	round := domain.Round{
		ID:        uuid.New(),
		Pairs:     []domain.Pair{talkative, silent},
		CreatedAt: time.Now().UTC().Add(-72 * time.Hour),
	}

	history.EXPECT().LatestRound().Return(round, nil)

	// The threshold of 5 accounts for the invitation message itself.
	messaging.EXPECT().
		HasRecentExchange(gomock.Any(), talkative, cfg.BacktrackDays, 5).
		Return(true, nil)
	messaging.EXPECT().
		HasRecentExchange(gomock.Any(), silent, cfg.BacktrackDays, 5).
		Return(false, nil)
	messaging.EXPECT().
		SendMessageToPair(gomock.Any(), silent, cfg.Catalog.Reminder).
		Return(nil)

	service := NewReminderService(log, messaging, history, cfg)
	req.NoError(service.Run(ctx))
}

func TestReminderService_NoHistoryIsNotAnError(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)

	messaging := mocks.NewMockIMessagingService(ctrl)
	history := mocks.NewMockIHistoryRepository(ctrl)
	history.EXPECT().LatestRound().Return(domain.Round{}, oerrors.ErrNoHistory)

	service := NewReminderService(log, messaging, history, newReminderConfig())
	req.NoError(service.Run(context.Background()))
}

func TestReminderService_ContinuesAfterFailedSend(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)

	messaging := mocks.NewMockIMessagingService(ctrl)
	history := mocks.NewMockIHistoryRepository(ctrl)
	cfg := newReminderConfig()

	first := domain.NewPair("U1", "U2")
	second := domain.NewPair("U3", "U4")
	history.EXPECT().LatestRound().Return(domain.Round{
		ID:        uuid.New(),
		Pairs:     []domain.Pair{first, second},
		CreatedAt: time.Now().UTC(),
	}, nil)

	messaging.EXPECT().
		HasRecentExchange(gomock.Any(), gomock.Any(), cfg.BacktrackDays, 5).
		Return(false, nil).
		Times(2)

	sendErr := oerrors.NewCommunicationError("send message", fmt.Errorf("boom"))
	messaging.EXPECT().SendMessageToPair(gomock.Any(), first, cfg.Catalog.Reminder).Return(sendErr)
	messaging.EXPECT().SendMessageToPair(gomock.Any(), second, cfg.Catalog.Reminder).Return(nil)

	service := NewReminderService(log, messaging, history, cfg)
	req.NoError(service.Run(ctx))
}

func TestReminderService_AbortsWhenActivityCheckFails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)

	messaging := mocks.NewMockIMessagingService(ctrl)
	history := mocks.NewMockIHistoryRepository(ctrl)
	cfg := newReminderConfig()

	history.EXPECT().LatestRound().Return(domain.Round{
		ID:        uuid.New(),
		Pairs:     []domain.Pair{domain.NewPair("U1", "U2")},
		CreatedAt: time.Now().UTC(),
	}, nil)

	remoteErr := oerrors.NewCommunicationError("check recent exchange", fmt.Errorf("boom"))
	messaging.EXPECT().
		HasRecentExchange(gomock.Any(), gomock.Any(), cfg.BacktrackDays, 5).
		Return(false, remoteErr)

	service := NewReminderService(log, messaging, history, cfg)
	req.ErrorIs(service.Run(context.Background()), remoteErr)
}
