package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"opencoffee/domain"
	oerrors "opencoffee/errors"
	"opencoffee/mocks"
)

func newInvitationConfig() InvitationConfig {
	return InvitationConfig{
		ChannelID:     "C0000000000",
		IgnoreMembers: []domain.Member{"UBOT"},
		Catalog:       CatalogFor("en"),
		SendDelay:     0,
	}
}

func TestInvitationService_Run(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)

	messaging := mocks.NewMockIMessagingService(ctrl)
	generator := mocks.NewMockIPairGenerator(ctrl)
	history := mocks.NewMockIHistoryRepository(ctrl)
	cfg := newInvitationConfig()

	members := []domain.Member{"U3", "U1", "U2", "U4"}
	expected := domain.PairingResult{
		Pairs:   []domain.Pair{domain.NewPair("U1", "U3"), domain.NewPair("U2", "U4")},
		Ignored: nil,
	}

	messaging.EXPECT().
		ListChannelMembers(gomock.Any(), cfg.ChannelID, cfg.IgnoreMembers).
		Return(members, nil)
	generator.EXPECT().
		ComputePairs(gomock.Any(), domain.NewRoster(members), messaging).
		Return(expected, nil)

	text := fmt.Sprintf(cfg.Catalog.Invitation, cfg.ChannelID)
	messaging.EXPECT().SendMessageToPair(gomock.Any(), expected.Pairs[0], text).Return(nil)
	messaging.EXPECT().SendMessageToPair(gomock.Any(), expected.Pairs[1], text).Return(nil)

	history.EXPECT().
		StoreRound(gomock.Any()).
		Do(func(round domain.Round) {
			req.Equal(expected.Pairs, round.Pairs)
			req.False(round.CreatedAt.IsZero())
		}).
		Return(nil)

	service := NewInvitationService(log, messaging, generator, history, cfg)
	result, err := service.Run(ctx)
	req.NoError(err)
	req.Equal(expected, result)
}

func TestInvitationService_ContinuesAfterFailedSend(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)

	messaging := mocks.NewMockIMessagingService(ctrl)
	generator := mocks.NewMockIPairGenerator(ctrl)
	history := mocks.NewMockIHistoryRepository(ctrl)
	cfg := newInvitationConfig()

	result := domain.PairingResult{
		Pairs: []domain.Pair{domain.NewPair("U1", "U2"), domain.NewPair("U3", "U4")},
	}

	messaging.EXPECT().
		ListChannelMembers(gomock.Any(), cfg.ChannelID, cfg.IgnoreMembers).
		Return([]domain.Member{"U1", "U2", "U3", "U4"}, nil)
	generator.EXPECT().
		ComputePairs(gomock.Any(), gomock.Any(), messaging).
		Return(result, nil)

	sendErr := oerrors.NewCommunicationError("send message", fmt.Errorf("boom"))
	messaging.EXPECT().SendMessageToPair(gomock.Any(), result.Pairs[0], gomock.Any()).Return(sendErr)
	// The second pair is still invited and the round still stored.
	messaging.EXPECT().SendMessageToPair(gomock.Any(), result.Pairs[1], gomock.Any()).Return(nil)
	history.EXPECT().StoreRound(gomock.Any()).Return(nil)

	service := NewInvitationService(log, messaging, generator, history, cfg)
	_, err := service.Run(ctx)
	req.NoError(err)
}

func TestInvitationService_FatalErrors(t *testing.T) {
	remoteErr := oerrors.NewCommunicationError("list channel members", fmt.Errorf("boom"))

	tests := []struct {
		description string
		setup       func(messaging *mocks.MockIMessagingService, generator *mocks.MockIPairGenerator, history *mocks.MockIHistoryRepository)
	}{
		{
			"Should abort when the roster cannot be fetched",
			func(messaging *mocks.MockIMessagingService, _ *mocks.MockIPairGenerator, _ *mocks.MockIHistoryRepository) {
				messaging.EXPECT().
					ListChannelMembers(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, remoteErr)
			},
		},
		{
			"Should abort when pair generation fails",
			func(messaging *mocks.MockIMessagingService, generator *mocks.MockIPairGenerator, _ *mocks.MockIHistoryRepository) {
				messaging.EXPECT().
					ListChannelMembers(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]domain.Member{"U1", "U2"}, nil)
				generator.EXPECT().
					ComputePairs(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.PairingResult{}, remoteErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			log := logs.GetLoggerFromLevel(slog.LevelError)

			messaging := mocks.NewMockIMessagingService(ctrl)
			generator := mocks.NewMockIPairGenerator(ctrl)
			history := mocks.NewMockIHistoryRepository(ctrl)
			tt.setup(messaging, generator, history)

			service := NewInvitationService(log, messaging, generator, history, newInvitationConfig())
			_, err := service.Run(context.Background())
			req.ErrorIs(err, remoteErr)
		})
	}
}
