package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"opencoffee/contract"
	"opencoffee/domain"
	"opencoffee/repositories"
)

// InvitationConfig carries the boundary knobs of an invitation round.
type InvitationConfig struct {
	// ChannelID is the channel whose members form the roster.
	ChannelID domain.ChannelID
	// IgnoreMembers are excluded from pairing (typically bots).
	IgnoreMembers []domain.Member
	Catalog       MessageCatalog
	// SendDelay spaces the invitation sends to respect rate limits.
	SendDelay time.Duration
}

// InvitationService runs one invitation round: fetch the roster, generate
// the pairs, invite each pair and store the round for the reminder flow.
type InvitationService struct {
	log       *slog.Logger
	messaging contract.IMessagingService
	generator contract.IPairGenerator
	history   repositories.IHistoryRepository
	cfg       InvitationConfig
}

func NewInvitationService(log *slog.Logger, messaging contract.IMessagingService, generator contract.IPairGenerator, history repositories.IHistoryRepository, cfg InvitationConfig) *InvitationService {
	return &InvitationService{log: log, messaging: messaging, generator: generator, history: history, cfg: cfg}
}

// Run executes the round. Everything up to and including pair generation is
// fatal on error; a failed invitation send is logged and skipped so one
// unreachable member does not abort the whole round.
func (s *InvitationService) Run(ctx context.Context) (domain.PairingResult, error) {
	members, err := s.messaging.ListChannelMembers(ctx, s.cfg.ChannelID, s.cfg.IgnoreMembers)
	if err != nil {
		return domain.PairingResult{}, err
	}

	roster := domain.NewRoster(members)
	s.log.Info("generating pairs", "channel", s.cfg.ChannelID, "members", len(roster))

	result, err := s.generator.ComputePairs(ctx, roster, s.messaging)
	if err != nil {
		return domain.PairingResult{}, err
	}

	if len(result.Ignored) > 0 {
		s.log.Info("members excluded from this round", "ignored", result.Ignored)
	}

	text := fmt.Sprintf(s.cfg.Catalog.Invitation, s.cfg.ChannelID)
	for _, pair := range result.Pairs {
		if err := s.messaging.SendMessageToPair(ctx, pair, text); err != nil {
			s.log.Warn("sending invitation failed, continuing with the next pair",
				"pair", pair.String(), "error", err)
		}
		time.Sleep(s.cfg.SendDelay)
	}

	round := domain.Round{ID: uuid.New(), Pairs: result.Pairs, CreatedAt: time.Now().UTC()}
	if err := s.history.StoreRound(round); err != nil {
		return domain.PairingResult{}, err
	}
	s.log.Info("round stored", "round", round.ID, "pairs", len(round.Pairs))

	return result, nil
}
