//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"opencoffee/domain"
)

// IMessagingService is the capability the pairing core consumes to talk to
// the group communication platform. Every method fails with a
// *errors.CommunicationError on a remote fault; pagination is handled by
// the implementation and invisible to callers.
type IMessagingService interface {
	// ListPublicChannels returns the IDs of every accessible public channel.
	ListPublicChannels(ctx context.Context) ([]domain.ChannelID, error)
	// ListChannelMembers returns the members of a channel, minus excluding.
	ListChannelMembers(ctx context.Context, channel domain.ChannelID, excluding []domain.Member) ([]domain.Member, error)
	// HasRecentExchange reports whether the pair exchanged at least limit
	// messages within the last backtrackDays days.
	HasRecentExchange(ctx context.Context, pair domain.Pair, backtrackDays int, limit int) (bool, error)
	// SendMessageToPair opens a group conversation with both members and
	// posts text into it.
	SendMessageToPair(ctx context.Context, pair domain.Pair, text string) error
}

// IPairGenerator turns a roster into disjoint pairs plus the leftover
// members that could not be placed this round.
type IPairGenerator interface {
	ComputePairs(ctx context.Context, roster domain.Roster, service IMessagingService) (domain.PairingResult, error)
}

// IProgressReporter receives per-member accounting during a pairing run:
// one unit when a member is consumed alone, two when a pair is committed.
// Purely an observability affordance.
type IProgressReporter interface {
	Start(total int)
	Add(n int)
	Done()
}
