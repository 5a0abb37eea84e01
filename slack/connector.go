// Package slack implements the messaging service contract on top of the
// Slack Web API.
package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"opencoffee/contract"
	"opencoffee/domain"
	oerrors "opencoffee/errors"
)

const (
	apiBaseURL  = "https://slack.com/api"
	httpTimeout = 30 * time.Second

	maxRetryAttempts  = 3
	initialRetryDelay = 200 * time.Millisecond
	maxRetryDelay     = 2 * time.Second

	// pageDelay spaces cursor-paginated calls to stay clear of the Slack
	// rate limits.
	pageDelay = 500 * time.Millisecond
)

// Connector talks to the Slack Web API. In test mode conversations are
// still opened and histories read, but no message is ever posted.
type Connector struct {
	log      *slog.Logger
	client   *http.Client
	baseURL  string
	token    string
	testMode bool
}

var _ contract.IMessagingService = (*Connector)(nil)

func NewConnector(log *slog.Logger, token string, testMode bool) *Connector {
	return &Connector{
		log:      log,
		client:   &http.Client{Timeout: httpTimeout},
		baseURL:  apiBaseURL,
		token:    token,
		testMode: testMode,
	}
}

// envelope is the part of every Slack response carrying the call outcome
// and the pagination cursor.
type envelope struct {
	OK               bool   `json:"ok"`
	Err              string `json:"error"`
	ResponseMetadata struct {
		NextCursor string `json:"next_cursor"`
	} `json:"response_metadata"`
}

func (e *envelope) env() *envelope { return e }

type enveloped interface{ env() *envelope }

type conversationsListResponse struct {
	envelope
	Channels []struct {
		ID string `json:"id"`
	} `json:"channels"`
}

type conversationsMembersResponse struct {
	envelope
	Members []domain.Member `json:"members"`
}

type conversationsOpenResponse struct {
	envelope
	Channel struct {
		ID string `json:"id"`
	} `json:"channel"`
}

type postMessageResponse struct {
	envelope
	Ts string `json:"ts"`
}

type conversationsHistoryResponse struct {
	envelope
	Messages []struct {
		Ts string `json:"ts"`
	} `json:"messages"`
}

// call posts a form-encoded request to one Slack Web API method and decodes
// the response into out, retrying transient failures with backoff. An
// "ok": false payload is an application-level error and is not retried.
func (c *Connector) call(ctx context.Context, op, method string, params url.Values, out enveloped) error {
	endpoint := c.baseURL + "/" + method

	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
			if err != nil {
				return err
			}
			req.Header.Set("Authorization", "Bearer "+c.token)
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			resp, err := c.client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("%s returned status %d", method, resp.StatusCode)
			}

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			if err := json.Unmarshal(body, out); err != nil {
				return err
			}

			if env := out.env(); !env.OK {
				return retry.Unrecoverable(fmt.Errorf("%s failed: %s", method, env.Err))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(maxRetryAttempts),
		retry.DelayType(retry.BackOffDelay),
		retry.Delay(initialRetryDelay),
		retry.MaxDelay(maxRetryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.log.Debug("retrying slack call", "method", method, "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return oerrors.NewCommunicationError(op, err)
	}
	return nil
}

// ListPublicChannels returns every accessible, non-archived public channel,
// following the pagination cursor with a courtesy delay between pages.
func (c *Connector) ListPublicChannels(ctx context.Context) ([]domain.ChannelID, error) {
	var ids []domain.ChannelID
	cursor := ""

	for {
		params := url.Values{
			"types":            {"public_channel"},
			"exclude_archived": {"true"},
		}
		if cursor != "" {
			time.Sleep(pageDelay)
			params.Set("cursor", cursor)
		}

		var resp conversationsListResponse
		if err := c.call(ctx, "list channels", "conversations.list", params, &resp); err != nil {
			return nil, err
		}
		for _, channel := range resp.Channels {
			ids = append(ids, domain.ChannelID(channel.ID))
		}

		cursor = resp.ResponseMetadata.NextCursor
		if cursor == "" {
			return ids, nil
		}
	}
}

// ListChannelMembers reads every member of the channel, minus excluding.
func (c *Connector) ListChannelMembers(ctx context.Context, channel domain.ChannelID, excluding []domain.Member) ([]domain.Member, error) {
	var members []domain.Member
	cursor := ""

	for {
		params := url.Values{"channel": {string(channel)}}
		if cursor != "" {
			time.Sleep(pageDelay)
			params.Set("cursor", cursor)
		}

		var resp conversationsMembersResponse
		if err := c.call(ctx, "list channel members", "conversations.members", params, &resp); err != nil {
			return nil, err
		}
		for _, member := range resp.Members {
			if !slices.Contains(excluding, member) {
				members = append(members, member)
			}
		}

		cursor = resp.ResponseMetadata.NextCursor
		if cursor == "" {
			return members, nil
		}
	}
}

// HasRecentExchange reports whether the pair exchanged at least limit
// messages within the last backtrackDays days, by opening their group
// conversation and probing its history with a minimal payload.
func (c *Connector) HasRecentExchange(ctx context.Context, pair domain.Pair, backtrackDays int, limit int) (bool, error) {
	const op = "check recent exchange"

	channelID, err := c.openConversation(ctx, op, pair)
	if err != nil {
		return false, err
	}

	oldest := time.Now().AddDate(0, 0, -backtrackDays).Unix()
	params := url.Values{
		"channel": {channelID},
		"oldest":  {strconv.FormatInt(oldest, 10)},
		"limit":   {strconv.Itoa(limit)},
	}

	var resp conversationsHistoryResponse
	if err := c.call(ctx, op, "conversations.history", params, &resp); err != nil {
		return false, err
	}
	return len(resp.Messages) == limit, nil
}

// SendMessageToPair opens the group conversation with both members and
// posts text into it. Test mode skips the post.
func (c *Connector) SendMessageToPair(ctx context.Context, pair domain.Pair, text string) error {
	const op = "send message"

	channelID, err := c.openConversation(ctx, op, pair)
	if err != nil {
		return err
	}

	if c.testMode {
		c.log.Info("test mode, message not sent", "pair", pair.String())
		return nil
	}

	params := url.Values{
		"channel": {channelID},
		"text":    {text},
	}
	var resp postMessageResponse
	return c.call(ctx, op, "chat.postMessage", params, &resp)
}

func (c *Connector) openConversation(ctx context.Context, op string, pair domain.Pair) (string, error) {
	params := url.Values{
		"users": {fmt.Sprintf("%s,%s", pair.First, pair.Second)},
	}
	var resp conversationsOpenResponse
	if err := c.call(ctx, op, "conversations.open", params, &resp); err != nil {
		return "", err
	}
	return resp.Channel.ID, nil
}
