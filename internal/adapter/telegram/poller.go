package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/moodguard/moodguard/internal/domain"
)

const pollTimeoutSeconds = 50

// UpdateHandler processes one inbound message. Handlers must not panic;
// errors are theirs to log.
type UpdateHandler interface {
	HandleMessage(ctx context.Context, msg domain.InboundMessage)
}

// Poller drives long polling against getUpdates and dispatches each
// update to the handler, in order, one at a time.
type Poller struct {
	client  *Client
	handler UpdateHandler
	offset  int64
}

func NewPoller(client *Client, handler UpdateHandler) *Poller {
	return &Poller{client: client, handler: handler}
}

// Run polls until ctx is cancelled. Transient poll errors are logged and
// retried after a short pause.
func (p *Poller) Run(ctx context.Context) error {
	slog.Info("Bot is polling...")
	for {
		updates, err := p.getUpdates(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Error("getUpdates failed, backing off", "error", err)
			select {
			case <-p.client.clock.After(3 * time.Second):
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}

		for _, upd := range updates {
			if upd.UpdateID >= p.offset {
				p.offset = upd.UpdateID + 1
			}
			if upd.Message == nil {
				continue
			}
			p.handler.HandleMessage(ctx, toInbound(upd.Message))
		}
	}
}

func (p *Poller) getUpdates(ctx context.Context) ([]Update, error) {
	result, err := p.client.call(ctx, "getUpdates", map[string]any{
		"offset":          p.offset,
		"timeout":         pollTimeoutSeconds,
		"allowed_updates": []string{"message"},
	})
	if err != nil {
		return nil, err
	}

	var updates []Update
	if err := json.Unmarshal(result, &updates); err != nil {
		return nil, fmt.Errorf("failed to decode updates: %w", err)
	}
	return updates, nil
}

func toInbound(m *Message) domain.InboundMessage {
	msg := domain.InboundMessage{
		MessageID: m.MessageID,
		ChatID:    m.Chat.ID,
		Text:      m.Text,
	}
	if m.From != nil {
		msg.From = domain.Member{
			ID:        m.From.ID,
			FirstName: m.From.FirstName,
			Username:  m.From.Username,
		}
	}
	for _, u := range m.NewChatMembers {
		msg.NewMembers = append(msg.NewMembers, domain.Member{
			ID:        u.ID,
			FirstName: u.FirstName,
			Username:  u.Username,
		})
	}
	return msg
}
