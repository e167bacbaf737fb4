package telegram

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moodguard/moodguard/internal/domain"
)

// Transport method implementations. Client satisfies domain.Transport.

func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, opts *domain.SendOptions) (int64, error) {
	payload := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}
	if opts != nil {
		if opts.ParseMode != "" {
			payload["parse_mode"] = opts.ParseMode
		}
		if opts.ReplyToMessageID != 0 {
			payload["reply_to_message_id"] = opts.ReplyToMessageID
		}
	}

	result, err := c.call(ctx, "sendMessage", payload)
	if err != nil {
		return 0, err
	}

	var msg Message
	if err := json.Unmarshal(result, &msg); err != nil {
		return 0, fmt.Errorf("failed to decode sent message: %w", err)
	}
	return msg.MessageID, nil
}

func (c *Client) EditMessageText(ctx context.Context, chatID, messageID int64, text string) error {
	_, err := c.call(ctx, "editMessageText", map[string]any{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
	})
	return err
}

func (c *Client) SendPhoto(ctx context.Context, chatID int64, photoURL string, replyToMessageID int64) error {
	payload := map[string]any{
		"chat_id": chatID,
		"photo":   photoURL,
	}
	if replyToMessageID != 0 {
		payload["reply_to_message_id"] = replyToMessageID
	}
	_, err := c.call(ctx, "sendPhoto", payload)
	return err
}

func (c *Client) RestrictMember(ctx context.Context, chatID, userID int64, canSend bool) error {
	_, err := c.call(ctx, "restrictChatMember", map[string]any{
		"chat_id":     chatID,
		"user_id":     userID,
		"permissions": chatPermissions{CanSendMessages: canSend},
	})
	return err
}

// GetUserDisplayName resolves a user's name via getChat, preferring the
// username and falling back to the first name.
func (c *Client) GetUserDisplayName(ctx context.Context, userID int64) (string, error) {
	result, err := c.call(ctx, "getChat", map[string]any{"chat_id": userID})
	if err != nil {
		return "", err
	}

	var chat Chat
	if err := json.Unmarshal(result, &chat); err != nil {
		return "", fmt.Errorf("failed to decode chat info: %w", err)
	}
	if chat.Username != "" {
		return chat.Username, nil
	}
	return chat.FirstName, nil
}
