package domain

import "context"

// SendOptions tune an outgoing message. The zero value sends plain text
// without a reply reference.
type SendOptions struct {
	ParseMode        string // "HTML" or empty for plain text
	ReplyToMessageID int64
}

// Transport abstracts the chat platform. Implementations handle
// rate-limit signals internally via the shared retry wrapper, so callers
// never see a rate-limit error from these methods.
type Transport interface {
	// SendMessage posts text to a chat and returns the new message ID.
	SendMessage(ctx context.Context, chatID int64, text string, opts *SendOptions) (int64, error)

	// EditMessageText replaces the text of a previously sent message.
	EditMessageText(ctx context.Context, chatID, messageID int64, text string) error

	// SendPhoto posts an image by URL, optionally as a reply.
	SendPhoto(ctx context.Context, chatID int64, photoURL string, replyToMessageID int64) error

	// RestrictMember revokes (canSend=false) or restores a member's
	// permission to send messages.
	RestrictMember(ctx context.Context, chatID, userID int64, canSend bool) error

	// GetUserDisplayName resolves a user ID to a display name, preferring
	// the username and falling back to the first name.
	GetUserDisplayName(ctx context.Context, userID int64) (string, error)
}

// NameCache caches display-name lookups in front of the transport
// directory. A miss is (found=false, nil error).
type NameCache interface {
	Get(ctx context.Context, userID int64) (name string, found bool, err error)
	Set(ctx context.Context, userID int64, name string) error
}
