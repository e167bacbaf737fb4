package domain

// Member identifies a chat participant as reported by the transport.
type Member struct {
	ID        int64
	FirstName string
	Username  string
}

// InboundMessage is a single event delivered by the chat transport:
// either a text message (possibly a command) or a membership update.
type InboundMessage struct {
	MessageID  int64
	ChatID     int64
	From       Member
	Text       string
	NewMembers []Member
}

// IsCommand reports whether the message text is a bot command.
func (m InboundMessage) IsCommand() bool {
	return len(m.Text) > 0 && m.Text[0] == '/'
}
