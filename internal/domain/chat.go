package domain

import (
	"strings"
	"time"
)

type MessageRole string

const (
	MessageRoleUser      MessageRole = "USER"
	MessageRoleAssistant MessageRole = "ASSISTANT"
)

func (r MessageRole) String() string {
	return string(r)
}

// Conversation is the aggregate root of a chat thread.
type Conversation struct {
	ID        string
	UserID    string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message belongs to exactly one conversation. Appended, never mutated.
type Message struct {
	ID             string
	ConversationID string
	Content        string
	Role           MessageRole
	CreatedAt      time.Time
}

func (m *Message) IsUser() bool {
	return m.Role == MessageRoleUser
}

const DefaultConversationTitle = "New Conversation"

// DeriveTitle builds a conversation title from the first prompt:
// internal whitespace collapsed, truncated to 50 chars with an ellipsis.
func DeriveTitle(prompt string) string {
	cleaned := strings.Join(strings.Fields(prompt), " ")
	if cleaned == "" {
		return DefaultConversationTitle
	}
	runes := []rune(cleaned)
	if len(runes) > 50 {
		return string(runes[:47]) + "..."
	}
	return cleaned
}
