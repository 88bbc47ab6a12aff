package domain

import "context"

type UserRepository interface {
	Save(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// ResolveStatus flips a PENDING account to the given terminal status.
	// It must be a single compare-and-swap (UPDATE ... WHERE status = PENDING)
	// and reports whether exactly one row transitioned.
	ResolveStatus(ctx context.Context, id string, to Status) (bool, error)
}

type ConversationRepository interface {
	// Create stores a conversation together with its optional first message
	// in one unit of work, so an implicitly created thread never becomes
	// visible without any messages.
	Create(ctx context.Context, conv *Conversation, first *Message) error
	FindByIDAndUserID(ctx context.Context, id, userID string) (*Conversation, error)
	ListByUserID(ctx context.Context, userID string) ([]*Conversation, error)
	UpdateTitle(ctx context.Context, id, userID, title string) error
	// Delete removes the conversation and its messages: messages first,
	// then the conversation, inside one transaction.
	Delete(ctx context.Context, id, userID string) error
}

type MessageRepository interface {
	// Append stores a message after re-checking that the conversation is
	// owned by userID, and bumps the parent's updated_at in the same
	// transaction. ErrConversationNotFound when ownership does not match.
	Append(ctx context.Context, conversationID, userID string, m *Message) error
	ListByConversation(ctx context.Context, conversationID, userID string) ([]*Message, error)
}
