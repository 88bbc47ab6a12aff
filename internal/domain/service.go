package domain

import (
	"context"
	"time"
)

type PasswordEncoder interface {
	Hash(raw string) (string, error)
	Compare(hashedPassword, password string) bool
}

type TokenService interface {
	Generate(user *User) (string, time.Time, error)
	// Validate returns the user ID bound to the token. ErrInvalidToken on
	// bad signature, malformed structure or expiry.
	Validate(token string) (string, error)
}

// ApprovalTokenService mints the single-purpose tokens embedded in the
// admin approval links.
type ApprovalTokenService interface {
	Generate(userID string) (string, error)
	Validate(token string) (string, error)
}

type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// ApprovalNotifier sends the approval-flow emails. Delivery is best effort:
// implementations log failures and never propagate them to the caller.
type ApprovalNotifier interface {
	NotifyAdmin(ctx context.Context, username, email, approvalToken string)
	NotifyApplicant(ctx context.Context, email, username string, approved bool)
}

type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
