package domain

import "errors"

// user
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountNotApproved = errors.New("account is not approved")
)

// tokens
var (
	ErrInvalidToken            = errors.New("invalid or expired token")
	ErrInvalidApprovalToken    = errors.New("invalid or expired approval token")
	ErrApprovalAlreadyResolved = errors.New("approval token already used")
	ErrInvalidAction           = errors.New("action must be approve or reject")
)

// chat
var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrGeneration           = errors.New("failed to generate response")
)
