package domain

import (
	"time"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionApprove:
		return ActionApprove, nil
	case ActionReject:
		return ActionReject, nil
	}
	return "", ErrInvalidAction
}

// Transition resolves an approval decision against the current status.
// The only legal transitions are PENDING→APPROVED and PENDING→REJECTED.
func Transition(from Status, action Action) (Status, error) {
	if from != StatusPending {
		return from, ErrApprovalAlreadyResolved
	}
	switch action {
	case ActionApprove:
		return StatusApproved, nil
	case ActionReject:
		return StatusRejected, nil
	}
	return from, ErrInvalidAction
}

// User is the core domain object. Pure Go struct, no database tags.
type User struct {
	ID        string
	Username  string
	Email     string
	Password  string // bcrypt hash
	Role      Role
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewUser(id, username, email, passwordHash string) *User {
	return &User{
		ID:       id,
		Username: username,
		Email:    email,
		Password: passwordHash,
		Role:     RoleUser,
		Status:   StatusPending,
	}
}
