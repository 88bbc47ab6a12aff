package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		action  Action
		want    Status
		wantErr error
	}{
		{name: "pending approve", from: StatusPending, action: ActionApprove, want: StatusApproved},
		{name: "pending reject", from: StatusPending, action: ActionReject, want: StatusRejected},
		{name: "approved cannot re-resolve", from: StatusApproved, action: ActionApprove, wantErr: ErrApprovalAlreadyResolved},
		{name: "approved cannot flip to rejected", from: StatusApproved, action: ActionReject, wantErr: ErrApprovalAlreadyResolved},
		{name: "rejected cannot flip to approved", from: StatusRejected, action: ActionApprove, wantErr: ErrApprovalAlreadyResolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.from, tt.action)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAction(t *testing.T) {
	act, err := ParseAction("approve")
	require.NoError(t, err)
	assert.Equal(t, ActionApprove, act)

	act, err = ParseAction("reject")
	require.NoError(t, err)
	assert.Equal(t, ActionReject, act)

	_, err = ParseAction("destroy")
	assert.ErrorIs(t, err, ErrInvalidAction)

	_, err = ParseAction("")
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestNewUserStartsPending(t *testing.T) {
	u := NewUser("id-1", "steve", "steve@example.com", "hash")
	assert.Equal(t, StatusPending, u.Status)
	assert.Equal(t, RoleUser, u.Role)
}
