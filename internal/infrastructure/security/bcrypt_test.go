package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHashAndCompare(t *testing.T) {
	svc := NewBcryptService()

	hash, err := svc.Hash("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, svc.Compare(hash, "hunter22"))
	assert.False(t, svc.Compare(hash, "hunter23"))
	assert.False(t, svc.Compare("not-a-hash", "hunter22"))
}
