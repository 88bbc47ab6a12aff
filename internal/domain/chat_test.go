package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTitle(t *testing.T) {
	long := strings.Repeat("a", 60)

	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{name: "collapses whitespace", prompt: "  hello   world  ", want: "hello world"},
		{name: "short prompt kept as is", prompt: "how do I tame a fox", want: "how do I tame a fox"},
		{name: "long prompt truncated with ellipsis", prompt: long, want: long[:47] + "..."},
		{name: "empty prompt", prompt: "", want: "New Conversation"},
		{name: "blank prompt", prompt: "   \t\n ", want: "New Conversation"},
		{name: "exactly 50 chars untouched", prompt: strings.Repeat("b", 50), want: strings.Repeat("b", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveTitle(tt.prompt)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len([]rune(got)), 50)
		})
	}
}
