package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emrebktas/modpack-assistant/internal/application/dto"
	"github.com/emrebktas/modpack-assistant/internal/domain"
)

func newChatFixture(t *testing.T, gen *fakeGenerator) (*ChatService, *memChatStore) {
	t.Helper()
	store := newMemChatStore()
	svc := NewChatService(
		&memConversationRepo{store: store},
		&memMessageRepo{store: store},
		gen,
		zap.NewNop(),
	)
	return svc, store
}

func TestChatCreatesConversationAndTwoMessages(t *testing.T) {
	gen := &fakeGenerator{reply: "Use a boat to move villagers."}
	svc, _ := newChatFixture(t, gen)
	ctx := context.Background()

	resp, err := svc.Chat(ctx, "user-1", &dto.ChatReq{Prompt: "how do I move villagers"})
	require.NoError(t, err)
	assert.Equal(t, "Use a boat to move villagers.", resp.Response)
	assert.NotEmpty(t, resp.ConversationID)
	assert.NotEmpty(t, resp.MessageID)

	messages, err := svc.ListMessages(ctx, resp.ConversationID, "user-1")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "USER", messages[0].Role)
	assert.Equal(t, "how do I move villagers", messages[0].Content)
	assert.Equal(t, "ASSISTANT", messages[1].Role)
	assert.Equal(t, "Use a boat to move villagers.", messages[1].Content)
	assert.Equal(t, resp.MessageID, messages[1].ID)

	conversations, err := svc.ListConversations(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, "how do I move villagers", conversations[0].Title)
}

func TestChatAugmentsPrompt(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	svc, _ := newChatFixture(t, gen)

	_, err := svc.Chat(context.Background(), "user-1", &dto.ChatReq{Prompt: "best fuel for furnaces?"})
	require.NoError(t, err)

	assert.Contains(t, gen.lastPrompt, "Minecraft assistant chatbot")
	assert.Contains(t, gen.lastPrompt, "best fuel for furnaces?")
}

func TestChatReusesExistingConversation(t *testing.T) {
	gen := &fakeGenerator{reply: "answer"}
	svc, _ := newChatFixture(t, gen)
	ctx := context.Background()

	first, err := svc.Chat(ctx, "user-1", &dto.ChatReq{Prompt: "first question"})
	require.NoError(t, err)

	second, err := svc.Chat(ctx, "user-1", &dto.ChatReq{
		Prompt:         "follow-up question",
		ConversationID: first.ConversationID,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ConversationID, second.ConversationID)

	messages, err := svc.ListMessages(ctx, first.ConversationID, "user-1")
	require.NoError(t, err)
	assert.Len(t, messages, 4)

	conversations, err := svc.ListConversations(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, conversations, 1)
}

func TestChatForeignConversationAppendsNothing(t *testing.T) {
	gen := &fakeGenerator{reply: "answer"}
	svc, store := newChatFixture(t, gen)
	ctx := context.Background()

	owned, err := svc.Chat(ctx, "owner", &dto.ChatReq{Prompt: "mine"})
	require.NoError(t, err)

	before := len(store.messages)
	_, err = svc.Chat(ctx, "intruder", &dto.ChatReq{
		Prompt:         "gimme",
		ConversationID: owned.ConversationID,
	})
	assert.ErrorIs(t, err, domain.ErrConversationNotFound)
	assert.Equal(t, before, len(store.messages))
	assert.Equal(t, 1, gen.calls) // no LLM call for the intruder
}

func TestChatGenerationFailureKeepsUserTurn(t *testing.T) {
	gen := &fakeGenerator{err: domain.ErrGeneration}
	svc, store := newChatFixture(t, gen)
	ctx := context.Background()

	_, err := svc.Chat(ctx, "user-1", &dto.ChatReq{Prompt: "doomed question"})
	assert.ErrorIs(t, err, domain.ErrGeneration)

	// The conversation and the user turn survive the failure.
	require.Len(t, store.conversations, 1)
	var convID string
	for id := range store.conversations {
		convID = id
	}
	messages, err := svc.ListMessages(ctx, convID, "user-1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "USER", messages[0].Role)
	assert.Equal(t, "doomed question", messages[0].Content)
}

func TestCreateConversationDefaultsTitle(t *testing.T) {
	svc, _ := newChatFixture(t, &fakeGenerator{})
	ctx := context.Background()

	conv, err := svc.CreateConversation(ctx, "user-1", "   ")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConversationTitle, conv.Title)

	named, err := svc.CreateConversation(ctx, "user-1", "Redstone plans")
	require.NoError(t, err)
	assert.Equal(t, "Redstone plans", named.Title)
}

func TestListConversationsMostRecentFirst(t *testing.T) {
	gen := &fakeGenerator{reply: "answer"}
	svc, _ := newChatFixture(t, gen)
	ctx := context.Background()

	first, err := svc.Chat(ctx, "user-1", &dto.ChatReq{Prompt: "older thread"})
	require.NoError(t, err)
	second, err := svc.Chat(ctx, "user-1", &dto.ChatReq{Prompt: "newer thread"})
	require.NoError(t, err)

	// Touch the older thread again; it should move to the front.
	_, err = svc.Chat(ctx, "user-1", &dto.ChatReq{Prompt: "bump", ConversationID: first.ConversationID})
	require.NoError(t, err)

	conversations, err := svc.ListConversations(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, first.ConversationID, conversations[0].ID)
	assert.Equal(t, second.ConversationID, conversations[1].ID)
}

func TestRenameAndDeleteConversation(t *testing.T) {
	gen := &fakeGenerator{reply: "answer"}
	svc, store := newChatFixture(t, gen)
	ctx := context.Background()

	resp, err := svc.Chat(ctx, "user-1", &dto.ChatReq{Prompt: "to be renamed"})
	require.NoError(t, err)

	require.NoError(t, svc.RenameConversation(ctx, resp.ConversationID, "user-1", "My base plans"))
	conversations, err := svc.ListConversations(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "My base plans", conversations[0].Title)

	// Only the owner may rename or delete.
	assert.ErrorIs(t, svc.RenameConversation(ctx, resp.ConversationID, "intruder", "stolen"),
		domain.ErrConversationNotFound)
	assert.ErrorIs(t, svc.DeleteConversation(ctx, resp.ConversationID, "intruder"),
		domain.ErrConversationNotFound)

	require.NoError(t, svc.DeleteConversation(ctx, resp.ConversationID, "user-1"))
	assert.Empty(t, store.conversations)
	assert.Empty(t, store.messages)

	assert.ErrorIs(t, svc.DeleteConversation(ctx, resp.ConversationID, "user-1"),
		domain.ErrConversationNotFound)
}

func TestDeleteUnknownConversation(t *testing.T) {
	svc, _ := newChatFixture(t, &fakeGenerator{})
	err := svc.DeleteConversation(context.Background(), uuid.NewString(), "user-1")
	assert.ErrorIs(t, err, domain.ErrConversationNotFound)
}
