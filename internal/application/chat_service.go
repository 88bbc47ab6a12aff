package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emrebktas/modpack-assistant/internal/application/dto"
	"github.com/emrebktas/modpack-assistant/internal/domain"
)

type ChatService struct {
	conversations domain.ConversationRepository
	messages      domain.MessageRepository
	generator     domain.Generator
	log           *zap.Logger
}

func NewChatService(
	conversations domain.ConversationRepository,
	messages domain.MessageRepository,
	generator domain.Generator,
	log *zap.Logger,
) *ChatService {
	return &ChatService{
		conversations: conversations,
		messages:      messages,
		generator:     generator,
		log:           log,
	}
}

// Chat drives one request: resolve the conversation, persist the user
// turn, call the model, persist the assistant turn. If generation fails
// the user turn stays persisted and the request fails.
func (s *ChatService) Chat(ctx context.Context, userID string, req *dto.ChatReq) (*dto.ChatResp, error) {
	convID := req.ConversationID
	userMsg := &domain.Message{
		ID:        uuid.NewString(),
		Content:   req.Prompt,
		Role:      domain.MessageRoleUser,
		CreatedAt: time.Now(),
	}

	if convID == "" {
		now := userMsg.CreatedAt
		conv := &domain.Conversation{
			ID:        uuid.NewString(),
			UserID:    userID,
			Title:     domain.DeriveTitle(req.Prompt),
			CreatedAt: now,
			UpdatedAt: now,
		}
		userMsg.ConversationID = conv.ID
		if err := s.conversations.Create(ctx, conv, userMsg); err != nil {
			return nil, err
		}
		convID = conv.ID
	} else {
		userMsg.ConversationID = convID
		if err := s.messages.Append(ctx, convID, userID, userMsg); err != nil {
			return nil, err
		}
	}

	answer, err := s.generator.Generate(ctx, BuildMinecraftPrompt(req.Prompt))
	if err != nil {
		s.log.Warn("generation failed, user turn retained",
			zap.String("conversation_id", convID),
			zap.Error(err))
		return nil, err
	}

	reply := &domain.Message{
		ID:             uuid.NewString(),
		ConversationID: convID,
		Content:        answer,
		Role:           domain.MessageRoleAssistant,
		CreatedAt:      time.Now(),
	}
	if err := s.messages.Append(ctx, convID, userID, reply); err != nil {
		return nil, err
	}

	return &dto.ChatResp{
		Response:       answer,
		ConversationID: convID,
		MessageID:      reply.ID,
	}, nil
}

func (s *ChatService) CreateConversation(ctx context.Context, userID, title string) (*dto.ConversationResp, error) {
	if strings.TrimSpace(title) == "" {
		title = domain.DefaultConversationTitle
	}
	now := time.Now()
	conv := &domain.Conversation{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.conversations.Create(ctx, conv, nil); err != nil {
		return nil, err
	}
	return toConversationResp(conv), nil
}

func (s *ChatService) ListConversations(ctx context.Context, userID string) ([]*dto.ConversationResp, error) {
	conversations, err := s.conversations.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ConversationResp, len(conversations))
	for i, c := range conversations {
		out[i] = toConversationResp(c)
	}
	return out, nil
}

func (s *ChatService) ListMessages(ctx context.Context, conversationID, userID string) ([]*dto.MessageResp, error) {
	messages, err := s.messages.ListByConversation(ctx, conversationID, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MessageResp, len(messages))
	for i, m := range messages {
		out[i] = &dto.MessageResp{
			ID:        m.ID,
			Content:   m.Content,
			Role:      m.Role.String(),
			CreatedAt: m.CreatedAt,
		}
	}
	return out, nil
}

func (s *ChatService) RenameConversation(ctx context.Context, conversationID, userID, title string) error {
	return s.conversations.UpdateTitle(ctx, conversationID, userID, title)
}

func (s *ChatService) DeleteConversation(ctx context.Context, conversationID, userID string) error {
	return s.conversations.Delete(ctx, conversationID, userID)
}

func toConversationResp(c *domain.Conversation) *dto.ConversationResp {
	return &dto.ConversationResp{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
