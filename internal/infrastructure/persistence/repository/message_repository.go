package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/emrebktas/modpack-assistant/internal/domain"
	"github.com/emrebktas/modpack-assistant/internal/infrastructure/persistence/model"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Append re-checks ownership, inserts the message and bumps the parent's
// updated_at inside one transaction. The row lock on the conversation
// serializes concurrent appends against the same thread.
func (r *MessageRepository) Append(ctx context.Context, conversationID, userID string, m *domain.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conv model.ConversationModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", conversationID, userID).
			First(&conv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrConversationNotFound
			}
			return fmt.Errorf("failed to find conversation: %w", err)
		}
		if err := tx.Create(model.ToMessageModel(m)).Error; err != nil {
			return fmt.Errorf("failed to create message: %w", err)
		}
		if err := tx.Model(&model.ConversationModel{}).
			Where("id = ?", conversationID).
			Update("updated_at", m.CreatedAt).Error; err != nil {
			return fmt.Errorf("failed to touch conversation: %w", err)
		}
		return nil
	})
}

func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID, userID string) ([]*domain.Message, error) {
	var conv model.ConversationModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", conversationID, userID).
		First(&conv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}

	var models []*model.MessageModel
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at asc, id asc").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	messages := make([]*domain.Message, len(models))
	for i, m := range models {
		messages[i] = m.ToDomain()
	}
	return messages, nil
}
