package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/emrebktas/modpack-assistant/internal/domain"
	"github.com/emrebktas/modpack-assistant/internal/infrastructure/persistence/model"
)

type ConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

func (r *ConversationRepository) Create(ctx context.Context, conv *domain.Conversation, first *domain.Message) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.ToConversationModel(conv)).Error; err != nil {
			return err
		}
		if first != nil {
			if err := tx.Create(model.ToMessageModel(first)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}
	return nil
}

func (r *ConversationRepository) FindByIDAndUserID(ctx context.Context, id, userID string) (*domain.Conversation, error) {
	var m model.ConversationModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}
	return m.ToDomain(), nil
}

func (r *ConversationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Conversation, error) {
	var models []*model.ConversationModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at desc").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	conversations := make([]*domain.Conversation, len(models))
	for i, m := range models {
		conversations[i] = m.ToDomain()
	}
	return conversations, nil
}

func (r *ConversationRepository) UpdateTitle(ctx context.Context, id, userID, title string) error {
	res := r.db.WithContext(ctx).
		Model(&model.ConversationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("title", title)
	if res.Error != nil {
		return fmt.Errorf("failed to update title: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrConversationNotFound
	}
	return nil
}

// Delete removes messages first, then the conversation, in one transaction.
// No ORM-level cascade is relied on.
func (r *ConversationRepository) Delete(ctx context.Context, id, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.ConversationModel
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrConversationNotFound
			}
			return fmt.Errorf("failed to find conversation: %w", err)
		}
		if err := tx.Where("conversation_id = ?", id).Delete(&model.MessageModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete messages: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&model.ConversationModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete conversation: %w", err)
		}
		return nil
	})
}
