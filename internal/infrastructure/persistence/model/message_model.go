package model

import (
	"time"

	"github.com/emrebktas/modpack-assistant/internal/domain"
)

type MessageModel struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	ConversationID string    `gorm:"index:idx_messages_conversation_created,priority:1;type:varchar(36);not null"`
	Content        string    `gorm:"type:text;not null"`
	Role           string    `gorm:"type:varchar(20);not null"`
	CreatedAt      time.Time `gorm:"index:idx_messages_conversation_created,priority:2;not null"`
}

func (MessageModel) TableName() string {
	return "messages"
}

func (m *MessageModel) ToDomain() *domain.Message {
	return &domain.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Content:        m.Content,
		Role:           domain.MessageRole(m.Role),
		CreatedAt:      m.CreatedAt,
	}
}

func ToMessageModel(d *domain.Message) *MessageModel {
	return &MessageModel{
		ID:             d.ID,
		ConversationID: d.ConversationID,
		Content:        d.Content,
		Role:           d.Role.String(),
		CreatedAt:      d.CreatedAt,
	}
}
