package model

import (
	"time"

	"github.com/emrebktas/modpack-assistant/internal/domain"
)

type ConversationModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `gorm:"index:idx_conversations_user_updated,priority:1;type:varchar(36);not null"`
	Title     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"index:idx_conversations_user_updated,priority:2,sort:desc;not null"`
}

func (ConversationModel) TableName() string {
	return "conversations"
}

func (m *ConversationModel) ToDomain() *domain.Conversation {
	return &domain.Conversation{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToConversationModel(d *domain.Conversation) *ConversationModel {
	return &ConversationModel{
		ID:        d.ID,
		UserID:    d.UserID,
		Title:     d.Title,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
