package model

import (
	"time"

	"github.com/emrebktas/modpack-assistant/internal/domain"
)

// UserModel is the database mapping, kept separate from the domain entity
// so the domain layer stays free of GORM.
type UserModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Username  string    `gorm:"uniqueIndex;type:varchar(20);not null"`
	Email     string    `gorm:"uniqueIndex;type:varchar(100);not null"`
	Password  string    `gorm:"type:varchar(100);not null"`
	Role      string    `gorm:"type:varchar(10);not null"`
	Status    string    `gorm:"type:varchar(10);not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) ToDomain() *domain.User {
	return &domain.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Password:  m.Password,
		Role:      domain.Role(m.Role),
		Status:    domain.Status(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(d *domain.User) *UserModel {
	return &UserModel{
		ID:       d.ID,
		Username: d.Username,
		Email:    d.Email,
		Password: d.Password,
		Role:     string(d.Role),
		Status:   string(d.Status),
	}
}
