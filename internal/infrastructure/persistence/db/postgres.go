package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/emrebktas/modpack-assistant/config"
	"github.com/emrebktas/modpack-assistant/internal/infrastructure/persistence/model"
)

func DSN(cfg *config.PostgresConfig) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Address, cfg.Port, cfg.User, cfg.Password, cfg.DBName)
}

func InitGorm(cfg *config.PostgresConfig) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetMaxOpenConns(cfg.MaxOpen)
	sqlDB.SetConnMaxLifetime(cfg.MaxLife)

	if err := gdb.AutoMigrate(
		&model.UserModel{},
		&model.ConversationModel{},
		&model.MessageModel{},
	); err != nil {
		return nil, err
	}
	return gdb, nil
}
