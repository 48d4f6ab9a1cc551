// expense-backend/config/config.go

package config

import (
	"errors"
	"log/slog"
	"os"

	"expense-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config содержит настройки приложения, прочитанные из окружения.
type Config struct {
	DatabaseURL string
	SecretKey   string
	Port        string
}

// Load reads the runtime configuration from the process environment.
func Load() Config {
	cfg := Config{
		DatabaseURL: os.Getenv("DB_URL"),
		SecretKey:   os.Getenv("SECRET_KEY"),
		Port:        os.Getenv("PORT"),
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = "default_secret_key"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}

// ConnectDB opens the GORM connection pool for the configured database.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("переменная окружения DB_URL не установлена")
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	slog.Info("Успешное подключение к базе данных!")
	return db, nil
}

// AutoMigrate выполняет автоматическую миграцию моделей.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Transaction{})
}
