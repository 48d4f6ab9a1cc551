package main

import (
	"log/slog"
	"os"

	"expense-backend/config"
	"expense-backend/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// main - точка входа в приложение
func main() {
	// .env не обязателен: в контейнере переменные приходят из окружения
	if err := godotenv.Load(); err != nil {
		slog.Warn("Файл .env не найден, используются переменные окружения процесса")
	}

	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		slog.Error("Ошибка подключения к БД", "error", err)
		os.Exit(1)
	}

	// Схема создается автоматически при старте
	if err := config.AutoMigrate(db); err != nil {
		slog.Error("Ошибка миграции схемы", "error", err)
		os.Exit(1)
	}

	r := gin.Default()
	routes.SetupRoutes(r, db)

	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("Сервер остановлен с ошибкой", "error", err)
		os.Exit(1)
	}
}
