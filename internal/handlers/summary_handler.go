// expense-backend/internal/handlers/summary_handler.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"expense-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SummaryHandler инкапсулирует зависимости обработчиков сводок.
type SummaryHandler struct {
	DB *gorm.DB
}

// NewSummaryHandler создает новый экземпляр SummaryHandler.
func NewSummaryHandler(db *gorm.DB) *SummaryHandler {
	return &SummaryHandler{DB: db}
}

// categorySum - одна строка сгруппированной агрегации.
type categorySum struct {
	Category *string `json:"category"`
	Amount   float64 `json:"amount"`
}

// MonthlySummaryHandler returns per-category totals for one calendar month.
// type=all отключает фильтр по типу; по умолчанию считаются расходы.
func (h *SummaryHandler) MonthlySummaryHandler(c *gin.Context) {
	userID := c.Query("user_id")
	month := c.Query("month")
	typeFilter := c.DefaultQuery("type", "expense")

	if userID == "" || month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and month are required"})
		return
	}

	start, err := time.Parse("2006-01", month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month format (YYYY-MM)"})
		return
	}
	// Полуоткрытый диапазон; декабрь корректно переходит в январь
	end := start.AddDate(0, 1, 0)

	query := h.DB.Model(&models.Transaction{}).
		Select("category, SUM(amount) as amount").
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end)

	if typeFilter != "all" {
		query = query.Where("type = ?", typeFilter)
	}

	var rows []categorySum
	if err := query.Group("category").Scan(&rows).Error; err != nil {
		slog.Error("Failed to compute monthly summary", "error", err, "user_id", userID, "month", month)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute summary"})
		return
	}

	// Итог складывается из групповых сумм, без повторного запроса
	var total float64
	for _, r := range rows {
		total += r.Amount
	}
	if rows == nil {
		rows = make([]categorySum, 0)
	}

	c.JSON(http.StatusOK, gin.H{
		"total_expense": fmt.Sprintf("%.2f", total),
		"by_category":   rows,
	})
}
