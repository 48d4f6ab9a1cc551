// expense-backend/internal/handlers/transaction_handler.go
package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"expense-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TransactionHandler инкапсулирует зависимости обработчиков транзакций.
type TransactionHandler struct {
	DB *gorm.DB
}

// NewTransactionHandler создает новый экземпляр TransactionHandler.
func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{DB: db}
}

// CreateTransactionInput defines the expected body for creating a transaction.
type CreateTransactionInput struct {
	UserID    uint    `json:"user_id"`
	Title     string  `json:"title"`
	Amount    float64 `json:"amount"`
	Type      string  `json:"type"`
	Category  *string `json:"category"`
	Note      string  `json:"note"`
	CreatedAt string  `json:"created_at"`
}

// UpdateTransactionInput defines the patch body for partial updates.
// Поля, отсутствующие в запросе (nil), остаются без изменений.
type UpdateTransactionInput struct {
	Title    *string  `json:"title"`
	Amount   *float64 `json:"amount"`
	Type     *string  `json:"type"`
	Category *string  `json:"category"`
	Note     *string  `json:"note"`
}

// TransactionResponse defines the transaction shape returned by the API.
type TransactionResponse struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	Amount    float64 `json:"amount"`
	Type      string  `json:"type"`
	Category  *string `json:"category"`
	Note      string  `json:"note"`
	CreatedAt string  `json:"created_at"`
}

func toTransactionResponse(t models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID,
		Title:     t.Title,
		Amount:    t.Amount,
		Type:      t.Type,
		Category:  t.Category,
		Note:      t.Note,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

// isoLayouts covers the ISO-8601 variants clients actually send.
var isoLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseISOTime(value string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format: %q", value)
}

// CreateTransactionHandler persists a new income or expense record.
func (h *TransactionHandler) CreateTransactionHandler(c *gin.Context) {
	var input CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	createdAt := time.Now().UTC()
	if input.CreatedAt != "" {
		parsed, err := parseISOTime(input.CreatedAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
			return
		}
		createdAt = parsed
	}

	transaction := models.Transaction{
		UserID:    input.UserID,
		Title:     input.Title,
		Amount:    input.Amount,
		Type:      input.Type,
		Category:  input.Category,
		Note:      input.Note,
		CreatedAt: createdAt,
	}

	// Тип здесь не проверяется: ограничение CHECK в базе отклонит все,
	// кроме income и expense.
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&transaction).Error
	}); err != nil {
		slog.Error("Failed to create transaction", "error", err, "user_id", input.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create transaction"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Transaction created", "transaction": transaction.ID})
}

// listQuery применяет фильтры user_id/type/date, общие для списка и экспорта.
func (h *TransactionHandler) listQuery(c *gin.Context) *gorm.DB {
	query := h.DB.Model(&models.Transaction{}).Where("user_id = ?", c.Query("user_id"))

	if t := c.Query("type"); t == "income" || t == "expense" {
		query = query.Where("type = ?", t)
	}

	// Фильтр по одному дню имеет приоритет и отключает диапазон,
	// даже если сам не распарсился.
	if date := c.Query("date"); date != "" {
		if day, err := time.Parse("2006-01-02", date); err == nil {
			query = query.Where("created_at >= ? AND created_at < ?", day, day.AddDate(0, 0, 1))
		}
		return query
	}

	if start := c.Query("start_date"); start != "" {
		if from, err := time.Parse("2006-01-02", start); err == nil {
			query = query.Where("created_at >= ?", from)
		}
	}
	if end := c.Query("end_date"); end != "" {
		if to, err := time.Parse("2006-01-02", end); err == nil {
			// включительно до конца дня
			query = query.Where("created_at <= ?", to.Add(23*time.Hour+59*time.Minute+59*time.Second))
		}
	}
	return query
}

// ListTransactionsHandler returns a user's transactions, newest first.
func (h *TransactionHandler) ListTransactionsHandler(c *gin.Context) {
	var transactions []models.Transaction
	if err := h.listQuery(c).Order("created_at DESC").Find(&transactions).Error; err != nil {
		slog.Error("Failed to list transactions", "error", err, "user_id", c.Query("user_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch transactions"})
		return
	}

	result := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, toTransactionResponse(t))
	}
	c.JSON(http.StatusOK, result)
}

// GetTransactionHandler retrieves a single transaction by ID.
func (h *TransactionHandler) GetTransactionHandler(c *gin.Context) {
	var transaction models.Transaction
	if err := h.DB.First(&transaction, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		slog.Error("Failed to fetch transaction", "error", err, "id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch transaction"})
		return
	}
	c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// UpdateTransactionHandler applies a partial update to a transaction.
func (h *TransactionHandler) UpdateTransactionHandler(c *gin.Context) {
	var input UpdateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var transaction models.Transaction
	if err := h.DB.First(&transaction, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		slog.Error("Failed to fetch transaction", "error", err, "id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update transaction"})
		return
	}

	if input.Title != nil {
		transaction.Title = *input.Title
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.Category != nil {
		transaction.Category = input.Category
	}
	if input.Note != nil {
		transaction.Note = *input.Note
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(&transaction).Error
	}); err != nil {
		slog.Error("Failed to update transaction", "error", err, "id", transaction.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction updated"})
}

// DeleteTransactionHandler permanently removes a transaction.
func (h *TransactionHandler) DeleteTransactionHandler(c *gin.Context) {
	var transaction models.Transaction
	if err := h.DB.First(&transaction, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		slog.Error("Failed to fetch transaction", "error", err, "id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete transaction"})
		return
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&transaction).Error
	}); err != nil {
		slog.Error("Failed to delete transaction", "error", err, "id", transaction.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}
