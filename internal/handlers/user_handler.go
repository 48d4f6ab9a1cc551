// expense-backend/internal/handlers/user_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"expense-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserHandler инкапсулирует зависимости обработчиков пользователей.
type UserHandler struct {
	DB *gorm.DB
}

// NewUserHandler создает новый экземпляр UserHandler.
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

// UserResponse defines the structure for user data sent in API responses.
// This helps prevent accidental leakage of the stored password hash.
type UserResponse struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// getUser ищет пользователя и формирует ответ; created_at включается
// только для детального эндпоинта.
func (h *UserHandler) getUser(c *gin.Context, withCreatedAt bool) {
	var user models.User
	if err := h.DB.First(&user, c.Param("user_id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		slog.Error("Failed to fetch user", "error", err, "user_id", c.Param("user_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch user"})
		return
	}

	response := UserResponse{ID: user.ID, Username: user.Username, Email: user.Email}
	if withCreatedAt {
		response.CreatedAt = &user.CreatedAt
	}
	c.JSON(http.StatusOK, response)
}

// GetUserHandler returns the public subset of a user record.
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	h.getUser(c, false)
}

// GetUserDetailsHandler returns the user record including created_at.
func (h *UserHandler) GetUserDetailsHandler(c *gin.Context) {
	h.getUser(c, true)
}

// GetUserSummaryHandler returns all-time income and expense totals and
// the resulting balance for one user.
func (h *UserHandler) GetUserSummaryHandler(c *gin.Context) {
	userID := c.Param("user_id")

	sumByType := func(txType string) (float64, error) {
		var total float64
		err := h.DB.Model(&models.Transaction{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("user_id = ? AND type = ?", userID, txType).
			Scan(&total).Error
		return total, err
	}

	income, err := sumByType("income")
	if err != nil {
		slog.Error("Failed to sum income", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute summary"})
		return
	}
	expense, err := sumByType("expense")
	if err != nil {
		slog.Error("Failed to sum expenses", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_income":  income,
		"total_expense": expense,
		"balance":       income - expense,
	})
}
