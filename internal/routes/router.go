// expense-backend/internal/routes/router.go
package routes

import (
	"expense-backend/internal/handlers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes регистрирует все маршруты приложения.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	auth := handlers.NewAuthHandler(db)
	users := handlers.NewUserHandler(db)
	transactions := handlers.NewTransactionHandler(db)
	summary := handlers.NewSummaryHandler(db)

	// --- АУТЕНТИФИКАЦИЯ ---
	r.POST("/register", auth.RegisterHandler)
	r.POST("/login", auth.LoginHandler)
	r.PUT("/change-password/:user_id", auth.ChangePasswordHandler)

	// --- ТРАНЗАКЦИИ ---
	tx := r.Group("/transactions")
	{
		tx.POST("", transactions.CreateTransactionHandler)
		tx.GET("", transactions.ListTransactionsHandler)
		tx.GET("/export", transactions.ExportTransactionsHandler)
		tx.GET("/:id", transactions.GetTransactionHandler)
		tx.PUT("/:id", transactions.UpdateTransactionHandler)
		tx.DELETE("/:id", transactions.DeleteTransactionHandler)
	}

	// --- ПОЛЬЗОВАТЕЛИ ---
	u := r.Group("/users")
	{
		u.GET("/:user_id", users.GetUserHandler)
		u.GET("/:user_id/summary", users.GetUserSummaryHandler)
	}
	// Детальный вариант с created_at, исторический путь клиента
	r.GET("/user/:user_id", users.GetUserDetailsHandler)

	// --- СВОДКИ ---
	r.GET("/summary/expenses", summary.MonthlySummaryHandler)
}
