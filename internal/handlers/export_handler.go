package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"expense-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportTransactionsHandler streams the filtered transaction listing as an
// xlsx attachment. Фильтры те же, что и у обычного списка.
func (h *TransactionHandler) ExportTransactionsHandler(c *gin.Context) {
	var transactions []models.Transaction
	if err := h.listQuery(c).Order("created_at DESC").Find(&transactions).Error; err != nil {
		slog.Error("Failed to fetch transactions for export", "error", err, "user_id", c.Query("user_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch transactions"})
		return
	}

	f := excelize.NewFile()
	sheetName := "Transactions"
	index, _ := f.NewSheet(sheetName)
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"ID", "Title", "Amount", "Type", "Category", "Note", "Date"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, t := range transactions {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), t.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), t.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), t.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), t.Type)
		if t.Category != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), *t.Category)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), t.Note)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), t.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	fileName := fmt.Sprintf("transactions_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
