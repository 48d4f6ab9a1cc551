package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type monthlySummaryBody struct {
	Total      string `json:"total_expense"`
	ByCategory []struct {
		Category *string `json:"category"`
		Amount   float64 `json:"amount"`
	} `json:"by_category"`
}

func getMonthlySummary(t *testing.T, r *gin.Engine, query string) (int, monthlySummaryBody) {
	t.Helper()
	w := performJSON(t, r, http.MethodGet, "/summary/expenses?"+query, nil)
	var body monthlySummaryBody
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w.Code, body
}

func TestMonthlySummaryGrouping(t *testing.T) {
	r, db := setupRouter(t)
	user := createUser(t, db, "alice", "alice@example.com", "x")

	june := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	createTransaction(t, db, user.ID, "Lunch", 30, "expense", "food", june)
	createTransaction(t, db, user.ID, "Dinner", 20, "expense", "food", june.Add(time.Hour))
	createTransaction(t, db, user.ID, "Misc", 10, "expense", "", june.Add(2*time.Hour))
	// Доход не должен попасть в расходную сводку
	createTransaction(t, db, user.ID, "Salary", 500, "income", "", june)

	code, body := getMonthlySummary(t, r, fmt.Sprintf("user_id=%d&month=2024-06", user.ID))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "60.00", body.Total)
	require.Len(t, body.ByCategory, 2)

	sums := map[string]float64{}
	for _, row := range body.ByCategory {
		key := "<nil>"
		if row.Category != nil {
			key = *row.Category
		}
		sums[key] = row.Amount
	}
	assert.Equal(t, 50.0, sums["food"])
	assert.Equal(t, 10.0, sums["<nil>"])
}

func TestMonthlySummaryDecemberRollover(t *testing.T) {
	r, db := setupRouter(t)
	user := createUser(t, db, "alice", "alice@example.com", "x")

	createTransaction(t, db, user.ID, "Gift", 100, "expense", "gifts",
		time.Date(2024, 12, 15, 10, 0, 0, 0, time.UTC))
	createTransaction(t, db, user.ID, "NewYear", 50, "expense", "gifts",
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	code, body := getMonthlySummary(t, r, fmt.Sprintf("user_id=%d&month=2024-12", user.ID))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "100.00", body.Total)
	require.Len(t, body.ByCategory, 1)
	assert.Equal(t, 100.0, body.ByCategory[0].Amount)
}

func TestMonthlySummaryTypeAll(t *testing.T) {
	r, db := setupRouter(t)
	user := createUser(t, db, "alice", "alice@example.com", "x")

	june := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	createTransaction(t, db, user.ID, "Lunch", 30, "expense", "food", june)
	createTransaction(t, db, user.ID, "Salary", 500, "income", "work", june)

	code, body := getMonthlySummary(t, r, fmt.Sprintf("user_id=%d&month=2024-06&type=all", user.ID))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "530.00", body.Total)
	assert.Len(t, body.ByCategory, 2)
}

func TestMonthlySummaryEmptyMonth(t *testing.T) {
	r, db := setupRouter(t)
	user := createUser(t, db, "alice", "alice@example.com", "x")

	code, body := getMonthlySummary(t, r, fmt.Sprintf("user_id=%d&month=2024-06", user.ID))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "0.00", body.Total)
	assert.Empty(t, body.ByCategory)
}

func TestMonthlySummaryValidation(t *testing.T) {
	r, _ := setupRouter(t)

	code, _ := getMonthlySummary(t, r, "month=2024-06")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = getMonthlySummary(t, r, "user_id=1")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = getMonthlySummary(t, r, "user_id=1&month=2024-13")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = getMonthlySummary(t, r, "user_id=1&month=junk")
	assert.Equal(t, http.StatusBadRequest, code)
}
