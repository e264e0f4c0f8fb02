package handler

import (
	"net/http"
	"testing"

	"gas-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateExpenseOwnedByCaller(t *testing.T) {
	db := setupTestDB(t)
	seller := seedSeller(t, db)

	c, rec := newContext(t, http.MethodPost, "/api/expenses", ExpenseRequest{
		Description: "Diesel",
		Amount:      120,
		Category:    model.ExpenseCombustivel,
	})
	asUser(c, seller)

	require.NoError(t, CreateExpense(c))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var expense model.Expense
	decodeBody(t, rec, &expense)
	assert.Equal(t, seller.ID, expense.UserID)
	assert.Nil(t, expense.VehicleID)
}

func TestCreateExpenseUnknownVehicle(t *testing.T) {
	db := setupTestDB(t)
	seller := seedSeller(t, db)

	badVehicle := uint(99)
	c, rec := newContext(t, http.MethodPost, "/api/expenses", ExpenseRequest{
		Description: "Pneu",
		Amount:      400,
		Category:    model.ExpenseManutencao,
		VehicleID:   &badVehicle,
	})
	asUser(c, seller)

	require.NoError(t, CreateExpense(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateExpenseWithoutAuth(t *testing.T) {
	setupTestDB(t)

	c, rec := newContext(t, http.MethodPost, "/api/expenses", ExpenseRequest{
		Description: "Diesel",
		Amount:      120,
		Category:    model.ExpenseCombustivel,
	})

	require.NoError(t, CreateExpense(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListExpensesFilterByCategory(t *testing.T) {
	db := setupTestDB(t)
	seller := seedSeller(t, db)

	require.NoError(t, db.Create(&model.Expense{Description: "Diesel", Amount: 120, Category: model.ExpenseCombustivel, UserID: seller.ID}).Error)
	require.NoError(t, db.Create(&model.Expense{Description: "Almoço", Amount: 25, Category: model.ExpenseAlimentacao, UserID: seller.ID}).Error)

	c, rec := newContext(t, http.MethodGet, "/api/expenses?category=COMBUSTIVEL", nil)

	require.NoError(t, ListExpenses(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var expenses []model.Expense
	decodeBody(t, rec, &expenses)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Diesel", expenses[0].Description)
}
