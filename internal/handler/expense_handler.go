package handler

import (
	"net/http"
	"strings"

	"gas-service/internal/middleware"
	"gas-service/internal/model"
	"gas-service/pkg/database"
	"gas-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ExpenseRequest defines the structure for expense creation requests
type ExpenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	VehicleID   *uint   `json:"vehicle_id"`
	Notes       string  `json:"notes"`
}

// ListExpenses retrieves expenses with their owner and vehicle.
func ListExpenses(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB().
		Preload("User").
		Preload("Vehicle").
		Order("created_at desc")

	if category := c.QueryParam("category"); category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	if search := c.QueryParam("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(description) LIKE ?", pattern)
	}

	var expenses []model.Expense
	if result := query.Find(&expenses); result.Error != nil {
		log.Error("Failed to list expenses", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve expenses"})
	}

	log.Info("Expenses retrieved", zap.Int("count", len(expenses)))
	return c.JSON(http.StatusOK, expenses)
}

// CreateExpense records an expense owned by the authenticated user.
func CreateExpense(c echo.Context) error {
	log := logger.FromContext(c)

	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
	}

	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	if req.VehicleID != nil {
		var vehicle model.Vehicle
		if result := database.GetDB().First(&vehicle, *req.VehicleID); result.Error != nil {
			log.Error("Vehicle not found", zap.Uint("vehicle_id", *req.VehicleID), zap.Error(result.Error))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
		}
	}

	expense := model.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Notes:       req.Notes,
		UserID:      claims.UserID,
		VehicleID:   req.VehicleID,
	}

	if result := database.GetDB().Create(&expense); result.Error != nil {
		log.Error("Failed to create expense", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create expense"})
	}

	database.GetDB().Preload("User").Preload("Vehicle").First(&expense, expense.ID)

	log.Info("Expense created",
		zap.Uint("expense_id", expense.ID),
		zap.String("category", expense.Category),
		zap.Float64("amount", expense.Amount))
	return c.JSON(http.StatusCreated, expense)
}
