package handler

import (
	"net/http"
	"time"

	"gas-service/internal/model"
	"gas-service/internal/report"
	"gas-service/pkg/database"
	"gas-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GetEmployeeReports summarizes each employee's sales and expenses over an
// optional date range. Admin only.
func GetEmployeeReports(c echo.Context) error {
	log := logger.FromContext(c)

	startParam := c.QueryParam("startDate")
	endParam := c.QueryParam("endDate")
	employeeID := c.QueryParam("employeeId")

	var start, end *time.Time
	if startParam != "" {
		if parsed, err := time.ParseInLocation("2006-01-02", startParam, time.Local); err == nil {
			start = &parsed
		}
	}
	if endParam != "" {
		if parsed, err := time.ParseInLocation("2006-01-02", endParam, time.Local); err == nil {
			// Widen to the end of the day so the range is inclusive.
			dayEnd := parsed.Add(24*time.Hour - time.Millisecond)
			end = &dayEnd
		}
	}

	db := database.GetDB()

	employeeQuery := db.Order("name asc")
	if employeeID != "" {
		employeeQuery = employeeQuery.Where("id = ?", employeeID)
	}

	var employees []model.User
	if result := employeeQuery.Find(&employees); result.Error != nil {
		log.Error("Failed to load employees for report", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to build employee report"})
	}

	salesByEmployee := map[uint][]model.Sale{}
	expensesByEmployee := map[uint][]model.Expense{}

	var sales []model.Sale
	if result := dateRange(db.Preload("Product").Preload("Customer"), start, end).Find(&sales); result.Error != nil {
		log.Error("Failed to load sales for report", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to build employee report"})
	}
	for _, sale := range sales {
		salesByEmployee[sale.UserID] = append(salesByEmployee[sale.UserID], sale)
	}

	var expenses []model.Expense
	if result := dateRange(db.Preload("Vehicle"), start, end).Find(&expenses); result.Error != nil {
		log.Error("Failed to load expenses for report", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to build employee report"})
	}
	for _, expense := range expenses {
		expensesByEmployee[expense.UserID] = append(expensesByEmployee[expense.UserID], expense)
	}

	reports, summary := report.BuildEmployeeReports(employees, salesByEmployee, expensesByEmployee)

	log.Info("Employee report built",
		zap.Int("employees", len(reports)),
		zap.Float64("total_sales", summary.TotalSales),
		zap.Float64("total_expenses", summary.TotalExpenses))
	return c.JSON(http.StatusOK, echo.Map{
		"period": echo.Map{
			"startDate": startParam,
			"endDate":   endParam,
		},
		"summary":   summary,
		"employees": reports,
	})
}

// dateRange applies the optional report bounds to a query.
func dateRange(query *gorm.DB, start, end *time.Time) *gorm.DB {
	if start != nil {
		query = query.Where("created_at >= ?", *start)
	}
	if end != nil {
		query = query.Where("created_at <= ?", *end)
	}
	return query
}
