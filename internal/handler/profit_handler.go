package handler

import (
	"net/http"
	"strconv"
	"time"

	"gas-service/internal/model"
	"gas-service/internal/report"
	"gas-service/pkg/database"
	"gas-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// GetProfits buckets completed sales and all expenses inside the requested
// window and returns the aggregated report for the dashboard.
func GetProfits(c echo.Context) error {
	log := logger.FromContext(c)

	period := c.QueryParam("period")
	switch period {
	case report.PeriodDaily, report.PeriodWeekly, report.PeriodMonthly, report.PeriodYearly:
	default:
		period = report.PeriodMonthly
	}

	now := time.Now()
	year := now.Year()
	if yearParam := c.QueryParam("year"); yearParam != "" {
		if parsed, err := strconv.Atoi(yearParam); err == nil {
			year = parsed
		}
	}

	start, end := report.Window(period, year, now)

	db := database.GetDB()

	var sales []model.Sale
	result := db.
		Where("status = ?", model.SaleStatusCompleted).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Order("created_at asc").
		Find(&sales)
	if result.Error != nil {
		log.Error("Failed to load sales for profit report", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to build profit report"})
	}

	var expenses []model.Expense
	result = db.
		Where("created_at >= ? AND created_at <= ?", start, end).
		Order("created_at asc").
		Find(&expenses)
	if result.Error != nil {
		log.Error("Failed to load expenses for profit report", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to build profit report"})
	}

	profitReport := report.BuildProfit(period, year, sales, expenses)

	log.Info("Profit report built",
		zap.String("period", period),
		zap.Int("year", year),
		zap.Int("sales", len(sales)),
		zap.Int("expenses", len(expenses)),
		zap.Int("buckets", len(profitReport.Data)))
	return c.JSON(http.StatusOK, profitReport)
}
