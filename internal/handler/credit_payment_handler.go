package handler

import (
	"net/http"

	"gas-service/internal/model"
	"gas-service/pkg/database"
	"gas-service/pkg/logger"
	"gas-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CreditPaymentRequest defines the structure for credit payment requests
type CreditPaymentRequest struct {
	CustomerID uint    `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Notes      string  `json:"notes"`
}

// ListCreditPayments retrieves credit payments, newest first.
func ListCreditPayments(c echo.Context) error {
	log := logger.FromContext(c)

	var payments []model.CreditPayment
	result := database.GetDB().
		Preload("Customer").
		Order("payment_date desc").
		Find(&payments)
	if result.Error != nil {
		log.Error("Failed to list credit payments", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve credit payments"})
	}

	log.Info("Credit payments retrieved", zap.Int("count", len(payments)))
	return c.JSON(http.StatusOK, payments)
}

// CreateCreditPayment records a payment against a customer's fiado balance.
// The payment only lowers the derived debt; sale rows are never touched.
func CreateCreditPayment(c echo.Context) error {
	log := logger.FromContext(c)

	var req CreditPaymentRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	var customer model.Customer
	if result := database.GetDB().First(&customer, req.CustomerID); result.Error != nil {
		log.Error("Customer not found", zap.Uint("customer_id", req.CustomerID), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
	}

	payment := model.CreditPayment{
		Amount:     req.Amount,
		Notes:      req.Notes,
		CustomerID: customer.ID,
	}

	if result := database.GetDB().Create(&payment); result.Error != nil {
		log.Error("Failed to create credit payment", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create credit payment"})
	}

	prometheus.CreditPaymentCounter.Inc()
	database.GetDB().Preload("Customer").First(&payment, payment.ID)

	log.Info("Credit payment recorded",
		zap.Uint("payment_id", payment.ID),
		zap.Uint("customer_id", customer.ID),
		zap.Float64("amount", payment.Amount))
	return c.JSON(http.StatusCreated, payment)
}
