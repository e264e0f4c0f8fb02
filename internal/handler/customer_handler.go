package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"gas-service/internal/ledger"
	"gas-service/internal/model"
	"gas-service/pkg/database"
	"gas-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CustomerRequest defines the structure for customer creation/update requests
type CustomerRequest struct {
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	CreditLimit *float64 `json:"credit_limit"`
}

// customerView is a customer row enriched with the derived fiado balance.
type customerView struct {
	model.Customer
	TotalDebt   float64    `json:"totalDebt"`
	LastPayment *time.Time `json:"lastPayment"`
	Status      string     `json:"status"`
}

// ListCustomers retrieves customers with their computed debt. The debt is
// recomputed from fiado sales minus payments on every call, never stored.
func ListCustomers(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB().
		Preload("Sales").
		Preload("CreditPayments").
		Order("name asc")

	if search := c.QueryParam("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(code) LIKE ?", pattern, pattern)
	}

	var customers []model.Customer
	if result := query.Find(&customers); result.Error != nil {
		log.Error("Failed to list customers", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve customers"})
	}

	status := c.QueryParam("status")
	views := make([]customerView, 0, len(customers))
	for _, customer := range customers {
		view := customerView{
			Customer:    customer,
			TotalDebt:   ledger.Outstanding(customer.Sales, customer.CreditPayments),
			LastPayment: ledger.LastPayment(customer.CreditPayments),
			// Placeholder until a blocking rule exists; every customer is active.
			Status: "ATIVO",
		}
		if status != "" && status != "all" && view.Status != status {
			continue
		}
		views = append(views, view)
	}

	log.Info("Customers retrieved", zap.Int("count", len(views)))
	return c.JSON(http.StatusOK, views)
}

// CreateCustomer handles creating a new customer. A code is generated when
// the request does not provide one.
func CreateCustomer(c echo.Context) error {
	log := logger.FromContext(c)

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		code = fmt.Sprintf("CLI-%d", time.Now().UnixMilli())
	}

	var count int64
	database.GetDB().Model(&model.Customer{}).Where("code = ?", code).Count(&count)
	if count > 0 {
		log.Warn("Customer code already exists", zap.String("code", code))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer code already exists"})
	}

	customer := model.Customer{
		Name:        req.Name,
		Code:        code,
		Phone:       req.Phone,
		Address:     req.Address,
		CreditLimit: req.CreditLimit,
	}

	if result := database.GetDB().Create(&customer); result.Error != nil {
		log.Error("Failed to create customer", zap.String("name", req.Name), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create customer"})
	}

	log.Info("Customer created",
		zap.Uint("customer_id", customer.ID),
		zap.String("code", customer.Code))
	return c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer handles updating an existing customer. The code is not
// changed after creation.
func UpdateCustomer(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("customer_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	var customer model.Customer
	if result := database.GetDB().First(&customer, id); result.Error != nil {
		log.Error("Customer not found for update", zap.String("customer_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
	}

	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Address = req.Address
	customer.CreditLimit = req.CreditLimit

	if result := database.GetDB().Save(&customer); result.Error != nil {
		log.Error("Failed to update customer", zap.String("customer_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update customer"})
	}

	log.Info("Customer updated", zap.Uint("customer_id", customer.ID))
	return c.JSON(http.StatusOK, customer)
}
