package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gas-service/internal/fiado"
	"gas-service/internal/middleware"
	"gas-service/internal/model"
	"gas-service/pkg/database"
	"gas-service/pkg/logger"
	"gas-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SaleRequest defines the structure for sale creation requests
type SaleRequest struct {
	ProductID    uint    `json:"product_id"`
	CustomerName string  `json:"customer_name"`
	Quantity     int     `json:"quantity"`
	PaymentType  string  `json:"payment_type"`
	Price        float64 `json:"price"`
	Notes        string  `json:"notes"`
	IsCredit     bool    `json:"is_credit"`
}

// consumidorFinal is the walk-in customer sentinel; such sales carry no
// customer reference.
const consumidorFinal = "Consumidor Final"

// ListSales retrieves sales with optional status filter and a
// case-insensitive search across customer, product, seller and fiado code.
func ListSales(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB().
		Preload("User").
		Preload("Product").
		Preload("Customer").
		Order("sales.created_at desc")

	if status := c.QueryParam("status"); status != "" && status != "all" {
		query = query.Where("sales.status = ?", status)
	}

	if search := c.QueryParam("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.
			Joins("JOIN products ON products.id = sales.product_id").
			Joins("JOIN users ON users.id = sales.user_id").
			Joins("LEFT JOIN customers ON customers.id = sales.customer_id").
			Where("LOWER(customers.name) LIKE ? OR LOWER(products.name) LIKE ? OR LOWER(sales.fiado_code) LIKE ? OR LOWER(users.name) LIKE ?",
				pattern, pattern, pattern, pattern)
	}

	var sales []model.Sale
	if result := query.Find(&sales); result.Error != nil {
		log.Error("Failed to list sales", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve sales"})
	}

	log.Info("Sales retrieved", zap.Int("count", len(sales)))
	return c.JSON(http.StatusOK, sales)
}

// CreateSale creates a sale. Cash, card and pix sales complete immediately
// and move stock; fiado sales start PENDING with a unique 6-digit code and
// leave stock untouched until settlement.
func CreateSale(c echo.Context) error {
	log := logger.FromContext(c)

	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
	}

	var req SaleRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	db := database.GetDB()

	var seller model.User
	if result := db.First(&seller, claims.UserID); result.Error != nil {
		log.Error("Seller not found", zap.Uint("user_id", claims.UserID), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}

	var product model.Product
	if result := db.First(&product, req.ProductID); result.Error != nil {
		log.Error("Product not found", zap.Uint("product_id", req.ProductID), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}

	if product.Stock < req.Quantity {
		log.Warn("Insufficient stock",
			zap.Uint("product_id", product.ID),
			zap.Int("stock", product.Stock),
			zap.Int("requested", req.Quantity))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "insufficient stock"})
	}

	// The counter may override the catalog price for a single sale.
	unitPrice := product.Price
	if req.Price > 0 {
		unitPrice = req.Price
	}
	totalPrice := unitPrice * float64(req.Quantity)

	customerID, err := resolveCustomer(db, req.CustomerName, req.IsCredit)
	if err != nil {
		log.Error("Failed to resolve customer", zap.String("customer_name", req.CustomerName), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to resolve customer"})
	}

	status := model.SaleStatusCompleted
	var fiadoCode *string
	if req.PaymentType == model.PaymentFiado {
		status = model.SaleStatusPending

		code, err := fiado.GenerateCode(func(code string) (bool, error) {
			var count int64
			if err := db.Model(&model.Sale{}).Where("fiado_code = ?", code).Count(&count).Error; err != nil {
				return false, err
			}
			return count > 0, nil
		})
		if err != nil {
			log.Error("Failed to generate fiado code", zap.Error(err))
			if errors.Is(err, fiado.ErrNoUniqueCode) {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not generate a unique code for the fiado sale"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create sale"})
		}
		fiadoCode = &code
		prometheus.FiadoCodeCounter.Inc()
	}

	sale := model.Sale{
		Quantity:    req.Quantity,
		TotalPrice:  totalPrice,
		PaymentType: req.PaymentType,
		Status:      status,
		FiadoCode:   fiadoCode,
		Notes:       req.Notes,
		UserID:      seller.ID,
		ProductID:   product.ID,
		CustomerID:  customerID,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := db.Create(&sale); result.Error != nil {
		log.Error("Failed to create sale", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create sale"})
	}

	// Fiado sales leave stock untouched until settlement.
	if req.PaymentType != model.PaymentFiado {
		newStock := product.Stock - req.Quantity
		if newStock < 0 {
			newStock = 0
		}
		if err := db.Model(&product).Update("stock", newStock).Error; err != nil {
			log.Error("Failed to update product stock", zap.Uint("product_id", product.ID), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update product stock"})
		}

		customerLabel := req.CustomerName
		if customerLabel == "" {
			customerLabel = "consumidor final"
		}
		movement := model.InventoryMovement{
			Quantity:  -req.Quantity,
			Type:      model.MovementSaida,
			Notes:     fmt.Sprintf("Venda para %s", customerLabel),
			ProductID: product.ID,
		}
		if result := db.Create(&movement); result.Error != nil {
			log.Error("Failed to record stock movement", zap.Uint("product_id", product.ID), zap.Error(result.Error))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to record stock movement"})
		}
		prometheus.RecordInventoryMovement(model.MovementSaida)
	}

	prometheus.RecordSale(sale.PaymentType)
	db.Preload("User").Preload("Product").Preload("Customer").First(&sale, sale.ID)

	log.Info("Sale created",
		zap.Uint("sale_id", sale.ID),
		zap.String("payment_type", sale.PaymentType),
		zap.String("status", sale.Status),
		zap.Float64("total_price", sale.TotalPrice))
	return c.JSON(http.StatusCreated, sale)
}

// resolveCustomer finds or creates the named customer. The walk-in sentinel
// and empty names yield no customer reference. New customers get a generated
// code marking whether they originated from a fiado sale.
//
// Two concurrent sales for a new customer with the same name can both miss
// the lookup and create duplicate rows; accepted at this scale.
func resolveCustomer(db *gorm.DB, name string, isCredit bool) (*uint, error) {
	if name == "" || name == consumidorFinal {
		return nil, nil
	}

	var customer model.Customer
	result := db.Where("name = ?", name).First(&customer)
	if result.Error == nil {
		return &customer.ID, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	prefix := "CLI"
	if isCredit {
		prefix = "FIADO"
	}
	customer = model.Customer{
		Name: name,
		Code: fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli()),
	}
	if result := db.Create(&customer); result.Error != nil {
		return nil, result.Error
	}

	return &customer.ID, nil
}
