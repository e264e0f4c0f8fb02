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

// MovementRequest defines the structure for inventory movement requests
type MovementRequest struct {
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Type      string `json:"type"`
	Notes     string `json:"notes"`
}

// ListMovements retrieves the inventory movement log, newest first.
func ListMovements(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB().Preload("Product").Order("created_at desc")

	if movementType := c.QueryParam("type"); movementType != "" && movementType != "all" {
		query = query.Where("type = ?", movementType)
	}

	if productID := c.QueryParam("productId"); productID != "" {
		query = query.Where("product_id = ?", productID)
	}

	var movements []model.InventoryMovement
	if result := query.Find(&movements); result.Error != nil {
		log.Error("Failed to list inventory movements", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve inventory movements"})
	}

	log.Info("Inventory movements retrieved", zap.Int("count", len(movements)))
	return c.JSON(http.StatusOK, movements)
}

// CreateMovement appends a movement to the log and updates the product's
// running stock total, floored at zero.
func CreateMovement(c echo.Context) error {
	log := logger.FromContext(c)

	var req MovementRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	var product model.Product
	if result := database.GetDB().First(&product, req.ProductID); result.Error != nil {
		log.Error("Product not found", zap.Uint("product_id", req.ProductID), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}

	movement := model.InventoryMovement{
		Quantity:  req.Quantity,
		Type:      req.Type,
		Notes:     req.Notes,
		ProductID: req.ProductID,
	}

	if result := database.GetDB().Create(&movement); result.Error != nil {
		log.Error("Failed to create inventory movement", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create inventory movement"})
	}

	newStock := product.Stock - req.Quantity
	if req.Type == model.MovementEntrada {
		newStock = product.Stock + req.Quantity
	}
	if newStock < 0 {
		newStock = 0
	}

	if err := database.GetDB().Model(&product).Update("stock", newStock).Error; err != nil {
		log.Error("Failed to update product stock", zap.Uint("product_id", product.ID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update product stock"})
	}

	prometheus.RecordInventoryMovement(movement.Type)
	database.GetDB().Preload("Product").First(&movement, movement.ID)

	log.Info("Inventory movement created",
		zap.Uint("movement_id", movement.ID),
		zap.String("type", movement.Type),
		zap.Int("quantity", movement.Quantity),
		zap.Int("new_stock", newStock))
	return c.JSON(http.StatusCreated, movement)
}
