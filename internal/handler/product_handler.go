package handler

import (
	"net/http"
	"strings"

	"gas-service/internal/model"
	"gas-service/pkg/database"
	"gas-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductRequest defines the structure for product creation/update requests
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	MinStock    int     `json:"min_stock"`
}

// productView is a product row enriched with the derived stock status.
type productView struct {
	model.Product
	Status string `json:"status"`
}

// ListProducts handles retrieving all products with optional filtering.
// The status filter is applied after deriving each product's stock status.
func ListProducts(c echo.Context) error {
	log := logger.FromContext(c)

	db := database.GetDB()
	query := db.Order("name asc")

	if search := c.QueryParam("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var products []model.Product
	if result := query.Find(&products); result.Error != nil {
		log.Error("Failed to list products", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve products"})
	}

	status := c.QueryParam("status")
	views := make([]productView, 0, len(products))
	for _, product := range products {
		view := productView{Product: product, Status: product.StockStatus()}
		if status != "" && status != "all" && view.Status != status {
			continue
		}
		views = append(views, view)
	}

	log.Info("Products retrieved", zap.Int("count", len(views)))
	return c.JSON(http.StatusOK, views)
}

// CreateProduct handles creating a new product
func CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	product := model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
	}

	if result := database.GetDB().Create(&product); result.Error != nil {
		log.Error("Failed to create product",
			zap.String("name", req.Name),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create product"})
	}

	log.Info("Product created",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name))
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles updating an existing product. A negative stock in
// the request is clamped to zero.
func UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("product_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	var product model.Product
	if result := database.GetDB().First(&product, id); result.Error != nil {
		log.Error("Product not found for update", zap.String("product_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Stock = req.Stock
	if product.Stock < 0 {
		product.Stock = 0
	}
	product.MinStock = req.MinStock

	if result := database.GetDB().Save(&product); result.Error != nil {
		log.Error("Failed to update product", zap.String("product_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update product"})
	}

	log.Info("Product updated",
		zap.Uint("product_id", product.ID),
		zap.Int("stock", product.Stock))
	return c.JSON(http.StatusOK, product)
}
