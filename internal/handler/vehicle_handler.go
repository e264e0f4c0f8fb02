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

// VehicleRequest defines the structure for vehicle creation requests
type VehicleRequest struct {
	Name   string `json:"name"`
	Plate  string `json:"plate"`
	Model  string `json:"model"`
	Year   *int   `json:"year"`
	UserID *uint  `json:"user_id"`
}

// vehicleView is a vehicle row enriched with the sum of its expenses.
type vehicleView struct {
	model.Vehicle
	TotalExpenses float64 `json:"totalExpenses"`
}

// ListVehicles retrieves vehicles with assigned users and expense totals.
// Admin only.
func ListVehicles(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB().
		Preload("User").
		Preload("Expenses").
		Order("name asc")

	if status := c.QueryParam("status"); status != "" && status != "all" {
		query = query.Where("is_active = ?", status == "active")
	}

	if search := c.QueryParam("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(plate) LIKE ? OR LOWER(model) LIKE ?", pattern, pattern, pattern)
	}

	var vehicles []model.Vehicle
	if result := query.Find(&vehicles); result.Error != nil {
		log.Error("Failed to list vehicles", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve vehicles"})
	}

	views := make([]vehicleView, 0, len(vehicles))
	for _, vehicle := range vehicles {
		var total float64
		for _, expense := range vehicle.Expenses {
			total += expense.Amount
		}
		views = append(views, vehicleView{Vehicle: vehicle, TotalExpenses: total})
	}

	log.Info("Vehicles retrieved", zap.Int("count", len(views)))
	return c.JSON(http.StatusOK, views)
}

// CreateVehicle handles creating a new vehicle. Admin only.
func CreateVehicle(c echo.Context) error {
	log := logger.FromContext(c)

	var req VehicleRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	var count int64
	database.GetDB().Model(&model.Vehicle{}).Where("plate = ?", req.Plate).Count(&count)
	if count > 0 {
		log.Warn("Vehicle plate already exists", zap.String("plate", req.Plate))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicle plate already exists"})
	}

	vehicle := model.Vehicle{
		Name:     req.Name,
		Plate:    req.Plate,
		Model:    req.Model,
		Year:     req.Year,
		UserID:   req.UserID,
		IsActive: true,
	}

	if result := database.GetDB().Create(&vehicle); result.Error != nil {
		log.Error("Failed to create vehicle", zap.String("plate", req.Plate), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create vehicle"})
	}

	log.Info("Vehicle created",
		zap.Uint("vehicle_id", vehicle.ID),
		zap.String("plate", vehicle.Plate))
	return c.JSON(http.StatusCreated, vehicle)
}

// AssignVehicle assigns a vehicle to a user, enforcing the one vehicle per
// user rule. Admin only.
func AssignVehicle(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req struct {
		UserID *uint `json:"user_id"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("vehicle_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	var vehicle model.Vehicle
	if result := database.GetDB().First(&vehicle, id); result.Error != nil {
		log.Error("Vehicle not found", zap.String("vehicle_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
	}

	if req.UserID != nil {
		var user model.User
		if result := database.GetDB().First(&user, *req.UserID); result.Error != nil {
			log.Error("User not found", zap.Uint("user_id", *req.UserID), zap.Error(result.Error))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}

		var count int64
		database.GetDB().Model(&model.Vehicle{}).
			Where("user_id = ? AND id != ?", *req.UserID, vehicle.ID).
			Count(&count)
		if count > 0 {
			log.Warn("User already has a vehicle assigned", zap.Uint("user_id", *req.UserID))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "user already has a vehicle assigned, unassign the current vehicle first",
			})
		}
	}

	if err := database.GetDB().Model(&vehicle).Update("user_id", req.UserID).Error; err != nil {
		log.Error("Failed to assign vehicle", zap.String("vehicle_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to assign vehicle"})
	}

	database.GetDB().Preload("User").First(&vehicle, vehicle.ID)

	log.Info("Vehicle assignment updated",
		zap.Uint("vehicle_id", vehicle.ID),
		zap.Any("user_id", req.UserID))
	return c.JSON(http.StatusOK, vehicle)
}

// UnassignVehicle clears a vehicle's user assignment. Admin only.
func UnassignVehicle(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var vehicle model.Vehicle
	if result := database.GetDB().First(&vehicle, id); result.Error != nil {
		log.Error("Vehicle not found", zap.String("vehicle_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
	}

	if err := database.GetDB().Model(&vehicle).Update("user_id", nil).Error; err != nil {
		log.Error("Failed to unassign vehicle", zap.String("vehicle_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to unassign vehicle"})
	}

	log.Info("Vehicle unassigned", zap.Uint("vehicle_id", vehicle.ID))
	return c.JSON(http.StatusOK, vehicle)
}
