package handler

import (
	"net/http"
	"strings"

	"gas-service/internal/model"
	"gas-service/pkg/database"
	"gas-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeRequest defines the structure for employee creation/update requests
type EmployeeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// ListEmployees retrieves employees with their assigned vehicles. Admin only.
func ListEmployees(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB().Preload("Vehicles").Order("name asc")

	if role := c.QueryParam("role"); role != "" && role != "all" {
		query = query.Where("role = ?", role)
	}

	if search := c.QueryParam("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}

	var employees []model.User
	if result := query.Find(&employees); result.Error != nil {
		log.Error("Failed to list employees", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve employees"})
	}

	log.Info("Employees retrieved", zap.Int("count", len(employees)))
	return c.JSON(http.StatusOK, employees)
}

// CreateEmployee handles creating a new employee account. Admin only.
func CreateEmployee(c echo.Context) error {
	log := logger.FromContext(c)

	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	var count int64
	database.GetDB().Model(&model.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		log.Warn("Email already exists", zap.String("email", req.Email))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email already exists"})
	}

	employee := model.User{
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
		Phone:   req.Phone,
		Address: req.Address,
	}

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("Failed to hash password", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create employee"})
		}
		employee.Password = string(hashed)
	}

	if result := database.GetDB().Create(&employee); result.Error != nil {
		log.Error("Failed to create employee", zap.String("email", req.Email), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create employee"})
	}

	log.Info("Employee created",
		zap.Uint("employee_id", employee.ID),
		zap.String("email", employee.Email),
		zap.String("role", employee.Role))
	return c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee handles updating an existing employee. Admin only.
func UpdateEmployee(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("employee_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	var employee model.User
	if result := database.GetDB().First(&employee, id); result.Error != nil {
		log.Error("Employee not found for update", zap.String("employee_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "employee not found"})
	}

	if req.Email != employee.Email {
		var count int64
		database.GetDB().Model(&model.User{}).Where("email = ? AND id != ?", req.Email, employee.ID).Count(&count)
		if count > 0 {
			log.Warn("Email already exists", zap.String("email", req.Email))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email already exists"})
		}
	}

	employee.Name = req.Name
	employee.Email = req.Email
	employee.Role = req.Role
	employee.Phone = req.Phone
	employee.Address = req.Address

	if result := database.GetDB().Save(&employee); result.Error != nil {
		log.Error("Failed to update employee", zap.String("employee_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update employee"})
	}

	log.Info("Employee updated", zap.Uint("employee_id", employee.ID))
	return c.JSON(http.StatusOK, employee)
}
