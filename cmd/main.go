package main

import (
	"gas-service/internal/handler"
	mid "gas-service/internal/middleware"
	"gas-service/internal/model"
	"gas-service/pkg/config"
	"gas-service/pkg/database"
	"gas-service/pkg/jwtutil"
	"gas-service/pkg/logger"
	"gas-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration (.env handled inside)
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       appConfig.Log.Level,
		Environment: appConfig.Server.Env,
		ServiceName: appConfig.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting gas-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize database
	if _, err := database.InitDB(&appConfig.DB); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	if err := database.MigrateModels(
		&model.User{},
		&model.Product{},
		&model.Customer{},
		&model.Sale{},
		&model.InventoryMovement{},
		&model.Expense{},
		&model.Vehicle{},
		&model.CreditPayment{},
	); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database migrations complete")

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(prometheus.MetricsMiddleware())

	// Ops endpoints
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))
	e.GET("/health", handler.HealthCheck)

	// Auth
	e.POST("/api/auth/login", handler.Login)

	// Authenticated resource routes
	api := e.Group("/api", mid.AuthMiddleware)

	api.GET("/products", handler.ListProducts)
	api.POST("/products", handler.CreateProduct)
	api.PUT("/products/:id", handler.UpdateProduct)

	api.GET("/customers", handler.ListCustomers)
	api.POST("/customers", handler.CreateCustomer)
	api.PUT("/customers/:id", handler.UpdateCustomer)

	api.GET("/sales", handler.ListSales)
	api.POST("/sales", handler.CreateSale)

	api.GET("/inventory", handler.ListMovements)
	api.POST("/inventory", handler.CreateMovement)

	api.GET("/expenses", handler.ListExpenses)
	api.POST("/expenses", handler.CreateExpense)

	api.GET("/credit-payments", handler.ListCreditPayments)
	api.POST("/credit-payments", handler.CreateCreditPayment)

	api.GET("/profits", handler.GetProfits)

	// Administrative routes
	admin := e.Group("/api", mid.AuthMiddleware, mid.RequireAdmin)

	admin.GET("/employees", handler.ListEmployees)
	admin.POST("/employees", handler.CreateEmployee)
	admin.PUT("/employees/:id", handler.UpdateEmployee)

	admin.GET("/vehicles", handler.ListVehicles)
	admin.POST("/vehicles", handler.CreateVehicle)
	admin.PUT("/vehicles/:id/assign", handler.AssignVehicle)
	admin.DELETE("/vehicles/:id/assign", handler.UnassignVehicle)

	admin.GET("/reports/employees", handler.GetEmployeeReports)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
