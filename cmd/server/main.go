package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bankist/internal/config"
	"bankist/internal/database"
	"bankist/internal/handlers"
	appmiddleware "bankist/internal/middleware"
	"bankist/internal/repositories"
	"bankist/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize audit store", "error", err)
		os.Exit(1)
	}

	// Repositories
	directory := repositories.NewAccountDirectory()
	auditRepo := repositories.NewAuditLogRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	auditService := services.NewAuditService(auditRepo, logger)
	summaryService := services.NewSummaryService()
	tokenService := services.NewTokenService(&cfg.Session)
	formatter := services.NewDisplayFormatter()
	bankService := services.NewBankService(directory, summaryService, auditService, metrics, logger)

	provisioning := services.NewProvisioningService(directory, cfg.Seed, metrics, logger)
	accountCount, err := provisioning.LoadDirectory()
	if err != nil {
		logger.Error("failed to provision account directory", "error", err)
		os.Exit(1)
	}
	logger.Info("account directory provisioned", "accounts", accountCount)

	// Handlers
	authHandler := handlers.NewAuthHandler(bankService, tokenService)
	accountHandler := handlers.NewAccountHandler(bankService, formatter)
	operationHandler := handlers.NewOperationHandler(bankService)
	auditHandler := handlers.NewAuditHandler(auditService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = appmiddleware.CustomHTTPErrorHandler

	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.PanicRecovery())
	e.Use(appmiddleware.SecurityHeaders())
	e.Use(appmiddleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	// Public routes
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/auth/login", authHandler.Login)

	// Session routes
	session := e.Group("", appmiddleware.RequireSession(tokenService, bankService))
	session.POST("/auth/logout", authHandler.Logout)
	session.GET("/account/movements", accountHandler.GetMovements)
	session.GET("/account/summary", accountHandler.GetSummary)
	session.POST("/account/sort", accountHandler.ToggleSort)
	session.POST("/account/transfers", operationHandler.Transfer)
	session.POST("/account/loans", operationHandler.RequestLoan)
	session.DELETE("/account", operationHandler.CloseAccount)
	session.GET("/audit", auditHandler.GetRecent)

	// Start server
	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}
