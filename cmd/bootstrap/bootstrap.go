package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-catalog-service/config"
	deliveryHttp "product-catalog-service/internal/delivery/http"
	"product-catalog-service/internal/delivery/http/handler"
	"product-catalog-service/internal/delivery/http/middleware"
	domainRepo "product-catalog-service/internal/domain/repository"
	"product-catalog-service/internal/repository"
	"product-catalog-service/internal/usecase"
	"product-catalog-service/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	ProductRepo domainRepo.ProductRepository
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Construct the configured repository backend
	productRepo, err := repository.NewProductRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create repository: %w", err)
	}
	app.ProductRepo = productRepo

	// Seed/prepare storage before serving any traffic
	if err := productRepo.Initialize(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to initialize repository: %w", err)
	}
	logrus.Info("Repository initialized successfully")

	// Initialize all layers
	server := initializeServer(cfg, productRepo)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, productRepo domainRepo.ProductRepository) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize usecases
	productUsecase := usecase.NewProductUsecase(productRepo)

	// Initialize handlers
	productHandler := handler.NewProductHandler(productUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(productHandler, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Repository backend: %s", app.Config.Repository.Type)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes backend connections, if the repository holds any
func (app *App) Close() {
	if closer, ok := app.ProductRepo.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			logrus.Errorf("Failed to close repository: %v", err)
		}
	}
}
