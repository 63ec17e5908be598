// cmd/cipher-lab-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/arya2004/cybersecurity/internal/api/rest/v1"
	"github.com/arya2004/cybersecurity/internal/app"
	"github.com/arya2004/cybersecurity/internal/domain/ciphers"
	"github.com/arya2004/cybersecurity/internal/domain/operations"
	"github.com/arya2004/cybersecurity/internal/infrastructure/cryptography"
	"github.com/arya2004/cybersecurity/internal/infrastructure/persistence"
	"github.com/arya2004/cybersecurity/internal/infrastructure/persistence/models"
	"github.com/arya2004/cybersecurity/internal/pkg/config"
	"github.com/arya2004/cybersecurity/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services   *appServices
	processors *cipherProcessors
}

type cipherProcessors struct {
	feistel ciphers.BlockCipherProcessor
	spn     ciphers.BlockCipherProcessor
}

type appServices struct {
	cipherExecution   operations.CipherExecutionService
	operationMetadata operations.OperationMetadataService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.OperationModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	operationRepo, err := persistence.NewGormOperationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation repository: %w", err)
	}

	// Initialize cipher processors
	processors, err := initializeCipherProcessors(log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize processors: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(operationRepo, processors, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		services:   services,
		processors: processors,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.cipherExecution,
		deps.services.operationMetadata,
	)

	// Serve OpenAPI spec (replaces Swagger)
	r.GET("/api/v1/cipher-lab/openapi.yaml", func(c *gin.Context) {
		c.File("./api/openapi/v1/cipher-lab.yaml")
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// initializeCipherProcessors sets up both cipher processors
func initializeCipherProcessors(log logger.Logger) (*cipherProcessors, error) {
	feistelProcessor, err := cryptography.NewProcessor(ciphers.AlgorithmFeistel8, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create feistel8 processor: %w", err)
	}

	spnProcessor, err := cryptography.NewProcessor(ciphers.AlgorithmSPN16, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create spn16 processor: %w", err)
	}

	log.Info("Cipher processors initialized successfully")
	return &cipherProcessors{
		feistel: feistelProcessor,
		spn:     spnProcessor,
	}, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	operationRepo operations.OperationRepository,
	processors *cipherProcessors,
	log logger.Logger,
) (*appServices, error) {
	cipherExecutionService, err := app.NewCipherExecutionService(
		processors.feistel, processors.spn, operationRepo, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher execution service: %w", err)
	}

	operationMetadataService, err := app.NewOperationMetadataService(operationRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation metadata service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		cipherExecution:   cipherExecutionService,
		operationMetadata: operationMetadataService,
	}, nil
}
