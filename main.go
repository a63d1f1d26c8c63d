package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/RobsonJunqueira/contrato-explorer-ui/config"
	"github.com/RobsonJunqueira/contrato-explorer-ui/handler"
	"github.com/RobsonJunqueira/contrato-explorer-ui/middleware"
	"github.com/RobsonJunqueira/contrato-explorer-ui/pkg/logger"
	"github.com/RobsonJunqueira/contrato-explorer-ui/service"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	// Initialize services
	contractsAPI := service.NewContractsAPI(&cfg.Store)
	collection := service.NewCollection()

	// Initial bulk load: an unreachable store degrades to sample data so the
	// UI stays usable during outages.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	contracts, fallback := service.LoadCollection(loadCtx, contractsAPI)
	cancelLoad()
	collection.ReplaceAll(contracts, fallback)
	slog.Info("contract collection loaded", "contracts", len(contracts), "fallback", fallback)

	var writer service.StoreWriter
	if cfg.Database.DSN != "" {
		pgWriter, err := service.NewPGWriter(context.Background(), cfg.Database.DSN)
		if err != nil {
			slog.Error("failed to initialize database writer", "error", err)
			os.Exit(1)
		}
		defer pgWriter.Close()
		writer = pgWriter
	} else {
		slog.Warn("no database DSN configured, edits will be rejected")
	}
	editor := service.NewEditor(writer, collection)

	prefsStore, err := service.NewPrefsStore(cfg.Prefs.Path)
	if err != nil {
		slog.Error("failed to initialize preferences store", "error", err)
		os.Exit(1)
	}
	defer prefsStore.Close()

	refresher := service.StartRefresher(cfg.Store.RefreshSchedule, contractsAPI, collection)
	defer refresher.Stop()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(cfg)
	contractHandler := handler.NewContractHandler(collection, editor, contractsAPI)
	prefsHandler := handler.NewPrefsHandler(prefsStore)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())                 // Request ID for tracing
	router.Use(middleware.Recovery())                  // Panic recovery
	router.Use(middleware.RequestLogger())             // Access logging
	router.Use(corsMiddleware())                       // CORS
	router.Use(cacheMiddleware())                      // Cache control
	router.Use(middleware.RateLimit(100, time.Minute)) // Rate limiting: 100 requests per minute

	// Serve the static frontend when present
	if cfg.Server.StaticDir != "" {
		if _, err := os.Stat(cfg.Server.StaticDir); err == nil {
			slog.Info("serving static files", "directory", cfg.Server.StaticDir)
			router.Static("/static", cfg.Server.StaticDir)
			router.StaticFile("/", cfg.Server.StaticDir+"/index.html")
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public routes: browsing requires no session
	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.GET("/contracts", contractHandler.List)
		api.GET("/contracts/options", contractHandler.Options)
		api.GET("/contracts/:id", contractHandler.Get)
	}

	// Protected routes: the edit capability gate
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)
		protected.PATCH("/contracts/:id", contractHandler.Update)
		protected.POST("/contracts/:id/options", contractHandler.AddOption)
		protected.POST("/contracts/refresh", contractHandler.Refresh)
		protected.GET("/prefs", prefsHandler.Get)
		protected.PUT("/prefs", prefsHandler.Put)
	}

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// corsMiddleware handles CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// cacheMiddleware sets cache control headers for static files
func cacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		// Skip caching for API routes
		if strings.HasPrefix(path, "/api") {
			c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
			return
		}

		// Set cache headers for static files (1 hour)
		if strings.HasSuffix(path, ".js") ||
			strings.HasSuffix(path, ".css") ||
			strings.HasSuffix(path, ".html") ||
			path == "/" {
			c.Header("Cache-Control", "public, max-age=3600, must-revalidate")
		}

		c.Next()
	}
}
