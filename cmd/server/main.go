package main

import (
	"context"   // context package is needed for Redis operations and shutdown
	"errors"    // Server close detection
	"net/http"  // HTTP server
	"os"        // Signals
	"os/signal" // Graceful shutdown
	"syscall"   // SIGTERM
	"time"      // Shutdown timeout

	"github.com/MarcoPr4do/Neighlink-Backend/internal/api"       // Custom package for API handlers
	"github.com/MarcoPr4do/Neighlink-Backend/internal/auth"      // Identity resolution
	"github.com/MarcoPr4do/Neighlink-Backend/internal/config"    // Custom package for configuration
	"github.com/MarcoPr4do/Neighlink-Backend/internal/db"        // Database connection
	"github.com/MarcoPr4do/Neighlink-Backend/internal/telemetry" // Tracing
	"github.com/MarcoPr4do/Neighlink-Backend/internal/utils"     // Code generation

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{}) // Machine-readable logs in production
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client; without an address token lookups are not cached
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(ctx).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	}

	codes, err := utils.NewCodeGenerator(cfg.NodeID) // Department invite codes
	if err != nil {
		logrus.Fatalf("failed to create code generator: %v", err)
	}

	environment := "development"
	if cfg.IsProd {
		environment = "production"
		gin.SetMode(gin.ReleaseMode) // Set Mode to Release if in production
	}
	shutdownTracing, err := telemetry.Init(ctx, cfg.OTLPEndpoint, cfg.ServiceName, environment)
	if err != nil {
		logrus.Fatalf("failed to initialize tracing: %v", err)
	}

	env := &api.Env{
		Resolver: auth.NewResolver(redisClient), // Principal resolution
		Codes:    codes,                         // Invite codes
	}
	r := api.NewRouter(gdb, env, cfg.ServiceName)
	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	srv := &http.Server{Addr: ":" + cfg.AppPort, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logrus.Info("Server running on " + cfg.AppPort) // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done() // Wait for a shutdown signal
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Tracing shutdown failed")
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	logrus.Info("Server stopped")
}
