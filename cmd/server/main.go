package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	abdouchat "github.com/Abdou004/abdou-chat"
	"github.com/Abdou004/abdou-chat/internal/config"
	"github.com/Abdou004/abdou-chat/internal/handler"
	"github.com/Abdou004/abdou-chat/internal/middleware"
	"github.com/Abdou004/abdou-chat/internal/provider"
	"github.com/Abdou004/abdou-chat/internal/repository"
	"github.com/Abdou004/abdou-chat/internal/service"
	"github.com/Abdou004/abdou-chat/internal/upload"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(abdouchat.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	store := repository.NewStore(pool)

	// Provider clients
	gemini, err := provider.NewGemini(ctx, cfg.GeminiAPIKey)
	if err != nil {
		slog.Error("failed to create gemini client", "error", err)
		os.Exit(1)
	}
	defer gemini.Close()
	groq := provider.NewGroq(cfg.GroqAPIKey, cfg.GroqAPIURL)

	router := service.NewRouter(gemini, groq)
	chat := service.NewChat(store, router)

	uploads, err := upload.NewSaver(cfg.UploadDir)
	if err != nil {
		slog.Error("failed to prepare upload dir", "error", err)
		os.Exit(1)
	}

	h := handler.New(handler.Deps{
		Store:   store,
		Chat:    chat,
		Models:  gemini,
		Uploads: uploads,
	})

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.Logging(), cors.Default())
	engine.Static("/uploads", cfg.UploadDir)
	h.Register(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
	slog.Info("server stopped gracefully")
}
