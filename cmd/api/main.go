package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/octobees/food-finder/internal/auth"
	"github.com/octobees/food-finder/internal/config"
	"github.com/octobees/food-finder/internal/database"
	"github.com/octobees/food-finder/internal/gemini"
	"github.com/octobees/food-finder/internal/handler"
	"github.com/octobees/food-finder/internal/metrics"
	middlewarepkg "github.com/octobees/food-finder/internal/middleware"
	"github.com/octobees/food-finder/internal/repository"
	"github.com/octobees/food-finder/internal/router"
	"github.com/octobees/food-finder/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(reg)

	generator, err := gemini.NewClient(nil, gemini.Config{
		APIKey:      cfg.Gemini.APIKey,
		Model:       cfg.Gemini.Model,
		BaseURL:     cfg.Gemini.BaseURL,
		Temperature: cfg.Gemini.Temperature,
		Timeout:     cfg.Gemini.Timeout,
	})
	if err != nil {
		log.Fatalf("failed to create gemini client: %v", err)
	}

	var searchLogs repository.SearchLogsRepository
	if cfg.DatabaseURL != "" {
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}
		defer pool.Close()

		if err := database.EnsureSchema(ctx, pool); err != nil {
			log.Fatalf("failed to prepare database: %v", err)
		}
		searchLogs = repository.NewPGXSearchLogsRepository(pool)
	} else {
		log.Printf("DATABASE_URL not set, search history disabled")
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	searchService := service.NewSearchService(generator, service.NewPromptBuilder("Taiwan"), searchLogs, appMetrics)
	authService := service.NewAuthService(service.Operator{Email: cfg.Admin.Email, PasswordHash: cfg.Admin.PasswordHash}, jwtManager)

	pageHandler, err := handler.NewPageHandler()
	if err != nil {
		log.Fatalf("failed to load page assets: %v", err)
	}

	handlers := router.Handlers{
		Page:    pageHandler,
		Catalog: handler.NewCatalogHandler(),
		Search:  handler.NewSearchHandler(searchService, generator.Model()),
		Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}
	if authService.Enabled() {
		handlers.Auth = handler.NewAuthHandler(authService)
	}
	if searchService.HistoryEnabled() {
		handlers.History = handler.NewHistoryHandler(searchService)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.BodyLimit("64K"))

	router.Register(e, cfg, jwtManager, handlers)

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("listening on :%s model=%s history=%t login=%t", cfg.Port, generator.Model(), searchService.HistoryEnabled(), authService.Enabled())
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
