package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/food-finder/internal/auth"
	"github.com/octobees/food-finder/internal/config"
	"github.com/octobees/food-finder/internal/handler"
	middlewarepkg "github.com/octobees/food-finder/internal/middleware"
	"github.com/octobees/food-finder/internal/service"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Page    *handler.PageHandler
	Catalog *handler.CatalogHandler
	Search  *handler.SearchHandler
	Auth    *handler.AuthHandler
	History *handler.HistoryHandler
	Metrics http.Handler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	if handlers.Page != nil {
		e.GET("/", handlers.Page.Index)
		e.GET("/static/*", handlers.Page.Assets)
	}
	if handlers.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(handlers.Metrics))
	}

	e.GET("/locations", handlers.Catalog.Locations)
	e.GET("/locations/:city/districts", handlers.Catalog.Districts)
	e.GET("/options", handlers.Catalog.Options)
	e.POST("/search", handlers.Search.Search, middlewarepkg.SearchRateLimiter(cfg.RateLimitSearch))

	if handlers.Auth != nil {
		e.POST("/auth/login", handlers.Auth.Login)
	}

	if handlers.History != nil {
		secured := e.Group("/admin", middlewarepkg.JWT(jwtManager), middlewarepkg.RequireRole(service.RoleAdmin))
		secured.GET("/searches", handlers.History.List)
	}
}
