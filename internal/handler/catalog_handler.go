package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/food-finder/internal/catalog"
)

// CatalogHandler serves the fixed location table and filter options.
type CatalogHandler struct{}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Locations handles GET /locations.
func (h *CatalogHandler) Locations(c echo.Context) error {
	return Success(c, http.StatusOK, "locations retrieved", catalog.Cities())
}

// Districts handles GET /locations/:city/districts.
func (h *CatalogHandler) Districts(c echo.Context) error {
	city, ok := catalog.FindCity(c.Param("city"))
	if !ok {
		return Error(c, http.StatusNotFound, "city not found")
	}
	return Success(c, http.StatusOK, "districts retrieved", city.Districts)
}

// Options handles GET /options.
func (h *CatalogHandler) Options(c echo.Context) error {
	return Success(c, http.StatusOK, "options retrieved", catalog.AllOptions())
}
