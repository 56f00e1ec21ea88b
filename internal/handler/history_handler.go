package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/food-finder/internal/dto"
	"github.com/octobees/food-finder/internal/entity"
	"github.com/octobees/food-finder/internal/service"
)

// HistoryHandler exposes recorded searches to operators.
type HistoryHandler struct {
	service *service.SearchService
}

// NewHistoryHandler creates a new handler instance.
func NewHistoryHandler(svc *service.SearchService) *HistoryHandler {
	return &HistoryHandler{service: svc}
}

// List handles GET /admin/searches requests.
func (h *HistoryHandler) List(c echo.Context) error {
	filter := dto.SearchLogFilter{
		City:   strings.TrimSpace(c.QueryParam("city")),
		Status: strings.ToLower(strings.TrimSpace(c.QueryParam("status"))),
		Limit:  parseIntDefault(c.QueryParam("limit"), 0),
	}
	switch filter.Status {
	case "", entity.SearchStatusSuccess, entity.SearchStatusFailed:
	default:
		return Error(c, http.StatusBadRequest, "status must be success or failed")
	}

	logs, err := h.service.History(c.Request().Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrHistoryDisabled) {
			return Error(c, http.StatusNotFound, "search history is not enabled")
		}
		return Error(c, http.StatusInternalServerError, "failed to list searches")
	}

	return Success(c, http.StatusOK, "searches retrieved", logs)
}

func parseIntDefault(input string, fallback int) int {
	input = strings.TrimSpace(input)
	if input == "" {
		return fallback
	}
	if value, err := strconv.Atoi(input); err == nil {
		return value
	}
	return fallback
}
