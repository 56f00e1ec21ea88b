package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/net/idna"

	"github.com/octobees/food-finder/internal/dto"
	"github.com/octobees/food-finder/internal/entity"
	middlewarepkg "github.com/octobees/food-finder/internal/middleware"
	"github.com/octobees/food-finder/internal/service"
)

// SearchHandler exposes the food search endpoint.
type SearchHandler struct {
	service *service.SearchService
	model   string
}

// NewSearchHandler wires the handler. model is echoed in responses.
func NewSearchHandler(svc *service.SearchService, model string) *SearchHandler {
	return &SearchHandler{service: svc, model: model}
}

// Search handles POST /search requests.
func (h *SearchHandler) Search(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	req.City = strings.TrimSpace(req.City)
	req.District = strings.TrimSpace(req.District)
	if req.City == "" || req.District == "" {
		return Error(c, http.StatusBadRequest, "city and district are required")
	}

	loc := entity.Location{City: req.City, District: req.District}
	criteria := entity.SearchCriteria{
		Cuisine:   req.Cuisine,
		Budget:    req.Budget,
		MinRating: req.MinRating,
		Keyword:   req.Keyword,
	}

	outcome, err := h.service.Search(c.Request().Context(), middlewarepkg.RequestIDFromContext(c), loc, criteria)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownLocation):
			return Error(c, http.StatusBadRequest, "unknown city or district")
		case errors.Is(err, service.ErrInvalidCriteria):
			return Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrSearchFailed):
			return Error(c, http.StatusBadGateway, service.SearchFailedMessage)
		default:
			return Error(c, http.StatusInternalServerError, service.SearchFailedMessage)
		}
	}

	refs := make([]dto.MapReferenceResponse, 0, len(outcome.Result.MapReferences))
	for _, ref := range outcome.Result.MapReferences {
		refs = append(refs, dto.MapReferenceResponse{
			Title:    ref.Title,
			URI:      ref.URI,
			SourceID: ref.SourceID,
			Host:     displayHost(ref.URI),
		})
	}

	return Success(c, http.StatusOK, "search completed", dto.SearchResponse{
		Location:      outcome.Location,
		Criteria:      outcome.Criteria,
		Summary:       outcome.Summary,
		Text:          outcome.Result.Text,
		MapReferences: refs,
		Model:         h.model,
	})
}

// displayHost returns the link's host in Unicode form without a leading
// "www.", or "" when the URI has no host.
func displayHost(raw string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return ""
	}
	if unicodeHost, err := idna.Display.ToUnicode(host); err == nil {
		host = unicodeHost
	}
	return strings.TrimPrefix(host, "www.")
}
