package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/octobees/food-finder/internal/catalog"
	"github.com/octobees/food-finder/internal/dto"
	"github.com/octobees/food-finder/internal/entity"
	"github.com/octobees/food-finder/internal/gemini"
	"github.com/octobees/food-finder/internal/metrics"
	"github.com/octobees/food-finder/internal/repository"
)

// SearchFailedMessage is the only failure text shown to users when the
// generation call fails.
const SearchFailedMessage = "搜尋失敗，請檢查網路或稍後再試。"

var (
	ErrUnknownLocation = errors.New("unknown location")
	ErrInvalidCriteria = errors.New("invalid search criteria")
	ErrSearchFailed    = errors.New("search failed")
	ErrHistoryDisabled = errors.New("search history is not configured")
)

const (
	recordTimeout       = 5 * time.Second
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// SearchOutcome is a completed search with the inputs it ran with.
type SearchOutcome struct {
	Location entity.Location
	Criteria entity.SearchCriteria
	Summary  string
	Result   entity.SearchResult
}

// SearchService runs location-scoped food searches against the model.
type SearchService struct {
	generator gemini.Generator
	prompts   *PromptBuilder
	logs      repository.SearchLogsRepository
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewSearchService wires a search service. logs and m may be nil.
func NewSearchService(generator gemini.Generator, prompts *PromptBuilder, logs repository.SearchLogsRepository, m *metrics.Metrics) *SearchService {
	if prompts == nil {
		prompts = NewPromptBuilder("")
	}
	return &SearchService{generator: generator, prompts: prompts, logs: logs, metrics: m, now: time.Now}
}

// NormalizeCriteria trims the fields, replaces empty ones with their
// sentinels and rejects values outside the known options.
func NormalizeCriteria(criteria entity.SearchCriteria) (entity.SearchCriteria, error) {
	criteria.Cuisine = strings.TrimSpace(criteria.Cuisine)
	criteria.Budget = strings.TrimSpace(criteria.Budget)
	criteria.MinRating = strings.TrimSpace(criteria.MinRating)
	criteria.Keyword = strings.TrimSpace(criteria.Keyword)

	if criteria.Cuisine == "" {
		criteria.Cuisine = entity.CuisineAll
	}
	if criteria.Budget == "" {
		criteria.Budget = entity.BudgetAny
	}
	if criteria.MinRating == "" {
		criteria.MinRating = entity.RatingAny
	}

	switch {
	case !catalog.ValidCuisine(criteria.Cuisine):
		return criteria, fmt.Errorf("%w: unsupported cuisine %q", ErrInvalidCriteria, criteria.Cuisine)
	case !catalog.ValidBudget(criteria.Budget):
		return criteria, fmt.Errorf("%w: unsupported budget %q", ErrInvalidCriteria, criteria.Budget)
	case !catalog.ValidRating(criteria.MinRating):
		return criteria, fmt.Errorf("%w: unsupported min_rating %q", ErrInvalidCriteria, criteria.MinRating)
	case utf8.RuneCountInString(criteria.Keyword) > catalog.MaxKeywordLength:
		return criteria, fmt.Errorf("%w: keyword longer than %d characters", ErrInvalidCriteria, catalog.MaxKeywordLength)
	}
	return criteria, nil
}

// ResolveLocation maps a city/district pair onto the catalog's canonical names.
func ResolveLocation(loc entity.Location) (entity.Location, error) {
	city, district, ok := catalog.FindDistrict(loc.City, loc.District)
	if !ok {
		return loc, fmt.Errorf("%w: %s %s", ErrUnknownLocation, strings.TrimSpace(loc.City), strings.TrimSpace(loc.District))
	}
	return entity.Location{City: city.Name, District: district.Name}, nil
}

// Search validates the input, sends one prompt to the model and extracts the
// result. Generation failures are returned wrapped in ErrSearchFailed.
func (s *SearchService) Search(ctx context.Context, requestID string, loc entity.Location, criteria entity.SearchCriteria) (*SearchOutcome, error) {
	loc, err := ResolveLocation(loc)
	if err != nil {
		return nil, err
	}
	criteria, err = NormalizeCriteria(criteria)
	if err != nil {
		return nil, err
	}

	prompt := s.prompts.Build(loc, criteria)

	start := s.now()
	resp, err := s.generator.GenerateContent(ctx, prompt)
	latency := s.now().Sub(start)

	entry := &entity.SearchLog{
		RequestID: requestID,
		City:      loc.City,
		District:  loc.District,
		Cuisine:   criteria.Cuisine,
		Budget:    criteria.Budget,
		MinRating: criteria.MinRating,
		Keyword:   criteria.Keyword,
		LatencyMS: latency.Milliseconds(),
	}

	if err != nil {
		msg := err.Error()
		entry.Status = entity.SearchStatusFailed
		entry.ErrorMessage = &msg
		s.metrics.ObserveSearch(entity.SearchStatusFailed, latency.Seconds())
		log.Printf("search request_id=%s city=%q district=%q status=%s latency=%s error=%q", requestID, loc.City, loc.District, entry.Status, latency, msg)
		s.record(ctx, entry)
		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	result := ExtractSearchResult(resp)
	counts := CountChunkKinds(resp)
	for kind, n := range counts {
		s.metrics.ObserveChunks(kind.String(), n)
	}
	dropped := counts[gemini.ChunkKindUnknown]
	s.metrics.ObserveDropped(dropped)
	s.metrics.ObserveSearch(entity.SearchStatusSuccess, latency.Seconds())

	entry.Status = entity.SearchStatusSuccess
	entry.ReferenceCount = len(result.MapReferences)
	entry.DroppedChunks = dropped
	log.Printf("search request_id=%s city=%q district=%q status=%s references=%d dropped_chunks=%d latency=%s", requestID, loc.City, loc.District, entry.Status, entry.ReferenceCount, dropped, latency)
	s.record(ctx, entry)

	return &SearchOutcome{
		Location: loc,
		Criteria: criteria,
		Summary:  catalog.Summary(criteria),
		Result:   result,
	}, nil
}

func (s *SearchService) record(ctx context.Context, entry *entity.SearchLog) {
	if s.logs == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()
	if err := s.logs.Record(ctx, entry); err != nil {
		log.Printf("search request_id=%s record search log failed: %v", entry.RequestID, err)
	}
}

// HistoryEnabled reports whether search logs are stored.
func (s *SearchService) HistoryEnabled() bool {
	return s.logs != nil
}

// History lists recorded searches, newest first.
func (s *SearchService) History(ctx context.Context, filter dto.SearchLogFilter) ([]entity.SearchLog, error) {
	if s.logs == nil {
		return nil, ErrHistoryDisabled
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultHistoryLimit
	}
	if filter.Limit > maxHistoryLimit {
		filter.Limit = maxHistoryLimit
	}
	if filter.City != "" {
		if city, ok := catalog.FindCity(filter.City); ok {
			filter.City = city.Name
		}
	}
	return s.logs.List(ctx, filter)
}
