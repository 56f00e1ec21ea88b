package handler

import (
	"context"
	"errors"

	"github.com/octobees/food-finder/internal/dto"
	"github.com/octobees/food-finder/internal/entity"
	"github.com/octobees/food-finder/internal/gemini"
)

type generatorStub struct {
	resp *gemini.GenerateContentResponse
	err  error
}

func (s *generatorStub) GenerateContent(ctx context.Context, prompt string) (*gemini.GenerateContentResponse, error) {
	return s.resp, s.err
}

type searchLogsStub struct {
	list    func(ctx context.Context, filter dto.SearchLogFilter) ([]entity.SearchLog, error)
	records []entity.SearchLog
}

func (s *searchLogsStub) Record(ctx context.Context, log *entity.SearchLog) error {
	s.records = append(s.records, *log)
	return nil
}

func (s *searchLogsStub) List(ctx context.Context, filter dto.SearchLogFilter) ([]entity.SearchLog, error) {
	if s.list != nil {
		return s.list(ctx, filter)
	}
	return nil, errors.New("list not implemented")
}
