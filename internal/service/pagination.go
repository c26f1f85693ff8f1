package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/maxviazov/pagination-service/internal/model"
	"github.com/maxviazov/pagination-service/pkg/paginator"
)

// paginationService validates queries and runs the calculator; it knows nothing about transport.
type paginationService struct {
	log zerolog.Logger
}

func NewPaginationService(logger zerolog.Logger) PaginationService {
	l := logger.With().Str("module", "service").Str("component", "pagination").Logger()
	return &paginationService{log: l}
}

// Paginate computes the metadata as given: out-of-range pages and negative totals
// are not errors. The calculator's limit rule surfaces as a field error on "limit".
func (s *paginationService) Paginate(ctx context.Context, q model.PageQuery) (model.PageMeta, error) {
	log := s.logger(ctx)

	meta, err := paginator.Compute(q.TotalRecords, q.CurrentPage, q.Limit)
	if errors.Is(err, paginator.ErrInvalidLimit) {
		ferrs := []FieldError{{Field: "limit", Message: "must be > 0"}}
		log.Debug().Interface("query", q).Interface("field_errors", ferrs).Msg("pagination validation failed")
		return model.PageMeta{}, NewInvalidInput(ferrs)
	}
	if err != nil {
		log.Error().Err(err).Interface("query", q).Msg("pagination failed")
		return model.PageMeta{}, fmt.Errorf("compute pagination: %w", err)
	}

	log.Debug().
		Int("total_records", meta.TotalRecords).
		Int("current_page", meta.CurrentPageNumber).
		Int("limit", meta.Limit).
		Int("total_pages", meta.TotalPages).
		Ints("display_pages", meta.DisplayPages).
		Msg("pagination computed")
	return meta, nil
}

// logger prefers the request-scoped logger placed in ctx by the HTTP middleware.
func (s *paginationService) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		child := l.With().Str("module", "service").Str("component", "pagination").Logger()
		return &child
	}
	return &s.log
}
