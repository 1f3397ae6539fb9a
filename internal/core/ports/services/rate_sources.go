package services

import (
	"context"

	"github.com/SscSPs/fx_dashboard/internal/core/domain"
)

// RateProvider is an upstream source of published rates.
type RateProvider interface {
	FetchRates(ctx context.Context, query domain.RateQuery) ([]domain.RateRecord, error)
}

// RateFetcher is the capability a FetchController issues requests through.
// Symbols are comma-joined and dates are ISO strings. Failures may carry a
// human-readable message as an *apperrors.TransportError.
type RateFetcher interface {
	Fetch(ctx context.Context, base, symbols, startDate, endDate string) ([]domain.RateRecord, error)
}

// RateFetcherFunc adapts a function to RateFetcher.
type RateFetcherFunc func(ctx context.Context, base, symbols, startDate, endDate string) ([]domain.RateRecord, error)

func (f RateFetcherFunc) Fetch(ctx context.Context, base, symbols, startDate, endDate string) ([]domain.RateRecord, error) {
	return f(ctx, base, symbols, startDate, endDate)
}
