package services

import (
	"context"
	"time"

	"github.com/SscSPs/fx_dashboard/internal/core/domain"
)

// CurrencySvcFacade defines read operations for supported currencies
type CurrencySvcFacade interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetRates returns one record per date for the query, reading through the store.
	GetRates(ctx context.Context, query domain.RateQuery) ([]domain.RateRecord, error)
}

// ExchangeRateRefresherSvc refreshes stored rates from upstream.
type ExchangeRateRefresherSvc interface {
	// RefreshPreviousMonth loads the calendar month before now for the default pair set.
	RefreshPreviousMonth(ctx context.Context, now time.Time) ([]domain.RateRecord, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateRefresherSvc
}
