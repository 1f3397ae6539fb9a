package repositories

import (
	"context"

	"github.com/SscSPs/fx_dashboard/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyRepositoryFacade is what services depend on. Currencies are seeded
// by migration, so there is no writer.
type CurrencyRepositoryFacade interface {
	CurrencyReader
}
