package dto

import (
	"github.com/SscSPs/fx_dashboard/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: curr.CurrencyCode,
		Symbol:       curr.Symbol,
		Name:         curr.Name,
	}
}

// ToCurrencyNameMap renders currencies as the code -> name object the dashboard consumes.
func ToCurrencyNameMap(currencies []domain.Currency) map[string]string {
	res := make(map[string]string, len(currencies))
	for _, curr := range currencies {
		res[curr.CurrencyCode] = curr.Name
	}
	return res
}
