package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the exchange_rates row: one rate per (rate_date, base_currency, target_currency).
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"` // Primary Key (UUID)
	RateDate       time.Time       `json:"rateDate"`
	BaseCurrency   string          `json:"baseCurrency"`   // FK -> currencies.currency_code
	TargetCurrency string          `json:"targetCurrency"` // FK -> currencies.currency_code
	Rate           decimal.Decimal `json:"rate"`           // numeric(12,6)
	CreatedAt      time.Time       `json:"createdAt"`
}
