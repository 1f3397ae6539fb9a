package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO calendar date form used on every wire and column.
const DateLayout = "2006-01-02"

// RateRecord is one day of rates quoted from a single base currency.
// A code missing from Rates means there is no value for that day.
type RateRecord struct {
	Date  string             `json:"date"`
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Rate returns the quote for code and whether it is present.
func (r RateRecord) Rate(code string) (float64, bool) {
	if r.Rates == nil {
		return 0, false
	}
	v, ok := r.Rates[code]
	return v, ok
}

// ExchangeRate is a single stored (date, base, target) rate.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	Date           time.Time       `json:"date"`
	BaseCurrency   string          `json:"baseCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// RateQuery selects rates for one base and a set of symbols over an inclusive date range.
type RateQuery struct {
	Base      string
	Symbols   []string
	StartDate time.Time
	EndDate   time.Time
}

// ParseRateQuery builds a RateQuery from wire values: comma-joined symbols and ISO dates.
func ParseRateQuery(base, symbols, startDate, endDate string) (RateQuery, error) {
	q := RateQuery{Base: strings.ToUpper(strings.TrimSpace(base))}
	for _, s := range strings.Split(symbols, ",") {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			q.Symbols = append(q.Symbols, s)
		}
	}
	var err error
	if q.StartDate, err = time.Parse(DateLayout, startDate); err != nil {
		return RateQuery{}, fmt.Errorf("start_date %q is not a YYYY-MM-DD date", startDate)
	}
	if q.EndDate, err = time.Parse(DateLayout, endDate); err != nil {
		return RateQuery{}, fmt.Errorf("end_date %q is not a YYYY-MM-DD date", endDate)
	}
	return q, nil
}
