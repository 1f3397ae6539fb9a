package mapping

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/SscSPs/fx_dashboard/internal/apperrors"
	"github.com/SscSPs/fx_dashboard/internal/core/domain"
	"github.com/SscSPs/fx_dashboard/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID: d.ExchangeRateID,
		RateDate:       d.Date,
		BaseCurrency:   d.BaseCurrency,
		TargetCurrency: d.TargetCurrency,
		Rate:           d.Rate,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID: m.ExchangeRateID,
		Date:           m.RateDate,
		BaseCurrency:   m.BaseCurrency,
		TargetCurrency: m.TargetCurrency,
		Rate:           m.Rate,
		CreatedAt:      m.CreatedAt,
	}
}

// ToRateRecords groups stored rates into one RateRecord per date, sorted by date.
func ToRateRecords(rates []domain.ExchangeRate) []domain.RateRecord {
	byDate := make(map[string]*domain.RateRecord)
	for _, r := range rates {
		key := r.Date.Format(domain.DateLayout)
		rec, ok := byDate[key]
		if !ok {
			rec = &domain.RateRecord{Date: key, Base: r.BaseCurrency, Rates: map[string]float64{}}
			byDate[key] = rec
		}
		rec.Rates[r.TargetCurrency] = r.Rate.InexactFloat64()
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]domain.RateRecord, len(dates))
	for i, d := range dates {
		out[i] = *byDate[d]
	}
	return out
}

// FromRateRecords flattens records into storable rates with fresh ids.
// Records whose date is not ISO or whose rate is not a positive finite number
// are rejected with apperrors.ErrMalformedRecord.
func FromRateRecords(records []domain.RateRecord, now time.Time) ([]domain.ExchangeRate, error) {
	var out []domain.ExchangeRate
	for _, rec := range records {
		date, err := time.Parse(domain.DateLayout, rec.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date %q", apperrors.ErrMalformedRecord, rec.Date)
		}
		for code, rate := range rec.Rates {
			if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
				return nil, fmt.Errorf("%w: %s %s rate %v", apperrors.ErrMalformedRecord, rec.Date, code, rate)
			}
			out = append(out, domain.ExchangeRate{
				ExchangeRateID: uuid.NewString(),
				Date:           date,
				BaseCurrency:   rec.Base,
				TargetCurrency: code,
				Rate:           decimal.NewFromFloat(rate),
				CreatedAt:      now,
			})
		}
	}
	return out, nil
}
