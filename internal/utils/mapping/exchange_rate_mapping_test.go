package mapping_test

import (
	"math"
	"testing"
	"time"

	"github.com/SscSPs/fx_dashboard/internal/apperrors"
	"github.com/SscSPs/fx_dashboard/internal/core/domain"
	"github.com/SscSPs/fx_dashboard/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, _ := time.Parse(domain.DateLayout, s)
	return t
}

func TestToRateRecords_GroupsAndSortsByDate(t *testing.T) {
	rows := []domain.ExchangeRate{
		{Date: day("2024-01-03"), BaseCurrency: "EUR", TargetCurrency: "USD", Rate: decimal.RequireFromString("1.0978")},
		{Date: day("2024-01-02"), BaseCurrency: "EUR", TargetCurrency: "CAD", Rate: decimal.RequireFromString("1.4567")},
		{Date: day("2024-01-02"), BaseCurrency: "EUR", TargetCurrency: "USD", Rate: decimal.RequireFromString("1.0956")},
	}

	records := mapping.ToRateRecords(rows)

	require.Len(t, records, 2)
	assert.Equal(t, domain.RateRecord{Date: "2024-01-02", Base: "EUR", Rates: map[string]float64{"USD": 1.0956, "CAD": 1.4567}}, records[0])
	assert.Equal(t, domain.RateRecord{Date: "2024-01-03", Base: "EUR", Rates: map[string]float64{"USD": 1.0978}}, records[1])
	assert.Empty(t, mapping.ToRateRecords(nil))
}

func TestFromRateRecords(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	records := []domain.RateRecord{{Date: "2024-01-02", Base: "EUR", Rates: map[string]float64{"USD": 1.0956}}}

	rows, err := mapping.FromRateRecords(records, now)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.NotEmpty(t, rows[0].ExchangeRateID)
	assert.Equal(t, day("2024-01-02"), rows[0].Date)
	assert.Equal(t, "USD", rows[0].TargetCurrency)
	assert.True(t, decimal.RequireFromString("1.0956").Equal(rows[0].Rate))
	assert.Equal(t, now, rows[0].CreatedAt)
}

func TestFromRateRecords_Malformed(t *testing.T) {
	for name, rec := range map[string]domain.RateRecord{
		"bad date":      {Date: "02/01/2024", Base: "EUR", Rates: map[string]float64{"USD": 1.1}},
		"zero rate":     {Date: "2024-01-02", Base: "EUR", Rates: map[string]float64{"USD": 0}},
		"negative rate": {Date: "2024-01-02", Base: "EUR", Rates: map[string]float64{"USD": -1}},
		"nan rate":      {Date: "2024-01-02", Base: "EUR", Rates: map[string]float64{"USD": math.NaN()}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := mapping.FromRateRecords([]domain.RateRecord{rec}, time.Now())
			assert.ErrorIs(t, err, apperrors.ErrMalformedRecord)
		})
	}
}
