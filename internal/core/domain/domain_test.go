package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/fx_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRangeWindow(t *testing.T) {
	today := time.Date(2024, 8, 31, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name      string
		code      string
		wantStart string
	}{
		{name: "six months", code: domain.Range6Months, wantStart: "2024-03-02"},
		{name: "one year", code: domain.Range1Year, wantStart: "2023-08-31"},
		{name: "two years", code: domain.Range2Years, wantStart: "2022-08-31"},
		{name: "unknown code falls back to two years", code: "5d", wantStart: "2022-08-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := domain.DateRangeWindow(tt.code, today)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, "2024-08-31", end)
		})
	}
}

func TestPreviousMonth(t *testing.T) {
	start, end := domain.PreviousMonth(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-02-01", start.Format(domain.DateLayout))
	assert.Equal(t, "2024-02-29", end.Format(domain.DateLayout))

	start, end = domain.PreviousMonth(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2023-12-01", start.Format(domain.DateLayout))
	assert.Equal(t, "2023-12-31", end.Format(domain.DateLayout))
}

func TestParsePairKey(t *testing.T) {
	p, err := domain.ParsePairKey("eur_usd")
	require.NoError(t, err)
	assert.Equal(t, domain.PairKey{Base: "EUR", Quote: "USD"}, p)
	assert.Equal(t, "EUR_USD", p.String())
	assert.Equal(t, "EUR/USD", p.Label())
	assert.Equal(t, domain.PairKey{Base: "USD", Quote: "EUR"}, p.Inverse())

	for _, bad := range []string{"", "EURUSD", "EUR_", "_USD", "EUR_USD_CAD"} {
		_, err := domain.ParsePairKey(bad)
		assert.Error(t, err, bad)
	}
}

func TestFetchParams_Complete(t *testing.T) {
	full := domain.FetchParams{Base: "EUR", QuoteCurrencies: []string{"USD"}, StartDate: "2024-01-01", EndDate: "2024-02-01"}
	assert.True(t, full.Complete())

	missingBase := full
	missingBase.Base = ""
	assert.False(t, missingBase.Complete())

	noQuotes := full
	noQuotes.QuoteCurrencies = []string{" "}
	assert.False(t, noQuotes.Complete())

	noEnd := full
	noEnd.EndDate = ""
	assert.False(t, noEnd.Complete())
}

func TestFetchParams_Equal(t *testing.T) {
	a := domain.FetchParams{Base: "EUR", QuoteCurrencies: []string{"USD", "CAD"}, StartDate: "2024-01-01", EndDate: "2024-02-01"}
	b := a
	b.QuoteCurrencies = []string{"USD", "CAD"}
	assert.True(t, a.Equal(b))

	b.QuoteCurrencies = []string{"CAD", "USD"}
	assert.False(t, a.Equal(b))
	assert.Equal(t, "USD,CAD", a.Symbols())
}

func TestChartSeries_JSONUsesNullForMissing(t *testing.T) {
	series := domain.ChartSeries{
		Labels: []string{"2024-01-02", "2024-01-03"},
		Datasets: []domain.Dataset{{
			Label: "EUR/USD",
			Pair:  domain.PairKey{Base: "EUR", Quote: "USD"},
			Data:  []domain.Point{domain.PointOf(1.0956), domain.Missing},
		}},
	}

	raw, err := json.Marshal(series)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":[1.0956,null]`)

	var back domain.ChartSeries
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, series.Datasets[0].Data, back.Datasets[0].Data)
}

func TestTableRow_JSONIsFlat(t *testing.T) {
	row := domain.TableRow{Date: "2024-01-02", Values: map[string]float64{"EUR_USD": 1.0956, "USD_EUR": 0.912742}}

	raw, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-01-02","EUR_USD":1.0956,"USD_EUR":0.912742}`, string(raw))
}

func TestFilterPairs(t *testing.T) {
	eurUSD := domain.PairKey{Base: "EUR", Quote: "USD"}
	usdEUR := eurUSD.Inverse()
	series := domain.ChartSeries{
		Labels:   []string{"2024-01-02"},
		Datasets: []domain.Dataset{{Pair: eurUSD}, {Pair: usdEUR}},
	}

	assert.Len(t, series.FilterPairs(nil).Datasets, 2)
	filtered := series.FilterPairs([]domain.PairKey{usdEUR})
	require.Len(t, filtered.Datasets, 1)
	assert.Equal(t, usdEUR, filtered.Datasets[0].Pair)

	rows := []domain.TableRow{{Date: "2024-01-02", Values: map[string]float64{"EUR_USD": 1.1, "USD_EUR": 0.909091}}}
	got := domain.FilterTablePairs(rows, []domain.PairKey{eurUSD})
	assert.Equal(t, map[string]float64{"EUR_USD": 1.1}, got[0].Values)
}

func TestParseRateQuery(t *testing.T) {
	q, err := domain.ParseRateQuery("eur", "USD, cad,", "2024-01-01", "2024-06-30")
	require.NoError(t, err)
	assert.Equal(t, "EUR", q.Base)
	assert.Equal(t, []string{"USD", "CAD"}, q.Symbols)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), q.StartDate)
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), q.EndDate)

	_, err = domain.ParseRateQuery("EUR", "USD", "", "2024-06-30")
	assert.ErrorContains(t, err, "start_date")

	_, err = domain.ParseRateQuery("EUR", "USD", "2024-01-01", "30/06/2024")
	assert.ErrorContains(t, err, "end_date")
}
