// Package projection turns rate sequences into the shapes the dashboard renders.
// Every function here is pure and safe to call concurrently on shared input.
package projection

import (
	"github.com/SscSPs/fx_dashboard/internal/core/domain"
)

// LineTension is the curve smoothing applied to every dataset.
const LineTension = 0.3

// Palette is cycled across datasets in emission order.
var Palette = [...]string{"#3b82f6", "#10b981", "#d946ef", "#f59e0b", "#8b5cf6", "#06b6d4"}

// Chart builds a direct and an inverse dataset for each quote currency, in the
// order given. The base is read from the first record.
func Chart(records []domain.RateRecord, quotes []string) domain.ChartSeries {
	if len(records) == 0 {
		return domain.ChartSeries{Labels: []string{}, Datasets: []domain.Dataset{}}
	}

	base := records[0].Base
	labels := make([]string, len(records))
	for i, r := range records {
		labels[i] = r.Date
	}

	colors := 0
	nextColor := func() string {
		c := Palette[colors%len(Palette)]
		colors++
		return c
	}

	datasets := make([]domain.Dataset, 0, 2*len(quotes))
	for _, code := range quotes {
		direct := make([]domain.Point, len(records))
		inverse := make([]domain.Point, len(records))
		for i, r := range records {
			rate, ok := r.Rate(code)
			if !ok {
				direct[i], inverse[i] = domain.Missing, domain.Missing
				continue
			}
			direct[i] = domain.PointOf(rate)
			inv, ok := reciprocal(rate)
			if !ok {
				inverse[i] = domain.Missing
				continue
			}
			inverse[i] = domain.PointOf(inv)
		}

		pair := domain.PairKey{Base: base, Quote: code}
		datasets = append(datasets,
			domain.Dataset{Label: pair.Label(), Pair: pair, Data: direct, BorderColor: nextColor(), Tension: LineTension},
			domain.Dataset{Label: pair.Inverse().Label(), Pair: pair.Inverse(), Data: inverse, BorderColor: nextColor(), Tension: LineTension},
		)
	}

	return domain.ChartSeries{Labels: labels, Datasets: datasets}
}
