package projection

import (
	"math"

	"github.com/SscSPs/fx_dashboard/internal/core/domain"
	"github.com/SscSPs/fx_dashboard/internal/utils"
)

// Table flattens each record into a row with a direct and an inverse column
// per quote present on that date. Both are rounded to utils.RatePrecision;
// the inverse is rounded from the exact reciprocal. The base is read from the
// first record.
func Table(records []domain.RateRecord) []domain.TableRow {
	rows := make([]domain.TableRow, 0, len(records))
	if len(records) == 0 {
		return rows
	}

	base := records[0].Base
	for _, r := range records {
		values := make(map[string]float64, 2*len(r.Rates))
		for code, rate := range r.Rates {
			pair := domain.PairKey{Base: base, Quote: code}
			values[pair.String()] = utils.RoundRate(rate, utils.RatePrecision)
			if inv, ok := reciprocal(rate); ok {
				values[pair.Inverse().String()] = utils.RoundRate(inv, utils.RatePrecision)
			}
		}
		rows = append(rows, domain.TableRow{Date: r.Date, Values: values})
	}
	return rows
}

// reciprocal returns 1/rate unless it is undefined or overflows.
func reciprocal(rate float64) (float64, bool) {
	if rate == 0 {
		return 0, false
	}
	inv := 1 / rate
	if math.IsInf(inv, 0) || math.IsNaN(inv) {
		return 0, false
	}
	return inv, true
}

// Columns lists the table columns for a base and quote order: every direct
// column first, then every inverse column.
func Columns(base string, quotes []string) []domain.PairKey {
	cols := make([]domain.PairKey, 0, 2*len(quotes))
	for _, q := range quotes {
		cols = append(cols, domain.PairKey{Base: base, Quote: q})
	}
	for _, q := range quotes {
		cols = append(cols, domain.PairKey{Base: q, Quote: base})
	}
	return cols
}
