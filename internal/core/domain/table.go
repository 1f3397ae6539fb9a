package domain

import (
	"encoding/json"
	"fmt"
)

// TableRow is one flattened table row. Values is keyed by pair column name
// ("EUR_USD") and only holds columns present for that date.
type TableRow struct {
	Date   string
	Values map[string]float64
}

// Value returns the column for pair and whether it is present.
func (r TableRow) Value(pair PairKey) (float64, bool) {
	v, ok := r.Values[pair.String()]
	return v, ok
}

// MarshalJSON flattens the row into {"date": ..., "EUR_USD": ...}.
func (r TableRow) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Values)+1)
	for k, v := range r.Values {
		flat[k] = v
	}
	flat["date"] = r.Date
	return json.Marshal(flat)
}

// UnmarshalJSON reads the flattened form back.
func (r *TableRow) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	row := TableRow{Values: make(map[string]float64, len(flat))}
	for k, raw := range flat {
		if k == "date" {
			if err := json.Unmarshal(raw, &row.Date); err != nil {
				return fmt.Errorf("table row date: %w", err)
			}
			continue
		}
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("table row column %s: %w", k, err)
		}
		row.Values[k] = v
	}
	*r = row
	return nil
}

// FilterTablePairs keeps only the selected columns in every row.
// An empty selection returns rows unchanged.
func FilterTablePairs(rows []TableRow, selected []PairKey) []TableRow {
	if len(selected) == 0 {
		return rows
	}
	out := make([]TableRow, len(rows))
	for i, row := range rows {
		values := make(map[string]float64, len(selected))
		for _, p := range selected {
			if v, ok := row.Value(p); ok {
				values[p.String()] = v
			}
		}
		out[i] = TableRow{Date: row.Date, Values: values}
	}
	return out
}
