package domain

import (
	"encoding/json"
)

// Point is one chart value. A Point that is not Valid is the missing-marker:
// renderers skip it instead of plotting zero.
type Point struct {
	Value float64
	Valid bool
}

// Missing is the missing-marker.
var Missing = Point{}

// PointOf wraps a present value.
func PointOf(v float64) Point {
	return Point{Value: v, Valid: true}
}

// MarshalJSON encodes the missing-marker as null.
func (p Point) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value)
}

// UnmarshalJSON decodes null as the missing-marker.
func (p *Point) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Missing
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = PointOf(v)
	return nil
}

// Dataset is one line of a chart, aligned positionally with ChartSeries.Labels.
type Dataset struct {
	Label       string  `json:"label"`
	Pair        PairKey `json:"pair"`
	Data        []Point `json:"data"`
	BorderColor string  `json:"borderColor"`
	Tension     float64 `json:"tension"`
}

// ChartSeries is the line-chart projection of a rate sequence.
type ChartSeries struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// FilterPairs keeps only datasets whose pair is selected.
// An empty selection keeps everything.
func (c ChartSeries) FilterPairs(selected []PairKey) ChartSeries {
	if len(selected) == 0 {
		return c
	}
	keep := make(map[PairKey]struct{}, len(selected))
	for _, p := range selected {
		keep[p] = struct{}{}
	}
	out := ChartSeries{Labels: c.Labels, Datasets: make([]Dataset, 0, len(c.Datasets))}
	for _, ds := range c.Datasets {
		if _, ok := keep[ds.Pair]; ok {
			out.Datasets = append(out.Datasets, ds)
		}
	}
	return out
}
