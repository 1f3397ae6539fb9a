package dto

import (
	"fmt"
	"strings"

	"github.com/SscSPs/fx_dashboard/internal/core/domain"
)

// RatesQueryRequest is the query string accepted by the rate endpoints.
type RatesQueryRequest struct {
	Base      string `form:"base" binding:"omitempty,len=3,alpha"`
	Symbols   string `form:"symbols" binding:"omitempty,currency_list"`
	StartDate string `form:"start_date" binding:"required,isodate"`
	EndDate   string `form:"end_date" binding:"required,isodate"`
}

// ToRateQuery applies defaults for base and symbols and parses the dates.
func (r RatesQueryRequest) ToRateQuery(defaultBase string, defaultSymbols []string) (domain.RateQuery, error) {
	base := r.Base
	if base == "" {
		base = defaultBase
	}
	symbols := r.Symbols
	if strings.TrimSpace(symbols) == "" {
		symbols = strings.Join(defaultSymbols, ",")
	}
	return domain.ParseRateQuery(base, symbols, r.StartDate, r.EndDate)
}

// ChartQueryRequest adds the quote order to a rates query. Quotes default to the queried symbols.
type ChartQueryRequest struct {
	RatesQueryRequest
	Quotes string `form:"quotes" binding:"omitempty,currency_list"`
}

// TableQueryRequest adds an optional pair selection to a rates query.
type TableQueryRequest struct {
	RatesQueryRequest
	Pairs string `form:"pairs"`
}

// ParsePairList parses a comma-joined list of "BASE_QUOTE" keys. Empty input selects nothing.
func ParsePairList(s string) ([]domain.PairKey, error) {
	var pairs []domain.PairKey
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		p, err := domain.ParsePairKey(part)
		if err != nil {
			return nil, fmt.Errorf("pairs: %w", err)
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// SplitCodes splits a comma-joined currency list, dropping blanks.
func SplitCodes(s string) []string {
	var codes []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.ToUpper(strings.TrimSpace(part)); part != "" {
			codes = append(codes, part)
		}
	}
	return codes
}
