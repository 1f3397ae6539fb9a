package domain

import (
	"fmt"
	"strings"
)

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
}

// PairKey identifies one direction of a currency pair.
// It is the structured key consumers select datasets and columns by.
type PairKey struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
}

// String renders the key as the column name form "BASE_QUOTE".
func (p PairKey) String() string {
	return p.Base + "_" + p.Quote
}

// Label renders the key as the display form "BASE/QUOTE".
func (p PairKey) Label() string {
	return p.Base + "/" + p.Quote
}

// Inverse returns the opposite direction of the pair.
func (p PairKey) Inverse() PairKey {
	return PairKey{Base: p.Quote, Quote: p.Base}
}

// ParsePairKey parses the "BASE_QUOTE" form accepted from query strings.
func ParsePairKey(s string) (PairKey, error) {
	parts := strings.Split(strings.TrimSpace(s), "_")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return PairKey{}, fmt.Errorf("invalid pair key %q", s)
	}
	return PairKey{Base: strings.ToUpper(parts[0]), Quote: strings.ToUpper(parts[1])}, nil
}
