package domain

import (
	"slices"
	"strings"
)

// FetchStatus is the lifecycle position of a fetch controller.
type FetchStatus string

const (
	FetchIdle    FetchStatus = "idle"
	FetchLoading FetchStatus = "loading"
	FetchSuccess FetchStatus = "success"
	FetchFailed  FetchStatus = "failed"
)

// FetchParams are the inputs that key a rate fetch.
type FetchParams struct {
	Base            string   `json:"base"`
	QuoteCurrencies []string `json:"quoteCurrencies"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
}

// Complete reports whether every required field is present.
func (p FetchParams) Complete() bool {
	if strings.TrimSpace(p.Base) == "" || p.StartDate == "" || p.EndDate == "" {
		return false
	}
	for _, c := range p.QuoteCurrencies {
		if strings.TrimSpace(c) != "" {
			return true
		}
	}
	return false
}

// Symbols returns the quote currencies comma-joined, as the fetch capability expects.
func (p FetchParams) Symbols() string {
	return strings.Join(p.QuoteCurrencies, ",")
}

// Equal is field-by-field equality.
func (p FetchParams) Equal(o FetchParams) bool {
	return p.Base == o.Base &&
		p.StartDate == o.StartDate &&
		p.EndDate == o.EndDate &&
		slices.Equal(p.QuoteCurrencies, o.QuoteCurrencies)
}

// FetchState is what a fetch controller exposes to its consumers.
// Data is nil before the first success.
type FetchState struct {
	Status     FetchStatus  `json:"status"`
	Data       []RateRecord `json:"data"`
	Loading    bool         `json:"loading"`
	Error      string       `json:"error,omitempty"`
	Generation uint64       `json:"generation"`
}
