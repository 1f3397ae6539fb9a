package dto

import (
	"github.com/SscSPs/fx_dashboard/internal/core/domain"
)

// DashboardParamsRequest selects the dashboard's date range and quote currencies.
// Empty fields fall back to the configured defaults.
type DashboardParamsRequest struct {
	Range   string   `json:"range" binding:"omitempty,oneof=6m 1y 2y"`
	Symbols []string `json:"symbols" binding:"omitempty,dive,len=3,alpha"`
}

// FetchStateResponse is the fetch lifecycle without the raw records.
type FetchStateResponse struct {
	Status     domain.FetchStatus `json:"status"`
	Loading    bool               `json:"loading"`
	Error      string             `json:"error,omitempty"`
	Generation uint64             `json:"generation"`
	Params     domain.FetchParams `json:"params"`
}

// ToFetchStateResponse converts a domain.FetchState to FetchStateResponse DTO
func ToFetchStateResponse(state domain.FetchState, params domain.FetchParams) FetchStateResponse {
	return FetchStateResponse{
		Status:     state.Status,
		Loading:    state.Loading,
		Error:      state.Error,
		Generation: state.Generation,
		Params:     params,
	}
}

// DashboardResponse is everything the dashboard renders in one read.
type DashboardResponse struct {
	State   FetchStateResponse `json:"state"`
	Chart   domain.ChartSeries `json:"chart"`
	Table   []domain.TableRow  `json:"table"`
	Columns []string           `json:"columns"`
}
