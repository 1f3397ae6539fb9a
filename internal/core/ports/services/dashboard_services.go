package services

import (
	"context"

	"github.com/SscSPs/fx_dashboard/internal/core/domain"
	"github.com/SscSPs/fx_dashboard/internal/dto"
)

// DashboardSvcFacade drives the dashboard's fetch lifecycle and projections.
type DashboardSvcFacade interface {
	// SetParams resolves the request into fetch params and hands them to the controller.
	SetParams(ctx context.Context, req dto.DashboardParamsRequest) (dto.FetchStateResponse, error)

	// Snapshot projects the current state, keeping only the selected pairs (all when empty).
	Snapshot(ctx context.Context, selected []domain.PairKey) (*dto.DashboardResponse, error)

	// Close tears the controller down.
	Close()
}
