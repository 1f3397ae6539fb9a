package services

import (
	"log/slog"

	portsrepo "github.com/SscSPs/fx_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_dashboard/internal/core/ports/services"
	"github.com/SscSPs/fx_dashboard/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// provider is the upstream rate source, already decorated with any response cache.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, provider portssvc.RateProvider, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.ExchangeRate = NewExchangeRateService(
		repos.ExchangeRateRepo,
		container.Currency,
		provider,
		WithDefaultPairs(cfg.DefaultBase, cfg.DefaultSymbols),
	)

	// The dashboard reads through the rate service in process.
	container.Dashboard = NewDashboardService(
		InProcessFetcher(container.ExchangeRate),
		logger,
		WithDashboardPairs(cfg.DefaultBase, cfg.DefaultSymbols),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade     = (*currencyService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)
	_ portssvc.DashboardSvcFacade    = (*dashboardService)(nil)
)
