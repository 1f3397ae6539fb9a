package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_dashboard/internal/adapters/frankfurter"
	portssvc "github.com/SscSPs/fx_dashboard/internal/core/ports/services"
	"github.com/SscSPs/fx_dashboard/internal/core/services"
	"github.com/SscSPs/fx_dashboard/internal/platform/config"
	"github.com/SscSPs/fx_dashboard/internal/repositories/database/pgsql"
	"github.com/SscSPs/fx_dashboard/pkg/database"
	"github.com/spf13/cobra"
)

func newRefreshCmd() *cobra.Command {
	var standalone bool
	var after time.Duration

	refreshCmd := &cobra.Command{
		Use:   "refresh",
		Short: "Load last month's rates for the default pairs into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateInterval(standalone, after); err != nil {
				return err
			}
			logger := newLogger()

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			pool, err := database.NewPgxPool(cmd.Context(), cfg.DatabaseURL, true)
			if err != nil {
				return err
			}
			defer pool.Close()

			upstream, err := frankfurter.New(cfg.FrankfurterURL,
				frankfurter.WithTimeout(cfg.FrankfurterTimeout),
				frankfurter.WithRetries(cfg.FrankfurterRetries, 200*time.Millisecond),
				frankfurter.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool), upstream, logger)
			defer container.Dashboard.Close()

			return runRefresh(cmd.Context(), container.ExchangeRate, standalone, after, time.Now, logger)
		},
	}

	refreshCmd.Flags().BoolVar(&standalone, "standalone", false, "Keep running and refresh on every interval")
	refreshCmd.Flags().DurationVar(&after, "after", 30*24*time.Hour, "Refresh interval for standalone mode")
	return refreshCmd
}

func validateInterval(standalone bool, after time.Duration) error {
	if standalone && after <= 0 {
		return fmt.Errorf("--after must be positive, got %s", after)
	}
	return nil
}

// runRefresh refreshes once and, when standalone, again every interval until ctx is done.
// In standalone mode a failed refresh is logged and retried on the next tick.
func runRefresh(
	ctx context.Context,
	refresher portssvc.ExchangeRateRefresherSvc,
	standalone bool,
	after time.Duration,
	now func() time.Time,
	logger *slog.Logger,
) error {
	if err := validateInterval(standalone, after); err != nil {
		return err
	}

	refresh := func() error {
		records, err := refresher.RefreshPreviousMonth(ctx, now())
		if err != nil {
			logger.Error("Refresh failed", slog.String("error", err.Error()))
			return err
		}
		logger.Info("Refreshed previous month", slog.Int("dates", len(records)))
		return nil
	}

	if err := refresh(); err != nil && !standalone {
		return err
	}
	if !standalone {
		return nil
	}

	ticker := time.NewTicker(after)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_ = refresh()
		case <-ctx.Done():
			return nil
		}
	}
}
