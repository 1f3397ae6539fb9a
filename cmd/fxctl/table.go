package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/fx_dashboard/internal/adapters/ratesapi"
	"github.com/SscSPs/fx_dashboard/internal/core/domain"
	"github.com/SscSPs/fx_dashboard/internal/core/projection"
	"github.com/SscSPs/fx_dashboard/internal/core/services"
	"github.com/SscSPs/fx_dashboard/internal/dto"
	"github.com/SscSPs/fx_dashboard/internal/utils"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newTableCmd() *cobra.Command {
	var (
		server    string
		rangeCode string
		base      string
		symbols   string
		timeout   time.Duration
	)

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "Print the rate table from a running dashboard server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ratesapi.New(server, timeout)
			if err != nil {
				return err
			}

			controller := services.NewFetchController(client, services.WithControllerLogger(newLogger()))
			defer controller.Close()

			start, end := domain.DateRangeWindow(rangeCode, time.Now())
			params := domain.FetchParams{
				Base:            strings.ToUpper(strings.TrimSpace(base)),
				QuoteCurrencies: dto.SplitCodes(symbols),
				StartDate:       start,
				EndDate:         end,
			}
			controller.Observe(params)
			controller.Wait()

			state := controller.State()
			switch state.Status {
			case domain.FetchFailed:
				return fmt.Errorf("%s", state.Error)
			case domain.FetchSuccess:
				return renderTable(cmd.OutOrStdout(), params, state.Data)
			default:
				return fmt.Errorf("base and at least one symbol are required")
			}
		},
	}

	tableCmd.Flags().StringVar(&server, "server", "http://localhost:8080", "Dashboard server URL")
	tableCmd.Flags().StringVar(&rangeCode, "range", domain.Range1Year, "Date range: 6m, 1y or 2y")
	tableCmd.Flags().StringVar(&base, "base", "EUR", "Base currency")
	tableCmd.Flags().StringVar(&symbols, "symbols", "USD,CAD", "Comma-separated quote currencies")
	tableCmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "Request timeout")
	return tableCmd
}

// renderTable writes one line per date with every direct column followed by
// every inverse column, fixed to the display precision. Absent values print as "-".
func renderTable(out io.Writer, params domain.FetchParams, records []domain.RateRecord) error {
	cols := projection.Columns(params.Base, params.QuoteCurrencies)
	rows := projection.Table(records)

	header := color.New(color.Bold)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	names := make([]string, 0, len(cols)+1)
	names = append(names, "date")
	for _, c := range cols {
		names = append(names, c.String())
	}
	header.Fprintln(w, strings.Join(names, "\t"))

	for _, row := range rows {
		cells := make([]string, 0, len(cols)+1)
		cells = append(cells, row.Date)
		for _, c := range cols {
			if v, ok := row.Value(c); ok {
				cells = append(cells, utils.FormatWithPrecision(decimal.NewFromFloat(v), utils.RatePrecision))
			} else {
				cells = append(cells, "-")
			}
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	if len(rows) == 0 {
		fmt.Fprintln(w, "no rates for the selected range")
	}
	return w.Flush()
}
