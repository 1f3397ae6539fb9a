package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/fx_dashboard/internal/apperrors"
	"github.com/SscSPs/fx_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/fx_dashboard/internal/core/ports/services"
	"github.com/SscSPs/fx_dashboard/internal/core/projection"
	"github.com/SscSPs/fx_dashboard/internal/dto"
	"golang.org/x/sync/errgroup"
)

// DefaultRange is the window the dashboard opens with.
const DefaultRange = domain.Range1Year

type dashboardService struct {
	BaseService
	controller     *FetchController
	base           string
	defaultSymbols []string
	today          func() time.Time

	mu     sync.Mutex
	params domain.FetchParams
}

// DashboardOption configures the dashboard service.
type DashboardOption func(*dashboardService)

// WithDashboardPairs sets the fixed base and the default quote currencies.
func WithDashboardPairs(base string, symbols []string) DashboardOption {
	return func(s *dashboardService) {
		s.base = base
		s.defaultSymbols = symbols
	}
}

// WithDashboardClock overrides the clock used to resolve range codes.
func WithDashboardClock(today func() time.Time) DashboardOption {
	return func(s *dashboardService) {
		s.today = today
	}
}

// NewDashboardService creates a dashboard whose fetch controller reads from fetcher.
func NewDashboardService(fetcher portssvc.RateFetcher, logger *slog.Logger, opts ...DashboardOption) portssvc.DashboardSvcFacade {
	s := &dashboardService{
		base:           "EUR",
		defaultSymbols: []string{"USD", "CAD"},
		today:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.controller = NewFetchController(fetcher, WithControllerLogger(logger))
	return s
}

// InProcessFetcher exposes the rate service as a RateFetcher. Validation
// failures are reported with their message, as the HTTP API would.
func InProcessFetcher(rates portssvc.ExchangeRateReaderSvc) portssvc.RateFetcher {
	return portssvc.RateFetcherFunc(func(ctx context.Context, base, symbols, startDate, endDate string) ([]domain.RateRecord, error) {
		query, err := domain.ParseRateQuery(base, symbols, startDate, endDate)
		if err != nil {
			return nil, &apperrors.TransportError{Status: 400, Message: err.Error(), Err: err}
		}
		records, err := rates.GetRates(ctx, query)
		if err != nil && errors.Is(err, apperrors.ErrValidation) {
			return nil, &apperrors.TransportError{Status: 400, Message: apperrors.ValidationMessage(err), Err: err}
		}
		return records, err
	})
}

func (s *dashboardService) SetParams(ctx context.Context, req dto.DashboardParamsRequest) (dto.FetchStateResponse, error) {
	rangeCode := req.Range
	if rangeCode == "" {
		rangeCode = DefaultRange
	}
	symbols := req.Symbols
	if len(symbols) == 0 {
		symbols = s.defaultSymbols
	}
	start, end := domain.DateRangeWindow(rangeCode, s.today())

	params := domain.FetchParams{
		Base:            s.base,
		QuoteCurrencies: dto.SplitCodes(strings.Join(symbols, ",")),
		StartDate:       start,
		EndDate:         end,
	}

	s.mu.Lock()
	s.params = params
	state := s.controller.Observe(params)
	s.mu.Unlock()

	s.LogInfo(ctx, "Dashboard params set",
		slog.String("range", rangeCode),
		slog.String("symbols", params.Symbols()),
		slog.Uint64("generation", state.Generation))
	return dto.ToFetchStateResponse(state, params), nil
}

func (s *dashboardService) Snapshot(ctx context.Context, selected []domain.PairKey) (*dto.DashboardResponse, error) {
	s.mu.Lock()
	params := s.params
	s.mu.Unlock()
	state := s.controller.State()

	quotes := resolveQuotes(s.base, params.QuoteCurrencies, selected)

	var (
		chart domain.ChartSeries
		table []domain.TableRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		chart = projection.Chart(state.Data, quotes).FilterPairs(selected)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		table = projection.Table(state.Data)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	columns := make([]string, 0, 2*len(params.QuoteCurrencies)+1)
	columns = append(columns, "date")
	for _, c := range projection.Columns(s.base, params.QuoteCurrencies) {
		columns = append(columns, c.String())
	}

	return &dto.DashboardResponse{
		State:   dto.ToFetchStateResponse(state, params),
		Chart:   chart,
		Table:   table,
		Columns: columns,
	}, nil
}

func (s *dashboardService) Close() {
	s.controller.Close()
}

// resolveQuotes returns the quotes, in configured order, that at least one
// selected pair refers to. No selection means every quote.
func resolveQuotes(base string, quotes []string, selected []domain.PairKey) []string {
	if len(selected) == 0 {
		return quotes
	}
	var out []string
	for _, q := range quotes {
		direct := domain.PairKey{Base: base, Quote: q}
		for _, p := range selected {
			if p == direct || p == direct.Inverse() {
				out = append(out, q)
				break
			}
		}
	}
	return out
}
