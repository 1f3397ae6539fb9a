package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fx_dashboard/internal/apperrors"
	"github.com/SscSPs/fx_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_dashboard/internal/core/ports/services"
	"github.com/SscSPs/fx_dashboard/internal/platform/metrics"
	"github.com/SscSPs/fx_dashboard/internal/utils/mapping"
)

// MaxRangeYears bounds the span of a single rate query.
const MaxRangeYears = 2

type exchangeRateService struct {
	BaseService
	rateRepo    portsrepo.ExchangeRateRepositoryFacade
	currencySvc portssvc.CurrencySvcFacade
	provider    portssvc.RateProvider

	defaultBase    string
	defaultSymbols []string
	now            func() time.Time
}

// ExchangeRateServiceOption configures the exchange rate service.
type ExchangeRateServiceOption func(*exchangeRateService)

// WithDefaultPairs sets the base and symbols used by scheduled refreshes.
func WithDefaultPairs(base string, symbols []string) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.defaultBase = base
		s.defaultSymbols = symbols
	}
}

// WithClock overrides time.Now for created_at stamps.
func WithClock(now func() time.Time) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.now = now
	}
}

// NewExchangeRateService creates a cache-through rate service: the repository
// is consulted first and the provider fills whatever is missing.
func NewExchangeRateService(
	rateRepo portsrepo.ExchangeRateRepositoryFacade,
	currencySvc portssvc.CurrencySvcFacade,
	provider portssvc.RateProvider,
	opts ...ExchangeRateServiceOption,
) portssvc.ExchangeRateSvcFacade {
	s := &exchangeRateService{
		rateRepo:       rateRepo,
		currencySvc:    currencySvc,
		provider:       provider,
		defaultBase:    "EUR",
		defaultSymbols: []string{"USD", "CAD"},
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *exchangeRateService) GetRates(ctx context.Context, query domain.RateQuery) ([]domain.RateRecord, error) {
	query = normalizeQuery(query)
	if err := s.validateQuery(ctx, query); err != nil {
		return nil, err
	}
	logger := s.GetLogger(ctx).With(
		slog.String("base", query.Base),
		slog.String("symbols", strings.Join(query.Symbols, ",")),
		slog.String("start_date", query.StartDate.Format(domain.DateLayout)),
		slog.String("end_date", query.EndDate.Format(domain.DateLayout)),
	)

	cached, err := s.rateRepo.ListRates(ctx, query.Base, query.Symbols, query.StartDate, query.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored rates: %w", err)
	}

	// Weekends have no rates, so row counts can't be predicted. Any stored row
	// for every symbol is taken to mean the range is complete.
	if len(cached) > 0 && coversSymbols(cached, query.Symbols) {
		metrics.RateCache.WithLabelValues(metrics.CacheHit).Inc()
		logger.Debug("Serving rates from store", slog.Int("rows", len(cached)))
		return mapping.ToRateRecords(cached), nil
	}
	metrics.RateCache.WithLabelValues(metrics.CacheMiss).Inc()

	fetched, err := s.provider.FetchRates(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch rates from provider")
		return nil, fmt.Errorf("failed to fetch rates from provider: %w", err)
	}

	rows, err := mapping.FromRateRecords(fetched, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		if err := s.rateRepo.UpsertRates(ctx, rows); err != nil {
			return nil, fmt.Errorf("failed to store fetched rates: %w", err)
		}
	}
	logger.Info("Stored rates from provider", slog.Int("rows", len(rows)))

	stored, err := s.rateRepo.ListRates(ctx, query.Base, query.Symbols, query.StartDate, query.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored rates: %w", err)
	}
	return mapping.ToRateRecords(stored), nil
}

func (s *exchangeRateService) RefreshPreviousMonth(ctx context.Context, now time.Time) ([]domain.RateRecord, error) {
	start, end := domain.PreviousMonth(now)
	s.LogInfo(ctx, "Refreshing previous month rates",
		slog.String("start_date", start.Format(domain.DateLayout)),
		slog.String("end_date", end.Format(domain.DateLayout)))

	return s.GetRates(ctx, domain.RateQuery{
		Base:      s.defaultBase,
		Symbols:   s.defaultSymbols,
		StartDate: start,
		EndDate:   end,
	})
}

func (s *exchangeRateService) validateQuery(ctx context.Context, q domain.RateQuery) error {
	if q.Base == "" {
		return apperrors.NewValidationError("base is required")
	}
	if len(q.Symbols) == 0 {
		return apperrors.NewValidationError("symbols is required")
	}
	if q.StartDate.IsZero() || q.EndDate.IsZero() {
		return apperrors.NewValidationError("start_date and end_date are required")
	}
	if q.StartDate.After(q.EndDate) {
		return apperrors.NewValidationError("start_date must not be after end_date")
	}
	if q.StartDate.AddDate(MaxRangeYears, 0, 0).Before(q.EndDate) {
		return apperrors.NewValidationError(fmt.Sprintf("date range cannot exceed %d years", MaxRangeYears))
	}

	currencies, err := s.currencySvc.ListCurrencies(ctx)
	if err != nil {
		return err
	}
	supported := make(map[string]struct{}, len(currencies))
	for _, c := range currencies {
		supported[c.CurrencyCode] = struct{}{}
	}
	for _, code := range append([]string{q.Base}, q.Symbols...) {
		if _, ok := supported[code]; !ok {
			return apperrors.NewValidationError(fmt.Sprintf("unsupported currency '%s'", code))
		}
	}
	for _, code := range q.Symbols {
		if code == q.Base {
			return apperrors.NewValidationError(fmt.Sprintf("symbol '%s' is the base currency", code))
		}
	}
	return nil
}

func normalizeQuery(q domain.RateQuery) domain.RateQuery {
	q.Base = strings.ToUpper(strings.TrimSpace(q.Base))
	symbols := make([]string, 0, len(q.Symbols))
	seen := make(map[string]struct{}, len(q.Symbols))
	for _, sym := range q.Symbols {
		sym = strings.ToUpper(strings.TrimSpace(sym))
		if sym == "" {
			continue
		}
		if _, dup := seen[sym]; dup {
			continue
		}
		seen[sym] = struct{}{}
		symbols = append(symbols, sym)
	}
	q.Symbols = symbols
	return q
}

func coversSymbols(rows []domain.ExchangeRate, symbols []string) bool {
	have := make(map[string]struct{}, len(symbols))
	for _, r := range rows {
		have[r.TargetCurrency] = struct{}{}
	}
	for _, sym := range symbols {
		if _, ok := have[sym]; !ok {
			return false
		}
	}
	return true
}
