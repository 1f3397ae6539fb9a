package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fx_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/fx_dashboard/internal/core/ports/services"
	"github.com/SscSPs/fx_dashboard/internal/platform/metrics"
)

// CachedProvider decorates a RateProvider with a response cache. Store
// failures are logged and fall through to the provider.
type CachedProvider struct {
	next   portssvc.RateProvider
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedProvider(next portssvc.RateProvider, store Store, ttl time.Duration, logger *slog.Logger) *CachedProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedProvider{next: next, store: store, ttl: ttl, logger: logger}
}

// Key is the cache key for a query. Symbols keep their request order.
func Key(q domain.RateQuery) string {
	return "rates:" + q.Base + ":" + strings.Join(q.Symbols, ",") + ":" +
		q.StartDate.Format(domain.DateLayout) + ".." + q.EndDate.Format(domain.DateLayout)
}

func (p *CachedProvider) FetchRates(ctx context.Context, query domain.RateQuery) ([]domain.RateRecord, error) {
	key := Key(query)

	raw, err := p.store.Get(ctx, key)
	switch {
	case err == nil:
		var records []domain.RateRecord
		if jsonErr := json.Unmarshal(raw, &records); jsonErr == nil {
			metrics.ResponseCache.WithLabelValues(metrics.CacheHit).Inc()
			p.logger.Debug("Response cache hit", slog.String("key", key))
			return records, nil
		}
		p.logger.Warn("Dropping undecodable cache entry", slog.String("key", key))
		_ = p.store.Delete(ctx, key)
	case !errors.Is(err, ErrCacheMiss):
		p.logger.Warn("Response cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	metrics.ResponseCache.WithLabelValues(metrics.CacheMiss).Inc()

	records, err := p.next.FetchRates(ctx, query)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(records); err == nil {
		if err := p.store.Set(ctx, key, data, p.ttl); err != nil {
			p.logger.Warn("Response cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	return records, nil
}
