package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/fx_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	defer s.Close()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	now = now.Add(2 * time.Minute)
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)

	_, err = s.Get(ctx, "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, s.Delete(ctx, "k"))
	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, s.Close())
}

func TestMemoryStore_NonPositiveIntervalUsesDefault(t *testing.T) {
	var s *MemoryStore
	require.NotPanics(t, func() { s = NewMemoryStore(0) })
	defer s.Close()

	require.NoError(t, s.Set(context.Background(), "k", []byte("v"), time.Minute))
	got, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

type countingProvider struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (p *countingProvider) FetchRates(_ context.Context, q domain.RateQuery) ([]domain.RateRecord, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return []domain.RateRecord{{Date: "2024-01-02", Base: q.Base, Rates: map[string]float64{"USD": 1.0956}}}, nil
}

func januaryQuery() domain.RateQuery {
	return domain.RateQuery{
		Base:      "EUR",
		Symbols:   []string{"USD"},
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestCachedProvider_ServesRepeatsFromStore(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()
	next := &countingProvider{}
	p := NewCachedProvider(next, store, time.Minute, nil)
	ctx := context.Background()

	first, err := p.FetchRates(ctx, januaryQuery())
	require.NoError(t, err)
	second, err := p.FetchRates(ctx, januaryQuery())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.calls)

	other := januaryQuery()
	other.Symbols = []string{"CAD"}
	_, err = p.FetchRates(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestCachedProvider_DoesNotCacheFailures(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()
	next := &countingProvider{err: errors.New("upstream down")}
	p := NewCachedProvider(next, store, time.Minute, nil)
	ctx := context.Background()

	_, err := p.FetchRates(ctx, januaryQuery())
	require.Error(t, err)
	_, err = store.Get(ctx, Key(januaryQuery()))
	assert.ErrorIs(t, err, ErrCacheMiss)

	next.err = nil
	records, err := p.FetchRates(ctx, januaryQuery())
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 2, next.calls)
}

func TestCachedProvider_UndecodableEntryIsRefetched(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, Key(januaryQuery()), []byte("not json"), time.Minute))

	next := &countingProvider{}
	records, err := NewCachedProvider(next, store, time.Minute, nil).FetchRates(ctx, januaryQuery())

	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 1, next.calls)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "rates:EUR:USD:2024-01-01..2024-01-31", Key(januaryQuery()))
}
