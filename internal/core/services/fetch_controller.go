package services

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/SscSPs/fx_dashboard/internal/apperrors"
	"github.com/SscSPs/fx_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/fx_dashboard/internal/core/ports/services"
	"github.com/SscSPs/fx_dashboard/internal/platform/metrics"
)

// FetchController turns a stream of fetch params into a FetchState.
//
// Every distinct params value starts a new generation. A fetch result is
// applied only while its generation is still current, so a slow response for
// old params never overwrites state produced for newer ones. Cancelling the
// request context on supersede is advisory; the generation check is what
// keeps state consistent.
type FetchController struct {
	fetcher  portssvc.RateFetcher
	logger   *slog.Logger
	listener func(domain.FetchState)

	mu         sync.Mutex
	generation uint64
	params     *domain.FetchParams
	state      domain.FetchState
	settled    domain.FetchStatus
	cancel     context.CancelFunc
	closed     bool
	version    uint64

	notifyMu  sync.Mutex
	delivered uint64

	// inflight counts issued requests that have not returned; guarded by mu.
	inflight int
	idle     *sync.Cond
}

// FetchControllerOption configures a FetchController.
type FetchControllerOption func(*FetchController)

// WithStateListener registers fn to receive every state transition in order.
// fn must not call back into the controller.
func WithStateListener(fn func(domain.FetchState)) FetchControllerOption {
	return func(c *FetchController) {
		c.listener = fn
	}
}

// WithControllerLogger sets the logger used for lifecycle events.
func WithControllerLogger(logger *slog.Logger) FetchControllerOption {
	return func(c *FetchController) {
		c.logger = logger
	}
}

// NewFetchController creates an Idle controller issuing requests through fetcher.
func NewFetchController(fetcher portssvc.RateFetcher, opts ...FetchControllerOption) *FetchController {
	c := &FetchController{
		fetcher: fetcher,
		logger:  slog.Default(),
		state:   domain.FetchState{Status: domain.FetchIdle},
		settled: domain.FetchIdle,
	}
	c.idle = sync.NewCond(&c.mu)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Observe applies params and returns the state right after the transition.
// Params equal to the previous ones are ignored. Incomplete params issue no
// request: in-flight work is invalidated and the last settled state is kept.
func (c *FetchController) Observe(params domain.FetchParams) domain.FetchState {
	c.mu.Lock()
	if c.closed || (c.params != nil && c.params.Equal(params)) {
		s := c.state
		c.mu.Unlock()
		return s
	}

	p := params
	p.QuoteCurrencies = slices.Clone(params.QuoteCurrencies)
	c.params = &p
	c.generation++
	gen := c.generation
	c.state.Generation = gen
	metrics.FetchGenerations.Inc()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if !p.Complete() {
		c.state.Status = c.settled
		c.state.Loading = false
		s, v := c.commitLocked()
		c.mu.Unlock()
		c.logger.Debug("Fetch params incomplete, staying idle", slog.Uint64("generation", gen))
		c.notify(s, v)
		return s
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.state.Status = domain.FetchLoading
	c.state.Loading = true
	c.state.Error = ""
	s, v := c.commitLocked()
	c.inflight++
	c.mu.Unlock()

	c.notify(s, v)
	go c.run(ctx, cancel, gen, p)
	return s
}

func (c *FetchController) run(ctx context.Context, cancel context.CancelFunc, gen uint64, p domain.FetchParams) {
	defer cancel()

	records, err := c.fetcher.Fetch(ctx, p.Base, p.Symbols(), p.StartDate, p.EndDate)

	c.mu.Lock()
	c.finishLocked()
	if gen != c.generation {
		c.mu.Unlock()
		metrics.FetchResults.WithLabelValues(metrics.OutcomeStale).Inc()
		c.logger.Debug("Discarded fetch result",
			slog.Uint64("generation", gen),
			slog.String("reason", apperrors.ErrStaleResponse.Error()))
		return
	}
	c.cancel = nil

	if err != nil {
		c.state.Status = domain.FetchFailed
		c.state.Error = apperrors.UserMessage(err, apperrors.FallbackFetchMessage)
		metrics.FetchResults.WithLabelValues(metrics.OutcomeFailure).Inc()
		c.logger.Warn("Rate fetch failed",
			slog.Uint64("generation", gen),
			slog.String("error", err.Error()))
	} else {
		c.state.Status = domain.FetchSuccess
		c.state.Data = records
		c.state.Error = ""
		metrics.FetchResults.WithLabelValues(metrics.OutcomeSuccess).Inc()
	}
	c.state.Loading = false
	c.settled = c.state.Status
	s, v := c.commitLocked()
	c.mu.Unlock()

	c.notify(s, v)
}

// State returns the current state.
func (c *FetchController) State() domain.FetchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Wait blocks until every issued request has returned, stale ones included.
// It may be called concurrently with Observe.
func (c *FetchController) Wait() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.inflight > 0 {
		c.idle.Wait()
	}
}

func (c *FetchController) finishLocked() {
	c.inflight--
	if c.inflight == 0 {
		c.idle.Broadcast()
	}
}

// Close stops observing. The current generation is invalidated so no late
// response can change state, and later Observe calls are ignored.
func (c *FetchController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.generation++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *FetchController) commitLocked() (domain.FetchState, uint64) {
	c.version++
	return c.state, c.version
}

// notify delivers s unless a newer state was already delivered.
func (c *FetchController) notify(s domain.FetchState, version uint64) {
	if c.listener == nil {
		return
	}
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	if version <= c.delivered {
		return
	}
	c.delivered = version
	c.listener(s)
}
