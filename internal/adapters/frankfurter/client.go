// Package frankfurter is a client for the Frankfurter time-series API,
// which republishes the ECB reference rates.
package frankfurter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/fx_dashboard/internal/apperrors"
	"github.com/SscSPs/fx_dashboard/internal/core/domain"
	"github.com/SscSPs/fx_dashboard/internal/platform/metrics"
	"github.com/eapache/go-resiliency/retrier"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.frankfurter.dev/v1"
	DefaultTimeout = 10 * time.Second
)

const (
	msgConnect = "Could not connect to Frankfurter API"
	msgTimeout = "Frankfurter API request timed out"
)

type response struct {
	Base  string                                `json:"base"`
	Rates map[string]map[string]json.RawMessage `json:"rates"`
}

// Client fetches published rates. It is safe for concurrent use.
type Client struct {
	baseURL     *url.URL
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	retrier     *retrier.Retrier
	timeout     time.Duration
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds every single attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRateLimit paces outgoing requests to rps with the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.rateLimiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithRetries retries 5xx and connection failures up to n more times with
// exponential backoff starting at initial.
func WithRetries(n int, initial time.Duration) Option {
	return func(c *Client) {
		c.retrier = retrier.New(retrier.ExponentialBackoff(n, initial), retryClassifier{})
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for baseURL. An empty baseURL uses DefaultBaseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid frankfurter url: %w", err)
	}

	c := &Client{
		baseURL:     base,
		httpClient:  &http.Client{},
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 5),
		retrier:     retrier.New(retrier.ExponentialBackoff(2, 200*time.Millisecond), retryClassifier{}),
		timeout:     DefaultTimeout,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchRates implements the rate provider port.
// GET /{start}..{end}?base=EUR&symbols=USD,CAD
func (c *Client) FetchRates(ctx context.Context, query domain.RateQuery) ([]domain.RateRecord, error) {
	u, err := c.baseURL.Parse(fmt.Sprintf("%s..%s",
		query.StartDate.Format(domain.DateLayout), query.EndDate.Format(domain.DateLayout)))
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("base", query.Base)
	params.Set("symbols", strings.Join(query.Symbols, ","))
	u.RawQuery = params.Encode()

	var resp response
	err = c.retrier.RunCtx(ctx, func(ctx context.Context) error {
		return c.do(ctx, u.String(), &resp)
	})
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(metrics.OutcomeFailure).Inc()
		return nil, err
	}
	metrics.UpstreamRequests.WithLabelValues(metrics.OutcomeSuccess).Inc()

	base := resp.Base
	if base == "" {
		base = query.Base
	}
	return c.toRecords(base, resp.Rates), nil
}

func (c *Client) do(ctx context.Context, rawURL string, v any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return &apperrors.TransportError{Err: err}
	}

	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	c.logger.Debug("Fetching rates from Frankfurter", slog.String("url", rawURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyDoError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &apperrors.TransportError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("Frankfurter API error: %d", resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		if ctx.Err() == nil && attemptCtx.Err() != nil {
			return &apperrors.TransportError{Message: msgTimeout, Err: err}
		}
		return &apperrors.TransportError{Status: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// classifyDoError maps a failed round trip. A cancelled parent context is
// passed through without a user-facing message.
func classifyDoError(parent context.Context, err error) error {
	if parent.Err() != nil {
		return &apperrors.TransportError{Err: parent.Err()}
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &apperrors.TransportError{Message: msgTimeout, Err: err}
	}
	return &apperrors.TransportError{Message: msgConnect, Err: err}
}

func (c *Client) toRecords(base string, rates map[string]map[string]json.RawMessage) []domain.RateRecord {
	records := make([]domain.RateRecord, 0, len(rates))
	for date, values := range rates {
		if _, err := time.Parse(domain.DateLayout, date); err != nil {
			metrics.MalformedRates.Add(float64(len(values)))
			c.logger.Warn("Dropping rates with malformed date", slog.String("date", date))
			continue
		}
		rec := domain.RateRecord{Date: date, Base: base, Rates: make(map[string]float64, len(values))}
		for code, raw := range values {
			v, err := strconv.ParseFloat(string(raw), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
				metrics.MalformedRates.Inc()
				c.logger.Warn("Dropping malformed rate",
					slog.String("date", date),
					slog.String("currency", code),
					slog.String("value", string(raw)))
				continue
			}
			rec.Rates[code] = v
		}
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date < records[j].Date })
	return records
}

type retryClassifier struct{}

// Classify retries upstream 5xx answers and failed connections.
func (retryClassifier) Classify(err error) retrier.Action {
	if err == nil {
		return retrier.Succeed
	}
	var te *apperrors.TransportError
	if !errors.As(err, &te) {
		return retrier.Fail
	}
	if te.Status >= 500 || te.Message == msgConnect {
		return retrier.Retry
	}
	return retrier.Fail
}
