// Package ratesapi calls the dashboard's own /api/rates endpoint. It is the
// fetch capability used when a FetchController runs outside the server.
package ratesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/fx_dashboard/internal/apperrors"
	"github.com/SscSPs/fx_dashboard/internal/core/domain"
)

type errorBody struct {
	Error string `json:"error"`
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New creates a client for a server root such as http://localhost:8080.
func New(serverURL string, timeout time.Duration) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(serverURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Fetch implements the rate fetcher port.
// GET /api/rates?base=EUR&symbols=USD,CAD&start_date=...&end_date=...
func (c *Client) Fetch(ctx context.Context, base, symbols, startDate, endDate string) ([]domain.RateRecord, error) {
	u, err := c.baseURL.Parse("api/rates")
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("base", base)
	params.Set("symbols", symbols)
	params.Set("start_date", startDate)
	params.Set("end_date", endDate)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apperrors.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperrors.TransportError{Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		var eb errorBody
		// A body that is not {"error": ...} leaves Message empty.
		_ = json.Unmarshal(body, &eb)
		return nil, &apperrors.TransportError{Status: resp.StatusCode, Message: eb.Error}
	}

	var records []domain.RateRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &apperrors.TransportError{Status: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return records, nil
}
