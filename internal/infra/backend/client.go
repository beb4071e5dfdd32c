package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tokendash/internal/domain"
	"tokendash/internal/infra"

	"github.com/google/uuid"
)

const (
	DefaultSyncLimit    = 10
	DefaultHistoryLimit = 50
	DefaultQuery        = "bitcoin"

	// maxBodyBytes caps how much of a response we are willing to decode
	maxBodyBytes = 8 << 20
)

// Client is the aggregation backend REST client (Boundary Layer).
// It builds requests and decodes responses; it never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	metrics    *infra.Metrics
	logger     *slog.Logger
}

// NewClient creates a backend client from configuration.
func NewClient(cfg *infra.Config, metrics *infra.Metrics) *Client {
	return NewClientWithURL(cfg.API.BaseURL, cfg.Timeout(), metrics)
}

// NewClientWithURL creates a client against an explicit base URL (e.g. a test server).
func NewClientWithURL(baseURL string, timeout time.Duration, metrics *infra.Metrics) *Client {
	if timeout <= 0 {
		timeout = infra.DefaultTimeoutSec * time.Second
	}
	if metrics == nil {
		metrics = infra.GlobalMetrics
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = 10
	transport.IdleConnTimeout = 30 * time.Second

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		timeout: timeout,
		metrics: metrics,
		logger:  slog.Default().With("module", "backend_client"),
	}
}

// Wire shapes of list-style responses

type listTokensResponse struct {
	Tokens []domain.Token `json:"tokens"`
	Count  int            `json:"count"`
}

type historyResponse struct {
	TokenID string               `json:"token_id"`
	Count   int                  `json:"count"`
	History *[]domain.PricePoint `json:"history"`
}

type analyticsResponse struct {
	Analytics *domain.AnalyticsSnapshot `json:"analytics"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Search runs a full-text token search; an empty query means "bitcoin".
func (c *Client) Search(ctx context.Context, query string) (*domain.SearchResult, error) {
	if query == "" {
		query = DefaultQuery
	}
	q := url.Values{"q": {query}}

	var out domain.SearchResult
	if err := c.do(ctx, "search", http.MethodGet, "/search", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetToken fetches a single token. Returns domain.ErrNotFound when the backend has no match.
func (c *Client) GetToken(ctx context.Context, id string) (*domain.Token, error) {
	var out domain.Token
	if err := c.do(ctx, "get_token", http.MethodGet, "/tokens/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, fmt.Errorf("get_token %q: %w: missing id", id, domain.ErrMalformedResponse)
	}
	return &out, nil
}

// ListTokens fetches the full roster in backend order.
func (c *Client) ListTokens(ctx context.Context) ([]domain.Token, error) {
	var out listTokensResponse
	if err := c.do(ctx, "list_tokens", http.MethodGet, "/tokens", nil, &out); err != nil {
		return nil, err
	}
	if out.Tokens == nil {
		return []domain.Token{}, nil
	}
	return out.Tokens, nil
}

// TriggerSync asks the backend to ingest up to limit tokens from upstream.
// Not idempotent: every call may re-ingest.
func (c *Client) TriggerSync(ctx context.Context, limit int) (*domain.SyncResult, error) {
	if limit <= 0 {
		limit = DefaultSyncLimit
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}

	var out domain.SyncResult
	if err := c.do(ctx, "trigger_sync", http.MethodPost, "/sync", q, &out); err != nil {
		return nil, err
	}
	c.metrics.RecordSync()
	return &out, nil
}

// GetHistory fetches up to limit price points, newest first.
func (c *Client) GetHistory(ctx context.Context, id string, limit int) ([]domain.PricePoint, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}

	var out historyResponse
	if err := c.do(ctx, "get_history", http.MethodGet, "/history/"+url.PathEscape(id), q, &out); err != nil {
		return nil, err
	}
	if out.History == nil {
		return nil, fmt.Errorf("get_history %q: %w: missing history", id, domain.ErrMalformedResponse)
	}
	return *out.History, nil
}

// GetAnalytics fetches market-wide aggregates.
func (c *Client) GetAnalytics(ctx context.Context) (*domain.AnalyticsSnapshot, error) {
	var out analyticsResponse
	if err := c.do(ctx, "get_analytics", http.MethodGet, "/analytics", nil, &out); err != nil {
		return nil, err
	}
	if out.Analytics == nil {
		return nil, fmt.Errorf("get_analytics: %w: missing analytics", domain.ErrMalformedResponse)
	}
	return out.Analytics, nil
}

// do performs a single round trip and decodes a JSON body into out.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, out any) (err error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	done := c.metrics.BeginRequest()
	start := time.Now()
	defer func() {
		done()
		elapsed := time.Since(start)
		c.metrics.RecordRequest(elapsed, err != nil)
		if err != nil {
			c.logger.Warn("Backend request failed",
				slog.String("op", op),
				slog.String("request_id", reqID),
				slog.Duration("latency", elapsed),
				slog.Any("error", err),
			)
			return
		}
		c.logger.Debug("Backend request",
			slog.String("op", op),
			slog.String("request_id", reqID),
			slog.Duration("latency", elapsed),
		)
	}()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewNetworkError(op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.NewNetworkError(op, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w: %s", op, path, domain.ErrNotFound, errorMessage(body, resp.Status))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.NewStatusError(op, resp.StatusCode, errorMessage(body, resp.Status))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrMalformedResponse, err)
	}
	return nil
}

// errorMessage extracts the backend's {"error": "..."} text, falling back to the status line.
func errorMessage(body []byte, status string) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return status
}
