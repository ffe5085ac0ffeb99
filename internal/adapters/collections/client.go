package collections

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

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"golang.org/x/oauth2"
)

const (
	ownerField     = "owner_company"
	maxErrorBody   = 512
	defaultTimeout = 30 * time.Second
)

// Client reads items from the remote collection service.
type Client struct {
	baseURL  string
	http     *http.Client
	location *time.Location
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The bearer token is not applied to it.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLocation sets the zone dates without an offset are read in.
func WithLocation(loc *time.Location) ClientOption {
	return func(c *Client) {
		c.location = loc
	}
}

// NewClient creates a client for baseURL. A non-empty token is sent as a static bearer token.
func NewClient(baseURL, token string, options ...ClientOption) *Client {
	hc := &http.Client{Timeout: defaultTimeout}
	if token != "" {
		hc.Transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   http.DefaultTransport,
		}
	}
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     hc,
		location: time.UTC,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// itemQuery describes one list request against a collection.
type itemQuery struct {
	collection string
	fields     []string
	sort       string
	limit      int
	scope      domain.Scope
}

func (q itemQuery) values() url.Values {
	v := url.Values{}
	v.Set("fields", strings.Join(q.fields, ","))
	if q.limit > 0 {
		v.Set("limit", strconv.Itoa(q.limit))
	}
	if q.sort != "" {
		v.Set("sort", q.sort)
	}
	if !q.scope.IsAll() {
		v.Set("filter["+ownerField+"][_eq]", string(q.scope))
	}
	return v
}

type itemsPayload struct {
	Data []map[string]any `json:"data"`
}

// listItems fetches the raw items of a collection. Numbers are kept as json.Number so amounts keep their precision.
func (c *Client) listItems(ctx context.Context, q itemQuery) ([]map[string]any, error) {
	endpoint := fmt.Sprintf("%s/items/%s?%s", c.baseURL, q.collection, q.values().Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", q.collection, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", q.collection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, apperrors.NewAppError(resp.StatusCode,
			fmt.Sprintf("collection service returned %s for %s: %s", resp.Status, q.collection, strings.TrimSpace(string(body))),
			statusCause(resp.StatusCode))
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var payload itemsPayload
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", q.collection, err)
	}

	middleware.GetLoggerFromCtx(ctx).Debug("Fetched collection items",
		slog.String("collection", q.collection),
		slog.Int("items", len(payload.Data)),
		slog.Duration("duration", time.Since(start)))
	if payload.Data == nil {
		return []map[string]any{}, nil
	}
	return payload.Data, nil
}

// statusCause classifies a failed collection response.
func statusCause(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	case http.StatusForbidden:
		return apperrors.ErrForbidden
	case http.StatusNotFound:
		return apperrors.ErrNotFound
	default:
		return nil
	}
}
