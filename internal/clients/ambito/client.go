package ambito

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"dolar-hoy/internal/models"

	"golang.org/x/sync/errgroup"
)

const maxBodyBytes = 32 << 10

var ErrMissingField = errors.New("response is missing a quote field")

// requiredFields must be present and non-null. class-variacion may be absent;
// a quote without it simply renders without a marker.
var requiredFields = []string{"compra", "venta", "fecha", "variacion"}

var _ RatesClient = (*Client)(nil)

type Client struct {
	httpClient *http.Client
}

// New builds a client without a request timeout; callers bound calls with ctx.
func New(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{httpClient: httpClient}
}

func (c *Client) Quote(ctx context.Context, url string) (*models.Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ambito http %d: %s", resp.StatusCode, string(body))
	}

	return decodeQuote(body)
}

func decodeQuote(body []byte) (*models.Quote, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	for _, k := range requiredFields {
		raw, ok := fields[k]
		if !ok || string(raw) == "null" {
			return nil, fmt.Errorf("%w: %q", ErrMissingField, k)
		}
	}

	var out models.Quote
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &out, nil
}

// FetchAll queries every endpoint concurrently and waits for all of them.
// The result has one outcome per endpoint, in input order. It never fails as
// a whole: per-endpoint errors are carried in Outcome.Err.
func (c *Client) FetchAll(ctx context.Context, endpoints []models.Endpoint) []models.Outcome {
	out := make([]models.Outcome, len(endpoints))

	var g errgroup.Group
	for i, ep := range endpoints {
		g.Go(func() error {
			q, err := c.Quote(ctx, ep.URL)
			if err != nil {
				out[i] = models.Outcome{Endpoint: ep, Err: fmt.Errorf("%s: %w", ep.URL, err)}
				return nil
			}
			out[i] = models.Outcome{Endpoint: ep, Quote: q}
			return nil
		})
	}
	_ = g.Wait()

	return out
}
