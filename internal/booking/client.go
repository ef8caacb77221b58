// Package booking talks to the studio backend: fetching the tokenized
// service catalogue and dispatching finished inquiry documents.
package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/haythamstudio/intake/internal/submission"
)

// ServiceRecord is one service row as returned by the tokenized service
// endpoint.
type ServiceRecord struct {
	ServiceKey   string  `json:"service_key"`
	ServiceName  string  `json:"service_name"`
	CategoryName string  `json:"category_name"`
	ID           string  `json:"id"`
	BasePrice    float64 `json:"base_price"`
	PricingType  string  `json:"pricing_type"`
	Description  string  `json:"description"`
	Deliverables string  `json:"deliverables"`
}

// Client provides access to the booking API.
type Client interface {
	// FetchServices retrieves the service list for a tokenized booking
	// link. Any failure, including a success=false envelope, returns
	// ErrLinkInvalid: a tokenized session never falls back to defaults.
	FetchServices(ctx context.Context, tenantID, token string) ([]ServiceRecord, error)

	// Submit posts the inquiry document. With a token it uses the
	// single-use tokenized endpoint; without one it uses the legacy
	// tenant endpoint. Returns nil on acceptance, ErrLinkUsed when the
	// link was already consumed, ErrSubmitRejected on other server
	// refusals, and ErrUnavailable on transport failure.
	Submit(ctx context.Context, doc *submission.Document, tenantID, token string) error
}

type httpClient struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a Client against the configured booking API.
func NewClient(cfg Config) Client {
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// envelope is the common {success, data?, error?} response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *httpClient) FetchServices(ctx context.Context, tenantID, token string) ([]ServiceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	endpoint := fmt.Sprintf("%s/public/booking/%s/%s/services",
		c.cfg.Endpoint, url.PathEscape(tenantID), url.PathEscape(token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: request timed out", ErrLinkInvalid)
		}
		return nil, fmt.Errorf("%w: %v", ErrLinkInvalid, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrLinkInvalid, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrLinkInvalid, err)
	}
	if !env.Success {
		if env.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrLinkInvalid, env.Error)
		}
		return nil, ErrLinkInvalid
	}

	var records []ServiceRecord
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, fmt.Errorf("%w: decoding services: %v", ErrLinkInvalid, err)
	}
	return records, nil
}

// linkUsedError is the error string the backend sends when a single-use
// link was already consumed.
const linkUsedError = "Link already used"

func (c *httpClient) Submit(ctx context.Context, doc *submission.Document, tenantID, token string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	endpoint := c.submitURL(tenantID, token)
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// Transport failure surfaces as a hard error on both the
		// tokenized and legacy paths; the caller decides about retries.
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	var env envelope
	// A body that fails to decode is only fatal when the status is bad.
	_ = json.Unmarshal(body, &env)

	if resp.StatusCode == http.StatusGone || env.Error == linkUsedError {
		return ErrLinkUsed
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if env.Success {
		return nil
	}
	if env.Error != "" {
		return fmt.Errorf("%w: %s", ErrSubmitRejected, env.Error)
	}
	return fmt.Errorf("%w: server returned status %d", ErrSubmitRejected, resp.StatusCode)
}

func (c *httpClient) submitURL(tenantID, token string) string {
	if token != "" {
		return fmt.Sprintf("%s/public/booking/%s/%s/submit",
			c.cfg.Endpoint, url.PathEscape(tenantID), url.PathEscape(token))
	}
	return fmt.Sprintf("%s/public/%s/booking", c.cfg.Endpoint, url.PathEscape(tenantID))
}
