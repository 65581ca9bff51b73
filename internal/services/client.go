// Package services translates component intents into backend REST calls.
// Facades receive the session at construction; nothing reads ambient global
// state.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	stderrors "grievance-desk/internal/common/errors"
	commonhttp "grievance-desk/internal/common/http"
	"grievance-desk/internal/common/logger"
	"grievance-desk/internal/common/metrics"
	"grievance-desk/internal/models"
)

// HTTPError carries a non-2xx backend response. Facades decide what it means;
// submission failures are treated uniformly regardless of status code.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// Client is the shared REST transport for all facades.
type Client struct {
	baseURL    string
	http       *commonhttp.Client
	session    *models.Session
	maxRetries int
	retryBase  time.Duration
	logger     logger.Logger
}

// ClientConfig configures the REST transport.
type ClientConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	MaxRetries     int
	RetryBaseDelay time.Duration
}

// NewClient creates the transport. The session may be nil for the
// unauthenticated auth endpoints and is attached via WithSession after login.
func NewClient(cfg ClientConfig, session *models.Session, log logger.Logger) *Client {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = 500 * time.Millisecond
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		http:       commonhttp.NewClient(cfg.RequestTimeout),
		session:    session,
		maxRetries: cfg.MaxRetries,
		retryBase:  cfg.RetryBaseDelay,
		logger:     log.WithFields(map[string]interface{}{"component": "services"}),
	}
}

// WithSession returns a copy of the client bound to the given session.
func (c *Client) WithSession(session *models.Session) *Client {
	clone := *c
	clone.session = session
	return &clone
}

// Session returns the bound session, nil when unauthenticated.
func (c *Client) Session() *models.Session {
	return c.session
}

func (c *Client) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil && c.session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}
	return req, nil
}

// do executes one request and returns the raw body. Non-2xx responses come
// back as *HTTPError; transport failures as BACKEND_UNAVAILABLE.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, service, operation string) ([]byte, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, stderrors.NewRequestBuildFailedError(err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.APIRequestDuration.WithLabelValues(service, operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequests.WithLabelValues(service, operation, "transport_error").Inc()
		return nil, stderrors.NewBackendUnavailableError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.APIRequests.WithLabelValues(service, operation, "read_error").Inc()
		return nil, stderrors.NewBackendUnavailableError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.APIRequests.WithLabelValues(service, operation, "http_error").Inc()
		c.logger.Warn("backend returned error status", map[string]interface{}{
			"service":   service,
			"operation": operation,
			"status":    resp.StatusCode,
		})
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	metrics.APIRequests.WithLabelValues(service, operation, "success").Inc()
	return raw, nil
}

// get issues an idempotent GET with bounded retries on transport failure.
func (c *Client) get(ctx context.Context, path string, out interface{}, service, operation string) error {
	raw, err := c.getRaw(ctx, path, service, operation)
	if err != nil {
		return err
	}
	return c.decode(raw, out)
}

func (c *Client) getRaw(ctx context.Context, path, service, operation string) ([]byte, error) {
	var raw []byte
	var httpErr error
	err := commonhttp.RetryWithBackoff(ctx, c.maxRetries, c.retryBase, func() error {
		r, doErr := c.do(ctx, http.MethodGet, path, nil, service, operation)
		if doErr != nil {
			// A non-2xx status is a definitive answer; only transport
			// failures are worth retrying.
			if _, ok := doErr.(*HTTPError); ok {
				httpErr = doErr
				return nil
			}
			return doErr
		}
		raw, httpErr = r, nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	if httpErr != nil {
		return nil, httpErr
	}
	return raw, nil
}

// post issues a non-idempotent POST exactly once.
func (c *Client) post(ctx context.Context, path string, body, out interface{}, service, operation string) error {
	raw, err := c.do(ctx, http.MethodPost, path, body, service, operation)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return c.decode(raw, out)
}

func (c *Client) decode(raw []byte, out interface{}) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return stderrors.NewResponseDecodeFailedError(err)
	}
	return nil
}
