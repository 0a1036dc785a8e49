package mindbody

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/flexkitapp/flexgate/internal/pkg/clock"
	"github.com/flexkitapp/flexgate/internal/pkg/instrument"
)

const (
	defaultBaseURL   = "https://api.mindbodyonline.com/public/v6"
	defaultTimeout   = 30 * time.Second
	defaultRetryWait = time.Second
	retryAttempts    = 3
)

// ErrConfigIncomplete is returned when required credentials are missing.
var ErrConfigIncomplete = errors.New("mindbody: api key, site id and source credentials are required")

// Config holds the upstream connection settings and credentials.
type Config struct {
	// BaseURL overrides the production API base; mainly for tests.
	BaseURL string
	// APIKey is sent on every request.
	APIKey string
	// SiteID identifies the studio site.
	SiteID string
	// SourceName and SourcePassword issue regular user tokens.
	SourceName     string
	SourcePassword string
	// StaffUsername and StaffPassword issue elevated staff tokens.
	StaffUsername string
	StaffPassword string
	// PerMinute and PerDay are the local request budgets.
	PerMinute int
	PerDay    int
	// Timeout bounds each HTTP round trip. Zero means 30s.
	Timeout time.Duration
	// RetryWait is the constant delay between attempts. Zero means 1s.
	RetryWait time.Duration
}

// Client talks to the Mindbody Public API. All collaborators are injected;
// the zero value is not usable.
type Client struct {
	http      *http.Client
	baseURL   string
	cfg       Config
	limiter   *rateLimiter
	clock     clock.Clocker
	tracer    trace.Tracer
	retryWait time.Duration
}

// New constructs a Client. TLS verification is always left on; a TLS failure
// is reported like any other transport failure.
func New(cfg Config, clk clock.Clocker, ins instrument.Instrumentation) (*Client, error) {
	if cfg.APIKey == "" || cfg.SiteID == "" || cfg.SourceName == "" || cfg.SourcePassword == "" {
		return nil, ErrConfigIncomplete
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	perMinute := cfg.PerMinute
	if perMinute == 0 {
		perMinute = 1000
	}
	perDay := cfg.PerDay
	if perDay == 0 {
		perDay = 2000
	}

	retryWait := cfg.RetryWait
	if retryWait == 0 {
		retryWait = defaultRetryWait
	}

	return &Client{
		http:      &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		cfg:       cfg,
		limiter:   newRateLimiter(perMinute, perDay),
		clock:     clk,
		tracer:    ins.Tracer("mindbody.client"),
		retryWait: retryWait,
	}, nil
}

type tokenResponse struct {
	AccessToken string `json:"AccessToken"`
}

// issueToken acquires a fresh user token. Tokens are short-lived upstream and
// are never cached or logged here.
func (c *Client) issueToken(ctx context.Context, staff bool) (string, error) {
	username, password := c.cfg.SourceName, c.cfg.SourcePassword
	if staff {
		username, password = c.cfg.StaffUsername, c.cfg.StaffPassword
	}

	body, err := json.Marshal(map[string]string{
		"Username": username,
		"Password": password,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/usertoken/issue", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.cfg.APIKey)
	req.Header.Set("SiteId", c.cfg.SiteID)

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode >= 400 {
		return "", &HTTPError{StatusCode: res.StatusCode, Endpoint: "/usertoken/issue", Body: string(raw)}
	}

	var tok tokenResponse
	if err := json.Unmarshal(raw, &tok); err != nil {
		return "", &ProtocolError{Endpoint: "/usertoken/issue", Err: err}
	}
	if tok.AccessToken == "" {
		return "", ErrTokenMissing
	}

	return tok.AccessToken, nil
}

type callOptions struct {
	staff bool
}

// CallOption adjusts a single upstream call.
type CallOption func(*callOptions)

// AsStaff issues the call under the staff credentials.
func AsStaff() CallOption {
	return func(o *callOptions) { o.staff = true }
}

// call performs one rate-limited, retried request cycle: fresh token, then
// the target endpoint. out, when non-nil, receives the decoded JSON body.
func (c *Client) call(ctx context.Context, method, endpoint string, query url.Values, body, out any, opts ...CallOption) (err error) {
	ctx, span := c.tracer.Start(ctx, method+" "+endpoint, trace.WithAttributes(
		attribute.String("mindbody.endpoint", endpoint),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var options callOptions
	for _, opt := range opts {
		opt(&options)
	}

	if err = c.limiter.allow(c.clock.Now()); err != nil {
		return err
	}

	var payload []byte
	if body != nil {
		if payload, err = json.Marshal(body); err != nil {
			return err
		}
	}

	attempts := 0
	backoff := retry.WithMaxRetries(retryAttempts-1, retry.NewConstant(c.retryWait))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		if attemptErr := c.attempt(ctx, method, endpoint, query, payload, out, options.staff); attemptErr != nil {
			return retry.RetryableError(attemptErr)
		}
		return nil
	})
	if err != nil {
		span.SetAttributes(attribute.Int("mindbody.attempts", attempts))
		return fmt.Errorf("%w after %d attempts: %w", ErrUnavailable, attempts, err)
	}

	span.SetAttributes(attribute.Int("mindbody.attempts", attempts))
	return nil
}

func (c *Client) attempt(ctx context.Context, method, endpoint string, query url.Values, payload []byte, out any, staff bool) error {
	token, err := c.issueToken(ctx, staff)
	if err != nil {
		return err
	}

	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.cfg.APIKey)
	req.Header.Set("SiteId", c.cfg.SiteID)
	req.Header.Set("Authorization", token)

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode >= 400 {
		return &HTTPError{StatusCode: res.StatusCode, Endpoint: endpoint, Body: string(raw)}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &ProtocolError{Endpoint: endpoint, Err: err}
	}

	return nil
}

// Ping verifies upstream reachability and credentials using the sites listing.
func (c *Client) Ping(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/site/sites", nil, nil, nil)
}
