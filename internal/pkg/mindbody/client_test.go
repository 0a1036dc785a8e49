package mindbody

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/flexkitapp/flexgate/internal/pkg/goerror"
	"github.com/flexkitapp/flexgate/internal/pkg/instrument"
)

type staticClock struct {
	now time.Time
}

func (c *staticClock) Now() time.Time {
	return c.now
}

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:        baseURL,
		APIKey:         "test-api-key",
		SiteID:         "-99",
		SourceName:     "source",
		SourcePassword: "source-password",
		StaffUsername:  "staff",
		StaffPassword:  "staff-password",
		RetryWait:      time.Millisecond,
	}
}

func newTestClient(t *testing.T, cfg Config) *Client {
	t.Helper()

	clk := &staticClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	client, err := New(cfg, clk, instrument.NewNoop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return client
}

// newUpstream serves token issuance plus one data endpoint whose status codes
// follow the given sequence; once the sequence runs out it keeps replying with
// the last entry. It returns the server and a counter of data endpoint hits.
func newUpstream(t *testing.T, endpoint string, statuses []int) (*httptest.Server, *atomic.Int64) {
	t.Helper()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/usertoken/issue" {
			_ = json.NewEncoder(w).Encode(map[string]string{"AccessToken": "tok-123"})
			return
		}
		if r.URL.Path != endpoint {
			t.Errorf("unexpected request path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}

		n := hits.Add(1)
		status := statuses[len(statuses)-1]
		if int(n) <= len(statuses) {
			status = statuses[n-1]
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	return srv, &hits
}

func TestClientRetriesUntilSuccess(t *testing.T) {
	srv, hits := newUpstream(t, "/site/sites", []int{500, 502, 200})
	client := newTestClient(t, testConfig(srv.URL))

	if err := client.Ping(t.Context()); err != nil {
		t.Fatalf("Ping() error = %v, want nil", err)
	}
	if got := hits.Load(); got != 3 {
		t.Fatalf("data endpoint hits = %d, want 3", got)
	}
}

func TestClientGivesUpAfterThreeAttempts(t *testing.T) {
	srv, hits := newUpstream(t, "/site/sites", []int{500})
	client := newTestClient(t, testConfig(srv.URL))

	err := client.Ping(t.Context())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Ping() error = %v, want ErrUnavailable", err)
	}
	if got := hits.Load(); got != 3 {
		t.Fatalf("data endpoint hits = %d, want 3", got)
	}

	var herr *HTTPError
	if !errors.As(err, &herr) {
		t.Fatalf("Ping() error chain lacks *HTTPError: %v", err)
	}
	if herr.StatusCode != 500 {
		t.Fatalf("HTTPError status = %d, want 500", herr.StatusCode)
	}
}

func TestClientRateLimitBlocksBeforeNetwork(t *testing.T) {
	srv, hits := newUpstream(t, "/site/sites", []int{200})
	cfg := testConfig(srv.URL)
	cfg.PerMinute = 2
	client := newTestClient(t, cfg)

	for i := 0; i < 2; i++ {
		if err := client.Ping(t.Context()); err != nil {
			t.Fatalf("Ping() #%d error = %v, want nil", i+1, err)
		}
	}

	if err := client.Ping(t.Context()); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("Ping() error = %v, want ErrRateLimited", err)
	}
	if got := hits.Load(); got != 2 {
		t.Fatalf("data endpoint hits = %d, want 2 (limited call must not reach the network)", got)
	}
}

func TestRateLimiterWindows(t *testing.T) {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("MinuteWindowResets", func(t *testing.T) {
		l := newRateLimiter(2, 100)

		if err := l.allow(base); err != nil {
			t.Fatalf("allow() #1 error = %v", err)
		}
		if err := l.allow(base.Add(time.Second)); err != nil {
			t.Fatalf("allow() #2 error = %v", err)
		}
		if err := l.allow(base.Add(2 * time.Second)); !errors.Is(err, ErrRateLimited) {
			t.Fatalf("allow() #3 error = %v, want ErrRateLimited", err)
		}

		// A full minute later the window starts over.
		if err := l.allow(base.Add(time.Minute)); err != nil {
			t.Fatalf("allow() after window error = %v", err)
		}
	})

	t.Run("DayWindowOutlastsMinuteResets", func(t *testing.T) {
		l := newRateLimiter(100, 3)

		for i := 0; i < 3; i++ {
			if err := l.allow(base.Add(time.Duration(i) * 2 * time.Minute)); err != nil {
				t.Fatalf("allow() #%d error = %v", i+1, err)
			}
		}

		// Fresh minute window, but the day budget is spent.
		if err := l.allow(base.Add(10 * time.Minute)); !errors.Is(err, ErrRateLimited) {
			t.Fatalf("allow() error = %v, want ErrRateLimited", err)
		}

		if err := l.allow(base.Add(24 * time.Hour)); err != nil {
			t.Fatalf("allow() next day error = %v", err)
		}
	})
}

func TestNewRejectsIncompleteConfig(t *testing.T) {
	cfg := testConfig("http://localhost")
	cfg.APIKey = ""

	if _, err := New(cfg, &staticClock{}, instrument.NewNoop()); !errors.Is(err, ErrConfigIncomplete) {
		t.Fatalf("New() error = %v, want ErrConfigIncomplete", err)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(&HTTPError{StatusCode: 404, Endpoint: "/client/clients"}) {
		t.Fatal("IsNotFound() = false for 404, want true")
	}
	if IsNotFound(&HTTPError{StatusCode: 500, Endpoint: "/client/clients"}) {
		t.Fatal("IsNotFound() = true for 500, want false")
	}
	if IsNotFound(errors.New("plain")) {
		t.Fatal("IsNotFound() = true for non-HTTP error, want false")
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "RateLimited", err: ErrRateLimited, wantStatus: http.StatusTooManyRequests},
		{name: "NotFound", err: &HTTPError{StatusCode: 404, Endpoint: "/x"}, wantStatus: http.StatusNotFound},
		{name: "UpstreamFailure", err: ErrUnavailable, wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mapped := MapError(tc.err)

			var gerr *goerror.Error
			if !errors.As(mapped, &gerr) {
				t.Fatalf("MapError() = %T, want *goerror.Error", mapped)
			}
			if got := gerr.StatusCode(); got != tc.wantStatus {
				t.Fatalf("StatusCode() = %d, want %d", got, tc.wantStatus)
			}
		})
	}

	if MapError(nil) != nil {
		t.Fatal("MapError(nil) != nil")
	}
}
