package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/flexkitapp/flexgate/internal/pkg/clock"
	"github.com/flexkitapp/flexgate/internal/pkg/config"
	"github.com/flexkitapp/flexgate/internal/pkg/goerror"
	"github.com/flexkitapp/flexgate/internal/pkg/instrument"
	"github.com/flexkitapp/flexgate/internal/pkg/jwt"
)

const testConfigYAML = `
app:
  name: FlexGate
  maintenance:
    endpoints: ""
instrument:
  log_mask_fields: "password,otp"
`

type fixedUUID struct{}

func (fixedUUID) Generate() string {
	return "00000000-0000-0000-0000-000000000001"
}

type namedResponse struct {
	Value string `json:"value"`
}

func (namedResponse) Message() string {
	return "Value retrieved successfully."
}

func newTestRouter(t *testing.T) (*Router, jwt.JWT) {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	if err != nil {
		t.Fatalf("NewViperFromBytes() error = %v", err)
	}

	signer, err := jwt.NewHS256(jwt.Config{
		Secret:    []byte("0123456789abcdef0123456789abcdef"),
		Issuer:    "FlexGate",
		Audiences: []string{"flexgate-web"},
		TTL:       time.Hour,
		Clock:     clock.New(),
		UUID:      fixedUUID{},
	})
	if err != nil {
		t.Fatalf("NewHS256() error = %v", err)
	}

	return NewRouter(Config{
		Config:     cfg,
		UUID:       fixedUUID{},
		JWT:        signer,
		Instrument: instrument.NewNoop(),
	}), signer
}

func doRequest(t *testing.T, h http.Handler, method, path, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, rec.Body.String())
	}

	return rec, body
}

func TestRouterEnvelopes(t *testing.T) {
	r, signer := newTestRouter(t)

	r.GET("/api/widget", func(*Request) (any, error) {
		return namedResponse{Value: "ok"}, nil
	})
	r.GET("/api/forbidden", func(*Request) (any, error) {
		return nil, goerror.NewForbidden("You have no active services, please purchase one first", "no_active_services", "/pricing")
	})

	token, _, err := signer.Generate(jwt.Identity{ID: "100000123", Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	t.Run("RootIsPublic", func(t *testing.T) {
		rec, body := doRequest(t, r, http.MethodGet, "/", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if body["success"] != true {
			t.Fatalf("body = %v", body)
		}
	})

	t.Run("UnknownEndpointRendersErrorEnvelope", func(t *testing.T) {
		rec, body := doRequest(t, r, http.MethodGet, "/nope", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		if body["error"] != true || body["status"] != float64(404) {
			t.Fatalf("body = %v", body)
		}
	})

	t.Run("ProtectedEndpointRejectsMissingToken", func(t *testing.T) {
		rec, body := doRequest(t, r, http.MethodGet, "/api/widget", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		if body["message"] != "Authentication required" {
			t.Fatalf("body = %v", body)
		}
	})

	t.Run("ProtectedEndpointRejectsGarbageToken", func(t *testing.T) {
		rec, _ := doRequest(t, r, http.MethodGet, "/api/widget", "not.a.token")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("SuccessEnvelopeCarriesMessageAndData", func(t *testing.T) {
		rec, body := doRequest(t, r, http.MethodGet, "/api/widget", token)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
		}
		if body["success"] != true || body["message"] != "Value retrieved successfully." {
			t.Fatalf("body = %v", body)
		}
		data, ok := body["data"].(map[string]any)
		if !ok || data["value"] != "ok" {
			t.Fatalf("data = %v", body["data"])
		}
	})

	t.Run("ErrorEnvelopeCarriesFieldsAndRedirect", func(t *testing.T) {
		rec, body := doRequest(t, r, http.MethodGet, "/api/forbidden", token)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
		if body["redirect"] != "/pricing" {
			t.Fatalf("redirect = %v", body["redirect"])
		}
		fields, ok := body["fields"].(map[string]any)
		if !ok || fields["reason"] != "no_active_services" {
			t.Fatalf("fields = %v", body["fields"])
		}
	})
}
