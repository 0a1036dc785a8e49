package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

type fakeUUID struct{}

func (fakeUUID) Generate() string {
	return "c0ffee00-0000-0000-0000-000000000001"
}

func newTestJWT(t *testing.T, clk *fakeClock) *Symmetric {
	t.Helper()

	j, err := NewHS256(Config{
		Secret:    []byte("0123456789abcdef0123456789abcdef"),
		Issuer:    "FlexGate",
		Audiences: []string{"flexgate-web"},
		TTL:       24 * time.Hour,
		Clock:     clk,
		UUID:      fakeUUID{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return j
}

func TestNewHS256(t *testing.T) {
	t.Run("RejectsShortSecret", func(t *testing.T) {
		_, err := NewHS256(Config{Secret: []byte("too-short")})
		if !errors.Is(err, ErrSigningKeyTooShort) {
			t.Fatalf("expected ErrSigningKeyTooShort, got %v", err)
		}
	})
}

func TestSymmetricGenerateVerify(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	j := newTestJWT(t, clk)

	identity := Identity{
		ID:        "100000123",
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	}

	token, exp, err := j.Generate(identity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := clk.now.Add(24 * time.Hour); !exp.Equal(want) {
		t.Fatalf("expected expiry %v, got %v", want, exp)
	}

	t.Run("FreshTokenAccepted", func(t *testing.T) {
		claims, err := j.Verify(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.Client != identity {
			t.Fatalf("expected identity %+v, got %+v", identity, claims.Client)
		}
		if claims.Subject != identity.ID {
			t.Fatalf("expected subject %q, got %q", identity.ID, claims.Subject)
		}
		if claims.AuthMethod != "email_otp" {
			t.Fatalf("expected auth method email_otp, got %q", claims.AuthMethod)
		}
	})

	t.Run("TamperedSignatureRejected", func(t *testing.T) {
		parts := strings.Split(token, ".")
		tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

		if _, err := j.Verify(tampered); err == nil {
			t.Fatalf("expected tampered token to be rejected")
		}
	})

	t.Run("ExpiredTokenRejected", func(t *testing.T) {
		clk.now = clk.now.Add(25 * time.Hour)
		defer func() { clk.now = clk.now.Add(-25 * time.Hour) }()

		if _, err := j.Verify(token); !errors.Is(err, ErrTokenExpired) {
			t.Fatalf("expected ErrTokenExpired, got %v", err)
		}
	})

	t.Run("WrongIssuerRejected", func(t *testing.T) {
		other, err := NewHS256(Config{
			Secret:    []byte("0123456789abcdef0123456789abcdef"),
			Issuer:    "SomeoneElse",
			Audiences: []string{"flexgate-web"},
			TTL:       time.Hour,
			Clock:     clk,
			UUID:      fakeUUID{},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := other.Verify(token); err == nil {
			t.Fatalf("expected wrong-issuer token to be rejected")
		}
	})
}

func TestAuthContext(t *testing.T) {
	claims := Claims{Client: Identity{ID: "42"}}

	ctx := SetAuth(t.Context(), claims)

	got := GetAuth(ctx)
	if got == nil || got.Client.ID != "42" {
		t.Fatalf("expected stored claims, got %+v", got)
	}

	if GetAuth(t.Context()) != nil {
		t.Fatalf("expected nil claims for empty context")
	}
}
