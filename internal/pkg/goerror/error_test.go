package goerror

import (
	"errors"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "Server", err: NewServer(errors.New("boom")), want: http.StatusInternalServerError},
		{name: "InvalidInput", err: NewInvalidInput(errors.New("bad")), want: http.StatusBadRequest},
		{name: "InvalidFormat", err: NewInvalidFormat(), want: http.StatusBadRequest},
		{name: "NotFound", err: NewBusiness("missing", CodeNotFound), want: http.StatusNotFound},
		{name: "Conflict", err: NewBusiness("duplicate", CodeConflict), want: http.StatusConflict},
		{name: "TooManyRequests", err: NewBusiness("slow down", CodeTooManyRequest), want: http.StatusTooManyRequests},
		{name: "Unauthorized", err: NewBusiness("who are you", CodeUnauthorized), want: http.StatusUnauthorized},
		{name: "Forbidden", err: NewForbidden("not allowed", "", ""), want: http.StatusForbidden},
		{name: "Timeout", err: NewBusiness("too slow", CodeTimeout), want: http.StatusRequestTimeout},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gerr *Error
			if !errors.As(tc.err, &gerr) {
				t.Fatalf("error is %T, want *Error", tc.err)
			}
			if got := gerr.StatusCode(); got != tc.want {
				t.Fatalf("StatusCode() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestNewForbidden(t *testing.T) {
	err := NewForbidden("You have no active services, please purchase one first", "no_active_services", "/pricing")

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error is %T, want *Error", err)
	}

	if gerr.Code() != CodeForbidden {
		t.Fatalf("Code() = %v, want CodeForbidden", gerr.Code())
	}
	if got := gerr.Fields()["reason"]; got != "no_active_services" {
		t.Fatalf(`Fields()["reason"] = %q, want "no_active_services"`, got)
	}
	if got := gerr.Redirect(); got != "/pricing" {
		t.Fatalf("Redirect() = %q, want /pricing", got)
	}

	// Without a reason the fields map stays empty so the response omits it.
	bare := NewForbidden("not allowed", "", "")
	if !errors.As(bare, &gerr) {
		t.Fatalf("error is %T, want *Error", bare)
	}
	if gerr.Fields() != nil {
		t.Fatalf("Fields() = %v, want nil", gerr.Fields())
	}
}

func TestNewInvalidInputFields(t *testing.T) {
	err := NewInvalidInput(nil, "card", "card details are required for this payment type")

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error is %T, want *Error", err)
	}
	if gerr.Code() != CodeInvalidInput {
		t.Fatalf("Code() = %v, want CodeInvalidInput", gerr.Code())
	}
	if got := gerr.Fields()["card"]; got != "card details are required for this payment type" {
		t.Fatalf(`Fields()["card"] = %q`, got)
	}

	// An odd key/value list falls back to an invalid-format error.
	odd := NewInvalidInput(nil, "card")
	if !errors.As(odd, &gerr) {
		t.Fatalf("error is %T, want *Error", odd)
	}
	if gerr.Code() != CodeInvalidFormat {
		t.Fatalf("Code() = %v, want CodeInvalidFormat", gerr.Code())
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewServer(cause)

	if !errors.Is(err, cause) {
		t.Fatal("errors.Is(err, cause) = false, want true")
	}
}
