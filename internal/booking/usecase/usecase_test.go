package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/flexkitapp/flexgate/internal/pkg/config"
	"github.com/flexkitapp/flexgate/internal/pkg/goerror"
	"github.com/flexkitapp/flexgate/internal/pkg/idempotency"
	"github.com/flexkitapp/flexgate/internal/pkg/instrument"
	"github.com/flexkitapp/flexgate/internal/pkg/jwt"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
	"github.com/flexkitapp/flexgate/internal/pkg/validator"
)

const testConfigYAML = `
modules:
  booking:
    late_cancel_hours: 12
`

type staticClock struct {
	now time.Time
}

func (c *staticClock) Now() time.Time {
	return c.now
}

type fakeBooker struct {
	class       *mindbody.Class
	allServices []mindbody.ClientService
	typed       []mindbody.ClientService

	addedClass     int64
	removedClass   int64
	removedLate    bool
	addedAppt      *mindbody.AddAppointmentInput
	updatedApptID  int64
	updatedExecute string
	addClassErr    error
	servicesErr    error
	bookAttempts   int
}

func (b *fakeBooker) GetClassByID(_ context.Context, classID int64) (*mindbody.Class, error) {
	if b.class == nil {
		return nil, &mindbody.HTTPError{StatusCode: 404, Endpoint: "/class/classes"}
	}
	return b.class, nil
}

func (b *fakeBooker) AddClientToClass(_ context.Context, clientID string, classID int64) (map[string]any, error) {
	b.bookAttempts++
	if b.addClassErr != nil {
		return nil, b.addClassErr
	}
	b.addedClass = classID
	return map[string]any{"ClassId": classID}, nil
}

func (b *fakeBooker) RemoveClientFromClass(_ context.Context, clientID string, classID int64, lateCancel bool) (map[string]any, error) {
	b.removedClass = classID
	b.removedLate = lateCancel
	return map[string]any{"ClassId": classID}, nil
}

func (b *fakeBooker) GetClientServices(_ context.Context, clientID string, sessionTypeID int64) ([]mindbody.ClientService, error) {
	if b.servicesErr != nil {
		return nil, b.servicesErr
	}
	if sessionTypeID == 0 {
		return b.allServices, nil
	}
	return b.typed, nil
}

func (b *fakeBooker) AddAppointment(_ context.Context, in mindbody.AddAppointmentInput) (map[string]any, error) {
	b.addedAppt = &in
	return map[string]any{"Id": int64(555)}, nil
}

func (b *fakeBooker) UpdateAppointment(_ context.Context, appointmentID int64, execute string) (map[string]any, error) {
	b.updatedApptID = appointmentID
	b.updatedExecute = execute
	return map[string]any{"Id": appointmentID}, nil
}

// passthroughIdempotency runs the guarded function directly.
type passthroughIdempotency struct{}

func (passthroughIdempotency) Acquire(context.Context, string, time.Duration) (idempotency.State, error) {
	return "", nil
}

func (passthroughIdempotency) MarkCompleted(context.Context, string, time.Duration) error {
	return nil
}

func (passthroughIdempotency) MarkFailed(context.Context, string, time.Duration) error {
	return nil
}

func (passthroughIdempotency) Exec(ctx context.Context, _ string, fn func(context.Context) error, _ ...idempotency.Option) error {
	return fn(ctx)
}

func newTestUsecase(t *testing.T, booker *fakeBooker, clk *staticClock) *Usecase {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	if err != nil {
		t.Fatalf("NewViperFromBytes() error = %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	return New(Dependency{
		Booker:      booker,
		Idempotency: passthroughIdempotency{},
		Validator:   v10,
		Config:      cfg,
		Clock:       clk,
		Instrument:  instrument.NewNoop(),
	})
}

func authedContext(t *testing.T) context.Context {
	t.Helper()

	return jwt.SetAuth(t.Context(), jwt.Claims{Client: jwt.Identity{ID: "100000123"}})
}

func requireForbiddenReason(t *testing.T, err error, reason string) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error = %v (%T), want *goerror.Error", err, err)
	}
	if gerr.StatusCode() != 403 {
		t.Fatalf("StatusCode() = %d, want 403", gerr.StatusCode())
	}
	if got := gerr.Fields()["reason"]; got != reason {
		t.Fatalf(`Fields()["reason"] = %q, want %q`, got, reason)
	}
	if gerr.Redirect() != "/pricing" {
		t.Fatalf("Redirect() = %q, want /pricing", gerr.Redirect())
	}
}

func TestBookClass(t *testing.T) {
	t.Run("RequiresAuthentication", func(t *testing.T) {
		uc := newTestUsecase(t, &fakeBooker{}, &staticClock{})

		_, err := uc.BookClass(t.Context(), BookClassInput{ClassID: 12})

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.StatusCode() != 401 {
			t.Fatalf("BookClass() error = %v, want 401", err)
		}
	})

	t.Run("BooksCaller", func(t *testing.T) {
		booker := &fakeBooker{}
		uc := newTestUsecase(t, booker, &staticClock{})

		out, err := uc.BookClass(authedContext(t), BookClassInput{ClassID: 12})
		if err != nil {
			t.Fatalf("BookClass() error = %v", err)
		}
		if booker.addedClass != 12 {
			t.Fatalf("booked class = %d, want 12", booker.addedClass)
		}
		if out.Booking == nil {
			t.Fatal("Booking payload is nil")
		}
	})

	t.Run("UpstreamRateLimitSurfacesAs429", func(t *testing.T) {
		booker := &fakeBooker{addClassErr: mindbody.ErrRateLimited}
		uc := newTestUsecase(t, booker, &staticClock{})

		_, err := uc.BookClass(authedContext(t), BookClassInput{ClassID: 12})

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.StatusCode() != 429 {
			t.Fatalf("BookClass() error = %v, want 429", err)
		}
	})
}

func TestCancelClass(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		classStart string
		wantLate   bool
	}{
		{name: "OutsideWindow", classStart: "2025-06-02T10:00:00", wantLate: false},
		{name: "InsideWindow", classStart: "2025-06-01T15:00:00", wantLate: true},
		{name: "UnparseableStartTreatedAsRegular", classStart: "soon", wantLate: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			booker := &fakeBooker{class: &mindbody.Class{ID: 12, StartDateTime: tc.classStart}}
			uc := newTestUsecase(t, booker, &staticClock{now: now})

			out, err := uc.CancelClass(authedContext(t), CancelClassInput{ClassID: 12})
			if err != nil {
				t.Fatalf("CancelClass() error = %v", err)
			}

			if out.LateCancel != tc.wantLate {
				t.Fatalf("LateCancel = %v, want %v", out.LateCancel, tc.wantLate)
			}
			if booker.removedLate != tc.wantLate {
				t.Fatalf("upstream late flag = %v, want %v", booker.removedLate, tc.wantLate)
			}
		})
	}

	t.Run("UnknownClassReturns404", func(t *testing.T) {
		uc := newTestUsecase(t, &fakeBooker{}, &staticClock{now: now})

		_, err := uc.CancelClass(authedContext(t), CancelClassInput{ClassID: 99})

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.StatusCode() != 404 {
			t.Fatalf("CancelClass() error = %v, want 404", err)
		}
	})
}

func TestBookAppointment(t *testing.T) {
	validInput := BookAppointmentInput{
		SessionTypeID: 100,
		LocationID:    1,
		StartDateTime: "2025-06-02T09:00:00",
	}

	t.Run("NoActiveServices", func(t *testing.T) {
		uc := newTestUsecase(t, &fakeBooker{}, &staticClock{})

		_, err := uc.BookAppointment(authedContext(t), validInput)
		requireForbiddenReason(t, err, "no_active_services")
	})

	t.Run("ServiceDoesNotCoverSessionType", func(t *testing.T) {
		booker := &fakeBooker{
			allServices: []mindbody.ClientService{{ID: 1, Remaining: 5}},
		}
		uc := newTestUsecase(t, booker, &staticClock{})

		_, err := uc.BookAppointment(authedContext(t), validInput)
		requireForbiddenReason(t, err, "invalid_service_type")
	})

	t.Run("NoRemainingSessions", func(t *testing.T) {
		booker := &fakeBooker{
			allServices: []mindbody.ClientService{{ID: 1, Remaining: 0}},
			typed:       []mindbody.ClientService{{ID: 1, Remaining: 0}},
		}
		uc := newTestUsecase(t, booker, &staticClock{})

		_, err := uc.BookAppointment(authedContext(t), validInput)
		requireForbiddenReason(t, err, "no_remaining_sessions")
	})

	t.Run("EntitledCallerBooks", func(t *testing.T) {
		booker := &fakeBooker{
			allServices: []mindbody.ClientService{{ID: 1, Remaining: 3}},
			typed:       []mindbody.ClientService{{ID: 1, Remaining: 3}},
		}
		uc := newTestUsecase(t, booker, &staticClock{})

		out, err := uc.BookAppointment(authedContext(t), validInput)
		if err != nil {
			t.Fatalf("BookAppointment() error = %v", err)
		}

		if out.Appointment == nil {
			t.Fatal("Appointment payload is nil")
		}
		if booker.addedAppt == nil || booker.addedAppt.ClientID != "100000123" {
			t.Fatalf("AddAppointment input = %+v", booker.addedAppt)
		}
		if booker.addedAppt.SessionTypeID != 100 || booker.addedAppt.StartDateTime != validInput.StartDateTime {
			t.Fatalf("AddAppointment input = %+v", booker.addedAppt)
		}
	})

	t.Run("BadStartTimestampRejected", func(t *testing.T) {
		uc := newTestUsecase(t, &fakeBooker{}, &staticClock{})

		in := validInput
		in.StartDateTime = "2025-06-02 09:00"
		if _, err := uc.BookAppointment(authedContext(t), in); err == nil {
			t.Fatal("BookAppointment() error = nil, want validation error")
		}
	})
}

func TestCancelAppointment(t *testing.T) {
	booker := &fakeBooker{}
	uc := newTestUsecase(t, booker, &staticClock{})

	out, err := uc.CancelAppointment(authedContext(t), CancelAppointmentInput{AppointmentID: 555})
	if err != nil {
		t.Fatalf("CancelAppointment() error = %v", err)
	}

	if booker.updatedApptID != 555 || booker.updatedExecute != "Cancel" {
		t.Fatalf("UpdateAppointment(%d, %q), want (555, Cancel)", booker.updatedApptID, booker.updatedExecute)
	}
	if out.Result == nil {
		t.Fatal("Result payload is nil")
	}
}
