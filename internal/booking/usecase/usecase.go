package usecase

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/flexkitapp/flexgate/internal/pkg/clock"
	"github.com/flexkitapp/flexgate/internal/pkg/config"
	"github.com/flexkitapp/flexgate/internal/pkg/goerror"
	"github.com/flexkitapp/flexgate/internal/pkg/idempotency"
	"github.com/flexkitapp/flexgate/internal/pkg/instrument"
	"github.com/flexkitapp/flexgate/internal/pkg/jwt"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
	"github.com/flexkitapp/flexgate/internal/pkg/validator"
)

type booker interface {
	GetClassByID(ctx context.Context, classID int64) (*mindbody.Class, error)
	AddClientToClass(ctx context.Context, clientID string, classID int64) (map[string]any, error)
	RemoveClientFromClass(ctx context.Context, clientID string, classID int64, lateCancel bool) (map[string]any, error)
	GetClientServices(ctx context.Context, clientID string, sessionTypeID int64) ([]mindbody.ClientService, error)
	AddAppointment(ctx context.Context, in mindbody.AddAppointmentInput) (map[string]any, error)
	UpdateAppointment(ctx context.Context, appointmentID int64, execute string) (map[string]any, error)
}

type Usecase struct {
	booker    booker
	idemp     idempotency.Idempotency
	validator validator.Validator
	cfg       config.Config
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	Booker      booker
	Idempotency idempotency.Idempotency
	Validator   validator.Validator
	Config      config.Config
	Clock       clock.Clocker
	Instrument  instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		booker:    dep.Booker,
		idemp:     dep.Idempotency,
		validator: dep.Validator,
		cfg:       dep.Config,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("booking.usecase").Start(ctx, name)
}

// callerID returns the authenticated client ID from the request context.
func callerID(ctx context.Context) (string, error) {
	claims := jwt.GetAuth(ctx)
	if claims == nil || claims.Client.ID == "" {
		return "", goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return claims.Client.ID, nil
}
