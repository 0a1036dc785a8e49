package usecase

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/flexkitapp/flexgate/internal/pkg/clock"
	"github.com/flexkitapp/flexgate/internal/pkg/goerror"
	"github.com/flexkitapp/flexgate/internal/pkg/instrument"
	"github.com/flexkitapp/flexgate/internal/pkg/jwt"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
	"github.com/flexkitapp/flexgate/internal/pkg/validator"
)

type directory interface {
	CreateClient(ctx context.Context, fields map[string]any) (*mindbody.ClientRecord, error)
	UpdateClient(ctx context.Context, clientID string, fields map[string]any) (*mindbody.ClientRecord, error)
	GetClientCompleteInfo(ctx context.Context, clientID string) (*mindbody.CompleteInfo, error)
	GetClientVisits(ctx context.Context, clientID, startDate, endDate string) ([]mindbody.Visit, error)
}

type Usecase struct {
	directory directory
	validator validator.Validator
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	Directory  directory
	Validator  validator.Validator
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		directory: dep.Directory,
		validator: dep.Validator,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("clientaccount.usecase").Start(ctx, name)
}

// callerID returns the authenticated client ID from the request context.
func callerID(ctx context.Context) (string, error) {
	claims := jwt.GetAuth(ctx)
	if claims == nil || claims.Client.ID == "" {
		return "", goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return claims.Client.ID, nil
}
