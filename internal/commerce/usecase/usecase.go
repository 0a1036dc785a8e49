package usecase

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/flexkitapp/flexgate/internal/pkg/goerror"
	"github.com/flexkitapp/flexgate/internal/pkg/idempotency"
	"github.com/flexkitapp/flexgate/internal/pkg/instrument"
	"github.com/flexkitapp/flexgate/internal/pkg/jwt"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
	"github.com/flexkitapp/flexgate/internal/pkg/validator"
)

type seller interface {
	GetServices(ctx context.Context) ([]map[string]any, error)
	GetServiceByID(ctx context.Context, serviceID int64) (map[string]any, error)
	GetContracts(ctx context.Context, locationID int64) ([]map[string]any, error)
	GetContractByID(ctx context.Context, contractID, locationID int64) (map[string]any, error)
	GetPromotionCodes(ctx context.Context) ([]map[string]any, error)
	PurchaseContract(ctx context.Context, in mindbody.PurchaseContractInput) (map[string]any, error)
}

type Usecase struct {
	seller    seller
	idemp     idempotency.Idempotency
	validator validator.Validator
	ins       instrument.Instrumentation
}

type Dependency struct {
	Seller      seller
	Idempotency idempotency.Idempotency
	Validator   validator.Validator
	Instrument  instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		seller:    dep.Seller,
		idemp:     dep.Idempotency,
		validator: dep.Validator,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("commerce.usecase").Start(ctx, name)
}

// callerID returns the authenticated client ID from the request context.
func callerID(ctx context.Context) (string, error) {
	claims := jwt.GetAuth(ctx)
	if claims == nil || claims.Client.ID == "" {
		return "", goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return claims.Client.ID, nil
}
