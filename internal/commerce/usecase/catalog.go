package usecase

import (
	"context"
	"log/slog"

	"github.com/flexkitapp/flexgate/internal/pkg/goerror"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
)

type ServicesOutput struct {
	Services []map[string]any
}

// Services lists sellable pricing options.
func (s *Usecase) Services(ctx context.Context) (*ServicesOutput, error) {
	ctx, span := s.startSpan(ctx, "Services")
	defer span.End()

	services, err := s.seller.GetServices(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch services", "error", err)
		return nil, mindbody.MapError(err)
	}
	if services == nil {
		services = []map[string]any{}
	}

	return &ServicesOutput{Services: services}, nil
}

type ContractsInput struct {
	LocationID int64 `validate:"omitempty,min=1"`
}

type ContractsOutput struct {
	Contracts []map[string]any
}

// Contracts lists sellable contracts, optionally narrowed to a location.
func (s *Usecase) Contracts(ctx context.Context, in ContractsInput) (*ContractsOutput, error) {
	ctx, span := s.startSpan(ctx, "Contracts")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	contracts, err := s.seller.GetContracts(ctx, in.LocationID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch contracts", "location_id", in.LocationID, "error", err)
		return nil, mindbody.MapError(err)
	}
	if contracts == nil {
		contracts = []map[string]any{}
	}

	return &ContractsOutput{Contracts: contracts}, nil
}

type PromotionsOutput struct {
	Promotions []map[string]any
}

// Promotions lists promotion codes.
func (s *Usecase) Promotions(ctx context.Context) (*PromotionsOutput, error) {
	ctx, span := s.startSpan(ctx, "Promotions")
	defer span.End()

	promotions, err := s.seller.GetPromotionCodes(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch promotion codes", "error", err)
		return nil, mindbody.MapError(err)
	}
	if promotions == nil {
		promotions = []map[string]any{}
	}

	return &PromotionsOutput{Promotions: promotions}, nil
}

type PurchaseDetailsInput struct {
	Type       string `validate:"omitempty,oneof=service contract"`
	ID         int64  `validate:"required,min=1"`
	LocationID int64  `validate:"omitempty,min=1"`
}

type PurchaseDetailsOutput struct {
	Type    string
	Details map[string]any
}

// PurchaseDetails fetches one sellable item, service or contract, by ID.
func (s *Usecase) PurchaseDetails(ctx context.Context, in PurchaseDetailsInput) (*PurchaseDetailsOutput, error) {
	ctx, span := s.startSpan(ctx, "PurchaseDetails")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	kind := in.Type
	if kind == "" {
		kind = "service"
	}

	var (
		details map[string]any
		err     error
	)
	if kind == "contract" {
		details, err = s.seller.GetContractByID(ctx, in.ID, in.LocationID)
	} else {
		details, err = s.seller.GetServiceByID(ctx, in.ID)
	}
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch purchase details", "type", kind, "id", in.ID, "error", err)
		return nil, mindbody.MapError(err)
	}

	return &PurchaseDetailsOutput{Type: kind, Details: details}, nil
}
