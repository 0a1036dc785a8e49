package inbound

import (
	"context"

	"github.com/flexkitapp/flexgate/internal/commerce/usecase"
	"github.com/flexkitapp/flexgate/internal/pkg/router"
)

type uc interface {
	Services(ctx context.Context) (*usecase.ServicesOutput, error)
	Contracts(ctx context.Context, in usecase.ContractsInput) (*usecase.ContractsOutput, error)
	Promotions(ctx context.Context) (*usecase.PromotionsOutput, error)
	PurchaseDetails(ctx context.Context, in usecase.PurchaseDetailsInput) (*usecase.PurchaseDetailsOutput, error)
	PurchaseContract(ctx context.Context, in usecase.PurchaseContractInput) (*usecase.PurchaseContractOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/services", end.Services)
	r.GET("/api/contracts", end.Contracts)
	r.GET("/api/promotions", end.Promotions)
	r.GET("/api/purchase/details", end.PurchaseDetails)
	r.POST("/api/purchase/contract", end.PurchaseContract)
}
