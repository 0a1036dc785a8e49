package inbound

import (
	"context"

	"github.com/flexkitapp/flexgate/internal/clientaccount/usecase"
	"github.com/flexkitapp/flexgate/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)
	CompleteInfo(ctx context.Context, in usecase.CompleteInfoInput) (*usecase.CompleteInfoOutput, error)
	UpdateProfile(ctx context.Context, in usecase.UpdateProfileInput) (*usecase.UpdateProfileOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/client/register", end.Register)
	r.GET("/api/client/complete-info", end.CompleteInfo)
	r.PUT("/api/client/profile", end.UpdateProfile)
}
