package inbound

import (
	"context"

	"github.com/flexkitapp/flexgate/internal/pkg/router"
	"github.com/flexkitapp/flexgate/internal/status/usecase"
)

type uc interface {
	Status(ctx context.Context) (*usecase.StatusOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/status", end.Status)
}
