package inbound

import (
	"context"

	"github.com/flexkitapp/flexgate/internal/auth/usecase"
	"github.com/flexkitapp/flexgate/internal/pkg/router"
)

type uc interface {
	RequestChallenge(ctx context.Context, in usecase.RequestChallengeInput) (*usecase.RequestChallengeOutput, error)
	VerifyChallenge(ctx context.Context, in usecase.VerifyChallengeInput) (*usecase.VerifyChallengeOutput, error)
	Status(ctx context.Context) (*usecase.StatusOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/auth/email", end.RequestChallenge)
	r.POST("/api/auth/verify", end.VerifyChallenge)
	r.GET("/api/auth/status", end.Status)
}
