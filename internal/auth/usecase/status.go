package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/flexkitapp/flexgate/internal/pkg/jwt"
)

type StatusOutput struct {
	Authenticated bool
	Client        *jwt.Identity
	ExpiresAt     time.Time
}

// Status reports whether the caller holds a live session. Besides the token
// itself, the cached client profile must still be present and unexpired.
func (s *Usecase) Status(ctx context.Context) (*StatusOutput, error) {
	ctx, span := s.startSpan(ctx, "Status")
	defer span.End()

	claims := jwt.GetAuth(ctx)
	if claims == nil {
		return &StatusOutput{Authenticated: false}, nil
	}

	profile, err := s.repoDB.GetClientProfile(ctx, claims.Client.ID)
	if err != nil {
		slog.WarnContext(ctx, "no cached profile for token holder", "error", err)
		return &StatusOutput{Authenticated: false}, nil
	}
	if s.clock.Now().After(profile.ExpiresAt) {
		return &StatusOutput{Authenticated: false}, nil
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	client := claims.Client
	return &StatusOutput{
		Authenticated: true,
		Client:        &client,
		ExpiresAt:     expiresAt,
	}, nil
}
