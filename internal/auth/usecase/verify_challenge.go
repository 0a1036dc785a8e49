package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/flexkitapp/flexgate/internal/auth/entity"
	"github.com/flexkitapp/flexgate/internal/pkg/goerror"
	"github.com/flexkitapp/flexgate/internal/pkg/jwt"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
)

type VerifyChallengeInput struct {
	RequestID string `validate:"omitempty,hexadecimal"`
	Email     string `validate:"omitempty,email"`
	Code      string `validate:"required,numeric,min=4,max=10"`
}

type VerifyChallengeOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int
	Client      jwt.Identity
	Schedule    []mindbody.Visit
}

var errInvalidChallenge = goerror.NewBusiness("Invalid or expired verification code", goerror.CodeInvalidInput)

// VerifyChallenge checks a submitted code against the stored challenge,
// consumes it exactly once, refreshes the cached client profile and issues a
// bearer token.
func (s *Usecase) VerifyChallenge(ctx context.Context, in VerifyChallengeInput) (*VerifyChallengeOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyChallenge")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}
	if in.RequestID == "" && in.Email == "" {
		return nil, goerror.NewInvalidInput(nil, "request_id", "request_id or email is required")
	}

	chal, err := s.loadChallenge(ctx, in)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "no pending challenge for verification attempt")
		return nil, errInvalidChallenge
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to load challenge", "error", err)
		return nil, goerror.NewServer(err)
	}

	now := s.clock.Now()
	if now.After(chal.ExpiresAt) {
		if delErr := s.repoDB.DeleteChallenge(ctx, chal.ID); delErr != nil {
			slog.WarnContext(ctx, "failed to delete expired challenge", "error", delErr)
		}
		return nil, goerror.NewBusiness("Verification code has expired, please request a new one", goerror.CodeInvalidInput)
	}

	if !s.hmac.Verify(chal.CodeHash, in.Code) {
		slog.WarnContext(ctx, "verification code mismatch", "request_id", chal.RequestID)
		return nil, goerror.NewBusiness("Invalid verification code", goerror.CodeInvalidInput)
	}

	consumed, err := s.repoDB.MarkChallengeUsed(ctx, chal.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to consume challenge", "error", err)
		return nil, goerror.NewServer(err)
	}
	if !consumed {
		slog.WarnContext(ctx, "challenge already consumed", "request_id", chal.RequestID)
		return nil, errInvalidChallenge
	}

	identity := s.resolveIdentity(ctx, chal)

	if err := s.repoDB.UpsertClientProfile(ctx, entity.ClientProfile{
		ClientID:    identity.ID,
		FirstName:   identity.FirstName,
		LastName:    identity.LastName,
		Email:       identity.Email,
		Phone:       identity.Phone,
		LastLoginAt: now,
		ExpiresAt:   now.Add(s.cfg.GetDay("modules.auth.profile_cache_ttl_days")),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to upsert client profile", "error", err)
		return nil, goerror.NewServer(err)
	}

	token, expiresAt, err := s.jwt.Generate(identity)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access token", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &VerifyChallengeOutput{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(expiresAt.Sub(now).Seconds()),
		Client:      identity,
		Schedule:    s.fetchSchedule(ctx, identity.ID, now),
	}, nil
}

func (s *Usecase) loadChallenge(ctx context.Context, in VerifyChallengeInput) (*entity.OtpChallenge, error) {
	if in.RequestID != "" {
		return s.repoDB.GetChallengeByRequestID(ctx, in.RequestID)
	}

	return s.repoDB.GetLatestChallengeByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
}

// resolveIdentity prefers a fresh directory record; a directory outage falls
// back to the snapshot taken when the challenge was created.
func (s *Usecase) resolveIdentity(ctx context.Context, chal *entity.OtpChallenge) jwt.Identity {
	record, err := s.directory.GetClientByID(ctx, chal.ClientID)
	if err != nil {
		slog.WarnContext(ctx, "directory lookup failed, using challenge snapshot", "error", err)
		return jwt.Identity{
			ID:        chal.ClientID,
			Email:     chal.ClientEmail,
			FirstName: chal.Snapshot("first_name"),
			LastName:  chal.Snapshot("last_name"),
			Phone:     chal.Snapshot("phone"),
		}
	}

	return jwt.Identity{
		ID:        record.ID,
		Email:     record.Email,
		FirstName: record.FirstName,
		LastName:  record.LastName,
		Phone:     record.MobilePhone,
	}
}

func (s *Usecase) fetchSchedule(ctx context.Context, clientID string, now time.Time) []mindbody.Visit {
	visits, err := s.directory.GetClientSchedule(
		ctx,
		clientID,
		now.Format(time.DateOnly),
		now.AddDate(0, 1, 0).Format(time.DateOnly),
	)
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch client schedule", "error", err)
		return []mindbody.Visit{}
	}

	return visits
}
