package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/flexkitapp/flexgate/internal/auth/entity"
	"github.com/flexkitapp/flexgate/internal/pkg/goerror"
	"github.com/flexkitapp/flexgate/internal/pkg/mail"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
	"github.com/flexkitapp/flexgate/internal/pkg/valueobject"
)

type RequestChallengeInput struct {
	Email string `validate:"required,email"`
}

type RequestChallengeOutput struct {
	RequestID string
	Email     string
	ExpiresIn int
}

// RequestChallenge looks the email up in the studio member directory, stores
// a hashed one-time code, and emails the code to the member. Any previous
// pending codes for the same email become unusable.
func (s *Usecase) RequestChallenge(ctx context.Context, in RequestChallengeInput) (*RequestChallengeOutput, error) {
	ctx, span := s.startSpan(ctx, "RequestChallenge")
	defer span.End()

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	email := in.Email

	records, err := s.directory.SearchClients(ctx, email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to search clients in member directory", "error", err)
		return nil, mindbody.MapError(err)
	}

	var record *mindbody.ClientRecord
	for i := range records {
		if strings.EqualFold(records[i].Email, email) {
			record = &records[i]
			break
		}
	}
	if record == nil {
		slog.WarnContext(ctx, "no client account matches email")
		return nil, goerror.NewBusiness("No account found for this email address", goerror.CodeNotFound)
	}

	code, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate verification code", "error", err)
		return nil, goerror.NewServer(err)
	}

	codeHash, err := s.hmac.Hash(code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash verification code", "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoDB.DeleteChallengesByEmail(ctx, email); err != nil {
		slog.ErrorContext(ctx, "failed to invalidate previous challenges", "error", err)
		return nil, goerror.NewServer(err)
	}

	// Opportunistic garbage collection of expired and consumed rows, off the
	// request path.
	s.goroutine.Go(context.WithoutCancel(ctx), func(gcCtx context.Context) error {
		n, purgeErr := s.repoDB.PurgeChallenges(gcCtx, s.clock.Now())
		if purgeErr != nil {
			slog.WarnContext(gcCtx, "failed to purge stale challenges", "error", purgeErr)
			return nil
		}
		if n > 0 {
			slog.InfoContext(gcCtx, "purged stale challenges", "count", n)
		}
		return nil
	})

	ttl := s.otpTTL()
	requestID := s.rid.Generate()
	now := s.clock.Now()

	if err := s.repoDB.CreateChallenge(ctx, entity.OtpChallenge{
		ID:          s.uid.Generate(),
		RequestID:   requestID,
		CodeHash:    string(codeHash),
		ClientID:    record.ID,
		ClientEmail: email,
		ClientData: valueobject.JSONMap{
			"id":         record.ID,
			"first_name": record.FirstName,
			"last_name":  record.LastName,
			"email":      record.Email,
			"phone":      record.MobilePhone,
		},
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to store challenge", "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.deliverCode(ctx, email, record.FirstName, code, ttl.String()); err != nil {
		return nil, err
	}

	return &RequestChallengeOutput{
		RequestID: requestID,
		Email:     email,
		ExpiresIn: int(ttl.Seconds()),
	}, nil
}

func (s *Usecase) deliverCode(ctx context.Context, email, firstName, code, validity string) error {
	if s.cfg.GetString("app.env") == "development" {
		slog.InfoContext(ctx, "development mode, skipping email delivery", "email", email, "code", code)
		return nil
	}

	appName := s.cfg.GetString("app.name")
	greeting := "Hi"
	if firstName != "" {
		greeting = "Hi " + firstName
	}

	msg := mail.Message{
		To:      []string{email},
		Subject: fmt.Sprintf("%s verification code: %s", appName, code),
		TextBody: fmt.Sprintf(
			"%s,\n\nYour %s verification code is %s.\nIt is valid for %s and can be used once.\n\nIf you did not request this code, you can ignore this email.",
			greeting, appName, code, validity,
		),
		HTMLBody: fmt.Sprintf(
			`<p>%s,</p><p>Your %s verification code is:</p><p style="font-size:28px;font-weight:bold;letter-spacing:4px">%s</p><p>It is valid for %s and can be used once.</p><p>If you did not request this code, you can ignore this email.</p>`,
			greeting, appName, code, validity,
		),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "failed to send verification email", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
