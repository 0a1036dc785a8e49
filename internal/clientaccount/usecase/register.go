package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/flexkitapp/flexgate/internal/pkg/goerror"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
)

type RegisterInput struct {
	FirstName         string `validate:"required,max=100"`
	LastName          string `validate:"required,max=100"`
	Email             string `validate:"required,email"`
	Phone             string `validate:"required,max=30"`
	TermsAccepted     bool   `validate:"-"`
	Country           string `validate:"omitempty,iso3166_1_alpha2"`
	DateOfBirth       string `validate:"omitempty,datetime=2006-01-02"`
	Gender            string `validate:"omitempty,oneof=male female Male Female"`
	HearAbout         string `validate:"omitempty,max=200"`
	MarketingAccepted *bool  `validate:"-"`
}

type RegisterOutput struct {
	Client mindbody.ClientRecord
}

// Register creates a new client record in the member directory.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	country := in.Country
	if country == "" {
		country = "US"
	}

	fields := map[string]any{
		"Client": map[string]any{
			"FirstName":        in.FirstName,
			"LastName":         in.LastName,
			"Email":            in.Email,
			"MobilePhone":      in.Phone,
			"LiabilityRelease": in.TermsAccepted,
			"Country":          country,
			"ProspectStage":    "Member",
		},
	}

	client := fields["Client"].(map[string]any)
	if in.DateOfBirth != "" {
		client["BirthDate"] = in.DateOfBirth
	}
	if in.Gender != "" {
		g := strings.ToLower(in.Gender)
		client["Gender"] = strings.ToUpper(g[:1]) + g[1:]
	}
	if in.HearAbout != "" {
		client["ReferredBy"] = in.HearAbout
	}
	if in.MarketingAccepted != nil {
		client["SendPromotionalEmails"] = *in.MarketingAccepted
		client["SendPromotionalTexts"] = *in.MarketingAccepted
	}

	record, err := s.directory.CreateClient(ctx, fields)
	if err != nil {
		slog.ErrorContext(ctx, "failed to register client", "email", in.Email, "error", err)
		return nil, mindbody.MapError(err)
	}

	return &RegisterOutput{Client: *record}, nil
}
