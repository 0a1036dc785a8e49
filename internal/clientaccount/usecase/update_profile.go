package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/flexkitapp/flexgate/internal/pkg/goerror"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
)

type UpdateProfileInput struct {
	FirstName    string `validate:"omitempty,max=100"`
	LastName     string `validate:"omitempty,max=100"`
	Email        string `validate:"omitempty,email"`
	MobilePhone  string `validate:"omitempty,max=30"`
	AddressLine1 string `validate:"omitempty,max=200"`
	AddressLine2 string `validate:"omitempty,max=200"`
	City         string `validate:"omitempty,max=100"`
	State        string `validate:"omitempty,max=100"`
	PostalCode   string `validate:"omitempty,max=20"`
	Country      string `validate:"omitempty,iso3166_1_alpha2"`
}

type UpdateProfileOutput struct {
	Client mindbody.ClientRecord
}

// UpdateProfile pushes changed profile fields to the member directory. Only
// fields the caller actually sent are included in the update.
func (s *Usecase) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*UpdateProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "UpdateProfile")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	clientID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	setIf(fields, "FirstName", in.FirstName)
	setIf(fields, "LastName", in.LastName)
	setIf(fields, "Email", strings.ToLower(strings.TrimSpace(in.Email)))
	setIf(fields, "MobilePhone", in.MobilePhone)
	setIf(fields, "AddressLine1", in.AddressLine1)
	setIf(fields, "AddressLine2", in.AddressLine2)
	setIf(fields, "City", in.City)
	setIf(fields, "State", in.State)
	setIf(fields, "PostalCode", in.PostalCode)
	setIf(fields, "Country", in.Country)

	if len(fields) == 0 {
		return nil, goerror.NewInvalidInput(nil, "body", "at least one profile field is required")
	}

	record, err := s.directory.UpdateClient(ctx, clientID, fields)
	if err != nil {
		slog.ErrorContext(ctx, "failed to update client profile", "error", err)
		return nil, mindbody.MapError(err)
	}

	return &UpdateProfileOutput{Client: *record}, nil
}

func setIf(fields map[string]any, key, value string) {
	if value != "" {
		fields[key] = value
	}
}
