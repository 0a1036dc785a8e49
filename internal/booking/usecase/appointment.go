package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flexkitapp/flexgate/internal/pkg/goerror"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
)

const pricingRedirect = "/pricing"

type BookAppointmentInput struct {
	SessionTypeID int64  `validate:"required,min=1"`
	LocationID    int64  `validate:"required,min=1"`
	StaffID       int64  `validate:"omitempty,min=1"`
	StartDateTime string `validate:"required,datetime=2006-01-02T15:04:05"`
	Notes         string `validate:"omitempty,max=500"`
}

type BookAppointmentOutput struct {
	Appointment map[string]any
}

// BookAppointment books an appointment after verifying the caller holds an
// applicable service with sessions remaining.
func (s *Usecase) BookAppointment(ctx context.Context, in BookAppointmentInput) (*BookAppointmentOutput, error) {
	ctx, span := s.startSpan(ctx, "BookAppointment")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	clientID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.checkEntitlement(ctx, clientID, in.SessionTypeID); err != nil {
		return nil, err
	}

	var appointment map[string]any
	key := fmt.Sprintf("booking:appointment:%s:%d:%s", clientID, in.SessionTypeID, in.StartDateTime)
	err = s.idemp.Exec(ctx, key, func(ctx context.Context) error {
		var bookErr error
		appointment, bookErr = s.booker.AddAppointment(ctx, mindbody.AddAppointmentInput{
			ClientID:      clientID,
			SessionTypeID: in.SessionTypeID,
			LocationID:    in.LocationID,
			StaffID:       in.StaffID,
			StartDateTime: in.StartDateTime,
			Notes:         in.Notes,
		})
		return bookErr
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to book appointment", "session_type_id", in.SessionTypeID, "error", err)
		return nil, mindbody.MapError(err)
	}

	return &BookAppointmentOutput{Appointment: appointment}, nil
}

// checkEntitlement enforces the purchase requirements for appointments: an
// active service exists, it covers this session type, and sessions remain.
func (s *Usecase) checkEntitlement(ctx context.Context, clientID string, sessionTypeID int64) error {
	all, err := s.booker.GetClientServices(ctx, clientID, 0)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch client services", "error", err)
		return mindbody.MapError(err)
	}
	if len(all) == 0 {
		return goerror.NewForbidden("You have no active services, please purchase one first", "no_active_services", pricingRedirect)
	}

	applicable, err := s.booker.GetClientServices(ctx, clientID, sessionTypeID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch applicable client services", "error", err)
		return mindbody.MapError(err)
	}
	if len(applicable) == 0 {
		return goerror.NewForbidden("Your services do not cover this session type", "invalid_service_type", pricingRedirect)
	}

	for _, svc := range applicable {
		if svc.Remaining > 0 {
			return nil
		}
	}

	return goerror.NewForbidden("You have no remaining sessions on your services", "no_remaining_sessions", pricingRedirect)
}

type CancelAppointmentInput struct {
	AppointmentID int64 `validate:"required,min=1"`
}

type CancelAppointmentOutput struct {
	Result map[string]any
}

// CancelAppointment cancels an existing appointment.
func (s *Usecase) CancelAppointment(ctx context.Context, in CancelAppointmentInput) (*CancelAppointmentOutput, error) {
	ctx, span := s.startSpan(ctx, "CancelAppointment")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if _, err := callerID(ctx); err != nil {
		return nil, err
	}

	result, err := s.booker.UpdateAppointment(ctx, in.AppointmentID, "Cancel")
	if err != nil {
		slog.ErrorContext(ctx, "failed to cancel appointment", "appointment_id", in.AppointmentID, "error", err)
		return nil, mindbody.MapError(err)
	}

	return &CancelAppointmentOutput{Result: result}, nil
}
