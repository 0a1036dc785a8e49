package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flexkitapp/flexgate/internal/pkg/goerror"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
)

type BookClassInput struct {
	ClassID int64 `validate:"required,min=1"`
}

type BookClassOutput struct {
	Booking map[string]any
}

// BookClass books the caller into a class occurrence. The idempotency guard
// absorbs double submissions of the same booking.
func (s *Usecase) BookClass(ctx context.Context, in BookClassInput) (*BookClassOutput, error) {
	ctx, span := s.startSpan(ctx, "BookClass")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	clientID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	var booking map[string]any
	key := fmt.Sprintf("booking:class:%s:%d", clientID, in.ClassID)
	err = s.idemp.Exec(ctx, key, func(ctx context.Context) error {
		var bookErr error
		booking, bookErr = s.booker.AddClientToClass(ctx, clientID, in.ClassID)
		return bookErr
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to book class", "class_id", in.ClassID, "error", err)
		return nil, mindbody.MapError(err)
	}

	return &BookClassOutput{Booking: booking}, nil
}

type CancelClassInput struct {
	ClassID int64 `validate:"required,min=1"`
}

type CancelClassOutput struct {
	LateCancel bool
	Result     map[string]any
}

// CancelClass removes the caller from a class. Cancellations inside the late
// window are flagged upstream so the studio's late policy applies.
func (s *Usecase) CancelClass(ctx context.Context, in CancelClassInput) (*CancelClassOutput, error) {
	ctx, span := s.startSpan(ctx, "CancelClass")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	clientID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	class, err := s.booker.GetClassByID(ctx, in.ClassID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to look up class for cancellation", "class_id", in.ClassID, "error", err)
		return nil, mindbody.MapError(err)
	}

	lateCancel := false
	if start, parseErr := class.Start(); parseErr == nil {
		window := s.cfg.GetHour("modules.booking.late_cancel_hours")
		lateCancel = start.Sub(s.clock.Now()) < window
	} else {
		slog.WarnContext(ctx, "unparseable class start time", "class_id", in.ClassID, "value", class.StartDateTime)
	}

	result, err := s.booker.RemoveClientFromClass(ctx, clientID, in.ClassID, lateCancel)
	if err != nil {
		slog.ErrorContext(ctx, "failed to cancel class booking", "class_id", in.ClassID, "error", err)
		return nil, mindbody.MapError(err)
	}

	return &CancelClassOutput{LateCancel: lateCancel, Result: result}, nil
}
