package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/flexkitapp/flexgate/internal/pkg/goerror"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
)

const slotLength = 30 * time.Minute

type DataInput struct {
	Type          string `validate:"required,oneof=class appointment"`
	Date          string `validate:"omitempty,datetime=2006-01-02"`
	LocationID    int64  `validate:"omitempty,min=1"`
	ProgramID     int64  `validate:"omitempty,min=1"`
	SessionTypeID int64  `validate:"omitempty,min=1"`
	StaffID       int64  `validate:"omitempty,min=1"`
}

type TimeSlot struct {
	StartDateTime string `json:"start_date_time"`
	EndDateTime   string `json:"end_date_time"`
	StaffID       int64  `json:"staff_id,omitempty"`
}

type DataOutput struct {
	Type    string           `json:"type"`
	Date    string           `json:"date"`
	Classes []mindbody.Class `json:"classes,omitempty"`
	Slots   []TimeSlot       `json:"slots,omitempty"`
}

// Data returns the schedule for one day: class occurrences for class
// programs, or open appointment slots expanded to fixed-length windows.
func (s *Usecase) Data(ctx context.Context, in DataInput) (*DataOutput, error) {
	ctx, span := s.startSpan(ctx, "Data")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	date := in.Date
	if date == "" {
		date = s.clock.Now().Format(time.DateOnly)
	}

	if in.Type == "appointment" {
		if in.SessionTypeID == 0 {
			return nil, goerror.NewInvalidInput(nil, "session_type_id", "session_type_id is required for appointments")
		}
		return s.appointmentData(ctx, in, date)
	}

	return s.classData(ctx, in, date)
}

func (s *Usecase) classData(ctx context.Context, in DataInput, date string) (*DataOutput, error) {
	classes, err := s.catalog.GetClassSchedule(ctx, mindbody.GetClassScheduleInput{
		StartDate:     date + "T00:00:00",
		EndDate:       date + "T23:59:59",
		LocationID:    in.LocationID,
		ProgramID:     in.ProgramID,
		SessionTypeID: in.SessionTypeID,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch class schedule", "date", date, "error", err)
		return nil, mindbody.MapError(err)
	}

	visible := lo.Filter(classes, func(c mindbody.Class, _ int) bool {
		return !c.IsCanceled
	})
	if visible == nil {
		visible = []mindbody.Class{}
	}

	return &DataOutput{Type: "class", Date: date, Classes: visible}, nil
}

func (s *Usecase) appointmentData(ctx context.Context, in DataInput, date string) (*DataOutput, error) {
	times, err := s.catalog.GetAppointmentTimes(ctx, mindbody.GetAppointmentTimesInput{
		SessionTypeID: in.SessionTypeID,
		LocationID:    in.LocationID,
		StaffID:       in.StaffID,
		Date:          date,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch appointment times", "date", date, "error", err)
		return nil, mindbody.MapError(err)
	}

	return &DataOutput{Type: "appointment", Date: date, Slots: ExpandSlots(times)}, nil
}

// ExpandSlots turns open start times into fixed 30-minute booking windows.
// Entries whose start time cannot be parsed are skipped.
func ExpandSlots(times []mindbody.AppointmentTime) []TimeSlot {
	slots := make([]TimeSlot, 0, len(times))
	for _, t := range times {
		start, err := mindbody.ParseTime(t.StartDateTime)
		if err != nil {
			continue
		}

		slots = append(slots, TimeSlot{
			StartDateTime: start.Format(mindbody.TimeLayout),
			EndDateTime:   start.Add(slotLength).Format(mindbody.TimeLayout),
			StaffID:       t.StaffID,
		})
	}

	return slots
}
