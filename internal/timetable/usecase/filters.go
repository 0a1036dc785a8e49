package usecase

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/samber/lo"

	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
)

type FiltersOutput struct {
	Locations    []mindbody.Location    `json:"locations"`
	Programs     []mindbody.Program     `json:"programs"`
	SessionTypes []mindbody.SessionType `json:"session_types"`
}

// Filters assembles the timetable filter options: visible locations, the
// bookable programs, and session types. Results are cached briefly since the
// catalog changes rarely and each assembly costs three upstream calls.
func (s *Usecase) Filters(ctx context.Context) (*FiltersOutput, error) {
	ctx, span := s.startSpan(ctx, "Filters")
	defer span.End()

	if cached, ok := s.cache.GetFilters(ctx); ok {
		return cached, nil
	}

	locations, err := s.catalog.GetLocations(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch locations", "error", err)
		return nil, mindbody.MapError(err)
	}

	programs, err := s.catalog.GetPrograms(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch programs", "error", err)
		return nil, mindbody.MapError(err)
	}

	sessionTypes, err := s.catalog.GetSessionTypes(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch session types", "error", err)
		return nil, mindbody.MapError(err)
	}

	out := &FiltersOutput{
		Locations:    s.visibleLocations(locations),
		Programs:     s.bookablePrograms(programs),
		SessionTypes: sessionTypes,
	}
	if out.Locations == nil {
		out.Locations = []mindbody.Location{}
	}
	if out.Programs == nil {
		out.Programs = []mindbody.Program{}
	}
	if out.SessionTypes == nil {
		out.SessionTypes = []mindbody.SessionType{}
	}

	s.cache.SetFilters(ctx, out)

	return out, nil
}

// visibleLocations drops hidden location IDs and locations that never host
// classes.
func (s *Usecase) visibleLocations(locations []mindbody.Location) []mindbody.Location {
	hidden := make(map[int64]struct{})
	for _, raw := range s.cfg.GetArray("modules.timetable.hidden_location_ids") {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			hidden[id] = struct{}{}
		}
	}

	return lo.Filter(locations, func(l mindbody.Location, _ int) bool {
		if _, found := hidden[l.ID]; found {
			return false
		}
		return l.HasClasses
	})
}

// bookablePrograms keeps appointment programs as-is; of the class programs
// only the configured public one is offered on the timetable.
func (s *Usecase) bookablePrograms(programs []mindbody.Program) []mindbody.Program {
	classProgramID := int64(s.cfg.GetInt("modules.timetable.class_program_id"))

	return lo.Filter(programs, func(p mindbody.Program, _ int) bool {
		switch p.ScheduleType {
		case "Appointment":
			return true
		case "Class":
			return p.ID == classProgramID
		default:
			return false
		}
	})
}
