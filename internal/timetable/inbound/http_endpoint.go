package inbound

import (
	"github.com/flexkitapp/flexgate/internal/pkg/router"
	"github.com/flexkitapp/flexgate/internal/timetable/usecase"
)

// HTTPEndpoint exposes the public timetable.
type HTTPEndpoint struct {
	uc uc
}

// Filters returns the timetable filter options.
// @Summary Timetable filters
// @Description Lists visible locations, bookable programs and session types.
// @Tags Timetable
// @Produce json
// @Success 200 {object} router.successResponse{data=usecase.FiltersOutput} "Filter options"
// @Failure 429 {object} router.errorResponse "Upstream rate limit reached"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/timetable/filters [get]
func (h *HTTPEndpoint) Filters(r *router.Request) (any, error) {
	return h.uc.Filters(r.Context())
}

// Data returns one day of schedule data.
// @Summary Timetable data
// @Description Returns class occurrences or open appointment slots for a day.
// @Tags Timetable
// @Produce json
// @Param type query string true "class or appointment"
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Param location_id query int false "Location filter"
// @Param program_id query int false "Program filter"
// @Param session_type_id query int false "Session type (required for appointments)"
// @Param staff_id query int false "Staff filter for appointments"
// @Success 200 {object} router.successResponse{data=usecase.DataOutput} "Schedule"
// @Failure 400 {object} router.errorResponse "Invalid filters"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/timetable/data [get]
func (h *HTTPEndpoint) Data(r *router.Request) (any, error) {
	locationID, err := r.GetQueryInt64("location_id")
	if err != nil {
		return nil, err
	}
	programID, err := r.GetQueryInt64("program_id")
	if err != nil {
		return nil, err
	}
	sessionTypeID, err := r.GetQueryInt64("session_type_id")
	if err != nil {
		return nil, err
	}
	staffID, err := r.GetQueryInt64("staff_id")
	if err != nil {
		return nil, err
	}

	return h.uc.Data(r.Context(), usecase.DataInput{
		Type:          r.GetQuery("type"),
		Date:          r.GetQuery("date"),
		LocationID:    locationID,
		ProgramID:     programID,
		SessionTypeID: sessionTypeID,
		StaffID:       staffID,
	})
}
