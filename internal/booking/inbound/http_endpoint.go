package inbound

import (
	"github.com/flexkitapp/flexgate/internal/booking/usecase"
	"github.com/flexkitapp/flexgate/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for class and appointment bookings.
type HTTPEndpoint struct {
	uc uc
}

// BookClass books the caller into a class occurrence.
// @Summary Book a class
// @Description Books the authenticated client into the given class occurrence.
// @Tags Booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BookClassRequest true "Booking payload"
// @Success 200 {object} router.successResponse{data=BookClassResponse} "Booked"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Missing or invalid token"
// @Failure 404 {object} router.errorResponse "Class not found"
// @Failure 429 {object} router.errorResponse "Upstream rate limit reached"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/class/book [post]
func (h *HTTPEndpoint) BookClass(r *router.Request) (any, error) {
	var req BookClassRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.BookClass(r.Context(), usecase.BookClassInput{
		ClassID: req.ClassID,
	})
	if err != nil {
		return nil, err
	}

	return BookClassResponse{Booking: resp.Booking}, nil
}

// CancelClass removes the caller from a booked class.
// @Summary Cancel a class booking
// @Description Cancels the authenticated client's booking, flagging late cancellations.
// @Tags Booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CancelClassRequest true "Cancellation payload"
// @Success 200 {object} router.successResponse{data=CancelClassResponse} "Cancelled"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Missing or invalid token"
// @Failure 404 {object} router.errorResponse "Class not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/class/cancel [post]
func (h *HTTPEndpoint) CancelClass(r *router.Request) (any, error) {
	var req CancelClassRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.CancelClass(r.Context(), usecase.CancelClassInput{
		ClassID: req.ClassID,
	})
	if err != nil {
		return nil, err
	}

	return CancelClassResponse{LateCancel: resp.LateCancel, Result: resp.Result}, nil
}

// BookAppointment books an appointment for the caller.
// @Summary Book an appointment
// @Description Books an appointment after verifying the client's services cover it.
// @Tags Booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BookAppointmentRequest true "Booking payload"
// @Success 200 {object} router.successResponse{data=BookAppointmentResponse} "Booked"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Missing or invalid token"
// @Failure 403 {object} router.errorResponse "No applicable service"
// @Failure 429 {object} router.errorResponse "Upstream rate limit reached"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/appointment/book [post]
func (h *HTTPEndpoint) BookAppointment(r *router.Request) (any, error) {
	var req BookAppointmentRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.BookAppointment(r.Context(), usecase.BookAppointmentInput{
		SessionTypeID: req.SessionTypeID,
		LocationID:    req.LocationID,
		StaffID:       req.StaffID,
		StartDateTime: req.StartDateTime,
		Notes:         req.Notes,
	})
	if err != nil {
		return nil, err
	}

	return BookAppointmentResponse{Appointment: resp.Appointment}, nil
}

// CancelAppointment cancels an existing appointment.
// @Summary Cancel an appointment
// @Description Cancels the given appointment for the authenticated client.
// @Tags Booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CancelAppointmentRequest true "Cancellation payload"
// @Success 200 {object} router.successResponse{data=CancelAppointmentResponse} "Cancelled"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Missing or invalid token"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/appointment/cancel [post]
func (h *HTTPEndpoint) CancelAppointment(r *router.Request) (any, error) {
	var req CancelAppointmentRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.CancelAppointment(r.Context(), usecase.CancelAppointmentInput{
		AppointmentID: req.AppointmentID,
	})
	if err != nil {
		return nil, err
	}

	return CancelAppointmentResponse{Result: resp.Result}, nil
}
