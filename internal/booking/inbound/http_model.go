package inbound

// BookClassRequest is the payload for booking a class occurrence.
type BookClassRequest struct {
	ClassID int64 `json:"class_id"`
}

// BookClassResponse carries the booking confirmation returned upstream.
type BookClassResponse struct {
	Booking map[string]any `json:"booking"`
}

func (BookClassResponse) Message() string {
	return "Class booked successfully."
}

// CancelClassRequest is the payload for cancelling a class booking.
type CancelClassRequest struct {
	ClassID int64 `json:"class_id"`
}

// CancelClassResponse reports the cancellation outcome.
type CancelClassResponse struct {
	LateCancel bool           `json:"late_cancel"`
	Result     map[string]any `json:"result"`
}

func (r CancelClassResponse) Message() string {
	if r.LateCancel {
		return "Class booking cancelled inside the late window."
	}
	return "Class booking cancelled."
}

// BookAppointmentRequest is the payload for booking an appointment.
type BookAppointmentRequest struct {
	SessionTypeID int64  `json:"session_type_id"`
	LocationID    int64  `json:"location_id"`
	StaffID       int64  `json:"staff_id"`
	StartDateTime string `json:"start_date_time"`
	Notes         string `json:"notes"`
}

// BookAppointmentResponse carries the appointment confirmation returned upstream.
type BookAppointmentResponse struct {
	Appointment map[string]any `json:"appointment"`
}

func (BookAppointmentResponse) Message() string {
	return "Appointment booked successfully."
}

// CancelAppointmentRequest is the payload for cancelling an appointment.
type CancelAppointmentRequest struct {
	AppointmentID int64 `json:"appointment_id"`
}

// CancelAppointmentResponse reports the cancellation outcome.
type CancelAppointmentResponse struct {
	Result map[string]any `json:"result"`
}

func (CancelAppointmentResponse) Message() string {
	return "Appointment cancelled."
}
