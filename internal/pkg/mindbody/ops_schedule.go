package mindbody

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetClassScheduleInput filters the class listing.
type GetClassScheduleInput struct {
	StartDate     string
	EndDate       string
	LocationID    int64
	ProgramID     int64
	SessionTypeID int64
}

// GetClassSchedule lists scheduled classes in the given window.
func (c *Client) GetClassSchedule(ctx context.Context, in GetClassScheduleInput) ([]Class, error) {
	q := url.Values{}
	if in.StartDate != "" {
		q.Set("startDateTime", in.StartDate)
	}
	if in.EndDate != "" {
		q.Set("endDateTime", in.EndDate)
	}
	if in.LocationID > 0 {
		q.Set("locationIds", strconv.FormatInt(in.LocationID, 10))
	}
	if in.ProgramID > 0 {
		q.Set("programIds", strconv.FormatInt(in.ProgramID, 10))
	}
	if in.SessionTypeID > 0 {
		q.Set("sessionTypeIds", strconv.FormatInt(in.SessionTypeID, 10))
	}

	var out struct {
		Classes []Class `json:"Classes"`
	}
	if err := c.call(ctx, http.MethodGet, "/class/classes", q, nil, &out); err != nil {
		return nil, err
	}

	return out.Classes, nil
}

// GetClassByID fetches a single class occurrence.
func (c *Client) GetClassByID(ctx context.Context, classID int64) (*Class, error) {
	q := url.Values{}
	q.Set("classIds", strconv.FormatInt(classID, 10))

	var out struct {
		Classes []Class `json:"Classes"`
	}
	if err := c.call(ctx, http.MethodGet, "/class/classes", q, nil, &out); err != nil {
		return nil, err
	}
	if len(out.Classes) == 0 {
		return nil, &HTTPError{StatusCode: http.StatusNotFound, Endpoint: "/class/classes", Body: "class not found"}
	}

	return &out.Classes[0], nil
}

// AddClientToClass books the client into a class.
func (c *Client) AddClientToClass(ctx context.Context, clientID string, classID int64) (map[string]any, error) {
	body := map[string]any{
		"ClientId":             clientID,
		"ClassId":              classID,
		"SendEmail":            true,
		"RequirePayment":       false,
		"Waitlist":             false,
		"CrossRegionalBooking": false,
	}

	var out map[string]any
	if err := c.call(ctx, http.MethodPost, "/class/addclienttoclass", nil, body, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// RemoveClientFromClass cancels a class booking. lateCancel acknowledges the
// studio's late cancellation policy.
func (c *Client) RemoveClientFromClass(ctx context.Context, clientID string, classID int64, lateCancel bool) (map[string]any, error) {
	body := map[string]any{
		"ClientId":   clientID,
		"ClassId":    classID,
		"SendEmail":  true,
		"LateCancel": lateCancel,
	}

	var out map[string]any
	if err := c.call(ctx, http.MethodPost, "/class/removeclientfromclass", nil, body, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetAppointmentTimesInput filters the availability lookup.
type GetAppointmentTimesInput struct {
	SessionTypeID int64
	LocationID    int64
	StaffID       int64
	Date          string
}

// GetAppointmentTimes lists open appointment start times for one day.
func (c *Client) GetAppointmentTimes(ctx context.Context, in GetAppointmentTimesInput) ([]AppointmentTime, error) {
	q := url.Values{}
	q.Set("sessionTypeId", strconv.FormatInt(in.SessionTypeID, 10))
	if in.LocationID > 0 {
		q.Set("locationIds", strconv.FormatInt(in.LocationID, 10))
	}
	if in.StaffID > 0 {
		q.Set("staffIds", strconv.FormatInt(in.StaffID, 10))
	}
	if in.Date != "" {
		q.Set("startDate", in.Date)
	}

	var out struct {
		AppointmentTimes []AppointmentTime `json:"AppointmentTimes"`
	}
	if err := c.call(ctx, http.MethodGet, "/appointment/appointmenttimes", q, nil, &out); err != nil {
		return nil, err
	}

	return out.AppointmentTimes, nil
}

// AddAppointmentInput describes a new appointment booking.
type AddAppointmentInput struct {
	ClientID      string
	SessionTypeID int64
	LocationID    int64
	StaffID       int64
	StartDateTime string
	Notes         string
}

// AddAppointment books an appointment for the client.
func (c *Client) AddAppointment(ctx context.Context, in AddAppointmentInput) (map[string]any, error) {
	body := map[string]any{
		"ClientId":      in.ClientID,
		"SessionTypeId": in.SessionTypeID,
		"LocationId":    in.LocationID,
		"StaffId":       in.StaffID,
		"StartDateTime": in.StartDateTime,
		"Notes":         in.Notes,
		"SendEmail":     true,
		"ApplyPayment":  true,
	}

	var out map[string]any
	if err := c.call(ctx, http.MethodPost, "/appointment/addappointment", nil, body, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// UpdateAppointment mutates an existing appointment; used with a Cancel
// execute action to cancel it.
func (c *Client) UpdateAppointment(ctx context.Context, appointmentID int64, execute string) (map[string]any, error) {
	body := map[string]any{
		"AppointmentId": appointmentID,
		"Execute":       execute,
		"SendEmail":     true,
	}

	var out map[string]any
	if err := c.call(ctx, http.MethodPost, "/appointment/updateappointment", nil, body, &out); err != nil {
		return nil, err
	}

	return out, nil
}
