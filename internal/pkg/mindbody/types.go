package mindbody

import (
	"strings"
	"time"
)

// TimeLayout is the zone-less timestamp format used by the upstream API.
const TimeLayout = "2006-01-02T15:04:05"

// ParseTime parses an upstream timestamp in the studio's local time.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

// ClientRecord is the subset of the upstream client payload the gateway uses.
type ClientRecord struct {
	ID          string `json:"Id"`
	UniqueID    int64  `json:"UniqueId,omitempty"`
	FirstName   string `json:"FirstName"`
	LastName    string `json:"LastName"`
	Email       string `json:"Email"`
	MobilePhone string `json:"MobilePhone"`
	Status      string `json:"Status,omitempty"`
	Action      string `json:"Action,omitempty"`
}

// Class is a scheduled class occurrence.
type Class struct {
	ID               int64          `json:"Id"`
	ClassScheduleID  int64          `json:"ClassScheduleId,omitempty"`
	StartDateTime    string         `json:"StartDateTime"`
	EndDateTime      string         `json:"EndDateTime"`
	IsAvailable      bool           `json:"IsAvailable"`
	IsCanceled       bool           `json:"IsCanceled"`
	TotalBooked      int            `json:"TotalBooked"`
	MaxCapacity      int            `json:"MaxCapacity"`
	ClassDescription map[string]any `json:"ClassDescription,omitempty"`
	Staff            map[string]any `json:"Staff,omitempty"`
	Location         map[string]any `json:"Location,omitempty"`
}

// Start parses the class start timestamp.
func (c Class) Start() (time.Time, error) {
	return ParseTime(c.StartDateTime)
}

// Location is a studio location.
type Location struct {
	ID         int64  `json:"Id"`
	Name       string `json:"Name"`
	Address    string `json:"Address"`
	Address2   string `json:"Address2,omitempty"`
	City       string `json:"City"`
	HasClasses bool   `json:"HasClasses"`
}

// Program groups session types by schedule kind.
type Program struct {
	ID           int64  `json:"Id"`
	Name         string `json:"Name"`
	ScheduleType string `json:"ScheduleType"`
	CancelOffset int    `json:"CancelOffset,omitempty"`
}

// SessionType is a bookable session kind.
type SessionType struct {
	ID                int64  `json:"Id"`
	Name              string `json:"Name"`
	Type              string `json:"Type"`
	DefaultTimeLength int    `json:"DefaultTimeLength,omitempty"`
	NumDeducted       int    `json:"NumDeducted,omitempty"`
	ProgramID         int64  `json:"ProgramId,omitempty"`
	OnlineDescription string `json:"OnlineDescription,omitempty"`
}

// ClientService is a purchased service (pricing option) on a client account.
// Memberships share the same wire shape.
type ClientService struct {
	ID             int64          `json:"Id"`
	Name           string         `json:"Name"`
	Count          int            `json:"Count"`
	Remaining      int            `json:"Remaining"`
	ActiveDate     string         `json:"ActiveDate,omitempty"`
	ExpirationDate string         `json:"ExpirationDate,omitempty"`
	PaymentDate    string         `json:"PaymentDate,omitempty"`
	Current        bool           `json:"Current,omitempty"`
	ProductID      int64          `json:"ProductId,omitempty"`
	Program        map[string]any `json:"Program,omitempty"`
	ProgramID      int64          `json:"ProgramId,omitempty"`
	SiteID         int64          `json:"SiteId,omitempty"`
	ClientID       string         `json:"ClientID,omitempty"`
}

// ClientDetail is the full client record from the complete-info endpoint.
type ClientDetail struct {
	ID                    string         `json:"Id"`
	FirstName             string         `json:"FirstName"`
	LastName              string         `json:"LastName"`
	Email                 string         `json:"Email"`
	MobilePhone           string         `json:"MobilePhone"`
	HomePhone             string         `json:"HomePhone,omitempty"`
	WorkPhone             string         `json:"WorkPhone,omitempty"`
	Gender                string         `json:"Gender,omitempty"`
	Status                string         `json:"Status,omitempty"`
	CreationDate          string         `json:"CreationDate,omitempty"`
	BirthDate             string         `json:"BirthDate,omitempty"`
	ReferredBy            string         `json:"ReferredBy,omitempty"`
	SendPromotionalEmails bool           `json:"SendPromotionalEmails,omitempty"`
	AddressLine1          string         `json:"AddressLine1,omitempty"`
	AddressLine2          string         `json:"AddressLine2,omitempty"`
	City                  string         `json:"City,omitempty"`
	State                 string         `json:"State,omitempty"`
	PostalCode            string         `json:"PostalCode,omitempty"`
	Country               string         `json:"Country,omitempty"`
	AccountBalance        float64        `json:"AccountBalance,omitempty"`
	ClientCreditCard      map[string]any `json:"ClientCreditCard,omitempty"`
}

// AutopayEvent is a scheduled contract payment.
type AutopayEvent struct {
	ScheduleDate string  `json:"ScheduleDate"`
	ChargeAmount float64 `json:"ChargeAmount"`
	ProductID    int64   `json:"ProductId"`
}

// ClientContract is a contract attached to a client account.
type ClientContract struct {
	ID                    int64          `json:"Id"`
	ContractName          string         `json:"ContractName"`
	StartDate             string         `json:"StartDate,omitempty"`
	EndDate               string         `json:"EndDate,omitempty"`
	AgreementDate         string         `json:"AgreementDate,omitempty"`
	AutopayStatus         string         `json:"AutopayStatus,omitempty"`
	AutoRenewing          bool           `json:"AutoRenewing,omitempty"`
	TerminationDate       string         `json:"TerminationDate,omitempty"`
	UpcomingAutopayEvents []AutopayEvent `json:"UpcomingAutopayEvents,omitempty"`
}

// CompleteInfo is the combined account view from the complete-info endpoint.
type CompleteInfo struct {
	Client            *ClientDetail    `json:"Client"`
	ClientServices    []ClientService  `json:"ClientServices,omitempty"`
	ClientMemberships []ClientService  `json:"ClientMemberships,omitempty"`
	ClientContracts   []ClientContract `json:"ClientContracts,omitempty"`
}

// AppointmentTime is an open slot returned by the availability lookup.
type AppointmentTime struct {
	StartDateTime string `json:"StartDateTime"`
	EndDateTime   string `json:"EndDateTime,omitempty"`
	StaffID       int64  `json:"StaffId,omitempty"`
}

// Visit is one entry of the client schedule or visit history.
type Visit struct {
	ID                int64  `json:"Id"`
	ClassID           int64  `json:"ClassId,omitempty"`
	AppointmentID     int64  `json:"AppointmentId,omitempty"`
	StartDateTime     string `json:"StartDateTime"`
	EndDateTime       string `json:"EndDateTime"`
	Name              string `json:"Name"`
	LocationID        int64  `json:"LocationId,omitempty"`
	LocationName      string `json:"LocationName,omitempty"`
	StaffID           int64  `json:"StaffId,omitempty"`
	StaffName         string `json:"StaffName,omitempty"`
	ServiceID         int64  `json:"ServiceId,omitempty"`
	ServiceName       string `json:"ServiceName,omitempty"`
	ProductID         int64  `json:"ProductId,omitempty"`
	AppointmentStatus string `json:"AppointmentStatus,omitempty"`
	SignedIn          bool   `json:"SignedIn,omitempty"`
	LateCancelled     bool   `json:"LateCancelled,omitempty"`
	Missed            bool   `json:"Missed,omitempty"`
}

// Status classifies the visit for display.
func (v Visit) Status() string {
	if v.LateCancelled {
		return "cancelled"
	}
	if v.Missed {
		return "missed"
	}

	switch strings.ToLower(v.AppointmentStatus) {
	case "booked":
		if v.SignedIn {
			return "completed"
		}
		return "booked"
	case "cancelled":
		return "cancelled"
	case "noshow":
		return "no-show"
	case "confirmed":
		return "confirmed"
	case "":
		return "unknown"
	default:
		return strings.ToLower(v.AppointmentStatus)
	}
}
