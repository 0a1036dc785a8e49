package inbound

import "github.com/flexkitapp/flexgate/internal/clientaccount/usecase"

// RegisterRequest is the payload for creating a new client account.
type RegisterRequest struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	TermsAccepted     bool   `json:"terms_accepted"`
	Country           string `json:"country"`
	DateOfBirth       string `json:"date_of_birth"`
	Gender            string `json:"gender"`
	HearAbout         string `json:"hear_about"`
	MarketingAccepted *bool  `json:"marketing_accepted"`
}

// RegisterResponse carries the created client record.
type RegisterResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (RegisterResponse) Message() string {
	return "Client registered successfully."
}

// CompleteInfoResponse is the assembled account view.
type CompleteInfoResponse struct {
	Client         usecase.ClientInfo       `json:"client"`
	Memberships    []usecase.MembershipInfo `json:"memberships"`
	Contracts      usecase.ContractsInfo    `json:"contracts"`
	SessionHistory usecase.SessionHistory   `json:"session_history"`
}

func (CompleteInfoResponse) Message() string {
	return "Client information retrieved successfully."
}

// UpdateProfileRequest is the payload for a profile update. Empty fields are
// left untouched upstream.
type UpdateProfileRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	MobilePhone  string `json:"mobile_phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

// UpdateProfileResponse carries the updated client record.
type UpdateProfileResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (UpdateProfileResponse) Message() string {
	return "Profile updated successfully."
}
