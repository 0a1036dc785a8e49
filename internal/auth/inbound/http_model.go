package inbound

import "github.com/flexkitapp/flexgate/internal/pkg/mindbody"

type RequestChallengeRequest struct {
	Email string `json:"email"`
}

type RequestChallengeResponse struct {
	RequestID string `json:"request_id"`
	Email     string `json:"email"`
	ExpiresIn int    `json:"expires_in"`
}

func (RequestChallengeResponse) Message() string {
	return "A verification code has been sent to your email address."
}

type VerifyChallengeRequest struct {
	RequestID string `json:"request_id,omitempty"`
	Email     string `json:"email,omitempty"`
	Code      string `json:"otp"`
}

type ClientPayload struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

type VerifyChallengeResponse struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	ExpiresIn   int              `json:"expires_in"`
	Client      ClientPayload    `json:"client"`
	Schedule    []mindbody.Visit `json:"schedule"`
}

func (VerifyChallengeResponse) Message() string {
	return "Signed in successfully."
}

type StatusResponse struct {
	Authenticated bool           `json:"authenticated"`
	Client        *ClientPayload `json:"client,omitempty"`
	ExpiresAt     int64          `json:"expires_at,omitempty"`
}
