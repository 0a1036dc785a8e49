package inbound

import (
	"github.com/flexkitapp/flexgate/internal/auth/usecase"
	"github.com/flexkitapp/flexgate/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the email verification workflow.
type HTTPEndpoint struct {
	uc uc
}

// RequestChallenge sends a one-time verification code to a member email.
// @Summary Request verification code
// @Description Looks the email up in the member directory and emails a one-time code.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RequestChallengeRequest true "Email payload"
// @Success 200 {object} router.successResponse{data=RequestChallengeResponse} "Code sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 404 {object} router.errorResponse "No account for email"
// @Failure 429 {object} router.errorResponse "Upstream rate limit reached"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/auth/email [post]
func (h *HTTPEndpoint) RequestChallenge(r *router.Request) (any, error) {
	var req RequestChallengeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.RequestChallenge(r.Context(), usecase.RequestChallengeInput{
		Email: req.Email,
	})
	if err != nil {
		return nil, err
	}

	return RequestChallengeResponse{
		RequestID: resp.RequestID,
		Email:     resp.Email,
		ExpiresIn: resp.ExpiresIn,
	}, nil
}

// VerifyChallenge exchanges a one-time code for a bearer token.
// @Summary Verify code and sign in
// @Description Verifies the submitted code and returns an access token plus the client profile and upcoming schedule.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body VerifyChallengeRequest true "Verification payload"
// @Success 200 {object} router.successResponse{data=VerifyChallengeResponse} "Authenticated"
// @Failure 400 {object} router.errorResponse "Invalid or expired code"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/auth/verify [post]
func (h *HTTPEndpoint) VerifyChallenge(r *router.Request) (any, error) {
	var req VerifyChallengeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifyChallenge(r.Context(), usecase.VerifyChallengeInput{
		RequestID: req.RequestID,
		Email:     req.Email,
		Code:      req.Code,
	})
	if err != nil {
		return nil, err
	}

	return VerifyChallengeResponse{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		ExpiresIn:   resp.ExpiresIn,
		Client: ClientPayload{
			ID:        resp.Client.ID,
			FirstName: resp.Client.FirstName,
			LastName:  resp.Client.LastName,
			Email:     resp.Client.Email,
			Phone:     resp.Client.Phone,
		},
		Schedule: resp.Schedule,
	}, nil
}

// Status reports the authentication state of the caller.
// @Summary Authentication status
// @Description Returns whether the bearer token (when present) is still valid.
// @Tags Auth
// @Produce json
// @Success 200 {object} router.successResponse{data=StatusResponse} "Status"
// @Router /api/auth/status [get]
func (h *HTTPEndpoint) Status(r *router.Request) (any, error) {
	resp, err := h.uc.Status(r.Context())
	if err != nil {
		return nil, err
	}

	out := StatusResponse{Authenticated: resp.Authenticated}
	if resp.Authenticated && resp.Client != nil {
		out.Client = &ClientPayload{
			ID:        resp.Client.ID,
			FirstName: resp.Client.FirstName,
			LastName:  resp.Client.LastName,
			Email:     resp.Client.Email,
			Phone:     resp.Client.Phone,
		}
		out.ExpiresAt = resp.ExpiresAt.Unix()
	}

	return out, nil
}
