package inbound

import (
	"github.com/flexkitapp/flexgate/internal/clientaccount/usecase"
	"github.com/flexkitapp/flexgate/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for client account management.
type HTTPEndpoint struct {
	uc uc
}

// Register creates a new client account.
// @Summary Register a client
// @Description Creates a new client record in the member directory.
// @Tags Client
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 200 {object} router.successResponse{data=RegisterResponse} "Registered"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Account already exists"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/client/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		TermsAccepted:     req.TermsAccepted,
		Country:           req.Country,
		DateOfBirth:       req.DateOfBirth,
		Gender:            req.Gender,
		HearAbout:         req.HearAbout,
		MarketingAccepted: req.MarketingAccepted,
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{
		ID:        resp.Client.ID,
		FirstName: resp.Client.FirstName,
		LastName:  resp.Client.LastName,
		Email:     resp.Client.Email,
		Phone:     resp.Client.MobilePhone,
	}, nil
}

// CompleteInfo returns the caller's full account view.
// @Summary Full account view
// @Description Returns profile, memberships, contracts, and visit history for the authenticated client.
// @Tags Client
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "History start date (YYYY-MM-DD)"
// @Param end_date query string false "History end date (YYYY-MM-DD)"
// @Success 200 {object} router.successResponse{data=CompleteInfoResponse} "Account view"
// @Failure 401 {object} router.errorResponse "Missing or invalid token"
// @Failure 404 {object} router.errorResponse "Client not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/client/complete-info [get]
func (h *HTTPEndpoint) CompleteInfo(r *router.Request) (any, error) {
	resp, err := h.uc.CompleteInfo(r.Context(), usecase.CompleteInfoInput{
		StartDate: r.GetQuery("start_date"),
		EndDate:   r.GetQuery("end_date"),
	})
	if err != nil {
		return nil, err
	}

	return CompleteInfoResponse{
		Client:         resp.Client,
		Memberships:    resp.Memberships,
		Contracts:      resp.Contracts,
		SessionHistory: resp.SessionHistory,
	}, nil
}

// UpdateProfile updates the caller's profile fields.
// @Summary Update profile
// @Description Pushes changed profile fields to the member directory.
// @Tags Client
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile payload"
// @Success 200 {object} router.successResponse{data=UpdateProfileResponse} "Updated"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Missing or invalid token"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/client/profile [put]
func (h *HTTPEndpoint) UpdateProfile(r *router.Request) (any, error) {
	var req UpdateProfileRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.UpdateProfile(r.Context(), usecase.UpdateProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		MobilePhone:  req.MobilePhone,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
	})
	if err != nil {
		return nil, err
	}

	return UpdateProfileResponse{
		ID:        resp.Client.ID,
		FirstName: resp.Client.FirstName,
		LastName:  resp.Client.LastName,
		Email:     resp.Client.Email,
		Phone:     resp.Client.MobilePhone,
	}, nil
}
