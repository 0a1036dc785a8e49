package inbound

import (
	"github.com/flexkitapp/flexgate/internal/commerce/usecase"
	"github.com/flexkitapp/flexgate/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the sales catalog and checkout.
type HTTPEndpoint struct {
	uc uc
}

// Services lists sellable pricing options.
// @Summary List services
// @Description Lists the pricing options sold online.
// @Tags Commerce
// @Produce json
// @Success 200 {object} router.successResponse{data=ServicesResponse} "Services"
// @Failure 429 {object} router.errorResponse "Upstream rate limit reached"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/services [get]
func (h *HTTPEndpoint) Services(r *router.Request) (any, error) {
	resp, err := h.uc.Services(r.Context())
	if err != nil {
		return nil, err
	}

	return ServicesResponse{Services: resp.Services}, nil
}

// Contracts lists sellable contracts.
// @Summary List contracts
// @Description Lists the contracts sold online, optionally narrowed to a location.
// @Tags Commerce
// @Produce json
// @Param location_id query int false "Location ID"
// @Success 200 {object} router.successResponse{data=ContractsResponse} "Contracts"
// @Failure 400 {object} router.errorResponse "Invalid query"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/contracts [get]
func (h *HTTPEndpoint) Contracts(r *router.Request) (any, error) {
	locationID, err := r.GetQueryInt64("location_id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.Contracts(r.Context(), usecase.ContractsInput{
		LocationID: locationID,
	})
	if err != nil {
		return nil, err
	}

	return ContractsResponse{Contracts: resp.Contracts}, nil
}

// Promotions lists promotion codes.
// @Summary List promotions
// @Description Lists the promotion codes configured upstream.
// @Tags Commerce
// @Produce json
// @Success 200 {object} router.successResponse{data=PromotionsResponse} "Promotions"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/promotions [get]
func (h *HTTPEndpoint) Promotions(r *router.Request) (any, error) {
	resp, err := h.uc.Promotions(r.Context())
	if err != nil {
		return nil, err
	}

	return PromotionsResponse{Promotions: resp.Promotions}, nil
}

// PurchaseDetails fetches one sellable item by ID.
// @Summary Purchase details
// @Description Fetches one service or contract by ID for the checkout page.
// @Tags Commerce
// @Produce json
// @Param type query string false "Item type (service or contract)"
// @Param id query int true "Item ID"
// @Param location_id query int false "Location ID (contracts only)"
// @Success 200 {object} router.successResponse{data=PurchaseDetailsResponse} "Details"
// @Failure 400 {object} router.errorResponse "Invalid query"
// @Failure 404 {object} router.errorResponse "Item not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/purchase/details [get]
func (h *HTTPEndpoint) PurchaseDetails(r *router.Request) (any, error) {
	id, err := r.GetQueryInt64("id")
	if err != nil {
		return nil, err
	}

	locationID, err := r.GetQueryInt64("location_id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.PurchaseDetails(r.Context(), usecase.PurchaseDetailsInput{
		Type:       r.GetQuery("type"),
		ID:         id,
		LocationID: locationID,
	})
	if err != nil {
		return nil, err
	}

	return PurchaseDetailsResponse{Type: resp.Type, Details: resp.Details}, nil
}

// PurchaseContract sells a contract to the caller.
// @Summary Purchase a contract
// @Description Checks the caller out for the given contract.
// @Tags Commerce
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PurchaseContractRequest true "Checkout payload"
// @Success 200 {object} router.successResponse{data=PurchaseContractResponse} "Purchased"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Missing or invalid token"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/purchase/contract [post]
func (h *HTTPEndpoint) PurchaseContract(r *router.Request) (any, error) {
	var req PurchaseContractRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	in := usecase.PurchaseContractInput{
		ContractID:            req.ContractID,
		LocationID:            req.LocationID,
		PaymentType:           req.PaymentType,
		PromotionCode:         req.PromotionCode,
		OverridePaymentAmount: req.OverridePaymentAmount,
		DiscountAmount:        req.DiscountAmount,
	}
	if req.Card != nil {
		in.Card = &usecase.CardInput{
			Number:            req.Card.Number,
			ExpMonth:          req.Card.ExpMonth,
			ExpYear:           req.Card.ExpYear,
			CVC:               req.Card.CVC,
			BillingName:       req.Card.BillingName,
			BillingAddress:    req.Card.BillingAddress,
			BillingCity:       req.Card.BillingCity,
			BillingState:      req.Card.BillingState,
			BillingPostalCode: req.Card.BillingPostalCode,
		}
	}

	resp, err := h.uc.PurchaseContract(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return PurchaseContractResponse{Purchase: resp.Purchase}, nil
}
