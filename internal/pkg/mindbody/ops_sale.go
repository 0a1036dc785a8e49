package mindbody

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

var errCardRequired = errors.New("card details are required for this payment type")

// GetServices lists sellable services (pricing options).
func (c *Client) GetServices(ctx context.Context) ([]map[string]any, error) {
	q := url.Values{}
	q.Set("limit", "200")
	q.Set("offset", "0")
	q.Set("sellOnline", "true")

	var out struct {
		Services []map[string]any `json:"Services"`
	}
	if err := c.call(ctx, http.MethodGet, "/sale/services", q, nil, &out, AsStaff()); err != nil {
		return nil, err
	}

	return out.Services, nil
}

// GetServiceByID fetches a single sellable service.
func (c *Client) GetServiceByID(ctx context.Context, serviceID int64) (map[string]any, error) {
	q := url.Values{}
	q.Set("serviceIds", strconv.FormatInt(serviceID, 10))
	q.Set("sellOnline", "true")

	var out struct {
		Services []map[string]any `json:"Services"`
	}
	if err := c.call(ctx, http.MethodGet, "/sale/services", q, nil, &out, AsStaff()); err != nil {
		return nil, err
	}
	if len(out.Services) == 0 {
		return nil, &HTTPError{StatusCode: http.StatusNotFound, Endpoint: "/sale/services", Body: "service not found"}
	}

	return out.Services[0], nil
}

// GetContracts lists sellable contracts, optionally by location.
func (c *Client) GetContracts(ctx context.Context, locationID int64) ([]map[string]any, error) {
	q := url.Values{}
	q.Set("limit", "100")
	q.Set("offset", "0")
	q.Set("soldOnline", "true")
	if locationID > 0 {
		q.Set("locationId", strconv.FormatInt(locationID, 10))
	}

	var out struct {
		Contracts []map[string]any `json:"Contracts"`
	}
	if err := c.call(ctx, http.MethodGet, "/sale/contracts", q, nil, &out, AsStaff()); err != nil {
		return nil, err
	}

	return out.Contracts, nil
}

// GetContractByID fetches a single contract.
func (c *Client) GetContractByID(ctx context.Context, contractID, locationID int64) (map[string]any, error) {
	q := url.Values{}
	q.Set("contractIds", strconv.FormatInt(contractID, 10))
	q.Set("soldOnline", "true")
	if locationID > 0 {
		q.Set("locationId", strconv.FormatInt(locationID, 10))
	}

	var out struct {
		Contracts []map[string]any `json:"Contracts"`
	}
	if err := c.call(ctx, http.MethodGet, "/sale/contracts", q, nil, &out, AsStaff()); err != nil {
		return nil, err
	}
	if len(out.Contracts) == 0 {
		return nil, &HTTPError{StatusCode: http.StatusNotFound, Endpoint: "/sale/contracts", Body: "contract not found"}
	}

	return out.Contracts[0], nil
}

// GetPromotionCodes lists promotion codes. This endpoint requires the staff
// credentials.
func (c *Client) GetPromotionCodes(ctx context.Context) ([]map[string]any, error) {
	var out struct {
		PromotionCodes []map[string]any `json:"PromotionCodes"`
	}
	if err := c.call(ctx, http.MethodGet, "/sale/promotions", nil, nil, &out, AsStaff()); err != nil {
		return nil, err
	}

	return out.PromotionCodes, nil
}

// CreditCardInfo carries card details for a checkout.
type CreditCardInfo struct {
	Number            string
	ExpMonth          int
	ExpYear           int
	CVV               string
	BillingName       string
	BillingAddress    string
	BillingCity       string
	BillingState      string
	BillingPostalCode string
}

// PurchaseContractInput describes a contract checkout.
type PurchaseContractInput struct {
	ClientID              string
	ContractID            int64
	LocationID            int64
	PaymentType           string // defaults to CreditCard
	PromotionCode         string
	OverridePaymentAmount *float64
	DiscountAmount        *float64
	Card                  *CreditCardInfo
}

// PurchaseContract sells a contract to the client. CreditCard and EFT payment
// types require card details.
func (c *Client) PurchaseContract(ctx context.Context, in PurchaseContractInput) (map[string]any, error) {
	paymentType := in.PaymentType
	if paymentType == "" {
		paymentType = "CreditCard"
	}

	body := map[string]any{
		"ClientId":    in.ClientID,
		"ContractId":  in.ContractID,
		"LocationId":  in.LocationID,
		"PaymentType": paymentType,
	}
	if in.PromotionCode != "" {
		body["PromotionCode"] = in.PromotionCode
	}
	if in.OverridePaymentAmount != nil {
		body["OverridePaymentAmount"] = *in.OverridePaymentAmount
	}
	if in.DiscountAmount != nil {
		body["DiscountAmount"] = *in.DiscountAmount
	}

	if paymentType == "CreditCard" || paymentType == "EFT" {
		if in.Card == nil {
			return nil, &ProtocolError{Endpoint: "/sale/purchasecontract", Err: errCardRequired}
		}

		card := map[string]any{
			"CreditCardNumber":  in.Card.Number,
			"ExpMonth":          in.Card.ExpMonth,
			"ExpYear":           in.Card.ExpYear,
			"BillingName":       in.Card.BillingName,
			"BillingAddress":    in.Card.BillingAddress,
			"BillingCity":       in.Card.BillingCity,
			"BillingState":      in.Card.BillingState,
			"BillingPostalCode": in.Card.BillingPostalCode,
		}
		if in.Card.CVV != "" {
			card["CVV"] = in.Card.CVV
		}
		body["CreditCardInfo"] = card
	}

	var out map[string]any
	if err := c.call(ctx, http.MethodPost, "/sale/purchasecontract", nil, body, &out, AsStaff()); err != nil {
		return nil, err
	}

	return out, nil
}
