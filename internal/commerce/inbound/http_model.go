package inbound

// ServicesResponse lists sellable pricing options.
type ServicesResponse struct {
	Services []map[string]any `json:"services"`
}

func (ServicesResponse) Message() string {
	return "Services retrieved successfully."
}

// ContractsResponse lists sellable contracts.
type ContractsResponse struct {
	Contracts []map[string]any `json:"contracts"`
}

func (ContractsResponse) Message() string {
	return "Contracts retrieved successfully."
}

// PromotionsResponse lists promotion codes.
type PromotionsResponse struct {
	Promotions []map[string]any `json:"promotions"`
}

func (PromotionsResponse) Message() string {
	return "Promotion codes retrieved successfully."
}

// PurchaseDetailsResponse carries one sellable item.
type PurchaseDetailsResponse struct {
	Type    string         `json:"type"`
	Details map[string]any `json:"details"`
}

func (PurchaseDetailsResponse) Message() string {
	return "Purchase details retrieved successfully."
}

// CardPayload carries card details for a checkout.
type CardPayload struct {
	Number            string `json:"number"`
	ExpMonth          int    `json:"exp_month"`
	ExpYear           int    `json:"exp_year"`
	CVC               string `json:"cvc"`
	BillingName       string `json:"billing_name"`
	BillingAddress    string `json:"billing_address"`
	BillingCity       string `json:"billing_city"`
	BillingState      string `json:"billing_state"`
	BillingPostalCode string `json:"billing_postal_code"`
}

// PurchaseContractRequest is the checkout payload.
type PurchaseContractRequest struct {
	ContractID            int64        `json:"contract_id"`
	LocationID            int64        `json:"location_id"`
	PaymentType           string       `json:"payment_type"`
	PromotionCode         string       `json:"promotion_code"`
	OverridePaymentAmount *float64     `json:"override_payment_amount"`
	DiscountAmount        *float64     `json:"discount_amount"`
	Card                  *CardPayload `json:"credit_card"`
}

// PurchaseContractResponse carries the upstream checkout result.
type PurchaseContractResponse struct {
	Purchase map[string]any `json:"purchase"`
}

func (PurchaseContractResponse) Message() string {
	return "Contract purchased successfully."
}
