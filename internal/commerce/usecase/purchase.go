package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flexkitapp/flexgate/internal/pkg/goerror"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
)

type CardInput struct {
	Number            string `validate:"required,credit_card"`
	ExpMonth          int    `validate:"required,min=1,max=12"`
	ExpYear           int    `validate:"required,min=2000"`
	CVC               string `validate:"omitempty,numeric,min=3,max=4"`
	BillingName       string `validate:"required,max=200"`
	BillingAddress    string `validate:"omitempty,max=200"`
	BillingCity       string `validate:"omitempty,max=100"`
	BillingState      string `validate:"omitempty,max=100"`
	BillingPostalCode string `validate:"omitempty,max=20"`
}

type PurchaseContractInput struct {
	ContractID            int64      `validate:"required,min=1"`
	LocationID            int64      `validate:"required,min=1"`
	PaymentType           string     `validate:"omitempty,oneof=CreditCard EFT Cash Check Comp"`
	PromotionCode         string     `validate:"omitempty,max=50"`
	OverridePaymentAmount *float64   `validate:"omitempty,min=0"`
	DiscountAmount        *float64   `validate:"omitempty,min=0"`
	Card                  *CardInput `validate:"omitempty"`
}

type PurchaseContractOutput struct {
	Purchase map[string]any
}

// PurchaseContract sells a contract to the caller. Card payments require card
// details; the idempotency guard absorbs double submissions of the same
// checkout.
func (s *Usecase) PurchaseContract(ctx context.Context, in PurchaseContractInput) (*PurchaseContractOutput, error) {
	ctx, span := s.startSpan(ctx, "PurchaseContract")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	paymentType := in.PaymentType
	if paymentType == "" {
		paymentType = "CreditCard"
	}
	if (paymentType == "CreditCard" || paymentType == "EFT") && in.Card == nil {
		return nil, goerror.NewInvalidInput(nil, "card", "card details are required for this payment type")
	}

	clientID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	upstreamIn := mindbody.PurchaseContractInput{
		ClientID:              clientID,
		ContractID:            in.ContractID,
		LocationID:            in.LocationID,
		PaymentType:           paymentType,
		PromotionCode:         in.PromotionCode,
		OverridePaymentAmount: in.OverridePaymentAmount,
		DiscountAmount:        in.DiscountAmount,
	}
	if in.Card != nil {
		upstreamIn.Card = &mindbody.CreditCardInfo{
			Number:            in.Card.Number,
			ExpMonth:          in.Card.ExpMonth,
			ExpYear:           in.Card.ExpYear,
			CVV:               in.Card.CVC,
			BillingName:       in.Card.BillingName,
			BillingAddress:    in.Card.BillingAddress,
			BillingCity:       in.Card.BillingCity,
			BillingState:      in.Card.BillingState,
			BillingPostalCode: in.Card.BillingPostalCode,
		}
	}

	var purchase map[string]any
	key := fmt.Sprintf("commerce:purchase:%s:%d", clientID, in.ContractID)
	err = s.idemp.Exec(ctx, key, func(ctx context.Context) error {
		var buyErr error
		purchase, buyErr = s.seller.PurchaseContract(ctx, upstreamIn)
		return buyErr
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to purchase contract", "contract_id", in.ContractID, "error", err)
		return nil, mindbody.MapError(err)
	}

	return &PurchaseContractOutput{Purchase: purchase}, nil
}
