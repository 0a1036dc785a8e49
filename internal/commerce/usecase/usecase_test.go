package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/flexkitapp/flexgate/internal/pkg/goerror"
	"github.com/flexkitapp/flexgate/internal/pkg/idempotency"
	"github.com/flexkitapp/flexgate/internal/pkg/instrument"
	"github.com/flexkitapp/flexgate/internal/pkg/jwt"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
	"github.com/flexkitapp/flexgate/internal/pkg/validator"
)

type fakeSeller struct {
	services   []map[string]any
	contracts  []map[string]any
	promotions []map[string]any
	detail     map[string]any

	contractsLocation int64
	detailContractID  int64
	detailLocationID  int64
	detailServiceID   int64
	purchased         *mindbody.PurchaseContractInput
	purchaseErr       error
}

func (s *fakeSeller) GetServices(context.Context) ([]map[string]any, error) {
	return s.services, nil
}

func (s *fakeSeller) GetServiceByID(_ context.Context, serviceID int64) (map[string]any, error) {
	s.detailServiceID = serviceID
	if s.detail == nil {
		return nil, &mindbody.HTTPError{StatusCode: 404, Endpoint: "/sale/services"}
	}
	return s.detail, nil
}

func (s *fakeSeller) GetContracts(_ context.Context, locationID int64) ([]map[string]any, error) {
	s.contractsLocation = locationID
	return s.contracts, nil
}

func (s *fakeSeller) GetContractByID(_ context.Context, contractID, locationID int64) (map[string]any, error) {
	s.detailContractID = contractID
	s.detailLocationID = locationID
	if s.detail == nil {
		return nil, &mindbody.HTTPError{StatusCode: 404, Endpoint: "/sale/contracts"}
	}
	return s.detail, nil
}

func (s *fakeSeller) GetPromotionCodes(context.Context) ([]map[string]any, error) {
	return s.promotions, nil
}

func (s *fakeSeller) PurchaseContract(_ context.Context, in mindbody.PurchaseContractInput) (map[string]any, error) {
	if s.purchaseErr != nil {
		return nil, s.purchaseErr
	}
	s.purchased = &in
	return map[string]any{"Status": "Success"}, nil
}

type passthroughIdempotency struct{}

func (passthroughIdempotency) Acquire(context.Context, string, time.Duration) (idempotency.State, error) {
	return "", nil
}

func (passthroughIdempotency) MarkCompleted(context.Context, string, time.Duration) error {
	return nil
}

func (passthroughIdempotency) MarkFailed(context.Context, string, time.Duration) error {
	return nil
}

func (passthroughIdempotency) Exec(ctx context.Context, _ string, fn func(context.Context) error, _ ...idempotency.Option) error {
	return fn(ctx)
}

func newTestUsecase(t *testing.T, seller *fakeSeller) *Usecase {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	return New(Dependency{
		Seller:      seller,
		Idempotency: passthroughIdempotency{},
		Validator:   v10,
		Instrument:  instrument.NewNoop(),
	})
}

func authedContext(t *testing.T) context.Context {
	t.Helper()

	return jwt.SetAuth(t.Context(), jwt.Claims{Client: jwt.Identity{ID: "100000123"}})
}

func validCard() *CardInput {
	return &CardInput{
		Number:      "4242424242424242",
		ExpMonth:    12,
		ExpYear:     2030,
		CVC:         "123",
		BillingName: "Ada Lovelace",
	}
}

func TestCatalog(t *testing.T) {
	t.Run("NilListsNormalizedToEmpty", func(t *testing.T) {
		uc := newTestUsecase(t, &fakeSeller{})

		services, err := uc.Services(t.Context())
		if err != nil {
			t.Fatalf("Services() error = %v", err)
		}
		if services.Services == nil {
			t.Fatal("Services = nil, want empty slice")
		}

		promotions, err := uc.Promotions(t.Context())
		if err != nil {
			t.Fatalf("Promotions() error = %v", err)
		}
		if promotions.Promotions == nil {
			t.Fatal("Promotions = nil, want empty slice")
		}
	})

	t.Run("ContractsPassLocationFilter", func(t *testing.T) {
		seller := &fakeSeller{contracts: []map[string]any{{"Id": float64(10)}}}
		uc := newTestUsecase(t, seller)

		out, err := uc.Contracts(t.Context(), ContractsInput{LocationID: 2})
		if err != nil {
			t.Fatalf("Contracts() error = %v", err)
		}
		if seller.contractsLocation != 2 {
			t.Fatalf("location filter = %d, want 2", seller.contractsLocation)
		}
		if len(out.Contracts) != 1 {
			t.Fatalf("Contracts = %+v", out.Contracts)
		}
	})
}

func TestPurchaseDetails(t *testing.T) {
	t.Run("DefaultsToService", func(t *testing.T) {
		seller := &fakeSeller{detail: map[string]any{"Id": float64(100)}}
		uc := newTestUsecase(t, seller)

		out, err := uc.PurchaseDetails(t.Context(), PurchaseDetailsInput{ID: 100})
		if err != nil {
			t.Fatalf("PurchaseDetails() error = %v", err)
		}
		if out.Type != "service" || seller.detailServiceID != 100 {
			t.Fatalf("out.Type = %q, service lookup = %d", out.Type, seller.detailServiceID)
		}
	})

	t.Run("ContractLookupCarriesLocation", func(t *testing.T) {
		seller := &fakeSeller{detail: map[string]any{"Id": float64(10)}}
		uc := newTestUsecase(t, seller)

		_, err := uc.PurchaseDetails(t.Context(), PurchaseDetailsInput{Type: "contract", ID: 10, LocationID: 3})
		if err != nil {
			t.Fatalf("PurchaseDetails() error = %v", err)
		}
		if seller.detailContractID != 10 || seller.detailLocationID != 3 {
			t.Fatalf("contract lookup = (%d, %d)", seller.detailContractID, seller.detailLocationID)
		}
	})

	t.Run("UnknownItemReturns404", func(t *testing.T) {
		uc := newTestUsecase(t, &fakeSeller{})

		_, err := uc.PurchaseDetails(t.Context(), PurchaseDetailsInput{ID: 999})

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.StatusCode() != 404 {
			t.Fatalf("PurchaseDetails() error = %v, want 404", err)
		}
	})
}

func TestPurchaseContract(t *testing.T) {
	t.Run("CardPaymentWithoutCardRejected", func(t *testing.T) {
		uc := newTestUsecase(t, &fakeSeller{})

		_, err := uc.PurchaseContract(authedContext(t), PurchaseContractInput{ContractID: 10, LocationID: 1})

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.StatusCode() != 400 {
			t.Fatalf("PurchaseContract() error = %v, want 400", err)
		}
		if got := gerr.Fields()["card"]; got == "" {
			t.Fatal("card field error missing")
		}
	})

	t.Run("CashPaymentNeedsNoCard", func(t *testing.T) {
		seller := &fakeSeller{}
		uc := newTestUsecase(t, seller)

		_, err := uc.PurchaseContract(authedContext(t), PurchaseContractInput{
			ContractID:  10,
			LocationID:  1,
			PaymentType: "Cash",
		})
		if err != nil {
			t.Fatalf("PurchaseContract() error = %v", err)
		}
		if seller.purchased.PaymentType != "Cash" || seller.purchased.Card != nil {
			t.Fatalf("upstream input = %+v", seller.purchased)
		}
	})

	t.Run("DefaultsToCreditCard", func(t *testing.T) {
		seller := &fakeSeller{}
		uc := newTestUsecase(t, seller)

		promo := "SUMMER25"
		override := 50.0
		_, err := uc.PurchaseContract(authedContext(t), PurchaseContractInput{
			ContractID:            10,
			LocationID:            1,
			PromotionCode:         promo,
			OverridePaymentAmount: &override,
			Card:                  validCard(),
		})
		if err != nil {
			t.Fatalf("PurchaseContract() error = %v", err)
		}

		got := seller.purchased
		if got.PaymentType != "CreditCard" {
			t.Fatalf("PaymentType = %q, want CreditCard default", got.PaymentType)
		}
		if got.ClientID != "100000123" || got.PromotionCode != promo {
			t.Fatalf("upstream input = %+v", got)
		}
		if got.OverridePaymentAmount == nil || *got.OverridePaymentAmount != 50.0 {
			t.Fatalf("OverridePaymentAmount = %v", got.OverridePaymentAmount)
		}
		if got.Card == nil || got.Card.Number != "4242424242424242" || got.Card.CVV != "123" {
			t.Fatalf("Card = %+v", got.Card)
		}
	})

	t.Run("RequiresAuthentication", func(t *testing.T) {
		uc := newTestUsecase(t, &fakeSeller{})

		_, err := uc.PurchaseContract(t.Context(), PurchaseContractInput{
			ContractID: 10, LocationID: 1, PaymentType: "Cash",
		})

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.StatusCode() != 401 {
			t.Fatalf("PurchaseContract() error = %v, want 401", err)
		}
	})

	t.Run("InvalidCardNumberRejected", func(t *testing.T) {
		uc := newTestUsecase(t, &fakeSeller{})

		card := validCard()
		card.Number = "1234"
		_, err := uc.PurchaseContract(authedContext(t), PurchaseContractInput{
			ContractID: 10, LocationID: 1, Card: card,
		})
		if err == nil {
			t.Fatal("PurchaseContract() error = nil, want validation error")
		}
	})
}
