package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/flexkitapp/flexgate/internal/pkg/goerror"
	"github.com/flexkitapp/flexgate/internal/pkg/instrument"
	"github.com/flexkitapp/flexgate/internal/pkg/jwt"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
	"github.com/flexkitapp/flexgate/internal/pkg/validator"
)

type staticClock struct {
	now time.Time
}

func (c *staticClock) Now() time.Time {
	return c.now
}

type fakeDirectory struct {
	created       map[string]any
	updated       map[string]any
	updatedClient string
	info          *mindbody.CompleteInfo
	visits        []mindbody.Visit
	visitStart    string
	visitEnd      string
}

func (d *fakeDirectory) CreateClient(_ context.Context, fields map[string]any) (*mindbody.ClientRecord, error) {
	d.created = fields
	return &mindbody.ClientRecord{ID: "100000123"}, nil
}

func (d *fakeDirectory) UpdateClient(_ context.Context, clientID string, fields map[string]any) (*mindbody.ClientRecord, error) {
	d.updatedClient = clientID
	d.updated = fields
	return &mindbody.ClientRecord{ID: clientID}, nil
}

func (d *fakeDirectory) GetClientCompleteInfo(_ context.Context, clientID string) (*mindbody.CompleteInfo, error) {
	if d.info == nil {
		return nil, &mindbody.HTTPError{StatusCode: 404, Endpoint: "/client/clientcompleteinfo"}
	}
	return d.info, nil
}

func (d *fakeDirectory) GetClientVisits(_ context.Context, clientID, startDate, endDate string) ([]mindbody.Visit, error) {
	d.visitStart = startDate
	d.visitEnd = endDate
	return d.visits, nil
}

func newTestUsecase(t *testing.T, dir *fakeDirectory, now time.Time) *Usecase {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	return New(Dependency{
		Directory:  dir,
		Validator:  v10,
		Clock:      &staticClock{now: now},
		Instrument: instrument.NewNoop(),
	})
}

func authedContext(t *testing.T) context.Context {
	t.Helper()

	return jwt.SetAuth(t.Context(), jwt.Claims{Client: jwt.Identity{ID: "100000123"}})
}

func TestRegister(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("BuildsUpstreamPayload", func(t *testing.T) {
		dir := &fakeDirectory{}
		uc := newTestUsecase(t, dir, now)

		marketing := true
		_, err := uc.Register(t.Context(), RegisterInput{
			FirstName:         "Ada",
			LastName:          "Lovelace",
			Email:             " Ada@Example.com ",
			Phone:             "+447700900123",
			TermsAccepted:     true,
			Gender:            "female",
			HearAbout:         "A friend",
			MarketingAccepted: &marketing,
		})
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}

		client, ok := dir.created["Client"].(map[string]any)
		if !ok {
			t.Fatalf("payload = %+v, want nested Client object", dir.created)
		}

		if client["Email"] != "ada@example.com" {
			t.Fatalf("Email = %v, want normalized lowercase", client["Email"])
		}
		if client["Country"] != "US" {
			t.Fatalf("Country = %v, want default US", client["Country"])
		}
		if client["ProspectStage"] != "Member" {
			t.Fatalf("ProspectStage = %v", client["ProspectStage"])
		}
		if client["Gender"] != "Female" {
			t.Fatalf("Gender = %v, want capitalized", client["Gender"])
		}
		if client["LiabilityRelease"] != true {
			t.Fatalf("LiabilityRelease = %v", client["LiabilityRelease"])
		}
		if client["ReferredBy"] != "A friend" {
			t.Fatalf("ReferredBy = %v", client["ReferredBy"])
		}
		if client["SendPromotionalEmails"] != true || client["SendPromotionalTexts"] != true {
			t.Fatalf("marketing flags = %v / %v", client["SendPromotionalEmails"], client["SendPromotionalTexts"])
		}
	})

	t.Run("OptionalFieldsOmittedWhenEmpty", func(t *testing.T) {
		dir := &fakeDirectory{}
		uc := newTestUsecase(t, dir, now)

		_, err := uc.Register(t.Context(), RegisterInput{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Phone:     "+447700900123",
		})
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}

		client := dir.created["Client"].(map[string]any)
		for _, key := range []string{"BirthDate", "Gender", "ReferredBy", "SendPromotionalEmails"} {
			if _, present := client[key]; present {
				t.Fatalf("%s present in payload, want omitted", key)
			}
		}
	})

	t.Run("InvalidEmailRejected", func(t *testing.T) {
		uc := newTestUsecase(t, &fakeDirectory{}, now)

		_, err := uc.Register(t.Context(), RegisterInput{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "not-an-email",
			Phone:     "+447700900123",
		})
		if err == nil {
			t.Fatal("Register() error = nil, want validation error")
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("SendsOnlyProvidedFields", func(t *testing.T) {
		dir := &fakeDirectory{}
		uc := newTestUsecase(t, dir, now)

		_, err := uc.UpdateProfile(authedContext(t), UpdateProfileInput{City: "London", PostalCode: "N1 9GU"})
		if err != nil {
			t.Fatalf("UpdateProfile() error = %v", err)
		}

		if dir.updatedClient != "100000123" {
			t.Fatalf("updated client = %q", dir.updatedClient)
		}
		if len(dir.updated) != 2 || dir.updated["City"] != "London" || dir.updated["PostalCode"] != "N1 9GU" {
			t.Fatalf("update fields = %+v", dir.updated)
		}
	})

	t.Run("EmptyUpdateRejected", func(t *testing.T) {
		uc := newTestUsecase(t, &fakeDirectory{}, now)

		_, err := uc.UpdateProfile(authedContext(t), UpdateProfileInput{})

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.StatusCode() != 400 {
			t.Fatalf("UpdateProfile() error = %v, want 400", err)
		}
	})
}

func TestCompleteInfo(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	info := &mindbody.CompleteInfo{
		Client: &mindbody.ClientDetail{
			ID:        "100000123",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
		},
		ClientServices: []mindbody.ClientService{
			{ID: 1, Name: "10 Class Pack", Remaining: 4, ExpirationDate: "2025-07-01T00:00:00"},
		},
		ClientMemberships: []mindbody.ClientService{
			{ID: 2, Name: "Gold Membership", ExpirationDate: "2025-05-01T00:00:00"},
		},
		ClientContracts: []mindbody.ClientContract{
			{ID: 10, ContractName: "Monthly Unlimited", UpcomingAutopayEvents: []mindbody.AutopayEvent{
				{ScheduleDate: "2025-07-01", ChargeAmount: 99.5, ProductID: 77},
			}},
			{ID: 11, ContractName: "Old Plan", TerminationDate: "2024-12-31"},
		},
	}

	visits := []mindbody.Visit{
		{ID: 1, ClassID: 50, StartDateTime: "2025-06-10T10:00:00", EndDateTime: "2025-06-10T11:00:00", Name: "Yoga", AppointmentStatus: "Booked"},
		{ID: 2, AppointmentID: 60, StartDateTime: "2025-06-03T09:00:00", EndDateTime: "2025-06-03T09:30:00", Name: "PT", AppointmentStatus: "Booked"},
		{ID: 3, ClassID: 51, StartDateTime: "2025-05-20T18:00:00", EndDateTime: "2025-05-20T19:00:00", Name: "Yoga", AppointmentStatus: "Booked", SignedIn: true},
		{ID: 4, ClassID: 52, StartDateTime: "2025-05-28T18:00:00", EndDateTime: "2025-05-28T19:00:00", Name: "Spin", LateCancelled: true},
		{ID: 5, StartDateTime: "garbage"},
	}

	t.Run("AssemblesAccountView", func(t *testing.T) {
		dir := &fakeDirectory{info: info, visits: visits}
		uc := newTestUsecase(t, dir, now)

		out, err := uc.CompleteInfo(authedContext(t), CompleteInfoInput{})
		if err != nil {
			t.Fatalf("CompleteInfo() error = %v", err)
		}

		if out.Client.FirstName != "Ada" {
			t.Fatalf("Client = %+v", out.Client)
		}

		if len(out.Memberships) != 2 {
			t.Fatalf("Memberships = %d entries, want services and memberships merged", len(out.Memberships))
		}
		if out.Memberships[0].IsExpired {
			t.Fatal("future expiry flagged as expired")
		}
		if !out.Memberships[1].IsExpired {
			t.Fatal("past expiry not flagged as expired")
		}

		if len(out.Contracts.Active) != 1 || out.Contracts.Active[0].ID != 10 {
			t.Fatalf("Active contracts = %+v", out.Contracts.Active)
		}
		if len(out.Contracts.Terminated) != 1 || out.Contracts.Terminated[0].ID != 11 {
			t.Fatalf("Terminated contracts = %+v", out.Contracts.Terminated)
		}
		if got := out.Contracts.Active[0].UpcomingPayments[0].Amount; got != 99.5 {
			t.Fatalf("upcoming payment amount = %v", got)
		}
	})

	t.Run("SplitsAndSortsVisits", func(t *testing.T) {
		dir := &fakeDirectory{info: info, visits: visits}
		uc := newTestUsecase(t, dir, now)

		out, err := uc.CompleteInfo(authedContext(t), CompleteInfoInput{})
		if err != nil {
			t.Fatalf("CompleteInfo() error = %v", err)
		}

		history := out.SessionHistory

		// Upcoming ascending: the PT on the 3rd before the Yoga on the 10th.
		if len(history.Upcoming) != 2 || history.Upcoming[0].ID != 2 || history.Upcoming[1].ID != 1 {
			t.Fatalf("Upcoming = %+v", history.Upcoming)
		}
		// Previous descending: the late-cancelled Spin before the Yoga.
		if len(history.Previous) != 2 || history.Previous[0].ID != 4 || history.Previous[1].ID != 3 {
			t.Fatalf("Previous = %+v", history.Previous)
		}

		if history.Upcoming[0].Type != "appointment" || history.Upcoming[1].Type != "class" {
			t.Fatalf("session kinds = %q / %q", history.Upcoming[0].Type, history.Upcoming[1].Type)
		}

		if history.Previous[1].Status != "completed" {
			t.Fatalf("signed-in visit status = %q, want completed", history.Previous[1].Status)
		}
		cancelled := history.Previous[0]
		if cancelled.Status != "cancelled" || cancelled.CanCancel {
			t.Fatalf("late-cancelled visit = %+v", cancelled)
		}

		if history.Stats.TotalSessions != 4 || history.Stats.UpcomingCount != 2 || history.Stats.PreviousCount != 2 {
			t.Fatalf("Stats = %+v", history.Stats)
		}
		if len(history.Stats.SessionTypes) != 3 {
			t.Fatalf("SessionTypes = %+v", history.Stats.SessionTypes)
		}
		if history.Stats.SessionTypes[0].Name != "Yoga" || history.Stats.SessionTypes[0].Count != 2 {
			t.Fatalf("SessionTypes[0] = %+v", history.Stats.SessionTypes[0])
		}

		if history.Upcoming[1].Time != "10:00 AM" {
			t.Fatalf("Time = %q, want 10:00 AM", history.Upcoming[1].Time)
		}
		if history.Upcoming[1].Location.Name != "TBD" {
			t.Fatalf("Location.Name = %q, want TBD fallback", history.Upcoming[1].Location.Name)
		}
	})

	t.Run("DefaultsVisitWindow", func(t *testing.T) {
		dir := &fakeDirectory{info: info}
		uc := newTestUsecase(t, dir, now)

		if _, err := uc.CompleteInfo(authedContext(t), CompleteInfoInput{}); err != nil {
			t.Fatalf("CompleteInfo() error = %v", err)
		}

		if dir.visitStart != "2022-06-01" {
			t.Fatalf("visit window start = %q, want three years back", dir.visitStart)
		}
		if dir.visitEnd != "2025-09-01" {
			t.Fatalf("visit window end = %q, want three months ahead", dir.visitEnd)
		}
	})

	t.Run("CallerSuppliedWindowWins", func(t *testing.T) {
		dir := &fakeDirectory{info: info}
		uc := newTestUsecase(t, dir, now)

		in := CompleteInfoInput{StartDate: "2025-01-01", EndDate: "2025-02-01"}
		if _, err := uc.CompleteInfo(authedContext(t), in); err != nil {
			t.Fatalf("CompleteInfo() error = %v", err)
		}

		if dir.visitStart != "2025-01-01" || dir.visitEnd != "2025-02-01" {
			t.Fatalf("visit window = %q..%q", dir.visitStart, dir.visitEnd)
		}
	})

	t.Run("UnknownClientReturns404", func(t *testing.T) {
		uc := newTestUsecase(t, &fakeDirectory{}, now)

		_, err := uc.CompleteInfo(authedContext(t), CompleteInfoInput{})

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.StatusCode() != 404 {
			t.Fatalf("CompleteInfo() error = %v, want 404", err)
		}
	})
}
