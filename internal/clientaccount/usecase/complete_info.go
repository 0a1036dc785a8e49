package usecase

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/flexkitapp/flexgate/internal/pkg/goerror"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
)

// Visit history window when the caller does not narrow it.
const (
	historyLookbackYears   = 3
	historyLookaheadMonths = 3
)

type CompleteInfoInput struct {
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
}

type ClientInfo struct {
	ID                    string         `json:"id"`
	FirstName             string         `json:"first_name"`
	LastName              string         `json:"last_name"`
	Email                 string         `json:"email"`
	MobilePhone           string         `json:"mobile_phone"`
	HomePhone             string         `json:"home_phone"`
	WorkPhone             string         `json:"work_phone"`
	Gender                string         `json:"gender"`
	Status                string         `json:"status"`
	CreationDate          string         `json:"creation_date"`
	BirthDate             string         `json:"birth_date"`
	ReferredBy            string         `json:"referred_by"`
	SendPromotionalEmails bool           `json:"send_promotional_emails"`
	Address               AddressInfo    `json:"address"`
	AccountBalance        float64        `json:"account_balance"`
	CreditCard            map[string]any `json:"credit_card"`
}

type AddressInfo struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type MembershipInfo struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	Count           int            `json:"count"`
	Remaining       int            `json:"remaining"`
	ActiveDate      string         `json:"active_date"`
	ExpirationDate  string         `json:"expiration_date"`
	PaymentDate     string         `json:"payment_date"`
	Current         bool           `json:"current"`
	ProductID       int64          `json:"product_id"`
	Program         map[string]any `json:"program"`
	SiteID          int64          `json:"site_id"`
	ClientID        string         `json:"client_id"`
	IsExpired       bool           `json:"is_expired"`
	DaysUntilExpiry *int           `json:"days_until_expiry"`
}

type ContractInfo struct {
	ID               int64         `json:"id"`
	Name             string        `json:"name"`
	StartDate        string        `json:"start_date"`
	EndDate          string        `json:"end_date"`
	AgreementDate    string        `json:"agreement_date"`
	AutopayStatus    string        `json:"autopay_status"`
	AutoRenewing     bool          `json:"auto_renewing"`
	UpcomingPayments []PaymentInfo `json:"upcoming_payments"`
}

type PaymentInfo struct {
	Date      string  `json:"date"`
	Amount    float64 `json:"amount"`
	ProductID int64   `json:"product_id"`
}

type ContractsInfo struct {
	Active     []ContractInfo `json:"active"`
	Terminated []ContractInfo `json:"terminated"`
}

type SessionInfo struct {
	ID           int64       `json:"id"`
	Date         string      `json:"date"`
	Time         string      `json:"time"`
	EndTime      string      `json:"end_time"`
	Name         string      `json:"name"`
	Type         string      `json:"type"`
	Status       string      `json:"status"`
	Location     RefInfo     `json:"location"`
	Staff        RefInfo     `json:"staff"`
	Service      ServiceRef  `json:"service"`
	CanCancel    bool        `json:"can_cancel"`
	IsLateCancel bool        `json:"is_late_cancel"`
	SignedIn     bool        `json:"signed_in"`
	Missed       bool        `json:"missed"`

	startsAt time.Time
}

type RefInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ServiceRef struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ProductID int64  `json:"product_id"`
}

type SessionTypeStat struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type SessionStats struct {
	TotalSessions int               `json:"total_sessions"`
	UpcomingCount int               `json:"upcoming_count"`
	PreviousCount int               `json:"previous_count"`
	SessionTypes  []SessionTypeStat `json:"session_types"`
}

type SessionHistory struct {
	Upcoming []SessionInfo `json:"upcoming"`
	Previous []SessionInfo `json:"previous"`
	Stats    SessionStats  `json:"stats"`
}

type CompleteInfoOutput struct {
	Client         ClientInfo       `json:"client"`
	Memberships    []MembershipInfo `json:"memberships"`
	Contracts      ContractsInfo    `json:"contracts"`
	SessionHistory SessionHistory   `json:"session_history"`
}

// CompleteInfo assembles the full account view for the caller: profile,
// memberships and services, contracts split by termination, and the visit
// history split into upcoming and previous sessions.
func (s *Usecase) CompleteInfo(ctx context.Context, in CompleteInfoInput) (*CompleteInfoOutput, error) {
	ctx, span := s.startSpan(ctx, "CompleteInfo")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	clientID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	info, err := s.directory.GetClientCompleteInfo(ctx, clientID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch client account view", "error", err)
		return nil, mindbody.MapError(err)
	}

	now := s.clock.Now()

	out := &CompleteInfoOutput{
		Client:      reshapeClient(info.Client),
		Memberships: reshapeMemberships(append(append([]mindbody.ClientService{}, info.ClientServices...), info.ClientMemberships...), now),
		Contracts:   reshapeContracts(info.ClientContracts),
	}

	startDate := in.StartDate
	if startDate == "" {
		startDate = now.AddDate(-historyLookbackYears, 0, 0).Format(time.DateOnly)
	}
	endDate := in.EndDate
	if endDate == "" {
		endDate = now.AddDate(0, historyLookaheadMonths, 0).Format(time.DateOnly)
	}

	visits, err := s.directory.GetClientVisits(ctx, clientID, startDate, endDate)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch client visits", "error", err)
		return nil, mindbody.MapError(err)
	}

	out.SessionHistory = reshapeVisits(visits, now)

	return out, nil
}

func reshapeClient(c *mindbody.ClientDetail) ClientInfo {
	return ClientInfo{
		ID:                    c.ID,
		FirstName:             c.FirstName,
		LastName:              c.LastName,
		Email:                 c.Email,
		MobilePhone:           c.MobilePhone,
		HomePhone:             c.HomePhone,
		WorkPhone:             c.WorkPhone,
		Gender:                c.Gender,
		Status:                c.Status,
		CreationDate:          c.CreationDate,
		BirthDate:             c.BirthDate,
		ReferredBy:            c.ReferredBy,
		SendPromotionalEmails: c.SendPromotionalEmails,
		Address: AddressInfo{
			Line1:      c.AddressLine1,
			Line2:      c.AddressLine2,
			City:       c.City,
			State:      c.State,
			PostalCode: c.PostalCode,
			Country:    c.Country,
		},
		AccountBalance: c.AccountBalance,
		CreditCard:     c.ClientCreditCard,
	}
}

func reshapeMemberships(items []mindbody.ClientService, now time.Time) []MembershipInfo {
	out := make([]MembershipInfo, 0, len(items))
	for _, item := range items {
		m := MembershipInfo{
			ID:             item.ID,
			Name:           item.Name,
			Count:          item.Count,
			Remaining:      item.Remaining,
			ActiveDate:     item.ActiveDate,
			ExpirationDate: item.ExpirationDate,
			PaymentDate:    item.PaymentDate,
			Current:        item.Current,
			ProductID:      item.ProductID,
			Program:        item.Program,
			SiteID:         item.SiteID,
			ClientID:       item.ClientID,
		}

		if item.ExpirationDate != "" {
			if exp, err := mindbody.ParseTime(item.ExpirationDate); err == nil {
				m.IsExpired = exp.Before(now)
				days := int(exp.Sub(now).Hours() / 24)
				if days < 0 {
					days = -days
				}
				m.DaysUntilExpiry = &days
			}
		}

		out = append(out, m)
	}

	return out
}

func reshapeContracts(contracts []mindbody.ClientContract) ContractsInfo {
	out := ContractsInfo{Active: []ContractInfo{}, Terminated: []ContractInfo{}}
	for _, contract := range contracts {
		payments := make([]PaymentInfo, 0, len(contract.UpcomingAutopayEvents))
		for _, event := range contract.UpcomingAutopayEvents {
			payments = append(payments, PaymentInfo{
				Date:      event.ScheduleDate,
				Amount:    event.ChargeAmount,
				ProductID: event.ProductID,
			})
		}

		info := ContractInfo{
			ID:               contract.ID,
			Name:             contract.ContractName,
			StartDate:        contract.StartDate,
			EndDate:          contract.EndDate,
			AgreementDate:    contract.AgreementDate,
			AutopayStatus:    contract.AutopayStatus,
			AutoRenewing:     contract.AutoRenewing,
			UpcomingPayments: payments,
		}

		if contract.TerminationDate != "" {
			out.Terminated = append(out.Terminated, info)
		} else {
			out.Active = append(out.Active, info)
		}
	}

	return out
}

func reshapeVisits(visits []mindbody.Visit, now time.Time) SessionHistory {
	upcoming := []SessionInfo{}
	previous := []SessionInfo{}
	typeOrder := []string{}
	typeStats := map[string]*SessionTypeStat{}

	for _, visit := range visits {
		startsAt, err := mindbody.ParseTime(visit.StartDateTime)
		if err != nil {
			continue
		}

		kind := "appointment"
		if visit.ClassID != 0 {
			kind = "class"
		}

		status := visit.Status()
		session := SessionInfo{
			ID:       visit.ID,
			Date:     startsAt.Format(time.DateOnly),
			Time:     startsAt.Format("3:04 PM"),
			Name:     visit.Name,
			Type:     kind,
			Status:   status,
			Location: RefInfo{ID: visit.LocationID, Name: orTBD(visit.LocationName)},
			Staff:    RefInfo{ID: visit.StaffID, Name: orTBD(visit.StaffName)},
			Service: ServiceRef{
				ID:        visit.ServiceID,
				Name:      visit.ServiceName,
				ProductID: visit.ProductID,
			},
			CanCancel:    !visit.LateCancelled && status != "cancelled",
			IsLateCancel: visit.LateCancelled,
			SignedIn:     visit.SignedIn,
			Missed:       visit.Missed,
			startsAt:     startsAt,
		}

		if endsAt, endErr := mindbody.ParseTime(visit.EndDateTime); endErr == nil {
			session.EndTime = endsAt.Format("3:04 PM")
		}

		if stat, ok := typeStats[visit.Name]; ok {
			stat.Count++
		} else {
			typeStats[visit.Name] = &SessionTypeStat{Name: visit.Name, Type: kind, Count: 1}
			typeOrder = append(typeOrder, visit.Name)
		}

		if startsAt.After(now) && visit.AppointmentStatus == "Booked" {
			upcoming = append(upcoming, session)
		} else {
			previous = append(previous, session)
		}
	}

	sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].startsAt.Before(upcoming[j].startsAt) })
	sort.Slice(previous, func(i, j int) bool { return previous[i].startsAt.After(previous[j].startsAt) })

	types := make([]SessionTypeStat, 0, len(typeOrder))
	for _, name := range typeOrder {
		types = append(types, *typeStats[name])
	}

	return SessionHistory{
		Upcoming: upcoming,
		Previous: previous,
		Stats: SessionStats{
			TotalSessions: len(upcoming) + len(previous),
			UpcomingCount: len(upcoming),
			PreviousCount: len(previous),
			SessionTypes:  types,
		},
	}
}

func orTBD(name string) string {
	if name == "" {
		return "TBD"
	}
	return name
}
