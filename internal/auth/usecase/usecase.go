package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/flexkitapp/flexgate/internal/auth/entity"
	"github.com/flexkitapp/flexgate/internal/pkg/clock"
	"github.com/flexkitapp/flexgate/internal/pkg/config"
	"github.com/flexkitapp/flexgate/internal/pkg/goroutine"
	"github.com/flexkitapp/flexgate/internal/pkg/hash"
	"github.com/flexkitapp/flexgate/internal/pkg/instrument"
	"github.com/flexkitapp/flexgate/internal/pkg/jwt"
	"github.com/flexkitapp/flexgate/internal/pkg/mail"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
	"github.com/flexkitapp/flexgate/internal/pkg/otp"
	"github.com/flexkitapp/flexgate/internal/pkg/uid"
	"github.com/flexkitapp/flexgate/internal/pkg/validator"
)

type repoDB interface {
	GetChallengeByRequestID(ctx context.Context, requestID string) (*entity.OtpChallenge, error)
	GetLatestChallengeByEmail(ctx context.Context, email string) (*entity.OtpChallenge, error)
	CreateChallenge(ctx context.Context, in entity.OtpChallenge) error
	MarkChallengeUsed(ctx context.Context, id int64) (bool, error)
	DeleteChallenge(ctx context.Context, id int64) error
	DeleteChallengesByEmail(ctx context.Context, email string) error
	PurgeChallenges(ctx context.Context, now time.Time) (int64, error)

	UpsertClientProfile(ctx context.Context, in entity.ClientProfile) error
	GetClientProfile(ctx context.Context, clientID string) (*entity.ClientProfile, error)
}

type directory interface {
	SearchClients(ctx context.Context, searchText string) ([]mindbody.ClientRecord, error)
	GetClientByID(ctx context.Context, clientID string) (*mindbody.ClientRecord, error)
	GetClientSchedule(ctx context.Context, clientID, startDate, endDate string) ([]mindbody.Visit, error)
}

type Usecase struct {
	repoDB    repoDB
	directory directory
	validator validator.Validator
	cfg       config.Config
	hmac      hash.Hash
	otp       otp.Generator
	uid       uid.NumberID
	rid       uid.StringID
	clock     clock.Clocker
	jwt       jwt.JWT
	mailer    mail.Mail
	ins       instrument.Instrumentation
	goroutine *goroutine.Manager
}

type Dependency struct {
	RepoDB     repoDB
	Directory  directory
	Validator  validator.Validator
	Config     config.Config
	HMAC       hash.Hash
	OTP        otp.Generator
	UID        uid.NumberID
	RID        uid.StringID
	Clock      clock.Clocker
	JWT        jwt.JWT
	Mailer     mail.Mail
	Instrument instrument.Instrumentation
	Goroutine  *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		directory: dep.Directory,
		validator: dep.Validator,
		cfg:       dep.Config,
		hmac:      dep.HMAC,
		otp:       dep.OTP,
		uid:       dep.UID,
		rid:       dep.RID,
		clock:     dep.Clock,
		jwt:       dep.JWT,
		mailer:    dep.Mailer,
		ins:       dep.Instrument,
		goroutine: dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.usecase").Start(ctx, name)
}

func (s *Usecase) otpTTL() time.Duration {
	return s.cfg.GetMinute("modules.auth.otp_ttl_minutes")
}
