package auth

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flexkitapp/flexgate/internal/auth/inbound"
	"github.com/flexkitapp/flexgate/internal/auth/outbound/db"
	"github.com/flexkitapp/flexgate/internal/auth/usecase"
	"github.com/flexkitapp/flexgate/internal/pkg/clock"
	"github.com/flexkitapp/flexgate/internal/pkg/config"
	"github.com/flexkitapp/flexgate/internal/pkg/goroutine"
	"github.com/flexkitapp/flexgate/internal/pkg/hash"
	"github.com/flexkitapp/flexgate/internal/pkg/instrument"
	"github.com/flexkitapp/flexgate/internal/pkg/jwt"
	"github.com/flexkitapp/flexgate/internal/pkg/mail"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
	"github.com/flexkitapp/flexgate/internal/pkg/otp"
	"github.com/flexkitapp/flexgate/internal/pkg/router"
	"github.com/flexkitapp/flexgate/internal/pkg/uid"
	"github.com/flexkitapp/flexgate/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Mindbody   *mindbody.Client           `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	RID        uid.StringID               `validate:"required"`
	HMAC       hash.Hash                  `validate:"required"`
	OTP        otp.Generator              `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
	Mailer     mail.Mail                  `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbAuth,
		Directory:  dep.Mindbody,
		Validator:  dep.Validator,
		Config:     dep.Config,
		HMAC:       dep.HMAC,
		OTP:        dep.OTP,
		UID:        dep.UID,
		RID:        dep.RID,
		Clock:      dep.Clock,
		JWT:        dep.JWT,
		Mailer:     dep.Mailer,
		Instrument: dep.Instrument,
		Goroutine:  dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
