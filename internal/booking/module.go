package booking

import (
	"github.com/redis/go-redis/v9"

	"github.com/flexkitapp/flexgate/internal/booking/inbound"
	"github.com/flexkitapp/flexgate/internal/booking/usecase"
	"github.com/flexkitapp/flexgate/internal/pkg/clock"
	"github.com/flexkitapp/flexgate/internal/pkg/config"
	"github.com/flexkitapp/flexgate/internal/pkg/idempotency"
	"github.com/flexkitapp/flexgate/internal/pkg/instrument"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
	"github.com/flexkitapp/flexgate/internal/pkg/router"
	"github.com/flexkitapp/flexgate/internal/pkg/validator"
)

type Dependency struct {
	CacheConn  *redis.Client              `validate:"required"`
	Mindbody   *mindbody.Client           `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		Booker:      dep.Mindbody,
		Idempotency: idempotency.New(dep.CacheConn),
		Validator:   dep.Validator,
		Config:      dep.Config,
		Clock:       dep.Clock,
		Instrument:  dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
