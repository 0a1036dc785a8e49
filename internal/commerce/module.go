package commerce

import (
	"github.com/redis/go-redis/v9"

	"github.com/flexkitapp/flexgate/internal/commerce/inbound"
	"github.com/flexkitapp/flexgate/internal/commerce/usecase"
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
	Instrument instrument.Instrumentation `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		Seller:      dep.Mindbody,
		Idempotency: idempotency.New(dep.CacheConn),
		Validator:   dep.Validator,
		Instrument:  dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
