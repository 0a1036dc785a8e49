package timetable

import (
	"github.com/redis/go-redis/v9"

	"github.com/flexkitapp/flexgate/internal/pkg/clock"
	"github.com/flexkitapp/flexgate/internal/pkg/config"
	"github.com/flexkitapp/flexgate/internal/pkg/instrument"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
	"github.com/flexkitapp/flexgate/internal/pkg/router"
	"github.com/flexkitapp/flexgate/internal/pkg/validator"
	"github.com/flexkitapp/flexgate/internal/timetable/inbound"
	"github.com/flexkitapp/flexgate/internal/timetable/outbound/cache"
	"github.com/flexkitapp/flexgate/internal/timetable/usecase"
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

	filterCache := cache.NewCache(dep.CacheConn, dep.Config.GetMinute("modules.timetable.filters_cache_ttl_minutes"))

	uc := usecase.New(usecase.Dependency{
		Catalog:    dep.Mindbody,
		Cache:      filterCache,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
