package usecase

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/flexkitapp/flexgate/internal/pkg/clock"
	"github.com/flexkitapp/flexgate/internal/pkg/config"
	"github.com/flexkitapp/flexgate/internal/pkg/instrument"
	"github.com/flexkitapp/flexgate/internal/pkg/mindbody"
	"github.com/flexkitapp/flexgate/internal/pkg/validator"
)

type catalog interface {
	GetLocations(ctx context.Context) ([]mindbody.Location, error)
	GetPrograms(ctx context.Context) ([]mindbody.Program, error)
	GetSessionTypes(ctx context.Context) ([]mindbody.SessionType, error)
	GetClassSchedule(ctx context.Context, in mindbody.GetClassScheduleInput) ([]mindbody.Class, error)
	GetAppointmentTimes(ctx context.Context, in mindbody.GetAppointmentTimesInput) ([]mindbody.AppointmentTime, error)
}

type filterCache interface {
	GetFilters(ctx context.Context) (*FiltersOutput, bool)
	SetFilters(ctx context.Context, out *FiltersOutput)
}

type Usecase struct {
	catalog   catalog
	cache     filterCache
	validator validator.Validator
	cfg       config.Config
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	Catalog    catalog
	Cache      filterCache
	Validator  validator.Validator
	Config     config.Config
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		catalog:   dep.Catalog,
		cache:     dep.Cache,
		validator: dep.Validator,
		cfg:       dep.Config,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("timetable.usecase").Start(ctx, name)
}
