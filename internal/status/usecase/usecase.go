package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"

	"github.com/flexkitapp/flexgate/internal/pkg/clock"
	"github.com/flexkitapp/flexgate/internal/pkg/config"
	"github.com/flexkitapp/flexgate/internal/pkg/instrument"
)

const probeTimeout = 5 * time.Second

type prober interface {
	Ping(ctx context.Context) error
}

type Usecase struct {
	db       *pgxpool.Pool
	cache    *redis.Client
	upstream prober
	cfg      config.Config
	clock    clock.Clocker
	ins      instrument.Instrumentation
}

type Dependency struct {
	DBConn     *pgxpool.Pool
	CacheConn  *redis.Client
	Upstream   prober
	Config     config.Config
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		db:       dep.DBConn,
		cache:    dep.CacheConn,
		upstream: dep.Upstream,
		cfg:      dep.Config,
		clock:    dep.Clock,
		ins:      dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("status.usecase").Start(ctx, name)
}

type StatusOutput struct {
	App      string
	Version  string
	Env      string
	Time     time.Time
	Database string
	Cache    string
	Upstream string
}

// Status reports the liveness of the gateway and its backing services. Probe
// failures degrade the report instead of failing the request.
func (s *Usecase) Status(ctx context.Context) (*StatusOutput, error) {
	ctx, span := s.startSpan(ctx, "Status")
	defer span.End()

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out := &StatusOutput{
		App:      s.cfg.GetString("app.name"),
		Version:  s.cfg.GetString("app.version"),
		Env:      s.cfg.GetString("app.env"),
		Time:     s.clock.Now(),
		Database: "up",
		Cache:    "up",
		Upstream: "up",
	}

	if err := s.db.Ping(probeCtx); err != nil {
		slog.WarnContext(ctx, "database probe failed", "error", err)
		out.Database = "down"
	}

	if err := s.cache.Ping(probeCtx).Err(); err != nil {
		slog.WarnContext(ctx, "cache probe failed", "error", err)
		out.Cache = "down"
	}

	if err := s.upstream.Ping(probeCtx); err != nil {
		slog.WarnContext(ctx, "upstream probe failed", "error", err)
		out.Upstream = "down"
	}

	return out, nil
}
