package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

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

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	uid       uid.NumberID
	rid       uid.StringID
	uuid      uid.StringID
	otp       otp.Generator
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	mail      mail.Mail
	mindbody  *mindbody.Client

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initMindbody()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
