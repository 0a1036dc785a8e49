package app

import (
	"log/slog"
	"os"

	"github.com/flexkitapp/flexgate/internal/auth"
	"github.com/flexkitapp/flexgate/internal/booking"
	"github.com/flexkitapp/flexgate/internal/clientaccount"
	"github.com/flexkitapp/flexgate/internal/commerce"
	"github.com/flexkitapp/flexgate/internal/status"
	"github.com/flexkitapp/flexgate/internal/timetable"
)

func (a *App) initModules() {
	if err := status.New(status.Dependency{
		DBConn:     a.dbConn,
		CacheConn:  a.cacheConn,
		Mindbody:   a.mindbody,
		Router:     a.router,
		Config:     a.config,
		Instrument: a.ins,
		Clock:      a.clock,
		Validator:  a.validator,
	}); err != nil {
		slog.Error("failed to init module status", "error", err)
		os.Exit(1)
	}

	if err := auth.New(auth.Dependency{
		DBConn:     a.dbConn,
		Mindbody:   a.mindbody,
		Goroutine:  a.goroutine,
		Router:     a.router,
		Config:     a.config,
		Instrument: a.ins,
		UID:        a.uid,
		RID:        a.rid,
		HMAC:       a.hmac,
		OTP:        a.otp,
		Clock:      a.clock,
		Validator:  a.validator,
		JWT:        a.jwt,
		Mailer:     a.mail,
	}); err != nil {
		slog.Error("failed to init module auth", "error", err)
		os.Exit(1)
	}

	if err := timetable.New(timetable.Dependency{
		CacheConn:  a.cacheConn,
		Mindbody:   a.mindbody,
		Router:     a.router,
		Config:     a.config,
		Instrument: a.ins,
		Clock:      a.clock,
		Validator:  a.validator,
	}); err != nil {
		slog.Error("failed to init module timetable", "error", err)
		os.Exit(1)
	}

	if err := booking.New(booking.Dependency{
		CacheConn:  a.cacheConn,
		Mindbody:   a.mindbody,
		Router:     a.router,
		Config:     a.config,
		Instrument: a.ins,
		Clock:      a.clock,
		Validator:  a.validator,
	}); err != nil {
		slog.Error("failed to init module booking", "error", err)
		os.Exit(1)
	}

	if err := clientaccount.New(clientaccount.Dependency{
		Mindbody:   a.mindbody,
		Router:     a.router,
		Instrument: a.ins,
		Clock:      a.clock,
		Validator:  a.validator,
	}); err != nil {
		slog.Error("failed to init module clientaccount", "error", err)
		os.Exit(1)
	}

	if err := commerce.New(commerce.Dependency{
		CacheConn:  a.cacheConn,
		Mindbody:   a.mindbody,
		Router:     a.router,
		Instrument: a.ins,
		Validator:  a.validator,
	}); err != nil {
		slog.Error("failed to init module commerce", "error", err)
		os.Exit(1)
	}
}
