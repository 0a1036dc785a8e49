package inbound

import (
	"context"

	"github.com/flexkitapp/flexgate/internal/booking/usecase"
	"github.com/flexkitapp/flexgate/internal/pkg/router"
)

type uc interface {
	BookClass(ctx context.Context, in usecase.BookClassInput) (*usecase.BookClassOutput, error)
	CancelClass(ctx context.Context, in usecase.CancelClassInput) (*usecase.CancelClassOutput, error)
	BookAppointment(ctx context.Context, in usecase.BookAppointmentInput) (*usecase.BookAppointmentOutput, error)
	CancelAppointment(ctx context.Context, in usecase.CancelAppointmentInput) (*usecase.CancelAppointmentOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/class/book", end.BookClass)
	r.POST("/api/class/cancel", end.CancelClass)
	r.POST("/api/appointment/book", end.BookAppointment)
	r.POST("/api/appointment/cancel", end.CancelAppointment)
}
