package inbound

import (
	"context"

	"github.com/flexkitapp/flexgate/internal/pkg/router"
	"github.com/flexkitapp/flexgate/internal/timetable/usecase"
)

type uc interface {
	Filters(ctx context.Context) (*usecase.FiltersOutput, error)
	Data(ctx context.Context, in usecase.DataInput) (*usecase.DataOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/timetable/filters", end.Filters)
	r.GET("/api/timetable/data", end.Data)
}
