package inbound

import (
	"time"

	"github.com/flexkitapp/flexgate/internal/pkg/router"
)

// HTTPEndpoint exposes the gateway status probe.
type HTTPEndpoint struct {
	uc uc
}

// Status reports gateway and backing-service liveness.
// @Summary Gateway status
// @Description Reports the gateway version and the state of its backing services.
// @Tags Status
// @Produce json
// @Success 200 {object} router.successResponse{data=StatusResponse} "Status"
// @Router /api/status [get]
func (h *HTTPEndpoint) Status(r *router.Request) (any, error) {
	resp, err := h.uc.Status(r.Context())
	if err != nil {
		return nil, err
	}

	return StatusResponse{
		App:     resp.App,
		Version: resp.Version,
		Env:     resp.Env,
		Time:    resp.Time.Format(time.RFC3339),
		Checks: ChecksPayload{
			Database: resp.Database,
			Cache:    resp.Cache,
			Upstream: resp.Upstream,
		},
	}, nil
}
