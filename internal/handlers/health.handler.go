package handlers

import (
	"github.com/fasthttp/router"
	xhttp "github.com/nimasrn/bank-records/pkg/http"
)

type HealthService interface {
	Get() error
}

type HealthHandler struct {
	svc HealthService
}

func NewHealthHandler(svc HealthService) *HealthHandler {
	return &HealthHandler{svc: svc}
}

func RegisterHealthRoutes(e *router.Group, h *HealthHandler) {
	e.GET("/health", h.GetHealth)
}

func (h *HealthHandler) GetHealth(ctx *xhttp.RequestCtx) {
	if err := h.svc.Get(); err != nil {
		writeJSON(ctx, xhttp.StatusInternalServerError, map[string]string{"status": "down", "error": err.Error()})
		return
	}
	writeJSON(ctx, xhttp.StatusOK, map[string]string{"status": "up"})
}
