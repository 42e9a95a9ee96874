package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/farmflow/backend/internal/infrastructure/monitor"
	"github.com/farmflow/backend/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
}

func NewHealthHandler(m *monitor.Monitor, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     m,
	}
}

// @Summary Service health
// @Tags health
// @Router /health [get]
func (h *HealthHandler) GetHealth(ctx *fasthttp.RequestCtx) {
	status := http.StatusOK
	payload := map[string]interface{}{"status": "ok"}

	if h.monitor != nil {
		deps := h.monitor.GetStatus()
		payload["dependencies"] = deps
		if !h.monitor.IsOnline() {
			status = http.StatusServiceUnavailable
			payload["status"] = "degraded"
		}
	}

	h.respondSuccess(ctx, status, payload)
}
