package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/farmflow/backend/api/transport"
	"github.com/farmflow/backend/pkg/httpcontext"
	"github.com/farmflow/backend/usecase/notify"
)

type NotificationHandler struct {
	baseHandler
	scheduler *notify.Scheduler
}

func NewNotificationHandler(scheduler *notify.Scheduler, adapter *httpcontext.Adapter, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		baseHandler: newBaseHandler(adapter, logger),
		scheduler:   scheduler,
	}
}

// @Summary Reminder settings
// @Tags notifications
// @Router /api/v1/notifications/settings [get]
func (h *NotificationHandler) GetSettings(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, h.scheduler.Settings())
}

// @Summary Update reminder settings
// @Tags notifications
// @Router /api/v1/notifications/settings [put]
func (h *NotificationHandler) UpdateSettings(ctx *fasthttp.RequestCtx) {
	var req transport.NotificationSettingsRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.badRequest(ctx, "invalid payload")
		return
	}

	settings, err := h.scheduler.UpdateSettings(notify.SettingsPatch{
		Enabled:  req.Enabled,
		LeadDays: req.LeadDays,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, settings)
}

// @Summary Request notification permission
// @Tags notifications
// @Router /api/v1/notifications/permission [post]
func (h *NotificationHandler) RequestPermission(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	granted := h.scheduler.RequestPermission(stdCtx)
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"granted":    granted,
		"permission": h.scheduler.Settings().Permission,
	})
}

// @Summary Send a test notification
// @Tags notifications
// @Router /api/v1/notifications/test [post]
func (h *NotificationHandler) SendTest(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.scheduler.TestAlert(stdCtx); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusAccepted, nil)
}
