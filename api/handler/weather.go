package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/farmflow/backend/pkg/httpcontext"
	weatherUC "github.com/farmflow/backend/usecase/weather"
)

type WeatherHandler struct {
	baseHandler
	uc *weatherUC.UseCase
}

func NewWeatherHandler(uc *weatherUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *WeatherHandler {
	return &WeatherHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Current conditions
// @Tags weather
// @Router /api/v1/weather [get]
func (h *WeatherHandler) GetCurrent(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	current, err := h.uc.Current(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, current)
}

// @Summary Forecast
// @Tags weather
// @Router /api/v1/weather/forecast [get]
func (h *WeatherHandler) GetForecast(ctx *fasthttp.RequestCtx) {
	days := parseInt(string(ctx.QueryArgs().Peek("days")), 0)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	forecast, err := h.uc.Forecast(stdCtx, days)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, forecast)
}

// @Summary Field-work advisories
// @Tags weather
// @Router /api/v1/weather/alerts [get]
func (h *WeatherHandler) GetAlerts(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	alerts, err := h.uc.Alerts(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, alerts)
}
