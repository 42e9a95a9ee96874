package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/farmflow/backend/api/transport"
	"github.com/farmflow/backend/domain"
	"github.com/farmflow/backend/pkg/httpcontext"
	"github.com/farmflow/backend/repository"
	farmUC "github.com/farmflow/backend/usecase/farm"
)

type FarmHandler struct {
	baseHandler
	uc *farmUC.UseCase
}

func NewFarmHandler(uc *farmUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *FarmHandler {
	return &FarmHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List farms
// @Tags farms
// @Router /api/v1/farms [get]
func (h *FarmHandler) GetFarms(ctx *fasthttp.RequestCtx) {
	filter := repository.FarmFilter{
		Limit:  parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset: parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	farms, err := h.uc.ListFarms(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, farms)
}

// @Summary Get farm
// @Tags farms
// @Router /api/v1/farms/{id} [get]
func (h *FarmHandler) GetFarm(ctx *fasthttp.RequestCtx) {
	id := h.pathID(ctx)
	if id == "" {
		h.badRequest(ctx, "missing farm id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	farm, err := h.uc.GetFarm(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, farm)
}

// @Summary Create farm
// @Tags farms
// @Router /api/v1/farms [post]
func (h *FarmHandler) CreateFarm(ctx *fasthttp.RequestCtx) {
	farm, ok := h.parseFarm(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateFarm(stdCtx, farm)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update farm
// @Tags farms
// @Router /api/v1/farms/{id} [put]
func (h *FarmHandler) UpdateFarm(ctx *fasthttp.RequestCtx) {
	farm, ok := h.parseFarm(ctx)
	if !ok {
		return
	}
	if farm.ID == "" {
		farm.ID = h.pathID(ctx)
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateFarm(stdCtx, farm)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete farm
// @Tags farms
// @Router /api/v1/farms/{id} [delete]
func (h *FarmHandler) DeleteFarm(ctx *fasthttp.RequestCtx) {
	id := h.pathID(ctx)
	if id == "" {
		h.badRequest(ctx, "missing farm id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteFarm(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *FarmHandler) parseFarm(ctx *fasthttp.RequestCtx) (*domain.Farm, bool) {
	var req transport.FarmRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return nil, false
	}

	return &domain.Farm{
		ID:       req.ID,
		Name:     req.Name,
		Size:     req.Size,
		SizeUnit: req.SizeUnit,
		Location: req.Location,
	}, true
}
