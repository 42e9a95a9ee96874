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
	cropUC "github.com/farmflow/backend/usecase/crop"
)

type CropHandler struct {
	baseHandler
	uc *cropUC.UseCase
}

func NewCropHandler(uc *cropUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CropHandler {
	return &CropHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List crops
// @Tags crops
// @Router /api/v1/crops [get]
func (h *CropHandler) GetCrops(ctx *fasthttp.RequestCtx) {
	filter := repository.CropFilter{
		FarmID: string(ctx.QueryArgs().Peek("farm_id")),
		Status: string(ctx.QueryArgs().Peek("status")),
		Limit:  parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset: parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	crops, err := h.uc.ListCrops(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, crops)
}

// @Summary Get crop
// @Tags crops
// @Router /api/v1/crops/{id} [get]
func (h *CropHandler) GetCrop(ctx *fasthttp.RequestCtx) {
	id := h.pathID(ctx)
	if id == "" {
		h.badRequest(ctx, "missing crop id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	crop, err := h.uc.GetCrop(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, crop)
}

// @Summary Create crop
// @Tags crops
// @Router /api/v1/crops [post]
func (h *CropHandler) CreateCrop(ctx *fasthttp.RequestCtx) {
	crop, ok := h.parseCrop(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateCrop(stdCtx, crop)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update crop
// @Tags crops
// @Router /api/v1/crops/{id} [put]
func (h *CropHandler) UpdateCrop(ctx *fasthttp.RequestCtx) {
	crop, ok := h.parseCrop(ctx)
	if !ok {
		return
	}
	if crop.ID == "" {
		crop.ID = h.pathID(ctx)
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateCrop(stdCtx, crop)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete crop
// @Tags crops
// @Router /api/v1/crops/{id} [delete]
func (h *CropHandler) DeleteCrop(ctx *fasthttp.RequestCtx) {
	id := h.pathID(ctx)
	if id == "" {
		h.badRequest(ctx, "missing crop id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteCrop(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *CropHandler) parseCrop(ctx *fasthttp.RequestCtx) (*domain.Crop, bool) {
	var req transport.CropRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return nil, false
	}

	return &domain.Crop{
		ID:                  req.ID,
		FarmID:              req.FarmID,
		Name:                req.Name,
		Type:                req.Type,
		PlantingDate:        parseDate(req.PlantingDate),
		ExpectedHarvestDate: parseDate(req.ExpectedHarvestDate),
		Status:              req.Status,
		Area:                req.Area,
		Notes:               req.Notes,
	}, true
}
