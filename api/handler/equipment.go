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
	equipmentUC "github.com/farmflow/backend/usecase/equipment"
)

type EquipmentHandler struct {
	baseHandler
	uc *equipmentUC.UseCase
}

func NewEquipmentHandler(uc *equipmentUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *EquipmentHandler {
	return &EquipmentHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List equipment
// @Tags equipment
// @Router /api/v1/equipment [get]
func (h *EquipmentHandler) GetEquipmentList(ctx *fasthttp.RequestCtx) {
	filter := repository.EquipmentFilter{
		FarmID: string(ctx.QueryArgs().Peek("farm_id")),
		Type:   string(ctx.QueryArgs().Peek("type")),
		Limit:  parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset: parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	items, err := h.uc.ListEquipment(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, items)
}

// @Summary Get equipment
// @Tags equipment
// @Router /api/v1/equipment/{id} [get]
func (h *EquipmentHandler) GetEquipment(ctx *fasthttp.RequestCtx) {
	id := h.pathID(ctx)
	if id == "" {
		h.badRequest(ctx, "missing equipment id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	item, err := h.uc.GetEquipment(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, item)
}

// @Summary Create equipment
// @Tags equipment
// @Router /api/v1/equipment [post]
func (h *EquipmentHandler) CreateEquipment(ctx *fasthttp.RequestCtx) {
	item, ok := h.parseEquipment(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateEquipment(stdCtx, item)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update equipment
// @Tags equipment
// @Router /api/v1/equipment/{id} [put]
func (h *EquipmentHandler) UpdateEquipment(ctx *fasthttp.RequestCtx) {
	item, ok := h.parseEquipment(ctx)
	if !ok {
		return
	}
	if item.ID == "" {
		item.ID = h.pathID(ctx)
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateEquipment(stdCtx, item)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete equipment
// @Tags equipment
// @Router /api/v1/equipment/{id} [delete]
func (h *EquipmentHandler) DeleteEquipment(ctx *fasthttp.RequestCtx) {
	id := h.pathID(ctx)
	if id == "" {
		h.badRequest(ctx, "missing equipment id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteEquipment(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *EquipmentHandler) parseEquipment(ctx *fasthttp.RequestCtx) (*domain.Equipment, bool) {
	var req transport.EquipmentRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return nil, false
	}

	return &domain.Equipment{
		ID:           req.ID,
		FarmID:       req.FarmID,
		Name:         req.Name,
		Type:         req.Type,
		PurchaseDate: parseDate(req.PurchaseDate),
		Cost:         req.Cost,
		Notes:        req.Notes,
	}, true
}
