package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/farmflow/backend/api/transport"
	"github.com/farmflow/backend/domain"
	"github.com/farmflow/backend/pkg/httpcontext"
	"github.com/farmflow/backend/repository"
	financeUC "github.com/farmflow/backend/usecase/finance"
)

type TransactionHandler struct {
	baseHandler
	uc *financeUC.UseCase
}

func NewTransactionHandler(uc *financeUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List transactions
// @Tags finance
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) GetTransactions(ctx *fasthttp.RequestCtx) {
	filter := transactionFilterFromQuery(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	transactions, err := h.uc.ListTransactions(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transactions)
}

// @Summary Monthly finance summary
// @Tags finance
// @Router /api/v1/finance/summary [get]
func (h *TransactionHandler) GetSummary(ctx *fasthttp.RequestCtx) {
	filter := repository.TransactionFilter{
		FarmID: string(ctx.QueryArgs().Peek("farm_id")),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	summary, err := h.uc.Summarize(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, summary)
}

// @Summary Get transaction
// @Tags finance
// @Router /api/v1/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(ctx *fasthttp.RequestCtx) {
	id := h.pathID(ctx)
	if id == "" {
		h.badRequest(ctx, "missing transaction id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tx, err := h.uc.GetTransaction(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, tx)
}

// @Summary Create transaction
// @Tags finance
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) CreateTransaction(ctx *fasthttp.RequestCtx) {
	tx, ok := h.parseTransaction(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateTransaction(stdCtx, tx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update transaction
// @Tags finance
// @Router /api/v1/transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(ctx *fasthttp.RequestCtx) {
	tx, ok := h.parseTransaction(ctx)
	if !ok {
		return
	}
	if tx.ID == "" {
		tx.ID = h.pathID(ctx)
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateTransaction(stdCtx, tx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete transaction
// @Tags finance
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(ctx *fasthttp.RequestCtx) {
	id := h.pathID(ctx)
	if id == "" {
		h.badRequest(ctx, "missing transaction id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteTransaction(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *TransactionHandler) parseTransaction(ctx *fasthttp.RequestCtx) (*domain.Transaction, bool) {
	var req transport.TransactionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return nil, false
	}

	var date time.Time
	if parsed := parseDate(req.Date); parsed != nil {
		date = *parsed
	}

	return &domain.Transaction{
		ID:          req.ID,
		FarmID:      req.FarmID,
		CropID:      req.CropID,
		Title:       req.Title,
		Type:        req.Type,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	}, true
}

func transactionFilterFromQuery(ctx *fasthttp.RequestCtx) repository.TransactionFilter {
	return repository.TransactionFilter{
		FarmID:   string(ctx.QueryArgs().Peek("farm_id")),
		CropID:   string(ctx.QueryArgs().Peek("crop_id")),
		Type:     string(ctx.QueryArgs().Peek("type")),
		Category: string(ctx.QueryArgs().Peek("category")),
		From:     parseDate(string(ctx.QueryArgs().Peek("from"))),
		To:       parseDate(string(ctx.QueryArgs().Peek("to"))),
		Limit:    parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset:   parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}
}
