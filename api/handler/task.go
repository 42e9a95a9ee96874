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
	"github.com/farmflow/backend/usecase/notify"
	taskUC "github.com/farmflow/backend/usecase/task"
)

type TaskHandler struct {
	baseHandler
	uc        *taskUC.UseCase
	scheduler *notify.Scheduler
}

func NewTaskHandler(uc *taskUC.UseCase, scheduler *notify.Scheduler, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		scheduler:   scheduler,
	}
}

// @Summary List tasks
// @Tags tasks
// @Router /api/v1/tasks [get]
func (h *TaskHandler) GetTasks(ctx *fasthttp.RequestCtx) {
	filter := taskFilterFromQuery(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.ListTasks(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	// Serving the task board doubles as a reminder trigger, the same way the
	// SPA checks on page mount. The scheduler throttles itself.
	if h.scheduler != nil {
		h.scheduler.CheckTasks(stdCtx, tasks)
	}

	h.respondSuccess(ctx, http.StatusOK, tasks)
}

// @Summary Bucketed task board
// @Tags tasks
// @Router /api/v1/tasks/buckets [get]
func (h *TaskHandler) GetTaskBuckets(ctx *fasthttp.RequestCtx) {
	filter := taskFilterFromQuery(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	buckets, err := h.uc.BucketTasks(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, buckets)
}

// @Summary Get task
// @Tags tasks
// @Router /api/v1/tasks/{id} [get]
func (h *TaskHandler) GetTask(ctx *fasthttp.RequestCtx) {
	id := h.pathID(ctx)
	if id == "" {
		h.badRequest(ctx, "missing task id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.GetTask(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Create task
// @Tags tasks
// @Router /api/v1/tasks [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	task, ok := h.parseTask(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateTask(stdCtx, task)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update task
// @Tags tasks
// @Router /api/v1/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(ctx *fasthttp.RequestCtx) {
	task, ok := h.parseTask(ctx)
	if !ok {
		return
	}
	if task.ID == "" {
		task.ID = h.pathID(ctx)
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateTask(stdCtx, task)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Complete or reopen task
// @Tags tasks
// @Router /api/v1/tasks/{id}/complete [put]
func (h *TaskHandler) CompleteTask(ctx *fasthttp.RequestCtx) {
	id := h.pathID(ctx)
	if id == "" {
		h.badRequest(ctx, "missing task id")
		return
	}

	req := transport.TaskCompleteRequest{Completed: true}
	if body := ctx.PostBody(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			h.badRequest(ctx, "invalid payload")
			return
		}
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.CompleteTask(stdCtx, id, req.Completed)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Delete task
// @Tags tasks
// @Router /api/v1/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	id := h.pathID(ctx)
	if id == "" {
		h.badRequest(ctx, "missing task id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteTask(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *TaskHandler) parseTask(ctx *fasthttp.RequestCtx) (*domain.Task, bool) {
	var req transport.TaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return nil, false
	}

	return &domain.Task{
		ID:          req.ID,
		FarmID:      req.FarmID,
		CropID:      req.CropID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     parseDate(req.DueDate),
		Priority:    req.Priority,
		Completed:   req.Completed,
	}, true
}

func taskFilterFromQuery(ctx *fasthttp.RequestCtx) repository.TaskFilter {
	filter := repository.TaskFilter{
		FarmID:   string(ctx.QueryArgs().Peek("farm_id")),
		CropID:   string(ctx.QueryArgs().Peek("crop_id")),
		Priority: string(ctx.QueryArgs().Peek("priority")),
		Limit:    parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset:   parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}
	if raw := string(ctx.QueryArgs().Peek("completed")); raw != "" {
		completed := raw == "true" || raw == "1"
		filter.Completed = &completed
	}
	return filter
}
