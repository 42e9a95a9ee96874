package task

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/farmflow/backend/domain"
	"github.com/farmflow/backend/repository"
)

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
	now    func() time.Time
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock substitutes the time source used by bucketing, for tests.
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	if now != nil {
		uc.now = now
	}
	return uc
}

func (uc *UseCase) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	return uc.tasks.List(ctx, filter)
}

func (uc *UseCase) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, id)
}

func (uc *UseCase) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := validate(task); err != nil {
		return nil, err
	}
	return uc.tasks.Create(ctx, task)
}

func (uc *UseCase) UpdateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := validate(task); err != nil {
		return nil, err
	}
	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// CompleteTask flips the completed flag without requiring the full payload.
func (uc *UseCase) CompleteTask(ctx context.Context, id string, completed bool) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	task.Completed = completed
	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (uc *UseCase) DeleteTask(ctx context.Context, id string) error {
	return uc.tasks.Delete(ctx, id)
}

func validate(task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}
	if strings.TrimSpace(task.Title) == "" {
		return domain.NewError(domain.ErrCodeInvalid, "task title is required")
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if !domain.ValidPriority(task.Priority) {
		return domain.NewError(domain.ErrCodeInvalid, "unknown task priority")
	}
	return nil
}
