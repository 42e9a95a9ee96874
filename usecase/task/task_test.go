package task

import (
	"context"
	"testing"
	"time"

	"github.com/farmflow/backend/domain"
	"github.com/farmflow/backend/repository"
)

type memTaskRepo struct {
	tasks map[string]domain.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: map[string]domain.Task{}}
}

func (r *memTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return &task, nil
}

func (r *memTaskRepo) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	var out []domain.Task
	for _, task := range r.tasks {
		if filter.Completed != nil && task.Completed != *filter.Completed {
			continue
		}
		out = append(out, task)
	}
	return out, nil
}

func (r *memTaskRepo) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task.ID == "" {
		task.ID = "generated"
	}
	r.tasks[task.ID] = *task
	return task, nil
}

func (r *memTaskRepo) Update(ctx context.Context, task *domain.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	r.tasks[task.ID] = *task
	return nil
}

func (r *memTaskRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func TestCreateTaskDefaultsPriority(t *testing.T) {
	uc := New(newMemTaskRepo(), nil)

	created, err := uc.CreateTask(context.Background(), &domain.Task{Title: "Water the field"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Priority != domain.PriorityMedium {
		t.Fatalf("expected medium priority default, got %q", created.Priority)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	uc := New(newMemTaskRepo(), nil)

	if _, err := uc.CreateTask(context.Background(), &domain.Task{Title: "   "}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("blank title should be rejected, got %v", err)
	}
	if _, err := uc.CreateTask(context.Background(), &domain.Task{Title: "ok", Priority: "urgent"}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("unknown priority should be rejected, got %v", err)
	}
	if _, err := uc.CreateTask(context.Background(), nil); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("nil payload should be rejected, got %v", err)
	}
}

func TestCompleteTask(t *testing.T) {
	repo := newMemTaskRepo()
	due := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	repo.tasks["t1"] = domain.Task{ID: "t1", Title: "Harvest", DueDate: &due}

	uc := New(repo, nil)

	task, err := uc.CompleteTask(context.Background(), "t1", true)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !task.Completed {
		t.Fatal("task should be completed")
	}

	task, err = uc.CompleteTask(context.Background(), "t1", false)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if task.Completed {
		t.Fatal("task should be reopened")
	}

	if _, err := uc.CompleteTask(context.Background(), "missing", true); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("missing task should report not found, got %v", err)
	}
}
