package repository

import (
	"context"

	"github.com/farmflow/backend/domain"
)

type FarmFilter struct {
	Limit  int
	Offset int
}

type FarmRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Farm, error)
	List(ctx context.Context, filter FarmFilter) ([]domain.Farm, error)
	Create(ctx context.Context, farm *domain.Farm) (*domain.Farm, error)
	Update(ctx context.Context, farm *domain.Farm) error
	Delete(ctx context.Context, id string) error
}
