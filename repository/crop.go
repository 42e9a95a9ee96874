package repository

import (
	"context"

	"github.com/farmflow/backend/domain"
)

type CropFilter struct {
	FarmID string
	Status string
	Limit  int
	Offset int
}

type CropRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Crop, error)
	List(ctx context.Context, filter CropFilter) ([]domain.Crop, error)
	Create(ctx context.Context, crop *domain.Crop) (*domain.Crop, error)
	Update(ctx context.Context, crop *domain.Crop) error
	Delete(ctx context.Context, id string) error
}
