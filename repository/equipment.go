package repository

import (
	"context"

	"github.com/farmflow/backend/domain"
)

type EquipmentFilter struct {
	FarmID string
	Type   string
	Limit  int
	Offset int
}

type EquipmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context, filter EquipmentFilter) ([]domain.Equipment, error)
	Create(ctx context.Context, equipment *domain.Equipment) (*domain.Equipment, error)
	Update(ctx context.Context, equipment *domain.Equipment) error
	Delete(ctx context.Context, id string) error
}
