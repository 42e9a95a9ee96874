package equipment

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/farmflow/backend/domain"
	"github.com/farmflow/backend/repository"
)

type UseCase struct {
	equipment repository.EquipmentRepository
	logger    *zap.Logger
}

func New(equipment repository.EquipmentRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		equipment: equipment,
		logger:    logger,
	}
}

func (uc *UseCase) ListEquipment(ctx context.Context, filter repository.EquipmentFilter) ([]domain.Equipment, error) {
	return uc.equipment.List(ctx, filter)
}

func (uc *UseCase) GetEquipment(ctx context.Context, id string) (*domain.Equipment, error) {
	return uc.equipment.GetByID(ctx, id)
}

func (uc *UseCase) CreateEquipment(ctx context.Context, item *domain.Equipment) (*domain.Equipment, error) {
	if err := validate(item); err != nil {
		return nil, err
	}
	return uc.equipment.Create(ctx, item)
}

func (uc *UseCase) UpdateEquipment(ctx context.Context, item *domain.Equipment) (*domain.Equipment, error) {
	if err := validate(item); err != nil {
		return nil, err
	}
	if err := uc.equipment.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *UseCase) DeleteEquipment(ctx context.Context, id string) error {
	return uc.equipment.Delete(ctx, id)
}

func validate(item *domain.Equipment) error {
	if item == nil {
		return domain.ErrInvalidPayload
	}
	if strings.TrimSpace(item.Name) == "" {
		return domain.NewError(domain.ErrCodeInvalid, "equipment name is required")
	}
	if item.Cost < 0 {
		return domain.NewError(domain.ErrCodeInvalid, "equipment cost cannot be negative")
	}
	return nil
}
