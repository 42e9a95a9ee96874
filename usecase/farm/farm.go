package farm

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/farmflow/backend/domain"
	"github.com/farmflow/backend/repository"
)

type UseCase struct {
	farms  repository.FarmRepository
	logger *zap.Logger
}

func New(farms repository.FarmRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		farms:  farms,
		logger: logger,
	}
}

func (uc *UseCase) ListFarms(ctx context.Context, filter repository.FarmFilter) ([]domain.Farm, error) {
	return uc.farms.List(ctx, filter)
}

func (uc *UseCase) GetFarm(ctx context.Context, id string) (*domain.Farm, error) {
	return uc.farms.GetByID(ctx, id)
}

func (uc *UseCase) CreateFarm(ctx context.Context, farm *domain.Farm) (*domain.Farm, error) {
	if err := validate(farm); err != nil {
		return nil, err
	}
	return uc.farms.Create(ctx, farm)
}

func (uc *UseCase) UpdateFarm(ctx context.Context, farm *domain.Farm) (*domain.Farm, error) {
	if err := validate(farm); err != nil {
		return nil, err
	}
	if err := uc.farms.Update(ctx, farm); err != nil {
		return nil, err
	}
	return farm, nil
}

func (uc *UseCase) DeleteFarm(ctx context.Context, id string) error {
	return uc.farms.Delete(ctx, id)
}

func validate(farm *domain.Farm) error {
	if farm == nil {
		return domain.ErrInvalidPayload
	}
	if strings.TrimSpace(farm.Name) == "" {
		return domain.NewError(domain.ErrCodeInvalid, "farm name is required")
	}
	if farm.Size < 0 {
		return domain.NewError(domain.ErrCodeInvalid, "farm size cannot be negative")
	}
	if farm.SizeUnit == "" {
		farm.SizeUnit = "acres"
	}
	return nil
}
