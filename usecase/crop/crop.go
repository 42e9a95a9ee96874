package crop

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/farmflow/backend/domain"
	"github.com/farmflow/backend/repository"
)

type UseCase struct {
	crops  repository.CropRepository
	logger *zap.Logger
}

func New(crops repository.CropRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		crops:  crops,
		logger: logger,
	}
}

func (uc *UseCase) ListCrops(ctx context.Context, filter repository.CropFilter) ([]domain.Crop, error) {
	return uc.crops.List(ctx, filter)
}

func (uc *UseCase) GetCrop(ctx context.Context, id string) (*domain.Crop, error) {
	return uc.crops.GetByID(ctx, id)
}

func (uc *UseCase) CreateCrop(ctx context.Context, crop *domain.Crop) (*domain.Crop, error) {
	if err := validate(crop); err != nil {
		return nil, err
	}
	return uc.crops.Create(ctx, crop)
}

func (uc *UseCase) UpdateCrop(ctx context.Context, crop *domain.Crop) (*domain.Crop, error) {
	if err := validate(crop); err != nil {
		return nil, err
	}
	if err := uc.crops.Update(ctx, crop); err != nil {
		return nil, err
	}
	return crop, nil
}

func (uc *UseCase) DeleteCrop(ctx context.Context, id string) error {
	return uc.crops.Delete(ctx, id)
}

func validate(crop *domain.Crop) error {
	if crop == nil {
		return domain.ErrInvalidPayload
	}
	if crop.FarmID == "" {
		return domain.NewError(domain.ErrCodeInvalid, "crop must belong to a farm")
	}
	if strings.TrimSpace(crop.Name) == "" {
		return domain.NewError(domain.ErrCodeInvalid, "crop name is required")
	}
	if crop.Status == "" {
		crop.Status = domain.CropStatusPlanted
	}
	if !domain.ValidCropStatus(crop.Status) {
		return domain.NewError(domain.ErrCodeInvalid, "unknown crop status")
	}
	return nil
}
