package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farmflow/backend/domain"
	"github.com/farmflow/backend/repository"
)

type cropRepository struct {
	pool *pgxpool.Pool
}

// NewCropRepository returns a Postgres-backed implementation of CropRepository.
func NewCropRepository(pool *pgxpool.Pool) repository.CropRepository {
	return &cropRepository{pool: pool}
}

func (r *cropRepository) GetByID(ctx context.Context, id string) (*domain.Crop, error) {
	const query = `
	SELECT id, farm_id, name, type, planting_date, expected_harvest_date, status, area, notes, created_at, updated_at
	FROM crops
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanCrop(row)
}

func (r *cropRepository) List(ctx context.Context, filter repository.CropFilter) ([]domain.Crop, error) {
	const query = `
	SELECT id, farm_id, name, type, planting_date, expected_harvest_date, status, area, notes, created_at, updated_at
	FROM crops
	WHERE ($1 = '' OR farm_id = $1)
	  AND ($2 = '' OR status = $2)
	ORDER BY planting_date DESC NULLS LAST
	LIMIT $3 OFFSET $4
	`
	rows, err := r.pool.Query(ctx, query, filter.FarmID, filter.Status, clampLimit(filter.Limit), filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var crops []domain.Crop
	for rows.Next() {
		crop, err := scanCrop(rows)
		if err != nil {
			return nil, err
		}
		crops = append(crops, *crop)
	}
	return crops, rows.Err()
}

func (r *cropRepository) Create(ctx context.Context, crop *domain.Crop) (*domain.Crop, error) {
	if crop == nil {
		return nil, domain.ErrInvalidPayload
	}
	if crop.ID == "" {
		crop.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO crops (id, farm_id, name, type, planting_date, expected_harvest_date, status, area, notes)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		crop.ID,
		crop.FarmID,
		crop.Name,
		crop.Type,
		optionalTime(crop.PlantingDate),
		optionalTime(crop.ExpectedHarvestDate),
		crop.Status,
		crop.Area,
		crop.Notes,
	).Scan(&crop.CreatedAt, &crop.UpdatedAt); err != nil {
		return nil, err
	}

	return crop, nil
}

func (r *cropRepository) Update(ctx context.Context, crop *domain.Crop) error {
	if crop == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE crops
	SET farm_id = $2,
		name = $3,
		type = $4,
		planting_date = $5,
		expected_harvest_date = $6,
		status = $7,
		area = $8,
		notes = $9,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		crop.ID,
		crop.FarmID,
		crop.Name,
		crop.Type,
		optionalTime(crop.PlantingDate),
		optionalTime(crop.ExpectedHarvestDate),
		crop.Status,
		crop.Area,
		crop.Notes,
	).Scan(&crop.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCropNotFound
		}
		return err
	}

	return nil
}

func (r *cropRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM crops WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCropNotFound
	}
	return nil
}

func scanCrop(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Crop, error) {
	var crop domain.Crop
	var planting, harvest *time.Time

	if err := row.Scan(
		&crop.ID,
		&crop.FarmID,
		&crop.Name,
		&crop.Type,
		&planting,
		&harvest,
		&crop.Status,
		&crop.Area,
		&crop.Notes,
		&crop.CreatedAt,
		&crop.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCropNotFound
		}
		return nil, err
	}

	crop.PlantingDate = planting
	crop.ExpectedHarvestDate = harvest
	return &crop, nil
}
