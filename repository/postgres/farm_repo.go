package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farmflow/backend/domain"
	"github.com/farmflow/backend/repository"
)

type farmRepository struct {
	pool *pgxpool.Pool
}

// NewFarmRepository returns a Postgres-backed implementation of FarmRepository.
func NewFarmRepository(pool *pgxpool.Pool) repository.FarmRepository {
	return &farmRepository{pool: pool}
}

func (r *farmRepository) GetByID(ctx context.Context, id string) (*domain.Farm, error) {
	const query = `
	SELECT id, name, size, size_unit, location, created_at, updated_at
	FROM farms
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanFarm(row)
}

func (r *farmRepository) List(ctx context.Context, filter repository.FarmFilter) ([]domain.Farm, error) {
	const query = `
	SELECT id, name, size, size_unit, location, created_at, updated_at
	FROM farms
	ORDER BY name ASC
	LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, clampLimit(filter.Limit), filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var farms []domain.Farm
	for rows.Next() {
		farm, err := scanFarm(rows)
		if err != nil {
			return nil, err
		}
		farms = append(farms, *farm)
	}
	return farms, rows.Err()
}

func (r *farmRepository) Create(ctx context.Context, farm *domain.Farm) (*domain.Farm, error) {
	if farm == nil {
		return nil, domain.ErrInvalidPayload
	}
	if farm.ID == "" {
		farm.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO farms (id, name, size, size_unit, location)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		farm.ID,
		farm.Name,
		farm.Size,
		farm.SizeUnit,
		farm.Location,
	).Scan(&farm.CreatedAt, &farm.UpdatedAt); err != nil {
		return nil, err
	}

	return farm, nil
}

func (r *farmRepository) Update(ctx context.Context, farm *domain.Farm) error {
	if farm == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE farms
	SET name = $2,
		size = $3,
		size_unit = $4,
		location = $5,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		farm.ID,
		farm.Name,
		farm.Size,
		farm.SizeUnit,
		farm.Location,
	).Scan(&farm.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrFarmNotFound
		}
		return err
	}

	return nil
}

func (r *farmRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM farms WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFarmNotFound
	}
	return nil
}

func scanFarm(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Farm, error) {
	var farm domain.Farm
	if err := row.Scan(
		&farm.ID,
		&farm.Name,
		&farm.Size,
		&farm.SizeUnit,
		&farm.Location,
		&farm.CreatedAt,
		&farm.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFarmNotFound
		}
		return nil, err
	}
	return &farm, nil
}
