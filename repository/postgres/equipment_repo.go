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

type equipmentRepository struct {
	pool *pgxpool.Pool
}

// NewEquipmentRepository returns a Postgres-backed implementation of EquipmentRepository.
func NewEquipmentRepository(pool *pgxpool.Pool) repository.EquipmentRepository {
	return &equipmentRepository{pool: pool}
}

func (r *equipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	const query = `
	SELECT id, farm_id, name, type, purchase_date, cost, notes, created_at, updated_at
	FROM equipment
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanEquipment(row)
}

func (r *equipmentRepository) List(ctx context.Context, filter repository.EquipmentFilter) ([]domain.Equipment, error) {
	const query = `
	SELECT id, farm_id, name, type, purchase_date, cost, notes, created_at, updated_at
	FROM equipment
	WHERE ($1 = '' OR farm_id = $1)
	  AND ($2 = '' OR type = $2)
	ORDER BY name ASC
	LIMIT $3 OFFSET $4
	`
	rows, err := r.pool.Query(ctx, query, filter.FarmID, filter.Type, clampLimit(filter.Limit), filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Equipment
	for rows.Next() {
		item, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *equipmentRepository) Create(ctx context.Context, equipment *domain.Equipment) (*domain.Equipment, error) {
	if equipment == nil {
		return nil, domain.ErrInvalidPayload
	}
	if equipment.ID == "" {
		equipment.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO equipment (id, farm_id, name, type, purchase_date, cost, notes)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		equipment.ID,
		equipment.FarmID,
		equipment.Name,
		equipment.Type,
		optionalTime(equipment.PurchaseDate),
		equipment.Cost,
		equipment.Notes,
	).Scan(&equipment.CreatedAt, &equipment.UpdatedAt); err != nil {
		return nil, err
	}

	return equipment, nil
}

func (r *equipmentRepository) Update(ctx context.Context, equipment *domain.Equipment) error {
	if equipment == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE equipment
	SET farm_id = $2,
		name = $3,
		type = $4,
		purchase_date = $5,
		cost = $6,
		notes = $7,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		equipment.ID,
		equipment.FarmID,
		equipment.Name,
		equipment.Type,
		optionalTime(equipment.PurchaseDate),
		equipment.Cost,
		equipment.Notes,
	).Scan(&equipment.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEquipmentNotFound
		}
		return err
	}

	return nil
}

func (r *equipmentRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM equipment WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEquipmentNotFound
	}
	return nil
}

func scanEquipment(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Equipment, error) {
	var equipment domain.Equipment
	var purchased *time.Time

	if err := row.Scan(
		&equipment.ID,
		&equipment.FarmID,
		&equipment.Name,
		&equipment.Type,
		&purchased,
		&equipment.Cost,
		&equipment.Notes,
		&equipment.CreatedAt,
		&equipment.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEquipmentNotFound
		}
		return nil, err
	}

	equipment.PurchaseDate = purchased
	return &equipment, nil
}
