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

type transactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository returns a Postgres-backed implementation of TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) repository.TransactionRepository {
	return &transactionRepository{pool: pool}
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	const query = `
	SELECT id, farm_id, crop_id, title, type, category, amount, date, description, created_at, updated_at
	FROM transactions
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanTransaction(row)
}

func (r *transactionRepository) List(ctx context.Context, filter repository.TransactionFilter) ([]domain.Transaction, error) {
	const query = `
	SELECT id, farm_id, crop_id, title, type, category, amount, date, description, created_at, updated_at
	FROM transactions
	WHERE ($1 = '' OR farm_id = $1)
	  AND ($2 = '' OR crop_id = $2)
	  AND ($3 = '' OR type = $3)
	  AND ($4 = '' OR category = $4)
	  AND ($5::timestamptz IS NULL OR date >= $5)
	  AND ($6::timestamptz IS NULL OR date <= $6)
	ORDER BY date DESC
	LIMIT $7 OFFSET $8
	`
	rows, err := r.pool.Query(ctx, query,
		filter.FarmID,
		filter.CropID,
		filter.Type,
		filter.Category,
		optionalTime(filter.From),
		optionalTime(filter.To),
		clampLimit(filter.Limit),
		filter.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *tx)
	}
	return transactions, rows.Err()
}

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	if tx == nil {
		return nil, domain.ErrInvalidPayload
	}
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO transactions (id, farm_id, crop_id, title, type, category, amount, date, description)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		tx.ID,
		tx.FarmID,
		tx.CropID,
		tx.Title,
		tx.Type,
		tx.Category,
		tx.Amount,
		tx.Date,
		tx.Description,
	).Scan(&tx.CreatedAt, &tx.UpdatedAt); err != nil {
		return nil, err
	}

	return tx, nil
}

func (r *transactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	if tx == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE transactions
	SET farm_id = $2,
		crop_id = $3,
		title = $4,
		type = $5,
		category = $6,
		amount = $7,
		date = $8,
		description = $9,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		tx.ID,
		tx.FarmID,
		tx.CropID,
		tx.Title,
		tx.Type,
		tx.Category,
		tx.Amount,
		tx.Date,
		tx.Description,
	).Scan(&tx.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM transactions WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func scanTransaction(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Transaction, error) {
	var tx domain.Transaction
	if err := row.Scan(
		&tx.ID,
		&tx.FarmID,
		&tx.CropID,
		&tx.Title,
		&tx.Type,
		&tx.Category,
		&tx.Amount,
		&tx.Date,
		&tx.Description,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}
