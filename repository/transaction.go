package repository

import (
	"context"
	"time"

	"github.com/farmflow/backend/domain"
)

type TransactionFilter struct {
	FarmID   string
	CropID   string
	Type     string
	Category string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

type TransactionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	Update(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, id string) error
}
