package finance

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/farmflow/backend/domain"
	"github.com/farmflow/backend/repository"
)

type UseCase struct {
	transactions repository.TransactionRepository
	logger       *zap.Logger
	now          func() time.Time
}

func New(transactions repository.TransactionRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		transactions: transactions,
		logger:       logger,
		now:          time.Now,
	}
}

// WithClock substitutes the time source used by the monthly summary, for tests.
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	if now != nil {
		uc.now = now
	}
	return uc
}

func (uc *UseCase) ListTransactions(ctx context.Context, filter repository.TransactionFilter) ([]domain.Transaction, error) {
	return uc.transactions.List(ctx, filter)
}

func (uc *UseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.transactions.GetByID(ctx, id)
}

func (uc *UseCase) CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	if err := validate(tx); err != nil {
		return nil, err
	}
	return uc.transactions.Create(ctx, tx)
}

func (uc *UseCase) UpdateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	if err := validate(tx); err != nil {
		return nil, err
	}
	if err := uc.transactions.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (uc *UseCase) DeleteTransaction(ctx context.Context, id string) error {
	return uc.transactions.Delete(ctx, id)
}

func validate(tx *domain.Transaction) error {
	if tx == nil {
		return domain.ErrInvalidPayload
	}
	if strings.TrimSpace(tx.Title) == "" {
		return domain.NewError(domain.ErrCodeInvalid, "transaction title is required")
	}
	if !domain.ValidTransactionType(tx.Type) {
		return domain.NewError(domain.ErrCodeInvalid, "transaction type must be income or expense")
	}
	if tx.Amount < 0 {
		return domain.NewError(domain.ErrCodeInvalid, "transaction amount cannot be negative")
	}
	if tx.Date.IsZero() {
		return domain.NewError(domain.ErrCodeInvalid, "transaction date is required")
	}
	return nil
}
