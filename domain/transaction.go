package domain

import "time"

// Transaction types.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction represents a single financial entry tied to a farm and
// optionally to a crop.
type Transaction struct {
	ID          string    `json:"id"`
	FarmID      string    `json:"farm_id,omitempty"`
	CropID      string    `json:"crop_id,omitempty"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ValidTransactionType(t string) bool {
	return t == TransactionIncome || t == TransactionExpense
}
