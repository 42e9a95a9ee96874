package domain

import "time"

// Equipment represents a machine or tool owned by a farm.
type Equipment struct {
	ID           string     `json:"id"`
	FarmID       string     `json:"farm_id,omitempty"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	Cost         float64    `json:"cost"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
