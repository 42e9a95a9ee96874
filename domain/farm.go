package domain

import "time"

// Farm represents a managed land holding.
type Farm struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Size      float64   `json:"size"`
	SizeUnit  string    `json:"size_unit"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
