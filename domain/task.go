package domain

import "time"

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task represents a scheduled farm activity. Tasks without a due date are
// valid; they are simply never picked up by the reminder scheduler.
type Task struct {
	ID          string     `json:"id"`
	FarmID      string     `json:"farm_id,omitempty"`
	CropID      string     `json:"crop_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    string     `json:"priority"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (t *Task) IsHighPriority() bool {
	return t != nil && t.Priority == PriorityHigh
}

func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
