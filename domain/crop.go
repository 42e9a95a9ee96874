package domain

import "time"

// Crop growth statuses, in lifecycle order.
const (
	CropStatusPlanted   = "planted"
	CropStatusGrowing   = "growing"
	CropStatusReady     = "ready"
	CropStatusHarvested = "harvested"
)

// Crop represents a planting on a farm.
type Crop struct {
	ID                  string     `json:"id"`
	FarmID              string     `json:"farm_id"`
	Name                string     `json:"name"`
	Type                string     `json:"type"`
	PlantingDate        *time.Time `json:"planting_date,omitempty"`
	ExpectedHarvestDate *time.Time `json:"expected_harvest_date,omitempty"`
	Status              string     `json:"status"`
	Area                float64    `json:"area"`
	Notes               string     `json:"notes,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func ValidCropStatus(status string) bool {
	switch status {
	case CropStatusPlanted, CropStatusGrowing, CropStatusReady, CropStatusHarvested:
		return true
	}
	return false
}
