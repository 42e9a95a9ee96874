package transport

type FarmRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Size     float64 `json:"size"`
	SizeUnit string  `json:"size_unit"`
	Location string  `json:"location"`
}

type CropRequest struct {
	ID                  string  `json:"id"`
	FarmID              string  `json:"farm_id"`
	Name                string  `json:"name"`
	Type                string  `json:"type"`
	PlantingDate        string  `json:"planting_date"`
	ExpectedHarvestDate string  `json:"expected_harvest_date"`
	Status              string  `json:"status"`
	Area                float64 `json:"area"`
	Notes               string  `json:"notes"`
}

type TaskRequest struct {
	ID          string `json:"id"`
	FarmID      string `json:"farm_id"`
	CropID      string `json:"crop_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
}

type TaskCompleteRequest struct {
	Completed bool `json:"completed"`
}

type TransactionRequest struct {
	ID          string  `json:"id"`
	FarmID      string  `json:"farm_id"`
	CropID      string  `json:"crop_id"`
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

type EquipmentRequest struct {
	ID           string  `json:"id"`
	FarmID       string  `json:"farm_id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	PurchaseDate string  `json:"purchase_date"`
	Cost         float64 `json:"cost"`
	Notes        string  `json:"notes"`
}

type NotificationSettingsRequest struct {
	Enabled  *bool `json:"enabled"`
	LeadDays *int  `json:"lead_days"`
}
