package response_models

// ExpirySeverity drives the colored badge on the inventory screen.
type ExpirySeverity string

const (
	SeverityUrgent  ExpirySeverity = "urgent"  // expires within 1 day (or already expired)
	SeverityWarning ExpirySeverity = "warning" // expires within 3 days
	SeverityOk      ExpirySeverity = "ok"
)

type InventoryItemView struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	Quantity        float64        `json:"quantity"`
	Unit            string         `json:"unit"`
	ExpiryDate      string         `json:"expiry_date"`
	CarbonScore     float64        `json:"carbon_score"`
	DaysUntilExpiry int            `json:"days_until_expiry"`
	Severity        ExpirySeverity `json:"severity"`
}

// ExpiryNotice is the single user-facing "expiring soon" aggregation.
type ExpiryNotice struct {
	Count     int      `json:"count"`
	ItemNames []string `json:"item_names"`
	Message   string   `json:"message"`
}
