package request_models

type AddInventoryItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"min=0"`
	Unit        string  `json:"unit"`
	ExpiryDate  string  `json:"expiry_date" binding:"required,datetime=2006-01-02"`
	CarbonScore float64 `json:"carbon_score" binding:"min=0"`
}
