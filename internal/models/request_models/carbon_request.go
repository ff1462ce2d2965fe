package request_models

type AddCarbonEntryRequest struct {
	Date     string  `json:"date" binding:"required,datetime=2006-01-02"`
	Amount   float64 `json:"amount" binding:"min=0"`
	Category string  `json:"category" binding:"required"`
}

type AddEnergyUsageRequest struct {
	Date          string  `json:"date" binding:"required,datetime=2006-01-02"`
	ApplianceName string  `json:"appliance_name" binding:"required"`
	UsageKWh      float64 `json:"usage_kwh" binding:"min=0"`
	Cost          float64 `json:"cost" binding:"min=0"`
}
