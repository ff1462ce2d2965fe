package response_models

type EnergySummary struct {
	MonthlyUsage     float64 `json:"monthly_usage"`
	MonthlyCost      float64 `json:"monthly_cost"`
	ChangePercentage int     `json:"change_percentage"`
}

type ApplianceUsage struct {
	Name       string  `json:"name"`
	UsageKWh   float64 `json:"usage_kwh"`
	Percentage int     `json:"percentage"`
}
