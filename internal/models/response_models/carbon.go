package response_models

// CarbonSummary mirrors the dashboard header: three window totals rounded
// to one decimal plus the fixed daily target.
type CarbonSummary struct {
	Today  float64 `json:"today"`
	Week   float64 `json:"week"`
	Month  float64 `json:"month"`
	Target float64 `json:"target"`
}

// TrendPoint is one bucket in a fixed-length ordered series.
type TrendPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// BreakdownSlice is one category's integer share of the 30-day total.
type BreakdownSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// CarbonDashboard is the fan-out join of summary, weekly trend, and
// category breakdown rendered by the dashboard screen.
type CarbonDashboard struct {
	Summary   CarbonSummary    `json:"summary"`
	Trend     []TrendPoint     `json:"trend"`
	Breakdown []BreakdownSlice `json:"breakdown"`
}
