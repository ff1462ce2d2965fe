package response_models

type TripView struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	DistanceKm  float64 `json:"distance_km"`
	Mode        string  `json:"mode"`
	Emissions   float64 `json:"emissions"`
}

type MealView struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Name        string  `json:"name"`
	MealType    string  `json:"meal_type"`
	CarbonScore float64 `json:"carbon_score"`
}

type WasteActionView struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Action   string `json:"action"`
	Category string `json:"category"`
	Points   int    `json:"points"`
}
