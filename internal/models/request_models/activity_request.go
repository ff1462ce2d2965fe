package request_models

type AddTripRequest struct {
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	Origin      string  `json:"origin" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	DistanceKm  float64 `json:"distance_km" binding:"min=0"`
	Mode        string  `json:"mode" binding:"required"`
	Emissions   float64 `json:"emissions" binding:"min=0"`
}

type AddMealRequest struct {
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	Name        string  `json:"name" binding:"required"`
	MealType    string  `json:"meal_type"`
	CarbonScore float64 `json:"carbon_score" binding:"min=0"`
}

type AddWasteActionRequest struct {
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Action   string `json:"action" binding:"required"`
	Category string `json:"category"`
	Points   int    `json:"points" binding:"min=0"`
}
