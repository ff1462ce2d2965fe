package response_models

type ProfileResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Level     int     `json:"level"`
	EcoPoints int     `json:"eco_points"`
	DailyGoal float64 `json:"daily_goal"`
}
