package response_models

type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	EcoPoints int    `json:"eco_points"`
	Level     int    `json:"level"`
}
