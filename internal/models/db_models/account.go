package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Level        int `gorm:"default:1"`
	EcoPoints    int `gorm:"default:0"`

	// Per-user daily carbon goal in kg CO2e. Present on the profile but
	// not read by the summary aggregator, which uses a fixed target.
	DailyGoal float64 `gorm:"default:0"`

	CarbonEntries []CarbonEntry `gorm:"foreignKey:UserID"`
	Badges        []UserBadge   `gorm:"foreignKey:UserID"`
}
