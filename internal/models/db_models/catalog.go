package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Catalog entities are global reference rows, not scoped to a user.

type ShopProduct struct {
	BaseModel
	Name        string
	Description string
	Price       float64
	ImageURL    string
	EcoRating   int
}

type CommunityGroup struct {
	BaseModel
	Name        string
	Description string
	MemberCount int
}

type Challenge struct {
	BaseModel
	Title       string
	Description string
	Points      int
	EndsAt      time.Time `gorm:"index"`
}

type UserChallenge struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	ChallengeID uuid.UUID `gorm:"type:uuid;index"`
	Progress    int       // 0-100
	JoinedAt    int64

	Account   Account   `gorm:"foreignKey:UserID"`
	Challenge Challenge `gorm:"foreignKey:ChallengeID"`
}
