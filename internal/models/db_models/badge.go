package db_models

import "github.com/google/uuid"

// Badge is global reference data; earned status lives in UserBadge.
type Badge struct {
	BaseModel
	Name        string `gorm:"unique"`
	Description string
	Icon        string
}

type UserBadge struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;index"`
	BadgeID  uuid.UUID `gorm:"type:uuid;index"`
	Progress int       // 0-100
	EarnedAt int64

	Account Account `gorm:"foreignKey:UserID"`
	Badge   Badge   `gorm:"foreignKey:BadgeID"`
}
