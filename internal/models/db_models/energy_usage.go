package db_models

import (
	"time"

	"github.com/google/uuid"
)

type EnergyUsageEntry struct {
	BaseModel
	UserID        uuid.UUID `gorm:"type:uuid;index"`
	Date          time.Time `gorm:"type:date;index"`
	ApplianceName string
	UsageKWh      float64 `gorm:"column:usage_kwh"` // >= 0
	Cost          float64 // >= 0

	Account Account `gorm:"foreignKey:UserID"`
}
