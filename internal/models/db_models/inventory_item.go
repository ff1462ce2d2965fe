package db_models

import (
	"time"

	"github.com/google/uuid"
)

type InventoryItem struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Category    string
	Quantity    float64
	Unit        string
	ExpiryDate  time.Time `gorm:"type:date;index"` // may already be past
	CarbonScore float64

	Account Account `gorm:"foreignKey:UserID"`
}
