package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Date        time.Time `gorm:"type:date;index"`
	Origin      string
	Destination string
	DistanceKm  float64
	Mode        string
	Emissions   float64 // 0 permitted for zero-emission modes

	Account Account `gorm:"foreignKey:UserID"`
}

type Meal struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Date        time.Time `gorm:"type:date;index"`
	Name        string
	MealType    string
	CarbonScore float64

	Account Account `gorm:"foreignKey:UserID"`
}

type WasteAction struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;index"`
	Date     time.Time `gorm:"type:date;index"`
	Action   string
	Category string
	Points   int

	Account Account `gorm:"foreignKey:UserID"`
}
