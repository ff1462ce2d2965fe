package db_models

import (
	"time"

	"github.com/google/uuid"
)

type CarbonCategory string

const (
	CategoryTransport CarbonCategory = "transport"
	CategoryEnergy    CarbonCategory = "energy"
	CategoryFood      CarbonCategory = "food"
	CategoryWaste     CarbonCategory = "waste"
)

// CarbonCategories lists the four fixed categories in display order.
var CarbonCategories = []CarbonCategory{
	CategoryTransport,
	CategoryEnergy,
	CategoryFood,
	CategoryWaste,
}

func (c CarbonCategory) Valid() bool {
	switch c {
	case CategoryTransport, CategoryEnergy, CategoryFood, CategoryWaste:
		return true
	default:
		return false
	}
}

// CarbonEntry is one dated record of CO2-equivalent kilograms attributed
// to a single category. Date is a calendar day stored at midnight UTC.
type CarbonEntry struct {
	BaseModel
	UserID   uuid.UUID      `gorm:"type:uuid;index"`
	Date     time.Time      `gorm:"type:date;index"`
	Amount   float64        // kg CO2e, >= 0
	Category CarbonCategory `gorm:"type:varchar(16)"`

	Account Account `gorm:"foreignKey:UserID"`
}
