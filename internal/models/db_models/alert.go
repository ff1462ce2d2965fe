package db_models

import "github.com/google/uuid"

type Alert struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;index"`
	Title   string
	Message string
	Type    string // info, warning, success
	Read    bool   `gorm:"default:false"`

	Account Account `gorm:"foreignKey:UserID"`
}
