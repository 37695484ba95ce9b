// Package model defines the GORM persistence models.
package model

import "time"

// SlotModel is one named snapshot slot holding a whole collection as JSON.
type SlotModel struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Data      []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for the SlotModel.
func (SlotModel) TableName() string {
	return "slots"
}
