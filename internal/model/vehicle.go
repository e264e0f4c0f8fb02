package model

import (
	"time"

	"gorm.io/gorm"
)

// Vehicle represents a delivery vehicle. A vehicle has at most one assigned
// driver (UserID) at any time; the assignment handler enforces the single
// vehicle per user rule.
type Vehicle struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"type:varchar(100);not null"`
	Plate     string         `json:"plate" gorm:"type:varchar(20);uniqueIndex;not null"`
	Model     string         `json:"model" gorm:"type:varchar(100)"`
	Year      *int           `json:"year,omitempty"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	UserID    *uint          `json:"user_id,omitempty" gorm:"index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Expenses []Expense `json:"expenses,omitempty" gorm:"foreignKey:VehicleID"`
}
