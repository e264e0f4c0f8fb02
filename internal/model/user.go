package model

import (
	"time"

	"gorm.io/gorm"
)

// User roles. ADMINISTRATIVO unlocks the privileged routes (employees,
// vehicles, reports); ATENDENTE gets the day-to-day sales surface.
const (
	RoleAdministrativo = "ADMINISTRATIVO"
	RoleAtendente      = "ATENDENTE"
)

// User represents an employee account stored in the database
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"type:varchar(100);not null"`
	Email     string         `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"type:varchar(255)"`
	Role      string         `json:"role" gorm:"type:varchar(20);default:'ATENDENTE'"`
	Phone     string         `json:"phone" gorm:"type:varchar(20)"`
	Address   string         `json:"address" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Vehicles []Vehicle `json:"vehicles,omitempty" gorm:"foreignKey:UserID"`
}

// IsAdmin reports whether the user holds the administrative role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdministrativo
}
