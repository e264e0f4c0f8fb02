package model

import "time"

// Expense categories.
const (
	ExpenseCombustivel = "COMBUSTIVEL"
	ExpenseManutencao  = "MANUTENCAO"
	ExpenseAlimentacao = "ALIMENTACAO"
	ExpenseOutros      = "OUTROS"
)

// Expense represents an operational expense, optionally tied to a vehicle
type Expense struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Description string    `json:"description" gorm:"type:varchar(255);not null"`
	Amount      float64   `json:"amount" gorm:"not null"`
	Category    string    `json:"category" gorm:"type:varchar(20);not null"`
	Notes       string    `json:"notes" gorm:"type:text"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	VehicleID   *uint     `json:"vehicle_id,omitempty" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
}
