package model

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents a customer, including fiado (store credit) accounts.
// Debt is never stored on the row; it is always derived from the fiado
// sales and credit payments (see internal/ledger).
type Customer struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"type:varchar(100);index;not null"`
	Code        string         `json:"code" gorm:"type:varchar(50);uniqueIndex;not null"`
	Phone       string         `json:"phone" gorm:"type:varchar(20)"`
	Address     string         `json:"address" gorm:"type:text"`
	CreditLimit *float64       `json:"credit_limit,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Sales          []Sale          `json:"sales,omitempty" gorm:"foreignKey:CustomerID"`
	CreditPayments []CreditPayment `json:"credit_payments,omitempty" gorm:"foreignKey:CustomerID"`
}
