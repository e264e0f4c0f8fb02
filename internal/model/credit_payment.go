package model

import "time"

// CreditPayment is an append-only record of money received against a
// customer's fiado balance. It never mutates the sale rows; the outstanding
// debt is recomputed from sales minus payments on every read.
type CreditPayment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Amount      float64   `json:"amount" gorm:"not null"`
	Notes       string    `json:"notes" gorm:"type:text"`
	CustomerID  uint      `json:"customer_id" gorm:"index;not null"`
	PaymentDate time.Time `json:"payment_date" gorm:"autoCreateTime"`

	// Relations
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}
