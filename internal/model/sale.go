package model

import (
	"time"

	"gorm.io/gorm"
)

// Payment types accepted at the counter.
const (
	PaymentDinheiro = "DINHEIRO"
	PaymentCartao   = "CARTAO"
	PaymentPix      = "PIX"
	PaymentFiado    = "FIADO"
)

// Sale statuses. Fiado sales start PENDING; everything else completes on
// creation. Cancellation/settlement flows are not implemented here.
const (
	SaleStatusPending   = "PENDING"
	SaleStatusCompleted = "COMPLETED"
	SaleStatusCancelled = "CANCELLED"
)

// Sale represents a single sale made by an employee
type Sale struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Quantity    int            `json:"quantity" gorm:"not null"`
	TotalPrice  float64        `json:"total_price" gorm:"not null"`
	PaymentType string         `json:"payment_type" gorm:"type:varchar(20);not null"`
	Status      string         `json:"status" gorm:"type:varchar(20);default:'COMPLETED'"`
	FiadoCode   *string        `json:"fiado_code,omitempty" gorm:"type:varchar(6);uniqueIndex"`
	Notes       string         `json:"notes" gorm:"type:text"`
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	ProductID   uint           `json:"product_id" gorm:"index;not null"`
	CustomerID  *uint          `json:"customer_id,omitempty" gorm:"index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Product  *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}
