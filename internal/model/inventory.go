package model

import "time"

// Inventory movement types.
const (
	MovementEntrada = "ENTRADA"
	MovementSaida   = "SAIDA"
	MovementAjuste  = "AJUSTE"
)

// InventoryMovement is an append-only log entry of a stock change.
// Product.Stock is the running total kept alongside each movement.
type InventoryMovement struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Type      string    `json:"type" gorm:"type:varchar(20);not null"`
	Notes     string    `json:"notes" gorm:"type:text"`
	ProductID uint      `json:"product_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
