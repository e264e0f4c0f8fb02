package model

import (
	"time"

	"gorm.io/gorm"
)

// Stock status values derived from the stock level against the minimum.
const (
	StockStatusOK      = "OK"
	StockStatusBaixo   = "BAIXO"
	StockStatusCritico = "CRITICO"
)

// Product represents a gas cylinder product (P13, P45, ...) and its stock
type Product struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"type:varchar(255);not null"`
	Description string         `json:"description" gorm:"type:text"`
	Price       float64        `json:"price" gorm:"not null"`
	Stock       int            `json:"stock" gorm:"default:0"`
	MinStock    int            `json:"min_stock" gorm:"default:0"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// StockStatus derives the replenishment status: CRITICO at or below the
// minimum, BAIXO up to 1.5x the minimum, OK above that. Never stored.
func (p *Product) StockStatus() string {
	if p.Stock <= p.MinStock {
		return StockStatusCritico
	}
	if float64(p.Stock) <= float64(p.MinStock)*1.5 {
		return StockStatusBaixo
	}
	return StockStatusOK
}
