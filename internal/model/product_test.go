package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductStockStatus(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		minStock int
		want     string
	}{
		{"well stocked", 10, 5, StockStatusOK},
		{"just above low threshold", 8, 5, StockStatusOK},
		{"low boundary", 7, 5, StockStatusBaixo},
		{"low", 6, 5, StockStatusBaixo},
		{"critical boundary", 5, 5, StockStatusCritico},
		{"below minimum", 4, 5, StockStatusCritico},
		{"empty", 0, 5, StockStatusCritico},
		{"zero minimum zero stock", 0, 0, StockStatusCritico},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Stock: tt.stock, MinStock: tt.minStock}
			assert.Equal(t, tt.want, p.StockStatus())
		})
	}
}
