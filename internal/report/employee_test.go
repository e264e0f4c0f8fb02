package report

import (
	"testing"
	"time"

	"gas-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmployeeReports(t *testing.T) {
	employees := []model.User{
		{ID: 1, Name: "Maria", Email: "maria@test.com", Role: model.RoleAtendente},
		{ID: 2, Name: "Pedro", Email: "pedro@test.com", Role: model.RoleAdministrativo},
	}

	now := time.Now()
	sales := map[uint][]model.Sale{
		1: {
			{ID: 10, TotalPrice: 85, Status: model.SaleStatusCompleted, PaymentType: model.PaymentPix, Quantity: 1, CreatedAt: now,
				Product: &model.Product{Name: "Botijão P13"}},
			{ID: 11, TotalPrice: 45, Status: model.SaleStatusPending, PaymentType: model.PaymentFiado, Quantity: 1, CreatedAt: now},
		},
	}
	expenses := map[uint][]model.Expense{
		1: {
			{ID: 20, Description: "Abastecimento", Amount: 30, Category: model.ExpenseCombustivel, CreatedAt: now,
				Vehicle: &model.Vehicle{Name: "Kombi", Plate: "ABC-1234"}},
		},
	}

	reports, summary := BuildEmployeeReports(employees, sales, expenses)

	require.Len(t, reports, 2)

	maria := reports[0]
	assert.Equal(t, "Maria", maria.Name)
	assert.InDelta(t, 85.0, maria.TotalSales, 1e-9, "pending sales do not count toward totals")
	assert.Equal(t, 1, maria.SalesCount)
	assert.Len(t, maria.Sales, 2, "all sales appear as line items")
	assert.InDelta(t, 30.0, maria.TotalExpenses, 1e-9)
	assert.InDelta(t, 55.0, maria.NetResult, 1e-9)
	assert.Equal(t, "Consumidor Final", maria.Sales[0].Customer)
	assert.Equal(t, "Kombi - ABC-1234", maria.Expenses[0].Vehicle)

	pedro := reports[1]
	assert.Zero(t, pedro.TotalSales)
	assert.Empty(t, pedro.Sales)

	assert.Equal(t, 2, summary.TotalEmployees)
	assert.InDelta(t, 85.0, summary.TotalSales, 1e-9)
	assert.InDelta(t, 30.0, summary.TotalExpenses, 1e-9)
	assert.InDelta(t, 55.0, summary.TotalNetResult, 1e-9)
}
