package report

import (
	"fmt"
	"time"

	"gas-service/internal/model"
)

// EmployeeSale is one sale line in an employee report.
type EmployeeSale struct {
	ID          uint      `json:"id"`
	Product     string    `json:"product"`
	Customer    string    `json:"customer"`
	Quantity    int       `json:"quantity"`
	TotalPrice  float64   `json:"totalPrice"`
	PaymentType string    `json:"paymentType"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
}

// EmployeeExpense is one expense line in an employee report.
type EmployeeExpense struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Vehicle     string    `json:"vehicle"`
	Date        time.Time `json:"date"`
}

// EmployeeReport summarizes one employee's sales and expenses over the
// requested range. Only COMPLETED sales count toward the totals.
type EmployeeReport struct {
	ID            uint              `json:"id"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Role          string            `json:"role"`
	TotalSales    float64           `json:"totalSales"`
	TotalExpenses float64           `json:"totalExpenses"`
	NetResult     float64           `json:"netResult"`
	SalesCount    int               `json:"salesCount"`
	ExpensesCount int               `json:"expensesCount"`
	Sales         []EmployeeSale    `json:"sales"`
	Expenses      []EmployeeExpense `json:"expenses"`
}

// EmployeeSummary totals the report across all employees.
type EmployeeSummary struct {
	TotalEmployees int     `json:"totalEmployees"`
	TotalSales     float64 `json:"totalSales"`
	TotalExpenses  float64 `json:"totalExpenses"`
	TotalNetResult float64 `json:"totalNetResult"`
}

// BuildEmployeeReports reduces the preloaded employees (with their sales and
// expenses already filtered to the report range) into per-employee reports
// and an overall summary.
func BuildEmployeeReports(employees []model.User, sales map[uint][]model.Sale, expenses map[uint][]model.Expense) ([]EmployeeReport, EmployeeSummary) {
	reports := make([]EmployeeReport, 0, len(employees))
	summary := EmployeeSummary{TotalEmployees: len(employees)}

	for _, employee := range employees {
		r := EmployeeReport{
			ID:       employee.ID,
			Name:     employee.Name,
			Email:    employee.Email,
			Role:     employee.Role,
			Sales:    []EmployeeSale{},
			Expenses: []EmployeeExpense{},
		}

		for _, sale := range sales[employee.ID] {
			if sale.Status == model.SaleStatusCompleted {
				r.TotalSales += sale.TotalPrice
				r.SalesCount++
			}
			r.Sales = append(r.Sales, EmployeeSale{
				ID:          sale.ID,
				Product:     productName(sale.Product),
				Customer:    customerName(sale.Customer),
				Quantity:    sale.Quantity,
				TotalPrice:  sale.TotalPrice,
				PaymentType: sale.PaymentType,
				Status:      sale.Status,
				Date:        sale.CreatedAt,
			})
		}

		for _, expense := range expenses[employee.ID] {
			r.TotalExpenses += expense.Amount
			r.ExpensesCount++
			r.Expenses = append(r.Expenses, EmployeeExpense{
				ID:          expense.ID,
				Description: expense.Description,
				Amount:      expense.Amount,
				Category:    expense.Category,
				Vehicle:     vehicleLabel(expense.Vehicle),
				Date:        expense.CreatedAt,
			})
		}

		r.NetResult = r.TotalSales - r.TotalExpenses
		summary.TotalSales += r.TotalSales
		summary.TotalExpenses += r.TotalExpenses

		reports = append(reports, r)
	}

	summary.TotalNetResult = summary.TotalSales - summary.TotalExpenses
	return reports, summary
}

func productName(p *model.Product) string {
	if p == nil {
		return ""
	}
	return p.Name
}

func customerName(c *model.Customer) string {
	if c == nil {
		return "Consumidor Final"
	}
	return c.Name
}

func vehicleLabel(v *model.Vehicle) string {
	if v == nil {
		return "Sem veículo"
	}
	return fmt.Sprintf("%s - %s", v.Name, v.Plate)
}
