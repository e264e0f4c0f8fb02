// Package ledger derives fiado balances from a customer's sale and payment
// history. Nothing here touches the database; callers load the rows and the
// functions reduce them.
package ledger

import (
	"time"

	"gas-service/internal/model"
)

// Outstanding computes the lifetime fiado balance for a customer:
// the sum of fiado sale totals minus the sum of recorded payments.
// The result may be negative when the customer has overpaid.
func Outstanding(sales []model.Sale, payments []model.CreditPayment) float64 {
	var fiadoTotal float64
	for _, sale := range sales {
		if sale.PaymentType == model.PaymentFiado {
			fiadoTotal += sale.TotalPrice
		}
	}

	var paid float64
	for _, payment := range payments {
		paid += payment.Amount
	}

	return fiadoTotal - paid
}

// LastPayment returns the timestamp of the most recent payment, or nil when
// the customer has never paid anything.
func LastPayment(payments []model.CreditPayment) *time.Time {
	var latest *time.Time
	for i := range payments {
		if latest == nil || payments[i].PaymentDate.After(*latest) {
			latest = &payments[i].PaymentDate
		}
	}
	return latest
}
