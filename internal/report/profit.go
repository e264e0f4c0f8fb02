// Package report aggregates sales and expenses into the dashboard reports.
// The functions are single-pass reductions over rows the handlers load; the
// package itself never queries the database.
package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gas-service/internal/model"
)

// Report periods accepted by the profit endpoint.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// pt-BR month abbreviations used in monthly bucket labels.
var monthAbbrev = []string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// ProfitBucket is one aggregation window in the profit report. Margin is
// only populated for monthly buckets.
type ProfitBucket struct {
	Period   string   `json:"period"`
	Sales    float64  `json:"sales"`
	Expenses float64  `json:"expenses"`
	Profit   float64  `json:"profit"`
	Margin   *float64 `json:"margin,omitempty"`
}

// ProfitSummary totals the whole report and points at the single best and
// worst bucket by profit. Best/worst are absent when there are no buckets.
type ProfitSummary struct {
	TotalSales    float64       `json:"totalSales"`
	TotalExpenses float64       `json:"totalExpenses"`
	TotalProfit   float64       `json:"totalProfit"`
	ProfitMargin  float64       `json:"profitMargin"`
	BestPeriod    *ProfitBucket `json:"bestPeriod"`
	WorstPeriod   *ProfitBucket `json:"worstPeriod"`
}

// ProfitReport is the payload returned to the dashboard.
type ProfitReport struct {
	Period  string         `json:"period"`
	Year    int            `json:"year"`
	Data    []ProfitBucket `json:"data"`
	Summary ProfitSummary  `json:"summary"`
}

// Window computes the date range queried for a report period. Daily and
// weekly look back from now and ignore the year; monthly covers the given
// calendar year; yearly covers the last five years up to now.
func Window(period string, year int, now time.Time) (time.Time, time.Time) {
	switch period {
	case PeriodDaily:
		return now.AddDate(0, 0, -30), now
	case PeriodWeekly:
		return now.AddDate(0, 0, -84), now
	case PeriodYearly:
		return time.Date(year-4, time.January, 1, 0, 0, 0, 0, now.Location()), now
	default: // monthly
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
		end := time.Date(year, time.December, 31, 0, 0, 0, 0, now.Location())
		return start, end
	}
}

// accumulator groups amounts under a sortable bucket key, keeping one
// representative timestamp for label formatting.
type accumulator struct {
	key      string
	when     time.Time
	sales    float64
	expenses float64
}

// BuildProfit reduces the loaded sales and expenses into sorted buckets plus
// a summary. Callers are expected to pass only COMPLETED sales within the
// report window.
func BuildProfit(period string, year int, sales []model.Sale, expenses []model.Expense) ProfitReport {
	buckets := map[string]*accumulator{}

	add := func(when time.Time, saleAmount, expenseAmount float64) {
		key := bucketKey(period, when)
		acc, ok := buckets[key]
		if !ok {
			acc = &accumulator{key: key, when: when}
			buckets[key] = acc
		}
		acc.sales += saleAmount
		acc.expenses += expenseAmount
	}

	for _, sale := range sales {
		add(sale.CreatedAt, sale.TotalPrice, 0)
	}
	for _, expense := range expenses {
		add(expense.CreatedAt, 0, expense.Amount)
	}

	ordered := make([]*accumulator, 0, len(buckets))
	for _, acc := range buckets {
		ordered = append(ordered, acc)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].key < ordered[j].key })

	data := make([]ProfitBucket, 0, len(ordered))
	for i, acc := range ordered {
		bucket := ProfitBucket{
			Period:   bucketLabel(period, acc.when, i),
			Sales:    acc.sales,
			Expenses: acc.expenses,
			Profit:   acc.sales - acc.expenses,
		}
		if period == PeriodMonthly {
			margin := 0.0
			if acc.sales > 0 {
				margin = round1(bucket.Profit / acc.sales * 100)
			}
			bucket.Margin = &margin
		}
		data = append(data, bucket)
	}

	summary := summarize(data)

	return ProfitReport{
		Period:  period,
		Year:    year,
		Data:    data,
		Summary: summary,
	}
}

// bucketKey yields a key that sorts in natural period order.
func bucketKey(period string, when time.Time) string {
	switch period {
	case PeriodDaily:
		return when.Format("2006-01-02")
	case PeriodWeekly:
		return weekStart(when).Format("2006-01-02")
	case PeriodYearly:
		return when.Format("2006")
	default:
		return when.Format("2006-01")
	}
}

// bucketLabel formats the display label for a sorted bucket. Weeks are
// numbered sequentially after sorting.
func bucketLabel(period string, when time.Time, index int) string {
	switch period {
	case PeriodDaily:
		return when.Format("02/01")
	case PeriodWeekly:
		return fmt.Sprintf("Sem %d", index+1)
	case PeriodYearly:
		return when.Format("2006")
	default:
		return fmt.Sprintf("%s %d", monthAbbrev[when.Month()-1], when.Year())
	}
}

// weekStart returns midnight of the Sunday starting the week of t.
func weekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func summarize(data []ProfitBucket) ProfitSummary {
	var summary ProfitSummary
	for _, bucket := range data {
		summary.TotalSales += bucket.Sales
		summary.TotalExpenses += bucket.Expenses
	}
	summary.TotalProfit = summary.TotalSales - summary.TotalExpenses
	if summary.TotalSales > 0 {
		summary.ProfitMargin = round1(summary.TotalProfit / summary.TotalSales * 100)
	}

	// Strict comparisons keep the first-encountered bucket on ties.
	for i := range data {
		if summary.BestPeriod == nil || data[i].Profit > summary.BestPeriod.Profit {
			summary.BestPeriod = &data[i]
		}
		if summary.WorstPeriod == nil || data[i].Profit < summary.WorstPeriod.Profit {
			summary.WorstPeriod = &data[i]
		}
	}

	return summary
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
