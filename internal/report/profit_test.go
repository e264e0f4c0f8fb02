package report

import (
	"testing"
	"time"

	"gas-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowDaily(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	start, end := Window(PeriodDaily, 2022, now)

	assert.True(t, end.Equal(now))
	assert.True(t, start.Equal(now.AddDate(0, 0, -30)), "daily looks back 30 days and ignores the year")
}

func TestWindowWeekly(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	start, end := Window(PeriodWeekly, 2022, now)

	assert.True(t, end.Equal(now))
	assert.True(t, start.Equal(now.AddDate(0, 0, -84)))
}

func TestWindowMonthly(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	start, end := Window(PeriodMonthly, 2024, now)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, now.Location()), start)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, now.Location()), end)
}

func TestWindowYearly(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	start, end := Window(PeriodYearly, 2024, now)

	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, now.Location()), start)
	assert.True(t, end.Equal(now))
}

func TestBuildProfitMonthly(t *testing.T) {
	january := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)

	sales := []model.Sale{{TotalPrice: 1000, CreatedAt: january}}
	expenses := []model.Expense{{Amount: 400, CreatedAt: january.AddDate(0, 0, 5)}}

	r := BuildProfit(PeriodMonthly, 2024, sales, expenses)

	require.Len(t, r.Data, 1)
	bucket := r.Data[0]
	assert.Equal(t, "jan 2024", bucket.Period)
	assert.InDelta(t, 1000.0, bucket.Sales, 1e-9)
	assert.InDelta(t, 400.0, bucket.Expenses, 1e-9)
	assert.InDelta(t, 600.0, bucket.Profit, 1e-9)
	require.NotNil(t, bucket.Margin)
	assert.InDelta(t, 60.0, *bucket.Margin, 1e-9)

	assert.InDelta(t, 600.0, r.Summary.TotalProfit, 1e-9)
	assert.InDelta(t, 60.0, r.Summary.ProfitMargin, 1e-9)
	require.NotNil(t, r.Summary.BestPeriod)
	assert.Equal(t, "jan 2024", r.Summary.BestPeriod.Period)
}

func TestBuildProfitMonthlyZeroSalesMargin(t *testing.T) {
	march := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	expenses := []model.Expense{{Amount: 250, CreatedAt: march}}

	r := BuildProfit(PeriodMonthly, 2024, nil, expenses)

	require.Len(t, r.Data, 1)
	require.NotNil(t, r.Data[0].Margin)
	assert.Zero(t, *r.Data[0].Margin, "margin must be 0, never NaN, when sales are zero")
	assert.Zero(t, r.Summary.ProfitMargin)
}

func TestBuildProfitEmpty(t *testing.T) {
	r := BuildProfit(PeriodMonthly, 2024, nil, nil)

	assert.Empty(t, r.Data)
	assert.Nil(t, r.Summary.BestPeriod)
	assert.Nil(t, r.Summary.WorstPeriod)
	assert.Zero(t, r.Summary.ProfitMargin)
}

func TestBuildProfitBucketsSortedNaturally(t *testing.T) {
	sales := []model.Sale{
		{TotalPrice: 100, CreatedAt: time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC)},
		{TotalPrice: 200, CreatedAt: time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)},
		{TotalPrice: 300, CreatedAt: time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC)},
	}

	r := BuildProfit(PeriodMonthly, 2024, sales, nil)

	require.Len(t, r.Data, 3)
	assert.Equal(t, "fev 2024", r.Data[0].Period)
	assert.Equal(t, "jul 2024", r.Data[1].Period)
	assert.Equal(t, "nov 2024", r.Data[2].Period)
}

func TestBuildProfitWeeklyGroupsBySundayStart(t *testing.T) {
	// Wed Jan 10 2024 and Thu Jan 11 share the week starting Sun Jan 7;
	// Mon Jan 15 falls in the next week.
	sales := []model.Sale{
		{TotalPrice: 100, CreatedAt: time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)},
		{TotalPrice: 50, CreatedAt: time.Date(2024, 1, 11, 10, 0, 0, 0, time.UTC)},
		{TotalPrice: 70, CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)},
	}

	r := BuildProfit(PeriodWeekly, 2024, sales, nil)

	require.Len(t, r.Data, 2)
	assert.Equal(t, "Sem 1", r.Data[0].Period)
	assert.InDelta(t, 150.0, r.Data[0].Sales, 1e-9)
	assert.Equal(t, "Sem 2", r.Data[1].Period)
	assert.InDelta(t, 70.0, r.Data[1].Sales, 1e-9)
	assert.Nil(t, r.Data[0].Margin, "weekly buckets carry no margin")
}

func TestBuildProfitDailyLabels(t *testing.T) {
	sales := []model.Sale{
		{TotalPrice: 10, CreatedAt: time.Date(2024, 1, 3, 23, 0, 0, 0, time.UTC)},
		{TotalPrice: 20, CreatedAt: time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC)},
	}

	r := BuildProfit(PeriodDaily, 2024, sales, nil)

	require.Len(t, r.Data, 1)
	assert.Equal(t, "03/01", r.Data[0].Period)
	assert.InDelta(t, 30.0, r.Data[0].Sales, 1e-9)
}

func TestBuildProfitBestWorstFirstEncounteredWinsTies(t *testing.T) {
	sales := []model.Sale{
		{TotalPrice: 500, CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{TotalPrice: 500, CreatedAt: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)},
	}

	r := BuildProfit(PeriodMonthly, 2024, sales, nil)

	require.NotNil(t, r.Summary.BestPeriod)
	require.NotNil(t, r.Summary.WorstPeriod)
	assert.Equal(t, "jan 2024", r.Summary.BestPeriod.Period)
	assert.Equal(t, "jan 2024", r.Summary.WorstPeriod.Period)
}

func TestBuildProfitSummaryMarginRounded(t *testing.T) {
	sales := []model.Sale{{TotalPrice: 300, CreatedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)}}
	expenses := []model.Expense{{Amount: 100, CreatedAt: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)}}

	r := BuildProfit(PeriodMonthly, 2024, sales, expenses)

	// 200/300 = 66.666...% rounds to one decimal.
	assert.InDelta(t, 66.7, r.Summary.ProfitMargin, 1e-9)
}
