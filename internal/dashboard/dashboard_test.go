package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/pharmadesk/pharmadesk/client/go-client/internal/models"
)

type fakeReports struct {
	stock  []models.StockReport
	expiry []models.ExpiryReport
}

func (f *fakeReports) GetStock(context.Context) ([]models.StockReport, error)   { return f.stock, nil }
func (f *fakeReports) GetExpiry(context.Context) ([]models.ExpiryReport, error) { return f.expiry, nil }

type fakeSales struct {
	sales       []models.Sale
	summary     *models.SalesSummary
	summaryHits int
}

func (f *fakeSales) GetAll(context.Context) ([]models.Sale, error) { return f.sales, nil }
func (f *fakeSales) GetSummary(_ context.Context, _, _ string) (*models.SalesSummary, error) {
	f.summaryHits++
	return f.summary, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testClock() time.Time {
	return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
}

func fixtures() (*fakeReports, *fakeSales) {
	reports := &fakeReports{
		stock: []models.StockReport{
			{MedicineID: 1, Status: models.StockNormal},
			{MedicineID: 2, Status: models.StockLow},
			{MedicineID: 3, Status: models.StockOut},
		},
		expiry: []models.ExpiryReport{{MedicineID: 3}},
	}
	sales := &fakeSales{
		sales: []models.Sale{
			{SaleID: 1, SaleDate: "2024-06-15T09:00:00", TotalAmount: dec("10.00"), Profit: dec("2.00")},
			{SaleID: 2, SaleDate: "2024-06-10", TotalAmount: dec("20.00"), Profit: dec("5.00")},
			{SaleID: 3, SaleDate: "2024-05-30", TotalAmount: dec("99.00"), Profit: dec("40.00")},
			{SaleID: 4, SaleDate: "garbage", TotalAmount: dec("1.00"), Profit: dec("1.00")},
		},
		summary: &models.SalesSummary{TotalRevenue: dec("30.00"), TotalProfit: dec("7.00")},
	}
	return reports, sales
}

func TestStats_AdminUsesSummaryEndpoint(t *testing.T) {
	reports, sales := fixtures()
	svc := NewService(reports, sales, WithClock(testClock))

	stats, err := svc.Stats(context.Background(), models.RoleAdmin)
	require.NoError(t, err)

	require.Equal(t, 3, stats.TotalMedicines)
	require.Equal(t, 2, stats.LowStockItems)
	require.Equal(t, 1, stats.ExpiredItems)
	require.Equal(t, 1, stats.TodaySales)
	require.True(t, stats.MonthlyRevenue.Equal(dec("30.00")))
	require.True(t, stats.MonthlyProfit.Equal(dec("7.00")))
	require.Equal(t, 1, sales.summaryHits)
}

func TestStats_CashierFoldsLocally(t *testing.T) {
	reports, sales := fixtures()
	svc := NewService(reports, sales, WithClock(testClock))

	stats, err := svc.Stats(context.Background(), models.RoleCashier)
	require.NoError(t, err)

	// May sale and the unparseable one are excluded from the June fold
	require.True(t, stats.MonthlyRevenue.Equal(dec("30.00")), "got %s", stats.MonthlyRevenue)
	require.True(t, stats.MonthlyProfit.Equal(dec("7.00")))
	require.Equal(t, 0, sales.summaryHits, "cashier must not call the summary endpoint")
}
