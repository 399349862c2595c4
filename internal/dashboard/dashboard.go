// Package dashboard aggregates the landing-view statistics from the report
// and sales endpoints. Pure read-side composition; nothing here mutates
// backend state.
package dashboard

import (
	"context"
	"time"

	"github.com/pharmadesk/pharmadesk/client/go-client/internal/models"
	"github.com/pharmadesk/pharmadesk/client/go-client/pkg/logger"
)

type reportsClient interface {
	GetStock(ctx context.Context) ([]models.StockReport, error)
	GetExpiry(ctx context.Context) ([]models.ExpiryReport, error)
}

type salesClient interface {
	GetAll(ctx context.Context) ([]models.Sale, error)
	GetSummary(ctx context.Context, startDate, endDate string) (*models.SalesSummary, error)
}

type Service struct {
	reports reportsClient
	sales   salesClient
	now     func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(reports reportsClient, sales salesClient, opts ...Option) *Service {
	s := &Service{reports: reports, sales: sales, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Stats builds the dashboard aggregate for the given role. Cashiers cannot
// call the summary endpoint, so their monthly figures are folded locally
// from the sales list.
func (s *Service) Stats(ctx context.Context, role models.Role) (models.DashboardStats, error) {
	var stats models.DashboardStats

	stock, err := s.reports.GetStock(ctx)
	if err != nil {
		return stats, err
	}
	stats.TotalMedicines = len(stock)
	for _, item := range stock {
		if item.Status == models.StockLow || item.Status == models.StockOut {
			stats.LowStockItems++
		}
	}

	expired, err := s.reports.GetExpiry(ctx)
	if err != nil {
		return stats, err
	}
	stats.ExpiredItems = len(expired)

	sales, err := s.sales.GetAll(ctx)
	if err != nil {
		return stats, err
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for _, sale := range sales {
		d, ok := parseSaleDate(sale.SaleDate)
		if !ok {
			logger.Debugf("unparseable sale date %q, skipping", sale.SaleDate)
			continue
		}
		if sameDay(d, now) {
			stats.TodaySales++
		}
	}

	if role == models.RoleCashier {
		// fold the month locally from the sales list
		for _, sale := range sales {
			d, ok := parseSaleDate(sale.SaleDate)
			if !ok || d.Before(monthStart) {
				continue
			}
			stats.MonthlyRevenue = stats.MonthlyRevenue.Add(sale.TotalAmount)
			stats.MonthlyProfit = stats.MonthlyProfit.Add(sale.Profit)
		}
		return stats, nil
	}

	monthEnd := monthStart.AddDate(0, 1, -1)
	sum, err := s.sales.GetSummary(ctx, monthStart.Format("2006-01-02"), monthEnd.Format("2006-01-02"))
	if err != nil {
		return stats, err
	}
	stats.MonthlyRevenue = sum.TotalRevenue
	stats.MonthlyProfit = sum.TotalProfit
	return stats, nil
}

var saleDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseSaleDate(s string) (time.Time, bool) {
	for _, layout := range saleDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
