package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/pharmadesk/pharmadesk/client/go-client/internal/httpclient"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/models"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) *API {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(httpclient.New(srv.URL))
}

func TestAuthLogin(t *testing.T) {
	a := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"token":"t1","userId":7,"email":"a@x.com","name":"A","role":"CASHIER"}`))
	})

	resp, err := a.Auth.Login(context.Background(), models.LoginRequest{Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	require.Equal(t, "t1", resp.Token)
	require.Equal(t, 7, resp.UserID)
	require.Equal(t, "CASHIER", resp.Role)
}

func TestMedicinesCRUDPaths(t *testing.T) {
	var gotMethod, gotPath string
	a := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{}`))
	})
	ctx := context.Background()

	_, err := a.Medicines.GetByID(ctx, 12)
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, gotMethod)
	require.Equal(t, "/medicines/12", gotPath)

	_, err = a.Medicines.Update(ctx, 12, models.MedicineInput{Name: "Aspirin"})
	require.NoError(t, err)
	require.Equal(t, http.MethodPut, gotMethod)
	require.Equal(t, "/medicines/12", gotPath)

	require.NoError(t, a.Medicines.Delete(ctx, 12))
	require.Equal(t, http.MethodDelete, gotMethod)
}

func TestSalesDateRangeEscapesQuery(t *testing.T) {
	var gotQuery string
	a := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	})

	_, err := a.Sales.GetByDateRange(context.Background(), "2024-06-01 00:00", "2024-06-30 23:59")
	require.NoError(t, err)
	require.Equal(t, "startDate=2024-06-01+00%3A00&endDate=2024-06-30+23%3A59", gotQuery)
}

func TestSalesSummaryDecodesDecimals(t *testing.T) {
	a := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sales/summary", r.URL.Path)
		w.Write([]byte(`{"totalRevenue":1250.50,"totalProfit":310.25}`))
	})

	sum, err := a.Sales.GetSummary(context.Background(), "2024-06-01", "2024-06-30")
	require.NoError(t, err)
	require.True(t, sum.TotalRevenue.Equal(decimal.RequireFromString("1250.50")))
	require.True(t, sum.TotalProfit.Equal(decimal.RequireFromString("310.25")))
}

func TestReportsExpiringDays(t *testing.T) {
	var gotURL string
	a := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.Write([]byte(`[{"medicineId":1,"name":"Amoxicillin","category":"Antibiotic","quantity":4,"expiryDate":"2024-07-01"}]`))
	})

	items, err := a.Reports.GetExpiring(context.Background(), 30)
	require.NoError(t, err)
	require.Equal(t, "/reports/expiring?days=30", gotURL)
	require.Len(t, items, 1)
	require.Equal(t, "Amoxicillin", items[0].Name)
}
