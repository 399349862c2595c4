package models

import "github.com/shopspring/decimal"

// Medicine is a catalog entry with stock and pricing information.
type Medicine struct {
	MedicineID   int             `json:"medicineId"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Quantity     int             `json:"quantity"`
	ExpiryDate   string          `json:"expiryDate"`
	ReorderLevel int             `json:"reorderLevel"`
	SupplierID   int             `json:"supplierId"`
	SupplierName string          `json:"supplierName"`
}

// MedicineInput is the create/update payload for a medicine.
type MedicineInput struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Quantity     int             `json:"quantity"`
	ExpiryDate   string          `json:"expiryDate"`
	ReorderLevel int             `json:"reorderLevel"`
	SupplierID   int             `json:"supplierId"`
}

type Supplier struct {
	SupplierID int    `json:"supplierId"`
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	Email      string `json:"email"`
}

type SupplierInput struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

// Sale is a completed sale as reported by the backend; profit is computed
// server-side and merely displayed here.
type Sale struct {
	SaleID       int             `json:"saleId"`
	MedicineName string          `json:"medicineName"`
	Quantity     int             `json:"quantity"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Profit       decimal.Decimal `json:"profit"`
	SaleDate     string          `json:"saleDate"`
	UserName     string          `json:"userName"`
}

type SaleInput struct {
	MedicineID int `json:"medicineId"`
	Quantity   int `json:"quantity"`
}

type Purchase struct {
	PurchaseID   int             `json:"purchaseId"`
	MedicineName string          `json:"medicineName"`
	Quantity     int             `json:"quantity"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	PurchaseDate string          `json:"purchaseDate"`
	SupplierName string          `json:"supplierName"`
}

type PurchaseInput struct {
	MedicineID   int             `json:"medicineId"`
	SupplierID   int             `json:"supplierId"`
	Quantity     int             `json:"quantity"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	PurchaseDate string          `json:"purchaseDate"`
}

// Stock status values reported by /reports/stock.
const (
	StockLow    = "LOW"
	StockNormal = "NORMAL"
	StockOut    = "OUT_OF_STOCK"
)

type StockReport struct {
	MedicineID   int             `json:"medicineId"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorderLevel"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Status       string          `json:"status"`
}

type ExpiryReport struct {
	MedicineID int    `json:"medicineId"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Quantity   int    `json:"quantity"`
	ExpiryDate string `json:"expiryDate"`
}

type SalesSummary struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalProfit  decimal.Decimal `json:"totalProfit"`
}

// DashboardStats is the aggregate shown on the landing view.
type DashboardStats struct {
	TotalMedicines int             `json:"totalMedicines"`
	LowStockItems  int             `json:"lowStockItems"`
	ExpiredItems   int             `json:"expiredItems"`
	TodaySales     int             `json:"todaySales"`
	MonthlyRevenue decimal.Decimal `json:"monthlyRevenue"`
	MonthlyProfit  decimal.Decimal `json:"monthlyProfit"`
}
