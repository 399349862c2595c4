// Package api exposes the backend's REST resources as typed call groups
// that share one configured HTTP pipeline. Views talk to these groups and
// to nothing lower.
package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pharmadesk/pharmadesk/client/go-client/internal/httpclient"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/models"
)

// API bundles all call groups over a shared client.
type API struct {
	Auth      *AuthAPI
	Users     *UsersAPI
	Suppliers *SuppliersAPI
	Medicines *MedicinesAPI
	Sales     *SalesAPI
	Purchases *PurchasesAPI
	Reports   *ReportsAPI
}

func New(c *httpclient.Client) *API {
	return &API{
		Auth:      &AuthAPI{c: c},
		Users:     &UsersAPI{c: c},
		Suppliers: &SuppliersAPI{c: c},
		Medicines: &MedicinesAPI{c: c},
		Sales:     &SalesAPI{c: c},
		Purchases: &PurchasesAPI{c: c},
		Reports:   &ReportsAPI{c: c},
	}
}

// AuthAPI covers the external authentication service.
type AuthAPI struct {
	c *httpclient.Client
}

func (a *AuthAPI) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	// a rejected login is the caller's failure to report, not a session
	// invalidation
	ctx = httpclient.SkipAuthIntercept(ctx)
	var resp models.LoginResponse
	if err := a.c.Post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type UsersAPI struct {
	c *httpclient.Client
}

func (a *UsersAPI) GetAll(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := a.c.Get(ctx, "/users", &out)
	return out, err
}

func (a *UsersAPI) GetByID(ctx context.Context, id int) (*models.User, error) {
	var out models.User
	if err := a.c.Get(ctx, fmt.Sprintf("/users/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *UsersAPI) Create(ctx context.Context, in models.UserInput) (*models.User, error) {
	var out models.User
	if err := a.c.Post(ctx, "/users", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *UsersAPI) Update(ctx context.Context, id int, in models.UserInput) (*models.User, error) {
	var out models.User
	if err := a.c.Put(ctx, fmt.Sprintf("/users/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *UsersAPI) Delete(ctx context.Context, id int) error {
	return a.c.Delete(ctx, fmt.Sprintf("/users/%d", id))
}

type SuppliersAPI struct {
	c *httpclient.Client
}

func (a *SuppliersAPI) GetAll(ctx context.Context) ([]models.Supplier, error) {
	var out []models.Supplier
	err := a.c.Get(ctx, "/suppliers", &out)
	return out, err
}

func (a *SuppliersAPI) GetByID(ctx context.Context, id int) (*models.Supplier, error) {
	var out models.Supplier
	if err := a.c.Get(ctx, fmt.Sprintf("/suppliers/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *SuppliersAPI) Create(ctx context.Context, in models.SupplierInput) (*models.Supplier, error) {
	var out models.Supplier
	if err := a.c.Post(ctx, "/suppliers", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *SuppliersAPI) Update(ctx context.Context, id int, in models.SupplierInput) (*models.Supplier, error) {
	var out models.Supplier
	if err := a.c.Put(ctx, fmt.Sprintf("/suppliers/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *SuppliersAPI) Delete(ctx context.Context, id int) error {
	return a.c.Delete(ctx, fmt.Sprintf("/suppliers/%d", id))
}

type MedicinesAPI struct {
	c *httpclient.Client
}

func (a *MedicinesAPI) GetAll(ctx context.Context) ([]models.Medicine, error) {
	var out []models.Medicine
	err := a.c.Get(ctx, "/medicines", &out)
	return out, err
}

func (a *MedicinesAPI) GetByID(ctx context.Context, id int) (*models.Medicine, error) {
	var out models.Medicine
	if err := a.c.Get(ctx, fmt.Sprintf("/medicines/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *MedicinesAPI) Create(ctx context.Context, in models.MedicineInput) (*models.Medicine, error) {
	var out models.Medicine
	if err := a.c.Post(ctx, "/medicines", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *MedicinesAPI) Update(ctx context.Context, id int, in models.MedicineInput) (*models.Medicine, error) {
	var out models.Medicine
	if err := a.c.Put(ctx, fmt.Sprintf("/medicines/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *MedicinesAPI) Delete(ctx context.Context, id int) error {
	return a.c.Delete(ctx, fmt.Sprintf("/medicines/%d", id))
}

type SalesAPI struct {
	c *httpclient.Client
}

func (a *SalesAPI) GetAll(ctx context.Context) ([]models.Sale, error) {
	var out []models.Sale
	err := a.c.Get(ctx, "/sales", &out)
	return out, err
}

func (a *SalesAPI) Create(ctx context.Context, in models.SaleInput) (*models.Sale, error) {
	var out models.Sale
	if err := a.c.Post(ctx, "/sales", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *SalesAPI) GetByDateRange(ctx context.Context, startDate, endDate string) ([]models.Sale, error) {
	var out []models.Sale
	err := a.c.Get(ctx, dateRangePath("/sales/date-range", startDate, endDate), &out)
	return out, err
}

func (a *SalesAPI) GetSummary(ctx context.Context, startDate, endDate string) (*models.SalesSummary, error) {
	var out models.SalesSummary
	if err := a.c.Get(ctx, dateRangePath("/sales/summary", startDate, endDate), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type PurchasesAPI struct {
	c *httpclient.Client
}

func (a *PurchasesAPI) GetAll(ctx context.Context) ([]models.Purchase, error) {
	var out []models.Purchase
	err := a.c.Get(ctx, "/purchases", &out)
	return out, err
}

func (a *PurchasesAPI) Create(ctx context.Context, in models.PurchaseInput) (*models.Purchase, error) {
	var out models.Purchase
	if err := a.c.Post(ctx, "/purchases", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *PurchasesAPI) GetByDateRange(ctx context.Context, startDate, endDate string) ([]models.Purchase, error) {
	var out []models.Purchase
	err := a.c.Get(ctx, dateRangePath("/purchases/date-range", startDate, endDate), &out)
	return out, err
}

type ReportsAPI struct {
	c *httpclient.Client
}

func (a *ReportsAPI) GetStock(ctx context.Context) ([]models.StockReport, error) {
	var out []models.StockReport
	err := a.c.Get(ctx, "/reports/stock", &out)
	return out, err
}

func (a *ReportsAPI) GetExpiry(ctx context.Context) ([]models.ExpiryReport, error) {
	var out []models.ExpiryReport
	err := a.c.Get(ctx, "/reports/expiry", &out)
	return out, err
}

func (a *ReportsAPI) GetExpiring(ctx context.Context, days int) ([]models.ExpiryReport, error) {
	var out []models.ExpiryReport
	err := a.c.Get(ctx, fmt.Sprintf("/reports/expiring?days=%d", days), &out)
	return out, err
}

func dateRangePath(base, startDate, endDate string) string {
	return fmt.Sprintf("%s?startDate=%s&endDate=%s", base, url.QueryEscape(startDate), url.QueryEscape(endDate))
}
