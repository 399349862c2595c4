package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pharmadesk/pharmadesk/client/go-client/internal/apierr"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/models"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/session"
)

// respondError maps a classified failure to a response. Auth failures carry
// a login redirect hint; the session itself was already cleared by the
// pipeline before the error reached a handler.
func respondError(c *gin.Context, err error) {
	var e *apierr.Error
	if errors.As(err, &e) {
		status := e.Status
		switch e.Kind {
		case apierr.KindConnectivity:
			status = http.StatusServiceUnavailable
		case apierr.KindAuth:
			status = http.StatusUnauthorized
		}
		if status == 0 {
			status = http.StatusBadGateway
		}
		body := gin.H{"message": e.UserMessage()}
		if e.Kind == apierr.KindAuth {
			body["redirect"] = "/login"
		}
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": apierr.Message(err)})
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return id, true
}

func (s *Server) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email and password are required"})
		return
	}
	if err := s.mgr.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, session.ErrInvalidLoginResponse) || errors.Is(err, session.ErrLoginSuperseded) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials or server error"})
			return
		}
		respondError(c, err)
		return
	}
	snap := s.mgr.Snapshot()
	c.JSON(http.StatusOK, gin.H{"user": snap.Session.User})
}

func (s *Server) logout(c *gin.Context) {
	s.mgr.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (s *Server) sessionInfo(c *gin.Context) {
	snap := s.mgr.Snapshot()
	out := gin.H{"state": snap.State.String()}
	if snap.State == session.StateAuthenticated {
		out["user"] = snap.Session.User
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) dashboardStats(c *gin.Context) {
	role := s.mgr.Snapshot().Session.User.Role
	stats, err := s.dash.Stats(c.Request.Context(), role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) listMedicines(c *gin.Context) {
	out, err := s.api.Medicines.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getMedicine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := s.api.Medicines.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createMedicine(c *gin.Context) {
	var in models.MedicineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	out, err := s.api.Medicines.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (s *Server) updateMedicine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.MedicineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	out, err := s.api.Medicines.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) deleteMedicine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.api.Medicines.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (s *Server) listSuppliers(c *gin.Context) {
	out, err := s.api.Suppliers.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createSupplier(c *gin.Context) {
	var in models.SupplierInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	out, err := s.api.Suppliers.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (s *Server) updateSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.SupplierInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	out, err := s.api.Suppliers.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) deleteSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.api.Suppliers.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (s *Server) listSales(c *gin.Context) {
	out, err := s.api.Sales.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createSale(c *gin.Context) {
	var in models.SaleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	out, err := s.api.Sales.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (s *Server) salesByDateRange(c *gin.Context) {
	out, err := s.api.Sales.GetByDateRange(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) salesSummary(c *gin.Context) {
	out, err := s.api.Sales.GetSummary(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) listPurchases(c *gin.Context) {
	out, err := s.api.Purchases.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createPurchase(c *gin.Context) {
	var in models.PurchaseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	out, err := s.api.Purchases.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (s *Server) purchasesByDateRange(c *gin.Context) {
	out, err := s.api.Purchases.GetByDateRange(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) stockReport(c *gin.Context) {
	out, err := s.api.Reports.GetStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) expiryReport(c *gin.Context) {
	out, err := s.api.Reports.GetExpiry(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) expiringReport(c *gin.Context) {
	days := 30
	if v := c.Query("days"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil || d < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid days"})
			return
		}
		days = d
	}
	out, err := s.api.Reports.GetExpiring(c.Request.Context(), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) listUsers(c *gin.Context) {
	out, err := s.api.Users.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createUser(c *gin.Context) {
	var in models.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	out, err := s.api.Users.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (s *Server) updateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	out, err := s.api.Users.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) deleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.api.Users.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
