// Package web is the view layer: a local HTTP front-end over the typed API
// groups. Handlers are deliberately thin; they fetch, notify and render,
// and never classify errors themselves.
package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pharmadesk/pharmadesk/client/go-client/internal/api"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/config"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/dashboard"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/guard"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/models"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/session"
)

var (
	allRoles     = []models.Role{models.RoleAdmin, models.RolePharmacist, models.RoleCashier}
	managerRoles = []models.Role{models.RoleAdmin, models.RolePharmacist}
	adminOnly    = []models.Role{models.RoleAdmin}
)

type Server struct {
	cfg  *config.Config
	eng  *gin.Engine
	mgr  *session.Manager
	api  *api.API
	dash *dashboard.Service
}

func New(cfg *config.Config, mgr *session.Manager, groups *api.API, dash *dashboard.Service) *Server {
	s := &Server{
		cfg:  cfg,
		eng:  gin.New(),
		mgr:  mgr,
		api:  groups,
		dash: dash,
	}
	s.eng.Use(gin.Logger(), gin.Recovery())

	// permissive CORS for the local dev origin
	s.eng.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})

	s.routes()
	return s
}

func (s *Server) routes() {
	s.eng.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
	s.eng.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.eng.POST("/login", s.login)
	s.eng.POST("/logout", s.logout)
	s.eng.GET("/session", s.sessionInfo)

	s.eng.GET("/dashboard", guard.RequireRoles(s.mgr, allRoles...), s.dashboardStats)

	med := s.eng.Group("/medicines")
	med.GET("", guard.RequireRoles(s.mgr, allRoles...), s.listMedicines)
	med.GET("/:id", guard.RequireRoles(s.mgr, allRoles...), s.getMedicine)
	med.POST("", guard.RequireRoles(s.mgr, managerRoles...), s.createMedicine)
	med.PUT("/:id", guard.RequireRoles(s.mgr, managerRoles...), s.updateMedicine)
	med.DELETE("/:id", guard.RequireRoles(s.mgr, managerRoles...), s.deleteMedicine)

	sup := s.eng.Group("/suppliers", guard.RequireRoles(s.mgr, managerRoles...))
	sup.GET("", s.listSuppliers)
	sup.POST("", s.createSupplier)
	sup.PUT("/:id", s.updateSupplier)
	sup.DELETE("/:id", s.deleteSupplier)

	sales := s.eng.Group("/sales", guard.RequireRoles(s.mgr, allRoles...))
	sales.GET("", s.listSales)
	sales.POST("", s.createSale)
	sales.GET("/date-range", s.salesByDateRange)
	sales.GET("/summary", s.salesSummary)

	pur := s.eng.Group("/purchases", guard.RequireRoles(s.mgr, managerRoles...))
	pur.GET("", s.listPurchases)
	pur.POST("", s.createPurchase)
	pur.GET("/date-range", s.purchasesByDateRange)

	rep := s.eng.Group("/reports", guard.RequireRoles(s.mgr, managerRoles...))
	rep.GET("/stock", s.stockReport)
	rep.GET("/expiry", s.expiryReport)
	rep.GET("/expiring", s.expiringReport)

	usr := s.eng.Group("/users", guard.RequireRoles(s.mgr, adminOnly...))
	usr.GET("", s.listUsers)
	usr.POST("", s.createUser)
	usr.PUT("/:id", s.updateUser)
	usr.DELETE("/:id", s.deleteUser)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine { return s.eng }

func (s *Server) Run() error {
	addr := fmt.Sprintf("%s:%s", s.cfg.Web.Host, s.cfg.Web.Port)
	return s.eng.Run(addr)
}
