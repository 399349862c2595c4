package guard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/pharmadesk/pharmadesk/client/go-client/internal/models"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/notify"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/session"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/storage"
)

func restoredManager(t *testing.T, role models.Role) *session.Manager {
	t.Helper()
	store := storage.NewMemStore()
	u := models.User{UserID: 7, Email: "a@x.com", Name: "A", Role: role}
	b, err := json.Marshal(u)
	require.NoError(t, err)
	store.Put(storage.KeyToken, "t1")
	store.Put(storage.KeyUser, string(b))
	store.Put(storage.KeyTokenTimestamp, strconv.FormatInt(time.Now().UnixMilli(), 10))

	mgr := session.NewManager(store, &notify.Recorder{}, nil, session.WithCheckInterval(0))
	mgr.Restore(context.Background())
	t.Cleanup(mgr.Close)
	return mgr
}

func serveGuarded(t *testing.T, mgr *session.Manager, required ...models.Role) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	g := gin.New()
	g.GET("/suppliers", RequireRoles(mgr, required...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	rw := httptest.NewRecorder()
	g.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/suppliers", nil))
	return rw
}

func TestRequireRoles_AllowsMatchingRole(t *testing.T) {
	mgr := restoredManager(t, models.RolePharmacist)
	rw := serveGuarded(t, mgr, models.RoleAdmin, models.RolePharmacist)
	require.Equal(t, http.StatusOK, rw.Code)
}

func TestRequireRoles_ForbidsMismatch(t *testing.T) {
	mgr := restoredManager(t, models.RoleCashier)
	rw := serveGuarded(t, mgr, models.RoleAdmin, models.RolePharmacist)
	require.Equal(t, http.StatusForbidden, rw.Code)
	require.Contains(t, rw.Body.String(), "/unauthorized")
}

func TestRequireRoles_AnonymousRedirectsToLogin(t *testing.T) {
	store := storage.NewMemStore()
	mgr := session.NewManager(store, &notify.Recorder{}, nil, session.WithCheckInterval(0))
	mgr.Restore(context.Background())
	t.Cleanup(mgr.Close)

	rw := serveGuarded(t, mgr, models.RoleAdmin)
	require.Equal(t, http.StatusUnauthorized, rw.Code)
	require.Contains(t, rw.Body.String(), "/login")
}

func TestRequireRoles_UninitializedWaits(t *testing.T) {
	mgr := session.NewManager(storage.NewMemStore(), &notify.Recorder{}, nil, session.WithCheckInterval(0))
	t.Cleanup(mgr.Close)

	rw := serveGuarded(t, mgr, models.RoleAdmin)
	require.Equal(t, http.StatusServiceUnavailable, rw.Code)
}
