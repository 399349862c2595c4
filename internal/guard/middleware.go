package guard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pharmadesk/pharmadesk/client/go-client/internal/models"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/session"
)

// RequireRoles returns a Gin middleware gating a route on the session
// manager's state. Redirect intent is carried as a `redirect` field so the
// view layer, not the transport, performs the navigation.
func RequireRoles(mgr *session.Manager, required ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch Decide(mgr.Snapshot(), required...) {
		case DecisionWait:
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "session restoring, retry shortly"})
		case DecisionRedirectLogin:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required", "redirect": "/login"})
		case DecisionRedirectUnauthorized:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role", "redirect": "/unauthorized"})
		default:
			c.Next()
		}
	}
}
