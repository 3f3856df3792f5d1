package middleware

import (
	"net/http"

	"go-jobboard-portal/internal/domain"
	"go-jobboard-portal/internal/session"
	"go-jobboard-portal/pkg/security"

	"github.com/gin-gonic/gin"
)

// SessionContext loads the browser session once per request.
func SessionContext(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(domain.KeySession), manager.Load(c))
		c.Next()
	}
}

// CurrentSession returns the session loaded by SessionContext.
func CurrentSession(c *gin.Context) domain.Session {
	v, _ := c.Get(string(domain.KeySession))
	sess, _ := v.(domain.Session)
	return sess
}

// RequireAuth lets through any browser holding a token.
func RequireAuth(secLog *security.SecurityLogger) gin.HandlerFunc {
	return guard(secLog, "not_authenticated", domain.Session.Authenticated)
}

// RequireAdmin lets through browsers holding a token and the admin role.
func RequireAdmin(secLog *security.SecurityLogger) gin.HandlerFunc {
	return guard(secLog, "not_admin", domain.Session.IsAdmin)
}

func guard(secLog *security.SecurityLogger, reason string, allowed func(domain.Session) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if allowed(CurrentSession(c)) {
			c.Next()
			return
		}
		secLog.LogUnauthorizedAccess(c.Request.Context(), c.Request.URL.Path, c.ClientIP(), c.Request.UserAgent(), GetRequestID(c), reason)
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}
