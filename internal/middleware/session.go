package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"petroserve/internal/domain"
	"petroserve/internal/redis"
)

const (
	sessionHeader  = "X-Session-Token"
	userContextKey = "sessionUser"
	loginRoute     = "/login"
)

// SessionGuard returns middleware that gates protected routes on a valid
// session. Requests without a resolvable session are rejected before the
// handler runs, with a redirect hint to the login route. Missing, expired
// and malformed sessions are all treated as unauthenticated.
func SessionGuard(sessions redis.SessionStoreInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessions.Get(c.Request.Context(), SessionToken(c))
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "authentication required",
				"redirect": loginRoute,
			})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// SessionToken extracts the session token from the request, accepting
// either the session header or a bearer Authorization header.
func SessionToken(c *gin.Context) string {
	if token := c.GetHeader(sessionHeader); token != "" {
		return token
	}

	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}

	return ""
}

// UserFromContext returns the session user set by SessionGuard, or nil on
// an unguarded route.
func UserFromContext(c *gin.Context) *domain.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}

	user, ok := value.(*domain.User)
	if !ok {
		return nil
	}
	return user
}
