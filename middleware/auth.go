package middleware

import (
	"net/http"

	"github.com/biharidelicacies/marketplace-api/auth"
	"github.com/biharidelicacies/marketplace-api/models"
	"github.com/biharidelicacies/marketplace-api/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by ResolveSession.
const (
	sessionIDKey = "session_id"
	userKey      = "user"
)

// ResolveSession reads the sid cookie and, when it leads to a user, stores the
// session id and the user in the gin context. It never aborts.
func ResolveSession(gw *auth.Gateway, codec *session.Codec, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := codec.FromRequest(c.Request)
		if sid == "" {
			c.Next()
			return
		}
		c.Set(sessionIDKey, sid)

		user, err := gw.CurrentUser(c.Request.Context(), sid)
		if err != nil {
			log.Errorw("resolve session", "error", err)
		}
		if user != nil {
			c.Set(userKey, user)
		}
		c.Next()
	}
}

// RequireUser answers 401 when ResolveSession found no user.
func RequireUser(c *gin.Context) {
	if CurrentUser(c) == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.Next()
}

// CurrentUser returns the authenticated user of the request, nil when there is none.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}

func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
