package authcontroller

import (
	"net/http"

	"github.com/biharidelicacies/marketplace-api/apperr"
	"github.com/biharidelicacies/marketplace-api/auth"
	"github.com/biharidelicacies/marketplace-api/controllers/respond"
	"github.com/biharidelicacies/marketplace-api/middleware"
	"github.com/biharidelicacies/marketplace-api/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// POST /auth/register
func Register(gw *auth.Gateway, codec *session.Codec, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in auth.RegisterInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respond.Error(c, log, apperr.Validation("Invalid request body"))
			return
		}

		user, sid, err := gw.Register(c.Request.Context(), in)
		if err != nil {
			respond.Error(c, log, err)
			return
		}
		if !setSessionCookie(c, codec, log, sid) {
			return
		}
		respond.Data(c, http.StatusCreated, user.Public())
	}
}

// POST /auth/login
func Login(gw *auth.Gateway, codec *session.Codec, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in auth.LoginInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respond.Error(c, log, apperr.Validation("Invalid request body"))
			return
		}

		user, sid, err := gw.Login(c.Request.Context(), in)
		if err != nil {
			respond.Error(c, log, err)
			return
		}
		if !setSessionCookie(c, codec, log, sid) {
			return
		}
		log.Infow("user logged in", "userId", user.IDString())
		respond.Data(c, http.StatusOK, user.Public())
	}
}

// POST /auth/logout
func Logout(gw *auth.Gateway, codec *session.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		gw.Logout(middleware.SessionID(c))
		http.SetCookie(c.Writer, codec.Clear())
		respond.Data(c, http.StatusOK, true)
	}
}

// GET /auth/me
func Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	respond.Data(c, http.StatusOK, user.Public())
}

func setSessionCookie(c *gin.Context, codec *session.Codec, log *zap.SugaredLogger, sid string) bool {
	ck, err := codec.Cookie(sid)
	if err != nil {
		respond.Error(c, log, apperr.Wrap("sign session cookie", err))
		return false
	}
	http.SetCookie(c.Writer, ck)
	return true
}
