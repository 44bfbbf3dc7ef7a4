package routes

import (
	authcontroller "github.com/biharidelicacies/marketplace-api/controllers/auth"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authcontroller.Register(d.Gateway, d.Codec, d.Log))
		authGroup.POST("/login", authcontroller.Login(d.Gateway, d.Codec, d.Log))
		authGroup.POST("/logout", authcontroller.Logout(d.Gateway, d.Codec))
		authGroup.GET("/me", authcontroller.Me)
	}
}
