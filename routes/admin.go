package routes

import (
	uploadcontroller "github.com/biharidelicacies/marketplace-api/controllers/upload"
	userControllers "github.com/biharidelicacies/marketplace-api/controllers/user"
	"github.com/biharidelicacies/marketplace-api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the API key when one is configured.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(d.Config.AdminAPIKey))
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(d.Store, d.Log))

		// ─────────── Uploads ───────────
		adminGroup.DELETE("/uploads/:name", uploadcontroller.DeleteUpload(d.Sink, d.Log))
	}
}
