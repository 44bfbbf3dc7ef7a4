package routes

import (
	productcontroller "github.com/biharidelicacies/marketplace-api/controllers/product"
	sellercontroller "github.com/biharidelicacies/marketplace-api/controllers/seller"
	uploadcontroller "github.com/biharidelicacies/marketplace-api/controllers/upload"
	userControllers "github.com/biharidelicacies/marketplace-api/controllers/user"
	"github.com/biharidelicacies/marketplace-api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes registers the endpoints that need a logged-in user.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	// ──────────────── Seller profile ────────────────
	sellers := r.Group("/sellers", middleware.RequireUser)
	{
		sellers.POST("", sellercontroller.CreateSeller(d.Store, d.Sink, d.Log))
		sellers.GET("/me", sellercontroller.GetMySeller(d.Store, d.Log))
	}

	// ──────────────── Seller catalogue ────────────────
	products := r.Group("/products", middleware.RequireUser)
	{
		products.POST("", productcontroller.CreateProduct(d.Store, d.Sink, d.Log))
		products.GET("/me", productcontroller.GetMyProducts(d.Store, d.Log))
	}

	// ──────────────── Profile ────────────────
	r.PUT("/users/me", middleware.RequireUser, userControllers.UpdateUser(d.Store, d.Log))

	r.POST("/upload", uploadcontroller.HandleUpload(d.Sink, d.Log))
}
