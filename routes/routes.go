package routes

import (
	"github.com/biharidelicacies/marketplace-api/auth"
	"github.com/biharidelicacies/marketplace-api/config"
	healthcontroller "github.com/biharidelicacies/marketplace-api/controllers/health"
	orderControllers "github.com/biharidelicacies/marketplace-api/controllers/order"
	"github.com/biharidelicacies/marketplace-api/middleware"
	"github.com/biharidelicacies/marketplace-api/session"
	"github.com/biharidelicacies/marketplace-api/store"
	"github.com/biharidelicacies/marketplace-api/upload"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps is everything the handlers need, built once in main.
type Deps struct {
	Config  config.Config
	Log     *zap.SugaredLogger
	Store   store.RecordStore
	Gateway *auth.Gateway
	Codec   *session.Codec
	Sink    *upload.Sink
	Hub     *orderControllers.Hub
}

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, d Deps) {
	r.Use(middleware.ResolveSession(d.Gateway, d.Codec, d.Log))

	r.GET("/health", healthcontroller.Health)

	// 1️⃣ Public auth routes
	SetupAuthRoutes(r, d)

	// 2️⃣ Session-protected seller, product, upload and profile routes
	SetupUserRoutes(r, d)

	// 3️⃣ Orders and payments
	SetupOrderRoutes(r, d)

	// 4️⃣ Generic table endpoints
	SetupTableRoutes(r, d)

	// 5️⃣ Admin routes (API-Key-protected)
	SetupAdminRoutes(r, d)
}
