package routes

import (
	orderControllers "github.com/biharidelicacies/marketplace-api/controllers/order"
	paymentcontroller "github.com/biharidelicacies/marketplace-api/controllers/payment"
	"github.com/biharidelicacies/marketplace-api/middleware"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(r *gin.Engine, d Deps) {
	orders := r.Group("/orders")
	{
		// Create a new order (guests included)
		orders.POST("", orderControllers.CreateOrder(d.Store, d.Hub, d.Log))

		// Orders of the logged-in user
		orders.GET("/me", middleware.RequireUser, orderControllers.GetMyOrders(d.Store, d.Log))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", d.Hub.Handler)

		admin := orders.Group("", middleware.ValidateAPIKey(d.Config.AdminAPIKey))
		admin.PUT("/:orderID/status", orderControllers.UpdateOrderStatus(d.Store, d.Hub, d.Log))
		admin.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatus(d.Store, d.Hub, d.Log))
		admin.DELETE("/:orderID", orderControllers.DeleteOrder(d.Store, d.Log))
	}

	r.POST("/payment/simulate", paymentcontroller.SimulatePayment(d.Store, d.Hub, d.Log))
}
