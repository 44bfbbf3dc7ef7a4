package orderControllers

import (
	"context"
	"net/http"
	"time"

	"github.com/biharidelicacies/marketplace-api/apperr"
	"github.com/biharidelicacies/marketplace-api/controllers/respond"
	"github.com/biharidelicacies/marketplace-api/middleware"
	"github.com/biharidelicacies/marketplace-api/models"
	"github.com/biharidelicacies/marketplace-api/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// -------- Request Structs --------

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

// -------- Helpers --------

// GenerateOrderRef returns a reference like 20250908130500-<uuid4>.
func GenerateOrderRef(now time.Time) string {
	return now.Format("20060102150405") + "-" + uuid.NewString()
}

// stamp fills in the server-owned order fields the client left out.
func stamp(rec models.Record, user *models.User, now time.Time) {
	setDefault := func(key string, v any) {
		if _, ok := rec[key]; !ok {
			rec[key] = v
		}
	}
	setDefault(models.OrderRefField, GenerateOrderRef(now))
	setDefault(models.OrderCreatedAtField, now.UTC().Format(time.RFC3339))
	setDefault(models.OrderStatusField, string(models.OrderStatusPending))
	setDefault(models.OrderPaymentStatusField, string(models.PaymentStatusPending))
	if user != nil {
		setDefault(models.OrderUserIDField, user.ID)
	}
}

// updateOrder rewrites one order of the collection in place.
func updateOrder(ctx context.Context, s store.RecordStore, id string, apply func(models.Record)) (models.Record, error) {
	orders, err := s.ReadAll(ctx, models.CollectionOrders)
	if err != nil {
		return nil, apperr.Wrap("read orders", err)
	}
	match := store.ByID(id)
	for i, o := range orders {
		if !match(o) {
			continue
		}
		updated := o.Clone()
		apply(updated)
		orders[i] = updated
		if err := s.WriteAll(ctx, models.CollectionOrders, orders); err != nil {
			return nil, apperr.Wrap("write orders", err)
		}
		return updated, nil
	}
	return nil, apperr.NotFound("Order not found")
}

// SetPaymentStatus records a payment outcome on an order and announces the
// change. A paid order still pending fulfilment moves to confirmed.
func SetPaymentStatus(ctx context.Context, s store.RecordStore, hub *Hub, orderID string, status models.PaymentStatus) (models.Record, error) {
	updated, err := updateOrder(ctx, s, orderID, func(o models.Record) {
		o[models.OrderPaymentStatusField] = string(status)
		if status == models.PaymentStatusPaid && o.Str(models.OrderStatusField) == string(models.OrderStatusPending) {
			o[models.OrderStatusField] = string(models.OrderStatusConfirmed)
		}
	})
	if err != nil {
		return nil, err
	}
	hub.Broadcast(EventOrderUpdated, updated)
	return updated, nil
}

// -------- Handlers --------

// CreateOrder stores whatever order payload the client sends and announces it on the hub.
func CreateOrder(s store.RecordStore, hub *Hub, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rec models.Record
		if err := c.ShouldBindJSON(&rec); err != nil || rec == nil {
			respond.Error(c, log, apperr.Validation("Request body must be a JSON object"))
			return
		}

		stamp(rec, middleware.CurrentUser(c), time.Now())

		saved, err := s.Insert(c.Request.Context(), models.CollectionOrders, rec)
		if err != nil {
			respond.Error(c, log, apperr.Wrap("save order", err))
			return
		}

		hub.Broadcast(EventOrderCreated, saved)
		log.Infow("🛒 order placed", "orderId", saved.IDString(), "orderRef", saved[models.OrderRefField])
		respond.Data(c, http.StatusCreated, gin.H{"id": saved.ID(), "orderRef": saved[models.OrderRefField]})
	}
}

// GetMyOrders lists the orders placed by the logged-in user.
func GetMyOrders(s store.RecordStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			respond.Error(c, log, apperr.Authentication("Not authenticated"))
			return
		}

		orders, err := s.ReadAll(c.Request.Context(), models.CollectionOrders)
		if err != nil {
			respond.Error(c, log, apperr.Wrap("read orders", err))
			return
		}
		mine := make([]models.Record, 0)
		for _, o := range orders {
			if models.IDString(o[models.OrderUserIDField]) == user.IDString() {
				mine = append(mine, o)
			}
		}
		respond.Data(c, http.StatusOK, mine)
	}
}

// UpdateOrderStatus (admin) sets the fulfilment status of an order.
func UpdateOrderStatus(s store.RecordStore, hub *Hub, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, log, apperr.Validation("status is required"))
			return
		}
		status, ok := models.ParseOrderStatus(req.Status)
		if !ok {
			respond.Error(c, log, apperr.Validation("invalid order status"))
			return
		}

		updated, err := updateOrder(c.Request.Context(), s, c.Param("orderID"), func(o models.Record) {
			o[models.OrderStatusField] = string(status)
		})
		if err != nil {
			respond.Error(c, log, err)
			return
		}
		hub.Broadcast(EventOrderUpdated, updated)
		respond.Data(c, http.StatusOK, updated)
	}
}

// UpdatePaymentStatus (admin) records the payment outcome of an order.
func UpdatePaymentStatus(s store.RecordStore, hub *Hub, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, log, apperr.Validation("paymentStatus is required"))
			return
		}
		status, ok := models.ParsePaymentStatus(req.PaymentStatus)
		if !ok {
			respond.Error(c, log, apperr.Validation("invalid payment status"))
			return
		}

		updated, err := SetPaymentStatus(c.Request.Context(), s, hub, c.Param("orderID"), status)
		if err != nil {
			respond.Error(c, log, err)
			return
		}
		respond.Data(c, http.StatusOK, updated)
	}
}

// DeleteOrder (admin) removes an order.
func DeleteOrder(s store.RecordStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		orders, err := s.ReadAll(ctx, models.CollectionOrders)
		if err != nil {
			respond.Error(c, log, apperr.Wrap("read orders", err))
			return
		}

		match := store.ByID(c.Param("orderID"))
		kept := make([]models.Record, 0, len(orders))
		for _, o := range orders {
			if !match(o) {
				kept = append(kept, o)
			}
		}
		if len(kept) == len(orders) {
			respond.Error(c, log, apperr.NotFound("Order not found"))
			return
		}
		if err := s.WriteAll(ctx, models.CollectionOrders, kept); err != nil {
			respond.Error(c, log, apperr.Wrap("write orders", err))
			return
		}
		log.Infow("🗑️ order deleted", "orderId", c.Param("orderID"))
		respond.Data(c, http.StatusOK, true)
	}
}
