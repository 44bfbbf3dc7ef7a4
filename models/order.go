package models

import "strings"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // payment accepted or cash on delivery
	OrderStatusCancelled OrderStatus = "cancelled"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Order fields stamped by the server when the client leaves them out.
const (
	OrderRefField           = "orderRef"
	OrderStatusField        = "status"
	OrderPaymentStatusField = "paymentStatus"
	OrderCreatedAtField     = "createdAt"
	OrderUserIDField        = "userId"
)

// ParsePaymentStatus accepts any casing of a known payment status.
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(strings.ToLower(strings.TrimSpace(s))) {
	case PaymentStatusPending:
		return PaymentStatusPending, true
	case PaymentStatusPaid:
		return PaymentStatusPaid, true
	case PaymentStatusFailed:
		return PaymentStatusFailed, true
	}
	return "", false
}

// ParseOrderStatus accepts any casing of a known order status.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(strings.ToLower(strings.TrimSpace(s))) {
	case OrderStatusPending:
		return OrderStatusPending, true
	case OrderStatusConfirmed:
		return OrderStatusConfirmed, true
	case OrderStatusCancelled:
		return OrderStatusCancelled, true
	}
	return "", false
}
