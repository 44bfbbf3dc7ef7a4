package paymentcontroller

import (
	"net/http"
	"strings"

	"github.com/biharidelicacies/marketplace-api/apperr"
	orderControllers "github.com/biharidelicacies/marketplace-api/controllers/order"
	"github.com/biharidelicacies/marketplace-api/controllers/respond"
	"github.com/biharidelicacies/marketplace-api/models"
	"github.com/biharidelicacies/marketplace-api/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Payment methods the simulator accepts.
const (
	MethodCard = "card"
	MethodUPI  = "upi"
	MethodCOD  = "cod"
)

// DeclinedCardSuffix makes a card payment fail, for exercising the unhappy path.
const DeclinedCardSuffix = "0002"

const DefaultCurrency = "INR"

type PaymentRequest struct {
	OrderID    any     `json:"orderId"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Method     string  `json:"method"`
	CardNumber string  `json:"cardNumber"`
}

type PaymentResult struct {
	TransactionRef string  `json:"transactionRef"`
	Status         string  `json:"status"`
	Message        string  `json:"message"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	Method         string  `json:"method"`
}

// Simulate decides the outcome of a payment without contacting any processor.
// Cash on delivery stays pending, card numbers ending in 0002 are declined and
// everything else is paid.
func Simulate(req PaymentRequest) (PaymentResult, error) {
	if req.Amount <= 0 {
		return PaymentResult{}, apperr.Validation("amount must be greater than 0")
	}
	method := strings.ToLower(strings.TrimSpace(req.Method))
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	res := PaymentResult{
		TransactionRef: "TXN-" + uuid.NewString(),
		Amount:         req.Amount,
		Currency:       currency,
		Method:         method,
	}

	switch method {
	case MethodCOD:
		res.Status = string(models.PaymentStatusPending)
		res.Message = "Pay on delivery"
	case MethodUPI:
		res.Status = string(models.PaymentStatusPaid)
		res.Message = "Payment successful"
	case MethodCard:
		digits, ok := cardDigits(req.CardNumber)
		if !ok {
			return PaymentResult{}, apperr.Validation("invalid card number")
		}
		if strings.HasSuffix(digits, DeclinedCardSuffix) {
			res.Status = string(models.PaymentStatusFailed)
			res.Message = "Card declined"
		} else {
			res.Status = string(models.PaymentStatusPaid)
			res.Message = "Payment successful"
		}
	default:
		return PaymentResult{}, apperr.Validation("method must be card, upi or cod")
	}
	return res, nil
}

// cardDigits strips spaces and dashes and expects 12 to 19 digits.
func cardDigits(number string) (string, bool) {
	var b strings.Builder
	for _, r := range number {
		switch {
		case r == ' ' || r == '-':
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			return "", false
		}
	}
	d := b.String()
	return d, len(d) >= 12 && len(d) <= 19
}

// SimulatePayment handles POST /payment/simulate. When orderId is given the
// order's payment status follows the outcome.
func SimulatePayment(s store.RecordStore, hub *orderControllers.Hub, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, log, apperr.Validation("Invalid request body"))
			return
		}

		res, err := Simulate(req)
		if err != nil {
			respond.Error(c, log, err)
			return
		}

		if orderID := models.IDString(req.OrderID); orderID != "" {
			status, _ := models.ParsePaymentStatus(res.Status)
			if _, err := orderControllers.SetPaymentStatus(c.Request.Context(), s, hub, orderID, status); err != nil {
				respond.Error(c, log, err)
				return
			}
		}

		log.Infow("💳 payment simulated", "transactionRef", res.TransactionRef, "method", res.Method, "status", res.Status)
		respond.Data(c, http.StatusOK, res)
	}
}
