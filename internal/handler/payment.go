package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/model"
)

type PaymentHandler struct {
	payments PaymentStore
	bookings BookingStore
	products ProductStore
	intents  IntentCreator
}

func NewPaymentHandler(payments PaymentStore, bookings BookingStore, products ProductStore, intents IntentCreator) *PaymentHandler {
	return &PaymentHandler{payments: payments, bookings: bookings, products: products, intents: intents}
}

// CreateIntent forwards the price to the payment provider in minor currency
// units and returns only the client secret.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	clientSecret, err := h.intents.Create(c.Request.Context(), int64(body.Price*100))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"clientSecret": clientSecret})
}

// Record marks the product sold, the booking paid, and inserts the payment
// row. Three independent writes, in that order.
func (h *PaymentHandler) Record(c *gin.Context) {
	var payment model.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	if _, err := h.products.MarkSold(c.Request.Context(), payment.ProductID); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.bookings.MarkPaid(c.Request.Context(), payment.BookingID); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	res, err := h.payments.Insert(c.Request.Context(), payment)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, insertBody(res))
}

// BySeller lists payment rows for a seller's email.
func (h *PaymentHandler) BySeller(c *gin.Context) {
	payments, err := h.payments.ListBySeller(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, payments)
}
