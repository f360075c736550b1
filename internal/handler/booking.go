package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/model"
)

type BookingHandler struct {
	bookings BookingStore
	products ProductStore
}

func NewBookingHandler(bookings BookingStore, products ProductStore) *BookingHandler {
	return &BookingHandler{bookings: bookings, products: products}
}

// Create marks the product booked and inserts the booking row, in that
// order. The two writes are independent; a failure between them leaves the
// product flagged with no booking row.
func (h *BookingHandler) Create(c *gin.Context) {
	var booking model.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	productResult, err := h.products.MarkBooked(c.Request.Context(), booking.ProductID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	bookingResult, err := h.bookings.Insert(c.Request.Context(), booking)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{
		"productResult": updateBody(productResult),
		"bookingResult": insertBody(bookingResult),
	})
}

// Cancel deletes the booking and clears the product's booking flag,
// reversing Create for the same pair of ids.
func (h *BookingHandler) Cancel(c *gin.Context) {
	var body struct {
		BookingID string `json:"bookingId"`
		ProductID string `json:"productId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	bookingResult, err := h.bookings.DeleteByID(c.Request.Context(), body.BookingID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	productResult, err := h.products.ClearBooked(c.Request.Context(), body.ProductID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{
		"bookingResult": deleteBody(bookingResult),
		"productResult": updateBody(productResult),
	})
}

func (h *BookingHandler) MyOrders(c *gin.Context) {
	bookings, err := h.bookings.ListByBuyer(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, bookings)
}

// Get returns one booking by id, or a null body when absent.
func (h *BookingHandler) Get(c *gin.Context) {
	booking, err := h.bookings.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, booking)
}
