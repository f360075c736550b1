package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/model"
)

func TestCreateBookingFlagsProductAndInsertsRow(t *testing.T) {
	productID := primitive.NewObjectID()
	products := &fakeProductStore{products: []model.Product{{ID: productID}}}
	bookings := &fakeBookingStore{}
	r := newTestEngine()
	r.POST("/booking", NewBookingHandler(bookings, products).Create)

	w := performRequest(r, "POST", "/booking", map[string]interface{}{
		"productId": productID.Hex(), "buyerEmail": "b@x.com", "bookingTime": "2023-01-02T10:00:00Z",
	})
	require.Equal(t, 200, w.Code)
	assert.True(t, products.products[0].IsBooking)
	require.Len(t, bookings.bookings, 1)
	assert.Equal(t, productID.Hex(), bookings.bookings[0].ProductID)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "productResult")
	assert.Contains(t, body, "bookingResult")
}

func TestCreateBookingUnknownProductUpsertsStub(t *testing.T) {
	products := &fakeProductStore{}
	bookings := &fakeBookingStore{}
	r := newTestEngine()
	r.POST("/booking", NewBookingHandler(bookings, products).Create)

	ghost := primitive.NewObjectID()
	w := performRequest(r, "POST", "/booking", map[string]interface{}{
		"productId": ghost.Hex(), "buyerEmail": "b@x.com",
	})
	require.Equal(t, 200, w.Code)
	require.Len(t, products.products, 1)
	assert.True(t, products.products[0].IsBooking)
	assert.Len(t, bookings.bookings, 1)
}

func TestCancelReversesCreate(t *testing.T) {
	productID := primitive.NewObjectID()
	products := &fakeProductStore{products: []model.Product{{ID: productID, IsBooking: true}}}
	bookingID := primitive.NewObjectID()
	bookings := &fakeBookingStore{bookings: []model.Booking{{ID: bookingID, ProductID: productID.Hex()}}}
	r := newTestEngine()
	r.PUT("/bookingCancel", NewBookingHandler(bookings, products).Cancel)

	w := performRequest(r, "PUT", "/bookingCancel", map[string]interface{}{
		"bookingId": bookingID.Hex(), "productId": productID.Hex(),
	})
	require.Equal(t, 200, w.Code)
	assert.Empty(t, bookings.bookings)
	assert.False(t, products.products[0].IsBooking)
}

func TestMyOrdersFiltersByBuyer(t *testing.T) {
	bookings := &fakeBookingStore{bookings: []model.Booking{
		{ID: primitive.NewObjectID(), BuyerEmail: "a@x.com"},
		{ID: primitive.NewObjectID(), BuyerEmail: "b@x.com"},
	}}
	r := newTestEngine()
	r.GET("/myOrders", NewBookingHandler(bookings, &fakeProductStore{}).MyOrders)

	w := performRequest(r, "GET", "/myOrders?email=a@x.com", nil)
	require.Equal(t, 200, w.Code)
	var got []model.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)
}

func TestGetBooking(t *testing.T) {
	id := primitive.NewObjectID()
	bookings := &fakeBookingStore{bookings: []model.Booking{{ID: id, BuyerEmail: "a@x.com"}}}
	r := newTestEngine()
	r.GET("/booking/:id", NewBookingHandler(bookings, &fakeProductStore{}).Get)

	w := performRequest(r, "GET", "/booking/"+id.Hex(), nil)
	require.Equal(t, 200, w.Code)
	var got model.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "a@x.com", got.BuyerEmail)

	w = performRequest(r, "GET", "/booking/"+primitive.NewObjectID().Hex(), nil)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "null", w.Body.String())
}
