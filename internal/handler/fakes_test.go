package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/model"
)

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

type fakeUserStore struct {
	users []model.User
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Insert(_ context.Context, u model.User) (*mongo.InsertOneResult, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.users = append(f.users, u)
	return &mongo.InsertOneResult{InsertedID: u.ID}, nil
}

func (f *fakeUserStore) ListByRole(_ context.Context, flag string) ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		if (flag == "isSeller" && u.IsSeller) || (flag == "isBuyer" && u.IsBuyer) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) DeleteByID(_ context.Context, id string) (*mongo.DeleteResult, error) {
	for i := range f.users {
		if f.users[i].ID.Hex() == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (f *fakeUserStore) SetVerified(_ context.Context, email string) (*mongo.UpdateResult, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			f.users[i].IsVerify = true
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

type fakeProductStore struct {
	products []model.Product
}

func (f *fakeProductStore) Insert(_ context.Context, p model.Product) (*mongo.InsertOneResult, error) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	f.products = append(f.products, p)
	return &mongo.InsertOneResult{InsertedID: p.ID}, nil
}

func (f *fakeProductStore) ListByOwner(_ context.Context, email string) ([]model.Product, error) {
	var out []model.Product
	for _, p := range f.products {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) ListByCategory(_ context.Context, category string) ([]model.Product, error) {
	var out []model.Product
	for _, p := range f.products {
		if p.Category == category && !p.IsBooking {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) ListAdvertised(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range f.products {
		if p.IsAdvertise && !p.IsBooking {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) DeleteByID(_ context.Context, id string) (*mongo.DeleteResult, error) {
	for i := range f.products {
		if f.products[i].ID.Hex() == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (f *fakeProductStore) SetAdvertised(_ context.Context, id string) (*mongo.UpdateResult, error) {
	return f.set(id, func(p *model.Product) { p.IsAdvertise = true }, false)
}

func (f *fakeProductStore) MarkBooked(_ context.Context, id string) (*mongo.UpdateResult, error) {
	return f.set(id, func(p *model.Product) { p.IsBooking = true }, true)
}

func (f *fakeProductStore) ClearBooked(_ context.Context, id string) (*mongo.UpdateResult, error) {
	return f.set(id, func(p *model.Product) { p.IsBooking = false }, false)
}

func (f *fakeProductStore) MarkSold(_ context.Context, id string) (*mongo.UpdateResult, error) {
	return f.set(id, func(p *model.Product) { p.IsSold = true }, false)
}

func (f *fakeProductStore) set(id string, apply func(*model.Product), upsert bool) (*mongo.UpdateResult, error) {
	for i := range f.products {
		if f.products[i].ID.Hex() == id {
			apply(&f.products[i])
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	if upsert {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, err
		}
		stub := model.Product{ID: oid}
		apply(&stub)
		f.products = append(f.products, stub)
		return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: oid}, nil
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeProductStore) VerifyAllByOwner(_ context.Context, email string) (*mongo.UpdateResult, error) {
	var modified int64
	for i := range f.products {
		if f.products[i].Email == email {
			f.products[i].IsSellerVerification = true
			modified++
		}
	}
	return &mongo.UpdateResult{MatchedCount: modified, ModifiedCount: modified}, nil
}

type fakeCategoryStore struct {
	categories []model.Category
}

func (f *fakeCategoryStore) List(_ context.Context, limit int64) ([]model.Category, error) {
	if limit > 0 && limit < int64(len(f.categories)) {
		return f.categories[:limit], nil
	}
	return f.categories, nil
}

func (f *fakeCategoryStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.categories)), nil
}

type fakeBookingStore struct {
	bookings []model.Booking
}

func (f *fakeBookingStore) Insert(_ context.Context, b model.Booking) (*mongo.InsertOneResult, error) {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	f.bookings = append(f.bookings, b)
	return &mongo.InsertOneResult{InsertedID: b.ID}, nil
}

func (f *fakeBookingStore) FindByID(_ context.Context, id string) (*model.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID.Hex() == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingStore) ListByBuyer(_ context.Context, email string) ([]model.Booking, error) {
	var out []model.Booking
	for _, b := range f.bookings {
		if b.BuyerEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) DeleteByID(_ context.Context, id string) (*mongo.DeleteResult, error) {
	for i := range f.bookings {
		if f.bookings[i].ID.Hex() == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (f *fakeBookingStore) MarkPaid(_ context.Context, id string) (*mongo.UpdateResult, error) {
	for i := range f.bookings {
		if f.bookings[i].ID.Hex() == id {
			f.bookings[i].IsPaid = true
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

type fakePaymentStore struct {
	payments []model.Payment
}

func (f *fakePaymentStore) Insert(_ context.Context, p model.Payment) (*mongo.InsertOneResult, error) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	f.payments = append(f.payments, p)
	return &mongo.InsertOneResult{InsertedID: p.ID}, nil
}

func (f *fakePaymentStore) ListBySeller(_ context.Context, email string) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range f.payments {
		if p.SellerEmail == email {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeWishlistStore struct {
	entries []model.Wishlist
}

func (f *fakeWishlistStore) FindByProduct(_ context.Context, productID string) (*model.Wishlist, error) {
	for i := range f.entries {
		if f.entries[i].ProductID == productID {
			w := f.entries[i]
			return &w, nil
		}
	}
	return nil, nil
}

func (f *fakeWishlistStore) Insert(_ context.Context, w model.Wishlist) (*mongo.InsertOneResult, error) {
	if w.ID.IsZero() {
		w.ID = primitive.NewObjectID()
	}
	f.entries = append(f.entries, w)
	return &mongo.InsertOneResult{InsertedID: w.ID}, nil
}

func (f *fakeWishlistStore) ListByBuyer(_ context.Context, email string) ([]model.Wishlist, error) {
	var out []model.Wishlist
	for _, w := range f.entries {
		if w.BuyerEmail == email {
			out = append(out, w)
		}
	}
	return out, nil
}

type fakeIntents struct {
	lastAmount   int64
	clientSecret string
	err          error
}

func (f *fakeIntents) Create(_ context.Context, amount int64) (string, error) {
	f.lastAmount = amount
	return f.clientSecret, f.err
}
