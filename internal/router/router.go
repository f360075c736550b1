package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/handler"
	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/middleware"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Product  *handler.ProductHandler
	Category *handler.CategoryHandler
	Booking  *handler.BookingHandler
	Payment  *handler.PaymentHandler
	Wishlist *handler.WishlistHandler
	Admin    *handler.AdminHandler
}

// New builds the full route table. Routes under the verified group require a
// bearer token; everything else is public.
func New(secret string, h Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.GET("/", handler.Live)
	r.GET("/jwt", h.Auth.IssueToken)

	r.POST("/users", h.User.Create)
	r.GET("/user", h.User.Get)
	r.GET("/user/seller/:email", h.User.IsSeller)
	r.GET("/user/admin/:email", h.User.IsAdmin)
	r.GET("/user/buyer/:email", h.User.IsBuyer)

	r.GET("/category", h.Category.List)
	r.GET("/advertiseProduct", h.Product.Advertised)
	r.POST("/create-payment-intent", h.Payment.CreateIntent)
	r.GET("/sellerSBuyer", h.Payment.BySeller)

	verified := r.Group("/", middleware.VerifyJWT(secret))
	{
		verified.POST("/product", h.Product.Create)
		verified.GET("/product", h.Product.ListMine)
		verified.DELETE("/product/:id", h.Product.Delete)
		verified.PUT("/product/:id", h.Product.Advertise)
		verified.GET("/products", h.Product.ByCategory)

		verified.POST("/booking", h.Booking.Create)
		verified.PUT("/bookingCancel", h.Booking.Cancel)
		verified.GET("/myOrders", h.Booking.MyOrders)
		verified.GET("/booking/:id", h.Booking.Get)

		verified.POST("/payment", h.Payment.Record)

		verified.GET("/allSeller", h.Admin.AllSellers)
		verified.GET("/allBuyer", h.Admin.AllBuyers)
		verified.DELETE("/seller/:id", h.Admin.DeleteUser)
		verified.DELETE("/buyer/:id", h.Admin.DeleteUser)
		verified.PUT("/sellerVerify", h.Admin.VerifySeller)

		verified.POST("/wishlist", h.Wishlist.Create)
		verified.GET("/wishlist", h.Wishlist.ListByBuyer)
	}

	return r
}
