package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/config"
	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/database"
	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/handler"
	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/payments"
	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/repository"
	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/router"
)

func main() {
	logger := logrus.New()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		logger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}()
	db := client.Database(cfg.DBName)

	users := repository.NewUserRepository(db, logger)
	products := repository.NewProductRepository(db, logger)
	categories := repository.NewCategoryRepository(db, logger)
	bookings := repository.NewBookingRepository(db, logger)
	paymentRows := repository.NewPaymentRepository(db, logger)
	wishlist := repository.NewWishlistRepository(db, logger)
	intents := payments.NewStripe(cfg.StripeSecretKey)

	r := router.New(cfg.AccessSecret, router.Handlers{
		Auth:     handler.NewAuthHandler(users, cfg.AccessSecret),
		User:     handler.NewUserHandler(users),
		Product:  handler.NewProductHandler(products, users),
		Category: handler.NewCategoryHandler(categories),
		Booking:  handler.NewBookingHandler(bookings, products),
		Payment:  handler.NewPaymentHandler(paymentRows, bookings, products, intents),
		Wishlist: handler.NewWishlistHandler(wishlist),
		Admin:    handler.NewAdminHandler(users, products),
	})

	logger.Infof("Pay&Buy server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}
