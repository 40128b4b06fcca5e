// Package routes defines the API routing configuration.
// It builds the outbound clients and services from configuration and
// sets up all HTTP routes with their middleware.
package routes

import (
	"tienda/internal/cache"
	"tienda/internal/clients/eshop"
	"tienda/internal/clients/lookup"
	"tienda/internal/config"
	"tienda/internal/gateway"
	"tienda/internal/handlers"
	"tienda/internal/middleware"
	"tienda/internal/services/auth"
	"tienda/internal/services/catalog"
	"tienda/internal/services/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, cacheService *cache.Service) {
	upstreamTimeout := config.GetDurationEnv("UPSTREAM_TIMEOUT", 0)

	apiClient := eshop.NewClient(
		config.GetEnv("ESHOP_API_URL", "https://nodejs-eshop-api-course-2c70.onrender.com/api/v1"),
		upstreamTimeout,
	)
	lookupClient := lookup.NewClient(
		config.GetEnv("LOOKUP_API_URL", "https://dummyjson.com"),
		upstreamTimeout,
	)
	gatewayClient := gateway.NewClient(gateway.Config{
		BaseURL:   config.GetEnv("GATEWAY_URL", "https://webpay3gint.transbank.cl/rswebpaytransaction/api/webpay/v1.2"),
		KeyID:     config.GetEnv("GATEWAY_API_KEY_ID", "597055555532"),
		KeySecret: config.GetEnv("GATEWAY_API_KEY_SECRET", ""),
		Timeout:   upstreamTimeout,
	})

	catalogService := catalog.NewService(apiClient, cacheService)
	authService := auth.NewService(apiClient)
	paymentService := payment.NewService(
		gatewayClient,
		lookupClient,
		config.GetEnv("RETURN_URL", "http://localhost:3000/thank-you"),
	)

	authHandler := handlers.NewAuthHandler(authService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	storeHandler := handlers.NewStoreHandler(catalogService)
	adminHandler := handlers.NewAdminHandler(catalogService)
	healthHandler := handlers.NewHealthHandler(cacheService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Tienda API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	api := app.Group("/api")
	api.Get("/health", healthHandler.Check)

	// Auth bridge (form submissions; fail with 302 + error param)
	api.Post("/login", authHandler.Login)
	api.Post("/register", authHandler.Register)
	api.Post("/logout", authHandler.Logout)

	// Payment protocol
	api.Post("/webpay/initiate", paymentHandler.Initiate)
	api.Post("/webpay/confirm", paymentHandler.Confirm)
	app.Get("/thank-you", paymentHandler.ThankYou)

	// Shopper-facing catalog
	store := api.Group("/store")
	store.Get("/products", storeHandler.Products)
	store.Get("/products/:id", storeHandler.Product)
	store.Get("/categories", storeHandler.Categories)
	store.Get("/categories/:id/products", storeHandler.CategoryProducts)

	// Store management (admin cookie required)
	admin := api.Group("/admin", middleware.CookieAuth, middleware.RequireAdmin)
	admin.Post("/products", adminHandler.CreateProduct)
	admin.Put("/products/:id", adminHandler.UpdateProduct)
	admin.Delete("/products/:id", adminHandler.DeleteProduct)
	admin.Post("/categories", adminHandler.CreateCategory)
	admin.Put("/categories/:id", adminHandler.UpdateCategory)
	admin.Delete("/categories/:id", adminHandler.DeleteCategory)
}
