package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/asukapos/pos-backend/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers the POS API surface on the provided Echo
// instance.  GET / reports that the server is running, GET
// /api/products/:code looks a product up by its scanned code, and
// POST /api/purchase records a purchase transaction.  The cache
// middleware is applied only to the product lookup; purchases must
// never be served from a cache.
func RegisterRoutes(e *echo.Echo, products *handler.ProductHandler, purchases *handler.PurchaseHandler, productCache echo.MiddlewareFunc) {
	// Map the root path to the running message.  POS terminals probe this
	// endpoint on startup, and it doubles as a liveness check.
	e.GET("/", handler.Root)

	api := e.Group("/api")
	if productCache != nil {
		api.GET("/products/:code", products.GetProduct, productCache)
	} else {
		api.GET("/products/:code", products.GetProduct)
	}
	api.POST("/purchase", purchases.Purchase)
}
