// Package stub is an embedded double of the storefront backend. The
// real backend is an external collaborator; this one serves the same
// REST contract for local development and integration tests: catalog,
// JWT-authenticated login/signup, and order creation/delivery.
package stub

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Config holds the stub server settings.
type Config struct {
	JWTSecret string
	// SeedAdmin creates the well-known admin account (admin@storefront.dev
	// / "admin") so order delivery can be exercised out of the box.
	SeedAdmin bool
	// Metrics mounts the echoprometheus middleware and GET /metrics.
	Metrics bool
}

// NewServer builds the Echo instance with every route of the backend
// contract registered.
func NewServer(cfg Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newValidator()
	e.HTTPErrorHandler = newErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	if cfg.Metrics {
		e.Use(echoprometheus.NewMiddleware("storefront_stub"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	users := newUserRepo()
	if cfg.SeedAdmin {
		users.seedAdmin()
	}
	orders := newOrderRepo()

	authHandler := newAuthHandler(users, cfg.JWTSecret)
	catalogHandler := newCatalogHandler(seedCatalog())
	orderHandler := newOrderHandler(orders)

	requireAuth := auth(cfg.JWTSecret)

	e.GET("/health", liveness)

	e.GET("/products", catalogHandler.list)
	e.GET("/products/:id", catalogHandler.get)

	e.POST("/user/login", authHandler.login)
	e.POST("/user/signup", authHandler.signup)

	e.GET("/orders", orderHandler.list, requireAuth)
	e.POST("/orders", orderHandler.create, requireAuth)
	e.PUT("/orders/mark-delivered/:id", orderHandler.markDelivered, requireAuth, adminOnly)

	return e
}
