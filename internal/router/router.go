// Package router wires handlers and middleware onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/swasthya-saathi/portal-api/internal/handler"
	"github.com/swasthya-saathi/portal-api/internal/middleware"
)

// Handlers bundles every handler the API registers. main constructs it once
// and hands it over; the router owns no state of its own.
type Handlers struct {
	Auth      *handler.AuthHandler
	Profile   *handler.ProfileHandler
	Members   *handler.MemberHandler
	Finance   *handler.FinanceHandler
	Inventory *handler.InventoryHandler
	Events    *handler.EventHandler
	Insights  *handler.InsightHandler
	Schemes   *handler.SchemeHandler
	Training  *handler.TrainingHandler
	Products  *handler.ProductHandler
	Groups    *handler.SHGHandler
}

// RegisterRoutes registers routes that require no authentication: the
// liveness probe.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the credential endpoints under /v1/auth. The rate
// limiter is applied to the whole group so password guessing and reset spam
// are throttled per client IP and route.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1/auth", limiter)
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)
	g.POST("/forgot-password", a.ForgotPassword)
	g.POST("/reset-password", a.ResetPassword)
}

// RegisterAPI registers the protected surface under /v1. Every route
// requires a valid access token with a known role; destructive operations
// additionally require the admin role. The response cache covers the
// read-only reference content, which only changes via migrations.
func RegisterAPI(e *echo.Echo, h Handlers, jwtSecret string, cache echo.MiddlewareFunc) {
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(jwtSecret))
	v1.Use(middleware.RequireRole("admin", "member"))

	admin := middleware.RequireRole("admin")

	// Session and profile.
	v1.GET("/me", h.Profile.Me)
	v1.PATCH("/profile", h.Profile.UpdateProfile)

	// SHG roster.
	v1.GET("/members", h.Members.List)
	v1.POST("/members", h.Members.Create)
	v1.GET("/members/:id", h.Members.Get)
	v1.PUT("/members/:id", h.Members.Update)
	v1.DELETE("/members/:id", h.Members.Delete, admin)

	// Finance ledger.
	v1.GET("/finance/transactions", h.Finance.List)
	v1.POST("/finance/transactions", h.Finance.Create)
	v1.GET("/finance/transactions/:id", h.Finance.Get)
	v1.DELETE("/finance/transactions/:id", h.Finance.Delete, admin)
	v1.GET("/finance/summary", h.Finance.Summary)

	// Stock.
	v1.GET("/inventory", h.Inventory.List)
	v1.POST("/inventory", h.Inventory.Create)
	v1.GET("/inventory/:id", h.Inventory.Get)
	v1.PUT("/inventory/:id", h.Inventory.Update)
	v1.DELETE("/inventory/:id", h.Inventory.Delete, admin)

	// Health events and household reports.
	v1.GET("/events", h.Events.List)
	v1.POST("/events", h.Events.Create)
	v1.GET("/events/:id", h.Events.Get)
	v1.PUT("/events/:id", h.Events.Update)
	v1.DELETE("/events/:id", h.Events.Delete, admin)

	v1.GET("/insights", h.Insights.List)
	v1.POST("/insights", h.Insights.Create)
	v1.GET("/insights/:id", h.Insights.Get)
	v1.DELETE("/insights/:id", h.Insights.Delete, admin)

	// Reference content, cached.
	v1.GET("/schemes", h.Schemes.List, cache)
	v1.GET("/schemes/:id", h.Schemes.Get, cache)
	v1.GET("/training", h.Training.List, cache)
	v1.GET("/training/:id", h.Training.Get, cache)

	// Marketplace.
	v1.GET("/products", h.Products.List)
	v1.POST("/products", h.Products.Create)
	v1.GET("/products/:id", h.Products.Get)
	v1.PUT("/products/:id", h.Products.Update)
	v1.DELETE("/products/:id", h.Products.Delete, admin)

	// Groups.
	v1.POST("/shgs", h.Groups.Create, admin)
	v1.GET("/shgs/:id", h.Groups.Get)
}
