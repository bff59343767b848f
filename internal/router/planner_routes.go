package router

import (
	"github.com/labstack/echo/v4"

	"github.com/planora/wedding-planner/internal/handler"
	"github.com/planora/wedding-planner/internal/middleware"
)

// PlannerHandlers bundles the aggregate-facing handlers so route
// registration takes one argument instead of six.
type PlannerHandlers struct {
	Vendor   *handler.VendorHandler
	Wedding  *handler.WeddingHandler
	Guest    *handler.GuestHandler
	Task     *handler.TaskHandler
	Timeline *handler.TimelineHandler
	Registry *handler.RegistryHandler
}

// RegisterPublic registers the unauthenticated read-only projections.
// cacheMW may be nil when Redis is unavailable; routes then run uncached.
func RegisterPublic(e *echo.Echo, h PlannerHandlers, cacheMW echo.MiddlewareFunc) {
	mws := []echo.MiddlewareFunc{}
	if cacheMW != nil {
		mws = append(mws, cacheMW)
	}
	g := e.Group("/v1", mws...)

	g.GET("/vendors", h.Vendor.List)
	g.GET("/vendors/:id", h.Vendor.Get)

	g.GET("/weddings", h.Wedding.List)
	g.GET("/weddings/:id", h.Wedding.Get)
	g.GET("/weddings/:id/timeline", h.Timeline.List)
	g.GET("/weddings/:id/guests", h.Guest.List)
	g.GET("/weddings/:id/guests/count", h.Guest.Count)
	g.GET("/weddings/:id/guests/:email", h.Guest.Get)
	g.GET("/weddings/:id/guests/:email/status", h.Guest.Status)
	g.GET("/weddings/:id/tasks", h.Task.List)
	g.GET("/weddings/:id/tasks/:task_id", h.Task.Get)
	g.GET("/weddings/:id/registry", h.Registry.List)
	g.GET("/weddings/:id/registry/:name", h.Registry.Get)
}

// RegisterPlanner registers the authenticated write operations. All routes
// require a valid JWT; vendor-owned endpoints additionally require the
// VENDOR role. Booking confirmation is further gated on the registering
// principal inside the operation core.
func RegisterPlanner(e *echo.Echo, h PlannerHandlers, jwtSecret string) {
	auth := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("COUPLE", "VENDOR"),
	)

	// Vendor verification carries no ownership or role precondition.
	auth.POST("/vendors/:id/verify", h.Vendor.Verify)

	// Wedding lifecycle and nested collections.
	auth.POST("/weddings", h.Wedding.Create)
	auth.POST("/weddings/:id/bookings", h.Wedding.BookVendor)
	auth.DELETE("/weddings/:id/bookings/:vendor_id", h.Wedding.CancelBooking)
	auth.POST("/weddings/:id/guests", h.Guest.RSVP)
	auth.POST("/weddings/:id/guests/approve", h.Guest.Approve)
	auth.POST("/weddings/:id/tasks", h.Task.Add)
	auth.PATCH("/weddings/:id/tasks/:task_id", h.Task.UpdateStatus)
	auth.DELETE("/weddings/:id/tasks/:task_id", h.Task.Delete)
	auth.POST("/weddings/:id/timeline", h.Timeline.Add)
	auth.POST("/weddings/:id/timeline/complete", h.Timeline.Complete)
	auth.POST("/weddings/:id/registry", h.Registry.Add)
	auth.PATCH("/weddings/:id/registry/:name", h.Registry.UpdateStatus)
	auth.DELETE("/weddings/:id/registry/:name", h.Registry.Delete)

	vendorOnly := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("VENDOR"),
	)
	vendorOnly.POST("/vendors", h.Vendor.Register)
	vendorOnly.PUT("/vendors/:id/availability", h.Vendor.UpdateAvailability)
	vendorOnly.POST("/vendors/:id/bookings/:wedding_id/confirm", h.Vendor.ConfirmBooking)
}
