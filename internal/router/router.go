package router // package router defines how HTTP routes are registered for the service

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/ice-cream-parlor/internal/handler" // import the handlers that implement each endpoint
)

// RegisterRoutes registers the diagnostic endpoints and the landing page.
func RegisterRoutes(e *echo.Echo, s *handler.StatusHandler) {
	// Liveness of the database, used by load balancers and monitoring.
	e.GET("/health", s.Health)
	// Outbound reachability smoke test.
	e.GET("/ping", s.Ping)
	// Static landing page with the submission form.
	e.GET("/", handler.Landing)
}

// RegisterFlavors registers the flavor resource.  GET /flavors serves both
// the JSON listing and the HTML page depending on the Accept header.
func RegisterFlavors(e *echo.Echo, f *handler.FlavorHandler) {
	g := e.Group("/flavors")
	g.GET("", f.ListFlavors)
	g.POST("", f.CreateFlavor)
	g.GET("/:id", f.GetFlavor)
}
