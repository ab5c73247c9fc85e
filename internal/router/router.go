package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"doctors-portal-api/internal/handler"    // import the handlers that implement business logic
	"doctors-portal-api/internal/middleware" // import middleware for bearer-token authentication
)

// Register wires every route with its auth requirement spelled out per
// endpoint.  The guard is opt-in, not a group default, because the policy is
// intentionally uneven — the portal has always accepted profile upserts and
// booking submissions without a token while guarding the read side.  Keeping
// each registration explicit makes that table reviewable in one place:
//
//	GET    /                       open    greeting
//	GET    /healthz                open    liveness
//	GET    /services               open    treatment catalog
//	GET    /available?date=D       open    availability resolver
//	POST   /booking                open    booking admission
//	GET    /booking?patient=P      bearer  patient must match token email
//	GET    /user                   bearer
//	GET    /admin/:email           open    explicit 404 on unknown user
//	PUT    /user/admin/:email      bearer  requester's stored role must be admin
//	PUT    /user/:email            open    upsert + fresh session token
//	GET    /doctor                 bearer  admin only
//	POST   /doctor                 bearer  admin only
//	DELETE /doctor/:email          bearer  admin only
func Register(e *echo.Echo, secret string,
	s *handler.ServiceHandler,
	u *handler.UserHandler,
	b *handler.BookingHandler,
	d *handler.DoctorHandler,
) {
	auth := middleware.RequireAuth(secret)

	e.GET("/", handler.Greet)
	e.GET("/healthz", handler.Health)

	e.GET("/services", s.GetServices)
	e.GET("/available", b.GetAvailable)

	e.POST("/booking", b.CreateBooking)
	e.GET("/booking", b.ListBookings, auth)

	e.GET("/user", u.GetUsers, auth)
	e.GET("/admin/:email", u.GetAdmin)
	e.PUT("/user/admin/:email", u.GrantAdmin, auth)
	e.PUT("/user/:email", u.UpsertUser)

	e.GET("/doctor", d.GetDoctors, auth)
	e.POST("/doctor", d.CreateDoctor, auth)
	e.DELETE("/doctor/:email", d.DeleteDoctor, auth)
}
