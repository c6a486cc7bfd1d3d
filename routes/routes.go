package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventstats/controllers"
	"eventstats/middlewares"
)

// SetupRoutes registers the API. jwtSecret empty leaves the API open.
func SetupRoutes(app *fiber.App, ctl *controllers.Controller, jwtSecret string) {
	app.Get("/healthz", ctl.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	api.Post("/login", ctl.Login)

	auth := middlewares.JWTMiddleware(jwtSecret)

	user := api.Group("/users", auth)
	user.Get("/profile", ctl.GetProfile)

	api.Get("/staff", auth, ctl.GetStaffEstimate)

	events := api.Group("/events", auth)
	events.Get("/", ctl.GetEvents)
	events.Get("/overview", ctl.GetEventsOverview)
	events.Get("/:event/dates", ctl.GetEventDates)
	events.Get("/:event/dates/:date/statistics", ctl.GetEventStatistics)
	events.Get("/:event/dates/:date/people", ctl.GetEventPeople)
}
