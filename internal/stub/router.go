// Package stub is an in-memory implementation of the note service wire
// contract. It exists so the client core can be run and tested end to end
// without a remote deployment; the core itself never imports it.
package stub

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"note-keep/internal/config"
	"note-keep/internal/utils/validate"
)

// NewApp configures a Fiber app serving the note service API.
func NewApp(cfg config.Config, log *slog.Logger) *fiber.App {
	h := NewHandlers(validate.V(), log)

	app := fiber.New(fiber.Config{
		Immutable: true, // make Fiber copy all request-derived strings
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type, Authorization",
	}))

	if cfg.RouteMetricsEnabled {
		attachMetrics(app)
	}

	// Health check outside the API group to keep probe noise out of metrics paths
	app.Get("/healthz", Healthz)

	api := app.Group("/api/note")
	api.Get("/all", h.List)
	api.Post("/add", h.Add)
	api.Post("/edit/:id", h.Edit)
	api.Put("/update-note-pinned/:id", h.SetPinned)
	api.Delete("/delete/:id", h.Delete)

	return app
}
