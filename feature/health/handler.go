package health

import (
	"github.com/gofiber/fiber/v2"
)

// Handler serves the health report.
type Handler struct {
	checker *Checker
}

// NewHandler creates a new HTTP handler.
func NewHandler(checker *Checker) *Handler {
	return &Handler{checker: checker}
}

// RegisterRoutes registers the health route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
}

// HandleHealth reports the reachability of every dependency.
// @Summary Health
// @Description Check the collection service, the catalog, object storage and the database.
// @Tags health
// @Produce json
// @Success 200 {object} health.Report "All dependencies reachable"
// @Failure 503 {object} health.Report "A dependency is down"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	report := h.checker.Run(c.Context())
	if !report.Healthy {
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
