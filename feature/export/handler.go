package export

import (
	"waifulist/core/errs"
	"waifulist/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the export listing.
type Handler struct {
	exporter *Exporter
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(exporter *Exporter, logger *zap.Logger) *Handler {
	return &Handler{exporter: exporter, logger: logger}
}

// RegisterRoutes registers the export routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/exports/:userID", h.HandleList)
}

// HandleList lists the exports written for a user.
// @Summary List Exports
// @Description List the collection exports stored for a user, newest first.
// @Tags export
// @Produce json
// @Param userID path string true "User id"
// @Success 200 {array} export.Object "Exports"
// @Failure 503 {object} map[string]string "Storage Disabled"
// @Router /exports/{userID} [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	objects, err := h.exporter.List(c.Context(), c.Params("userID"))
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Export listing failed", zap.Error(err))
		return c.Status(errs.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	if objects == nil {
		objects = []Object{}
	}
	return c.JSON(objects)
}
