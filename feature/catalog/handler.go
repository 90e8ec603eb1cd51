package catalog

import (
	"fmt"
	"strconv"

	"waifulist/core/errs"
	"waifulist/core/logger"
	"waifulist/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the media catalog.
type Handler struct {
	catalog Catalog
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(catalog Catalog, logger *zap.Logger) *Handler {
	return &Handler{catalog: catalog, logger: logger}
}

// RegisterRoutes registers the media routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/media")
	group.Get("/search", h.HandleSearch)
	group.Get("/:mediaID/characters", h.HandleRoster)
}

// RosterResponse is the body of GET /media/{mediaID}/characters.
type RosterResponse struct {
	MediaID    int64                 `json:"media_id"`
	Characters []reconcile.Character `json:"characters"`
}

// HandleSearch searches media by title.
// @Summary Search Media
// @Description Search anime and manga by title.
// @Tags media
// @Produce json
// @Param q query string true "Title search"
// @Param count query int false "Maximum number of results" default(10)
// @Success 200 {array} catalog.Media "Matching media"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /media/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	count := c.QueryInt("count", 10)
	media, err := h.catalog.SearchMedia(c.Context(), c.Query("q"), count)
	if err != nil {
		return h.fail(c, l, "Media search failed", err)
	}
	return c.JSON(media)
}

// HandleRoster returns every character of a media.
// @Summary Media Characters
// @Description List the full character roster of a media.
// @Tags media
// @Produce json
// @Param mediaID path int true "AniList media id"
// @Success 200 {object} catalog.RosterResponse "Roster"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Media Not Found"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /media/{mediaID}/characters [get]
func (h *Handler) HandleRoster(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	id, err := ParseMediaID(c.Params("mediaID"))
	if err != nil {
		return h.fail(c, l, "Invalid media id", err)
	}

	roster, err := h.catalog.Roster(c.Context(), id)
	if err != nil {
		return h.fail(c, l, "Media roster failed", err)
	}
	return c.JSON(RosterResponse{MediaID: id, Characters: roster})
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := errs.HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Debug(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// ParseMediaID parses a positive media id.
func ParseMediaID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid media id %q", errs.ErrInvalidInput, s)
	}
	return id, nil
}
