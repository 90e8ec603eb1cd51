package collection

import (
	"strings"

	"waifulist/core/errs"
	"waifulist/core/logger"
	"waifulist/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for collections.
type Handler struct {
	service *Service
	defSort reconcile.SortKey
	defCap  reconcile.DisplayCap
}

// NewHandler creates a new HTTP handler. defSort and defCap apply when a
// request does not select them.
func NewHandler(service *Service, defSort reconcile.SortKey, defCap reconcile.DisplayCap) *Handler {
	return &Handler{service: service, defSort: defSort, defCap: defCap}
}

// RegisterRoutes registers the collection routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/collection")
	group.Get("/:userID", h.HandleList)
	group.Post("/:userID/export", h.HandleExport)

	app.Get("/users/resolve", h.HandleResolve)
}

// ExportResponse is the body of POST /collection/{userID}/export.
type ExportResponse struct {
	Bucket string `json:"bucket"`
	Object string `json:"object"`
}

// ResolveResponse is the body of GET /users/resolve.
type ResolveResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *Handler) parseQuery(c *fiber.Ctx) (Query, error) {
	var compare []string
	for _, v := range c.Context().QueryArgs().PeekMulti("compare") {
		compare = append(compare, string(v))
	}

	return ParseQuery(c.Params("userID"), QueryParams{
		Search:  c.Query("search"),
		Sort:    c.Query("sort"),
		Reverse: c.QueryBool("reverse", false),
		Show:    c.Query("show"),
		Media:   c.Query("media"),
		Compare: compare,
		Source:  c.Query("source"),
		Refresh: c.QueryBool("refresh", false),
	}, h.defSort, h.defCap)
}

// HandleList returns the reconciled collection of a user.
// @Summary Get Collection
// @Description Reconcile a user's characters with compare users and an optional media roster.
// @Tags collection
// @Produce json
// @Param userID path string true "User id, Discord username or AniList handle"
// @Param search query string false "Name or id search (at least 2 characters)"
// @Param sort query string false "Sort key (date, name, id)"
// @Param reverse query bool false "Reverse the sort"
// @Param show query string false "Display cap (100, 200, 500, all)"
// @Param media query int false "AniList media id"
// @Param compare query []string false "Compare users" collectionFormat(multi)
// @Param source query string false "Character source (collection, wishlist)"
// @Param refresh query bool false "Bypass the cached profile"
// @Success 200 {object} collection.Listing "Collection"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "User Not Found"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /collection/{userID} [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	q, err := h.parseQuery(c)
	if err != nil {
		return fail(c, l, "Invalid collection query", err)
	}

	listing, err := h.service.List(c.Context(), q)
	if err != nil {
		return fail(c, l, "Collection listing failed", err)
	}
	return c.JSON(listing)
}

// HandleExport writes the reconciled collection of a user to object storage.
// @Summary Export Collection
// @Description Reconcile a collection and store the result as JSON in the export bucket.
// @Tags collection
// @Produce json
// @Param userID path string true "User id, Discord username or AniList handle"
// @Param search query string false "Name or id search"
// @Param sort query string false "Sort key (date, name, id)"
// @Param reverse query bool false "Reverse the sort"
// @Param show query string false "Display cap (100, 200, 500, all)"
// @Param media query int false "AniList media id"
// @Param compare query []string false "Compare users" collectionFormat(multi)
// @Param source query string false "Character source (collection, wishlist)"
// @Param refresh query bool false "Bypass the cached profile"
// @Success 200 {object} collection.ExportResponse "Export location"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "User Not Found"
// @Failure 503 {object} map[string]string "Storage Disabled"
// @Router /collection/{userID}/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	q, err := h.parseQuery(c)
	if err != nil {
		return fail(c, l, "Invalid collection query", err)
	}

	obj, err := h.service.Export(c.Context(), q)
	if err != nil {
		return fail(c, l, "Collection export failed", err)
	}

	l.Info("Collection exported", zap.String("object", obj.Key))
	return c.JSON(ExportResponse{Bucket: obj.Bucket, Object: obj.Key})
}

// HandleResolve resolves free-form input to a user id.
// @Summary Resolve User
// @Description Resolve a Discord id, Discord username or AniList handle to a user id.
// @Tags users
// @Produce json
// @Param q query string true "User input"
// @Success 200 {object} collection.ResolveResponse "Resolved user"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "User Not Found"
// @Router /users/resolve [get]
func (h *Handler) HandleResolve(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	u, err := h.service.Resolve(c.Context(), strings.Clone(c.Query("q")))
	if err != nil {
		return fail(c, l, "User resolution failed", err)
	}
	return c.JSON(ResolveResponse{ID: u.ID, Name: u.DisplayName()})
}

func fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := errs.HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Debug(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
