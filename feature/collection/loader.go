package collection

import (
	"waifulist/core/reconcile"

	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the collection feature around svc.
func NewFeature(svc *Service, defSort reconcile.SortKey, defCap reconcile.DisplayCap) *Feature {
	return &Feature{service: svc, handler: NewHandler(svc, defSort, defCap)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "collection"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
