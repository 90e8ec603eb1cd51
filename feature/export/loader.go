package export

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	exporter *Exporter
	handler  *Handler
}

// NewFeature creates the export feature.
func NewFeature(exporter *Exporter, logger *zap.Logger) *Feature {
	return &Feature{exporter: exporter, handler: NewHandler(exporter, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "export"
}

// IsEnabled reports whether object storage is configured.
func (f *Feature) IsEnabled() bool {
	return f.exporter.Enabled()
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
