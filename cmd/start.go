package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"waifulist/core/loader"
	"waifulist/core/logger"
	"waifulist/core/middleware/auth"
	"waifulist/core/middleware/rayid"
	"waifulist/feature/catalog"
	"waifulist/feature/collection"
	"waifulist/feature/export"
	"waifulist/feature/health"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "waifulist/docs/swagger"
)

// @title Waifulist API
// @version 1.0
// @description Reconciled anime character collections.
// @host localhost:3333
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the waifulist server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger and services
		a, err := newApp()
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		logg := a.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !a.cfg.Server.IsValid() {
			logg.Warn("Invalid default sort or show, using built-in defaults",
				zap.String("default_sort", a.cfg.Server.DefaultSort),
				zap.String("default_show", a.cfg.Server.DefaultShow),
			)
		}

		// 2. Initialize Fiber App
		app := fiber.New(serverConfig())

		// 3. Register Features
		show, sort := a.cfg.Server.Defaults()
		mgr := loader.NewManager(logg)
		mgr.Register(health.NewFeature(a.checker))
		mgr.Register(collection.NewFeature(a.service, sort, show))
		mgr.Register(catalog.NewFeature(a.catalog, logg))
		mgr.Register(export.NewFeature(a.exporter, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray id
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (disabled when no API key is configured)
		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			if err := app.Listen(":" + a.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

// serverConfig returns the fiber settings. Request values are copied out of
// fasthttp's buffers since services cache them past the handler.
func serverConfig() fiber.Config {
	return fiber.Config{
		DisableStartupMessage: true, // We will log our own startup message
		Immutable:             true,
	}
}
