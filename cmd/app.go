package cmd

import (
	"context"
	"fmt"
	"time"

	"waifulist/core/config"
	"waifulist/core/database"
	"waifulist/core/httpclient"
	"waifulist/core/logger"
	"waifulist/core/storage"
	"waifulist/feature/archive"
	"waifulist/feature/catalog"
	"waifulist/feature/collection"
	"waifulist/feature/export"
	"waifulist/feature/health"

	"go.uber.org/zap"
)

// app bundles the services shared by the server and the CLI commands.
type app struct {
	cfg        *config.Config
	logger     *zap.Logger
	collection *collection.Client
	catalog    *catalog.Client
	archive    *archive.Store
	exporter   *export.Exporter
	service    *collection.Service
	checker    *health.Checker
}

// newApp loads the configuration and wires every service. Optional backends
// that fail to connect are logged and left disabled.
func newApp() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	a := &app{cfg: cfg, logger: logg}

	a.collection = collection.NewClient(
		cfg.Collection.BaseURL,
		httpclient.New(cfg.Collection.TimeoutSeconds),
		time.Duration(cfg.Collection.CacheTTLSeconds)*time.Second,
	)
	a.catalog = catalog.NewClient(cfg.Catalog, httpclient.New(cfg.Catalog.TimeoutSeconds))

	a.archive = archive.NewStore(nil)
	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			store := archive.NewStore(db)
			if err := store.Migrate(); err != nil {
				logg.Warn("Snapshot table migration failed", zap.Error(err))
			} else {
				a.archive = store
				logg.Info("Connected to snapshot database", zap.String("driver", cfg.Database.Driver))
			}
		}
	}

	a.exporter = export.NewExporter(nil, cfg.Storage.Bucket, cfg.Storage.Region)
	if cfg.Storage.Enabled {
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage client failed", zap.Error(err))
		} else {
			a.exporter = export.NewExporter(client, cfg.Storage.Bucket, cfg.Storage.Region)
		}
	}

	a.service = collection.NewService(a.collection, a.catalog, a.archive, a.exporter, logg, cfg.Collection.MaxCompare)

	a.checker = health.NewChecker(5*time.Second).
		Add("collection", a.collection).
		Add("catalog", a.catalog).
		Add("storage", a.exporter).
		Add("database", a.archive)

	return a, nil
}

// query builds a collection query with the server's configured defaults.
func (a *app) query(user string, p collection.QueryParams) (collection.Query, error) {
	show, sort := a.cfg.Server.Defaults()
	return collection.ParseQuery(user, p, sort, show)
}

// checkHealth runs every health check.
func (a *app) checkHealth(ctx context.Context) health.Report {
	return a.checker.Run(ctx)
}
