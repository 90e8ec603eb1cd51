// Package config provides configuration management for waifulist.
//
// It utilizes Viper for loading configuration from environment variables,
// an optional config.yaml and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, API key, default sort and display cap
//   - Collection: collection service URL, timeout, cache TTL, compare limit
//   - Catalog: media catalog GraphQL URL, page size, page limit, cache TTL
//   - Storage: S3/MinIO credentials and export bucket (optional)
//   - Database: snapshot database connection (optional)
//   - Log: Logging level and format
//
// Environment variables map to nested keys by replacing dots with
// underscores, e.g. COLLECTION_BASE_URL -> collection.base_url.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
