// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure and the request defaults it carries:
// the listening port, the optional API key and the display cap and sort key
// applied when a collection request does not specify them.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the collection feature to resolve request defaults.
package server
