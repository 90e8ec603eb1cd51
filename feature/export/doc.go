// Package export writes reconciled collection listings to S3-compatible object
// storage.
//
// Exports are stored as indented JSON under exports/<user>/<unixnano>-<uuid>.json in the
// configured bucket, which is created on first use. GET /exports/:userID lists
// them newest first. Without storage the exporter is disabled.
package export
