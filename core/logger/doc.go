// Package logger builds the application's zap logger.
//
// Level follows zap's names (debug, info, warn, error). Debug selects zap's
// development config for readable timestamps and caller info. Format is either
// "json" for production or "console" for local runs.
//
// HTTP handlers use WithRayID to tag log lines with the request's ray id set by
// the rayid middleware.
package logger
