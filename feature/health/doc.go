// Package health reports whether the service's dependencies are reachable.
//
// Each dependency is a Pinger. Optional backends that are not configured
// answer errs.ErrDisabled and are reported as disabled without failing the
// report.
package health
