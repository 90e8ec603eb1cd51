// Package collection serves reconciled character collections.
//
// A request names a primary user and optionally compare users, a media and
// search, sort and cap selections. The Service fetches everything from the
// collection service and the catalog, builds a View and renders it through
// the reconcile engine. Compare users are resolved concurrently; those that
// cannot be resolved are skipped.
//
// When the collection service is down the primary user is served from the
// archive, if one is configured, and the listing is flagged stale.
//
// # Endpoints
//
//   - GET  /collection/:userID
//   - POST /collection/:userID/export
//   - GET  /users/resolve?q=
package collection
