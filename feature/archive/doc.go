// Package archive keeps the last successfully fetched payload of every viewed
// user in the relational database.
//
// When the collection service is unreachable the collection feature falls back
// to these snapshots and flags the response as stale. Without a database the
// store is disabled and the fallback is skipped.
package archive
