// Package cache provides a small generic TTL cache with stampede protection.
//
// It backs the upstream clients: user profiles from the collection service and
// media rosters from the catalog are fetched once per TTL window, and
// concurrent requests for the same key share a single fetch.
//
// # Usage
//
//	rosters := cache.New[[]reconcile.Character](10 * time.Minute)
//	roster, err := rosters.Get(ctx, mediaID, func(ctx context.Context) ([]reconcile.Character, error) {
//	    return fetchRoster(ctx, mediaID)
//	})
package cache
