// Package catalog talks to the AniList GraphQL API.
//
// It provides the two lookups the collection view needs: the full character
// roster of a media (following pagination) and a title search. Rosters are
// cached because they rarely change.
//
// # Endpoints
//
//   - GET /media/search?q=&count=
//   - GET /media/:mediaID/characters
package catalog
