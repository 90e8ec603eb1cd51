package catalog

// Config holds configuration for the media catalog (AniList GraphQL) client.
type Config struct {
	// URL is the GraphQL endpoint.
	URL string `mapstructure:"url" default:"https://graphql.anilist.co"`
	// TimeoutSeconds bounds every request to the catalog.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
	// PageSize is the number of characters requested per roster page.
	PageSize int `mapstructure:"page_size" default:"25"`
	// MaxPages bounds roster pagination.
	MaxPages int `mapstructure:"max_pages" default:"40"`
	// CacheTTLSeconds is how long fetched rosters are reused. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"600"`
}
