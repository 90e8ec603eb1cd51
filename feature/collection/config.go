package collection

// Config holds configuration for the collection service client.
type Config struct {
	// BaseURL is the root URL of the collection service.
	BaseURL string `mapstructure:"base_url" default:"https://waifuapi.karitham.dev"`
	// TimeoutSeconds bounds every request to the collection service.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
	// CacheTTLSeconds is how long fetched profiles are reused. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"120"`
	// MaxCompare is the maximum number of compare users per view.
	MaxCompare int `mapstructure:"max_compare" default:"8"`
}
