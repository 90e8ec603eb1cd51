package server

import "waifulist/core/reconcile"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"3333"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// DefaultShow is the display cap used when a request does not choose one
	// ("all" or a positive integer).
	DefaultShow string `mapstructure:"default_show" default:"200"`
	// DefaultSort is the sort key used when a request does not choose one.
	DefaultSort string `mapstructure:"default_sort" default:"date"`
}

// Defaults parses DefaultShow and DefaultSort, falling back to the engine
// defaults when either is invalid.
func (c Config) Defaults() (reconcile.DisplayCap, reconcile.SortKey) {
	show, err := reconcile.ParseDisplayCap(c.DefaultShow)
	if err != nil {
		show = reconcile.DefaultDisplayCap
	}
	sort, err := reconcile.ParseSortKey(c.DefaultSort)
	if err != nil {
		sort = reconcile.SortDate
	}
	return show, sort
}

// IsValid reports whether the configured defaults parse.
func (c Config) IsValid() bool {
	if _, err := reconcile.ParseDisplayCap(c.DefaultShow); err != nil {
		return false
	}
	_, err := reconcile.ParseSortKey(c.DefaultSort)
	return err == nil
}
