package types

import "time"

// HTTPConfig holds shared HTTP settings used by the catalog client.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "booksearch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CatalogConfig holds the Open Library endpoints.
type CatalogConfig struct {
	// SearchURL is the search endpoint (default https://openlibrary.org/search.json).
	SearchURL string `json:"search_url" yaml:"search_url"`

	// CoversURL is the cover image base (default https://covers.openlibrary.org/b).
	CoversURL string `json:"covers_url" yaml:"covers_url"`

	// CatalogURL is prefixed to a record key to build its detail link
	// (default https://openlibrary.org).
	CatalogURL string `json:"catalog_url" yaml:"catalog_url"`
}

// SearchConfig holds settings for the interactive search.
type SearchConfig struct {
	HTTPConfig    `yaml:",inline"`
	CatalogConfig `yaml:",inline"`

	// Debounce is the input quiescence delay before a query takes effect
	// (default 450ms).
	Debounce time.Duration `json:"debounce" yaml:"debounce"`
}

// Defaults for SearchConfig fields left zero.
const (
	DefaultSearchURL  = "https://openlibrary.org/search.json"
	DefaultCoversURL  = "https://covers.openlibrary.org/b"
	DefaultCatalogURL = "https://openlibrary.org"
	DefaultDebounce   = 450 * time.Millisecond
	DefaultTimeout    = 15 * time.Second
	DefaultUserAgent  = "booksearch/0.1"
)

// WithDefaults returns a copy of c with zero fields set to their defaults.
func (c SearchConfig) WithDefaults() SearchConfig {
	if c.SearchURL == "" {
		c.SearchURL = DefaultSearchURL
	}
	if c.CoversURL == "" {
		c.CoversURL = DefaultCoversURL
	}
	if c.CatalogURL == "" {
		c.CatalogURL = DefaultCatalogURL
	}
	if c.Debounce <= 0 {
		c.Debounce = DefaultDebounce
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	return c
}
