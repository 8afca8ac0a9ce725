package wallhaven

import "time"

// Endpoints and request shaping for the wallhaven.cc API.
const (
	DefaultBaseURL = "https://wallhaven.cc/api/v1"
	searchPath     = "/search"
	APIKeyHeader   = "X-API-Key"
	UserAgent      = "Wallhavener/1.0"
	PerPage        = 24
	MaxRandomPage  = 10
	sortToplist    = "toplist"
)

// APIKeyRegexp validates a wallhaven API key. Keys are optional, so the empty string matches.
const APIKeyRegexp = `^([a-zA-Z0-9]{32})?$`

// wallhaven allows 45 API calls per minute per key.
const (
	requestsPerMinute = 45
	requestBurst      = 5
	requestTimeout    = 90 * time.Second
)
