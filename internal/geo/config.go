package geo

// Config holds settings for the IP geolocation client.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	TimeoutMs  int
	MaxRetries int
	// RetryBackoffMs is the wait before the first retry; it doubles for
	// each later one.
	RetryBackoffMs int
}

// DefaultConfig returns a Config pointing at the ip-api.com JSON endpoint.
func DefaultConfig() Config {
	return Config{
		Enabled:        true,
		Endpoint:       "http://ip-api.com/json/",
		TimeoutMs:      5000,
		MaxRetries:     1,
		RetryBackoffMs: 250,
	}
}
