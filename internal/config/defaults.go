package config

// DefaultPath is the config file used when --config is not given.
const DefaultPath = ".postboard.yml"

// DefaultBaseURL points at the reference API started by `postboard backend`.
const DefaultBaseURL = "http://localhost:5002/api"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: 30,
		DefaultSort: SortConfig{
			Direction: SortAsc,
		},
		Web: WebConfig{
			Port:            8080,
			Markdown:        false,
			AllowAllOrigins: false,
		},
		Backend: BackendConfig{
			Port:     5002,
			Database: "postboard.db",
			Seed:     true,
		},
	}
}
