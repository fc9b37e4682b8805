package config

// SortDirection orders a sorted post listing.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Config is the top-level postboard configuration, corresponding to .postboard.yml.
type Config struct {
	BaseURL        string        `yaml:"base_url" koanf:"base_url"`
	TimeoutSeconds int           `yaml:"timeout_seconds" koanf:"timeout_seconds"`
	DefaultSort    SortConfig    `yaml:"default_sort" koanf:"default_sort"`
	Web            WebConfig     `yaml:"web" koanf:"web"`
	Backend        BackendConfig `yaml:"backend" koanf:"backend"`
}

// SortConfig is the sort applied by `postboard list` when no flags are given.
// An empty Field means response order.
type SortConfig struct {
	Field     string        `yaml:"field" koanf:"field"`
	Direction SortDirection `yaml:"direction" koanf:"direction"`
}

// WebConfig holds settings for the browser front-end.
type WebConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	Markdown        bool `yaml:"markdown" koanf:"markdown"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// BackendConfig holds settings for the reference posts API.
type BackendConfig struct {
	Port     int    `yaml:"port" koanf:"port"`
	Database string `yaml:"database" koanf:"database"`
	Seed     bool   `yaml:"seed" koanf:"seed"`
}
