package demoserver

// Config holds configuration for the posts fixture server.
type Config struct {
	// Addr is the listen address, e.g. ":9999".
	Addr string `yaml:"addr"`

	// StoreBackend selects the post store: "memory" or "sqlite".
	StoreBackend string `yaml:"store_backend"`

	// DBPath is the sqlite file path when StoreBackend is "sqlite".
	DBPath string `yaml:"db_path"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:         ":9999",
		StoreBackend: "memory",
		DBPath:       "posts.db",
	}
}
