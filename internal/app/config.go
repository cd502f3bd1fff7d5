package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/raysh454/posty/internal/demoserver"
	"github.com/raysh454/posty/internal/webclient"
)

// Config contains the runtime configuration for the client side and the demo
// server. It is constructed once in main and injected; no package keeps a
// process-wide singleton.
type Config struct {
	// BaseURL is the root of the posts service.
	BaseURL string `yaml:"base_url"`

	// Headers is the fixed header set the transport pipeline stamps on
	// every request.
	Headers webclient.HeaderConfig `yaml:"headers"`

	// WebClientCfg selects and tunes the transport backend.
	WebClientCfg webclient.Config `yaml:"webclient"`

	// DemoServerCfg configures the bundled fixture server.
	DemoServerCfg demoserver.Config `yaml:"demoserver"`
}

// DefaultConfig returns a Config populated with sensible development defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: "https://jsonplaceholder.typicode.com",
		Headers: webclient.HeaderConfig{
			Platform:  "go",
			AuthToken: "dev-token",
		},
		WebClientCfg: webclient.Config{
			Backend: webclient.BackendNetHTTP,
		},
		DemoServerCfg: demoserver.DefaultConfig(),
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing path
// returns the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
