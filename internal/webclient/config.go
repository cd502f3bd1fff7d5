package webclient

import "time"

type Backend string

const (
	BackendNetHTTP Backend = "nethttp"
)

// Config is the minimal set of options required for constructing a WebClient.
// It is embedded in app.Config without creating an import cycle.
type Config struct {
	Backend Backend       `yaml:"backend"`
	Timeout time.Duration `yaml:"timeout"`
}
