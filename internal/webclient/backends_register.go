package webclient

import (
	"github.com/raysh454/posty/internal/logging"
)

// RegisterDefaultBackends registers the default nethttp backend. Call this
// from init() or early in main() to make backends available to NewWebClient.
// Tests register their own fake backends next to it.
func RegisterDefaultBackends() {
	RegisterBackend(string(BackendNetHTTP), func(cfg Config, logger logging.Logger) (WebClient, error) {
		return NewNetHTTPClient(cfg, logger, nil)
	})
}

func init() {
	RegisterDefaultBackends()
}
