package webclient

import (
	"context"
	"net/http"

	"github.com/raysh454/posty/internal/logging"
)

// HeaderConfig is the fixed header set stamped onto every outgoing request.
type HeaderConfig struct {
	// Platform is the value of the X-Platform header.
	Platform string `yaml:"platform"`

	// AuthToken is the value of the X-Auth-Token header.
	AuthToken string `yaml:"auth_token"`

	// Authorization, when non-empty, is added as the Authorization header
	// unless the caller already supplied one. This is the per-call auth
	// variant; most deployments leave it empty.
	Authorization string `yaml:"authorization"`
}

// HeaderClient decorates an inner WebClient so that every request carries the
// fixed header set before it goes out. The response (or transport fault) from
// the inner client is propagated unmodified.
//
// Header rules: Content-Type defaults to application/json but a caller that
// set its own Content-Type (the form-encoded create does) keeps it.
// X-Platform and X-Auth-Token are always stamped. No caller header of a
// different name is removed or rewritten.
type HeaderClient struct {
	inner  WebClient
	cfg    HeaderConfig
	logger logging.Logger
}

func NewHeaderClient(inner WebClient, cfg HeaderConfig, logger logging.Logger) *HeaderClient {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &HeaderClient{
		inner:  inner,
		cfg:    cfg,
		logger: logger.With(logging.Field{Key: "component", Value: "headerclient"}),
	}
}

func (hc *HeaderClient) Do(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return hc.inner.Do(ctx, req)
	}

	headers := http.Header{}
	for k, vs := range req.Headers {
		for _, v := range vs {
			headers.Add(k, v)
		}
	}

	if headers.Get("Content-Type") == "" {
		headers.Set("Content-Type", "application/json")
	}
	headers.Set("X-Platform", hc.cfg.Platform)
	headers.Set("X-Auth-Token", hc.cfg.AuthToken)
	if hc.cfg.Authorization != "" && headers.Get("Authorization") == "" {
		headers.Set("Authorization", hc.cfg.Authorization)
	}

	decorated := &Request{
		Method:  req.Method,
		URL:     req.URL,
		Headers: headers,
		Body:    req.Body,
	}

	return hc.inner.Do(ctx, decorated)
}

func (hc *HeaderClient) Close() error {
	return hc.inner.Close()
}
