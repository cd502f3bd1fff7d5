package webclient

import (
	"context"
)

// WebClient executes one HTTP request description and returns the response.
// Implementations must return a transport-level failure (no response at all)
// as a non-nil error and must never invent a Response for it.
type WebClient interface {
	Do(ctx context.Context, req *Request) (*Response, error)

	Close() error
}
