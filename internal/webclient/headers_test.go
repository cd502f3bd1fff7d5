package webclient_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/raysh454/posty/internal/webclient"
)

// captureClient records every request it is handed and returns a fixed response.
type captureClient struct {
	mu       sync.Mutex
	requests []*webclient.Request
	response *webclient.Response
	err      error
}

func (c *captureClient) Do(_ context.Context, req *webclient.Request) (*webclient.Response, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req)
	c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	if c.response != nil {
		return c.response, nil
	}
	return &webclient.Response{Request: req, StatusCode: 200, Headers: http.Header{}}, nil
}

func (c *captureClient) Close() error { return nil }

func (c *captureClient) last(t *testing.T) *webclient.Request {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.requests) == 0 {
		t.Fatal("no request reached the inner client")
	}
	return c.requests[len(c.requests)-1]
}

func TestHeaderClient_AddsFixedHeaders(t *testing.T) {
	t.Parallel()
	inner := &captureClient{}
	hc := webclient.NewHeaderClient(inner, webclient.HeaderConfig{
		Platform:  "go",
		AuthToken: "tok-123",
	}, nil)

	_, err := hc.Do(context.Background(), &webclient.Request{Method: "GET", URL: "http://x/posts/1"})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	got := inner.last(t)
	if ct := got.Headers.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if p := got.Headers.Get("X-Platform"); p != "go" {
		t.Errorf("X-Platform = %q, want go", p)
	}
	if tok := got.Headers.Get("X-Auth-Token"); tok != "tok-123" {
		t.Errorf("X-Auth-Token = %q, want tok-123", tok)
	}
}

func TestHeaderClient_PreservesCallerHeaders(t *testing.T) {
	t.Parallel()
	inner := &captureClient{}
	hc := webclient.NewHeaderClient(inner, webclient.HeaderConfig{Platform: "go", AuthToken: "tok"}, nil)

	hdrs := http.Header{}
	hdrs.Set("X-Custom", "keep-me")

	_, err := hc.Do(context.Background(), &webclient.Request{
		Method:  "GET",
		URL:     "http://x/posts",
		Headers: hdrs,
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	got := inner.last(t)
	if v := got.Headers.Get("X-Custom"); v != "keep-me" {
		t.Errorf("X-Custom = %q, want keep-me", v)
	}
	// The original request must not have been mutated.
	if hdrs.Get("X-Platform") != "" {
		t.Error("caller header map was mutated by the pipeline")
	}
}

func TestHeaderClient_CallerContentTypeWins(t *testing.T) {
	t.Parallel()
	inner := &captureClient{}
	hc := webclient.NewHeaderClient(inner, webclient.HeaderConfig{Platform: "go", AuthToken: "tok"}, nil)

	hdrs := http.Header{}
	hdrs.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err := hc.Do(context.Background(), &webclient.Request{
		Method:  "POST",
		URL:     "http://x/posts",
		Headers: hdrs,
		Body:    []byte("userId=1"),
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	got := inner.last(t)
	if ct := got.Headers.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q, want the caller-supplied form encoding", ct)
	}
}

func TestHeaderClient_OptionalAuthorization(t *testing.T) {
	t.Parallel()
	inner := &captureClient{}
	hc := webclient.NewHeaderClient(inner, webclient.HeaderConfig{
		Platform:      "go",
		AuthToken:     "tok",
		Authorization: "Bearer abc",
	}, nil)

	_, err := hc.Do(context.Background(), &webclient.Request{Method: "GET", URL: "http://x/posts"})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	if v := inner.last(t).Headers.Get("Authorization"); v != "Bearer abc" {
		t.Errorf("Authorization = %q, want Bearer abc", v)
	}
}

func TestHeaderClient_PropagatesTransportFault(t *testing.T) {
	t.Parallel()
	inner := &captureClient{err: context.DeadlineExceeded}
	hc := webclient.NewHeaderClient(inner, webclient.HeaderConfig{Platform: "go", AuthToken: "tok"}, nil)

	_, err := hc.Do(context.Background(), &webclient.Request{Method: "GET", URL: "http://x/posts"})
	if err == nil {
		t.Fatal("expected the inner fault to propagate")
	}
}
