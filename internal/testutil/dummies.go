// Package testutil provides shared test doubles for use across package tests.
// All dummies implement the corresponding interfaces from the production code,
// allowing injection into components under test without real I/O or side effects.
package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/raysh454/posty/internal/api"
	"github.com/raysh454/posty/internal/logging"
	"github.com/raysh454/posty/internal/model"
	"github.com/raysh454/posty/internal/webclient"
)

// ─── Logger ────────────────────────────────────────────────────────────

// DummyLogger implements logging.Logger with in-memory recording.
type DummyLogger struct {
	mu     sync.Mutex
	Errors []string
	Infos  []string
	Debugs []string
	Warns  []string
}

func (l *DummyLogger) Debug(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Debugs = append(l.Debugs, msg)
}

func (l *DummyLogger) Info(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Infos = append(l.Infos, msg)
}

func (l *DummyLogger) Warn(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Warns = append(l.Warns, msg)
}

func (l *DummyLogger) Error(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Errors = append(l.Errors, msg)
}

func (l *DummyLogger) With(_ ...logging.Field) logging.Logger { return l }

// ─── WebClient ─────────────────────────────────────────────────────────

// DummyWebClient implements webclient.WebClient.
// By default it returns an empty JSON object with status 200.
// Set Responses[url] for a canned response, FailURLs[url] = true to force a
// transport error for a specific URL.
type DummyWebClient struct {
	ResponseDelay time.Duration
	Responses     map[string]*webclient.Response
	FailURLs      map[string]bool

	mu       sync.Mutex
	Requests []*webclient.Request
}

func (d *DummyWebClient) Do(ctx context.Context, req *webclient.Request) (*webclient.Response, error) {
	if d.ResponseDelay > 0 {
		select {
		case <-time.After(d.ResponseDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	d.mu.Lock()
	d.Requests = append(d.Requests, req)
	d.mu.Unlock()

	if d.FailURLs[req.URL] {
		return nil, errors.New("dummy transport failure")
	}
	if resp, ok := d.Responses[req.URL]; ok {
		return resp, nil
	}
	return &webclient.Response{
		Request:    req,
		Headers:    http.Header{},
		Body:       []byte(`{}`),
		StatusCode: 200,
		FetchedAt:  time.Now(),
	}, nil
}

func (d *DummyWebClient) Close() error { return nil }

// RecordedURLs returns the URLs of all requests seen so far.
func (d *DummyWebClient) RecordedURLs() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, 0, len(d.Requests))
	for _, r := range d.Requests {
		out = append(out, r.URL)
	}
	return out
}

// JSONResponse builds a 200 response with v encoded as the body.
func JSONResponse(v any) *webclient.Response {
	body, _ := json.Marshal(v)
	return &webclient.Response{
		Headers:    http.Header{"Content-Type": []string{"application/json"}},
		Body:       body,
		StatusCode: 200,
		FetchedAt:  time.Now(),
	}
}

// ─── Repository ────────────────────────────────────────────────────────

// DummyRepository implements repository.Repository with canned results and
// call recording. The zero value returns empty success results, which is
// enough for tests that only care about call forwarding.
type DummyRepository struct {
	PostResult  api.CallResult[model.Post]
	PostsResult api.CallResult[[]model.Post]

	mu    sync.Mutex
	Calls []string
}

func (r *DummyRepository) record(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, op)
}

// CallOps returns the operations invoked so far, in order.
func (r *DummyRepository) CallOps() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.Calls...)
}

func (r *DummyRepository) FetchDefault(ctx context.Context) api.CallResult[model.Post] {
	r.record("fetch-default")
	return r.PostResult
}

func (r *DummyRepository) FetchByID(ctx context.Context, id int) api.CallResult[model.Post] {
	r.record("fetch-by-id")
	return r.PostResult
}

func (r *DummyRepository) FetchByOwner(ctx context.Context, userID int) api.CallResult[[]model.Post] {
	r.record("fetch-by-owner")
	return r.PostsResult
}

func (r *DummyRepository) FetchByOwnerFiltered(ctx context.Context, userID int, opts api.Options) api.CallResult[[]model.Post] {
	r.record("fetch-by-owner-filtered")
	return r.PostsResult
}

func (r *DummyRepository) Create(ctx context.Context, post model.Post) api.CallResult[model.Post] {
	r.record("create")
	return r.PostResult
}

func (r *DummyRepository) CreateForm(ctx context.Context, userID, id int, title, body string) api.CallResult[model.Post] {
	r.record("create-form")
	return r.PostResult
}
