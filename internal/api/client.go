package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/raysh454/posty/internal/logging"
	"github.com/raysh454/posty/internal/model"
	"github.com/raysh454/posty/internal/webclient"
)

// Options are caller-supplied extra query parameters (sort field, order, ...)
// merged into a request alongside its named parameters.
type Options map[string]string

// Client is the fixed catalogue of remote post operations. It owns the wire
// mapping (method, path, parameter placement) for each operation and hands the
// constructed request to the injected WebClient, which is expected to be the
// header-decorating pipeline.
type Client struct {
	baseURL string
	wc      webclient.WebClient
	logger  logging.Logger
}

func NewClient(baseURL string, wc webclient.WebClient, logger logging.Logger) *Client {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		wc:      wc,
		logger:  logger.With(logging.Field{Key: "component", Value: "api"}),
	}
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchDefault fetches the first post. GET /posts/1.
func (c *Client) FetchDefault(ctx context.Context) CallResult[model.Post] {
	return doJSON[model.Post](ctx, c, "GET", c.baseURL+"/posts/1", "", nil)
}

// FetchByID fetches one post by id. GET /posts/{id}. The id is placed as a
// path segment with no normalization beyond decimal formatting.
func (c *Client) FetchByID(ctx context.Context, id int) CallResult[model.Post] {
	return doJSON[model.Post](ctx, c, "GET", c.baseURL+"/posts/"+strconv.Itoa(id), "", nil)
}

// FetchByOwner fetches all posts of one owner. GET /posts?userId=.
func (c *Client) FetchByOwner(ctx context.Context, userID int) CallResult[[]model.Post] {
	return c.FetchByOwnerFiltered(ctx, userID, nil)
}

// FetchByOwnerFiltered fetches the posts of one owner with extra query
// parameters merged in. The named userId parameter is set after the options
// are merged, so an options key of the same name is overwritten: the named
// parameter wins.
func (c *Client) FetchByOwnerFiltered(ctx context.Context, userID int, opts Options) CallResult[[]model.Post] {
	q := url.Values{}
	for k, v := range opts {
		q.Set(k, v)
	}
	q.Set("userId", strconv.Itoa(userID))

	return doJSON[[]model.Post](ctx, c, "GET", c.baseURL+"/posts?"+q.Encode(), "", nil)
}

// Create creates a post from a JSON request body. POST /posts. On success the
// returned post is the server-echoed object (with its assigned id).
func (c *Client) Create(ctx context.Context, post model.Post) CallResult[model.Post] {
	body, err := json.Marshal(post)
	if err != nil {
		return transportError[model.Post](fmt.Errorf("encode post: %w", err))
	}
	return doJSON[model.Post](ctx, c, "POST", c.baseURL+"/posts", "", body)
}

// CreateForm creates a post from form-encoded fields. POST /posts with
// Content-Type application/x-www-form-urlencoded.
func (c *Client) CreateForm(ctx context.Context, userID, id int, title, body string) CallResult[model.Post] {
	form := model.Post{UserID: userID, ID: id, Title: title, Body: body}.FormValues()
	return doJSON[model.Post](ctx, c, "POST", c.baseURL+"/posts",
		"application/x-www-form-urlencoded", []byte(form.Encode()))
}

// doJSON issues one request through the webclient and classifies the result.
// contentType overrides the pipeline's default Content-Type when non-empty.
// There is exactly one suspension point here: the wc.Do round trip.
func doJSON[T any](ctx context.Context, c *Client, method, rawURL, contentType string, body []byte) CallResult[T] {
	req := &webclient.Request{
		Method: method,
		URL:    rawURL,
		Body:   body,
	}
	if contentType != "" {
		req.Headers = map[string][]string{"Content-Type": {contentType}}
	}

	resp, err := c.wc.Do(ctx, req)
	if err != nil {
		c.logger.Warn("call failed in transport",
			logging.Field{Key: "method", Value: method},
			logging.Field{Key: "url", Value: rawURL},
			logging.Field{Key: "error", Value: err.Error()})
		return transportError[T](err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug("call returned non-2xx",
			logging.Field{Key: "method", Value: method},
			logging.Field{Key: "url", Value: rawURL},
			logging.Field{Key: "status", Value: resp.StatusCode})
		return failure[T](resp.StatusCode, resp.Headers)
	}

	var decoded T
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		return transportError[T](fmt.Errorf("decode response body: %w", err))
	}
	return success(resp.StatusCode, resp.Headers, decoded)
}
