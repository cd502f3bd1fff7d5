// Package demoserver is a small posts service compatible with the client in
// internal/api. It exists so demos and integration tests have a local stand-in
// for jsonplaceholder: same paths, same JSON shape, same 404-with-empty-body
// behavior on a missing post.
package demoserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/raysh454/posty/internal/logging"
	"github.com/raysh454/posty/internal/model"
)

// DemoServer serves the posts fixture API.
type DemoServer struct {
	cfg    Config
	store  PostStore
	router chi.Router
	logger logging.Logger
}

// NewDemoServer creates a server around an explicit store. Use NewFromConfig
// to build the store from configuration.
func NewDemoServer(cfg Config, store PostStore, logger logging.Logger) *DemoServer {
	if logger == nil {
		logger = logging.NewStdoutLogger("DemoServer")
	}

	s := &DemoServer{
		cfg:    cfg,
		store:  store,
		router: chi.NewRouter(),
		logger: logger,
	}
	s.routes()
	return s
}

// NewFromConfig builds the configured store backend and wraps it in a server.
func NewFromConfig(cfg Config, logger logging.Logger) (*DemoServer, error) {
	var (
		store PostStore
		err   error
	)
	switch strings.ToLower(strings.TrimSpace(cfg.StoreBackend)) {
	case "", "memory":
		store = NewMemoryStore()
	case "sqlite":
		store, err = NewSQLiteStore(cfg.DBPath, logger)
		if err != nil {
			return nil, fmt.Errorf("creating sqlite store: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
	return NewDemoServer(cfg, store, logger), nil
}

func (s *DemoServer) routes() {
	r := s.router

	r.Use(s.requestIDMiddleware)

	r.Get("/posts", s.handleListPosts)
	r.Get("/posts/{id}", s.handleGetPost)
	r.Post("/posts", s.handleCreatePost)

	// Demo control endpoints
	r.Post("/demo/reset", s.handleReset)
	r.Get("/demo/posts/count", s.handleCount)

	// Interactive API docs
	r.Get("/swagger/*", httpSwagger.WrapHandler)
}

// Handler returns the router, for httptest in integration tests.
func (s *DemoServer) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP on the configured address.
func (s *DemoServer) Start() error {
	s.logger.Info("demo server starting", logging.Field{Key: "addr", Value: s.cfg.Addr})
	return http.ListenAndServe(s.cfg.Addr, s.router)
}

// Close releases the underlying store.
func (s *DemoServer) Close() error {
	return s.store.Close()
}

// requestIDMiddleware tags every request with a uuid, echoed in X-Request-ID
// and attached to the access log line.
func (s *DemoServer) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New().String()
		w.Header().Set("X-Request-ID", reqID)

		s.logger.Debug("request",
			logging.Field{Key: "request_id", Value: reqID},
			logging.Field{Key: "method", Value: r.Method},
			logging.Field{Key: "path", Value: r.URL.Path})

		next.ServeHTTP(w, r)
	})
}

// handleListPosts lists posts, optionally filtered by owner.
//
//	@Summary  List posts
//	@Param    userId  query  int  false  "filter by owner"
//	@Produce  json
//	@Success  200  {array}  model.Post
//	@Router   /posts [get]
func (s *DemoServer) handleListPosts(w http.ResponseWriter, r *http.Request) {
	var (
		posts []model.Post
		err   error
	)

	if raw := r.URL.Query().Get("userId"); raw != "" {
		userID, convErr := strconv.Atoi(raw)
		if convErr != nil {
			// A non-numeric owner matches nothing.
			s.writeJSON(w, http.StatusOK, []model.Post{})
			return
		}
		posts, err = s.store.ListByOwner(r.Context(), userID)
	} else {
		posts, err = s.store.List(r.Context())
	}

	if err != nil {
		s.storeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, posts)
}

// handleGetPost returns one post by id. A miss is a 404 with an empty body.
//
//	@Summary  Get a post
//	@Param    id  path  int  true  "post id"
//	@Produce  json
//	@Success  200  {object}  model.Post
//	@Failure  404
//	@Router   /posts/{id} [get]
func (s *DemoServer) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	post, err := s.store.Get(r.Context(), id)
	if errors.Is(err, ErrPostNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, post)
}

// handleCreatePost accepts a JSON body or form-encoded fields depending on
// Content-Type, stores the post under the next id and echoes it back.
//
//	@Summary  Create a post
//	@Accept   json
//	@Accept   x-www-form-urlencoded
//	@Produce  json
//	@Success  201  {object}  model.Post
//	@Failure  400
//	@Router   /posts [post]
func (s *DemoServer) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var post model.Post

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "malformed form body", http.StatusBadRequest)
			return
		}
		post.UserID, _ = strconv.Atoi(r.PostFormValue("userId"))
		post.ID, _ = strconv.Atoi(r.PostFormValue("id"))
		post.Title = r.PostFormValue("title")
		post.Body = r.PostFormValue("body")
	} else {
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			http.Error(w, "malformed json body", http.StatusBadRequest)
			return
		}
	}

	created, err := s.store.Create(r.Context(), post)
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

// handleReset reinstalls the seed posts.
//
//	@Summary  Reset fixture state
//	@Success  204
//	@Router   /demo/reset [post]
func (s *DemoServer) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Reset(r.Context()); err != nil {
		s.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCount reports how many posts are stored.
//
//	@Summary  Count posts
//	@Produce  json
//	@Success  200  {object}  map[string]int
//	@Router   /demo/posts/count [get]
func (s *DemoServer) handleCount(w http.ResponseWriter, r *http.Request) {
	n, err := s.store.Count(r.Context())
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

func (s *DemoServer) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("writing response", logging.Field{Key: "error", Value: err.Error()})
	}
}

func (s *DemoServer) storeError(w http.ResponseWriter, err error) {
	s.logger.Error("store error", logging.Field{Key: "error", Value: err.Error()})
	http.Error(w, "internal error", http.StatusInternalServerError)
}
