package demoserver

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/raysh454/posty/internal/model"
)

var ErrPostNotFound = errors.New("post not found")

// PostStore holds the fixture posts served by the demo server.
type PostStore interface {
	// List returns all posts ordered by id.
	List(ctx context.Context) ([]model.Post, error)

	// ListByOwner returns all posts with the given userId, ordered by id.
	ListByOwner(ctx context.Context, userID int) ([]model.Post, error)

	// Get returns one post by id, or ErrPostNotFound.
	Get(ctx context.Context, id int) (model.Post, error)

	// Create stores post under the next sequential id (the submitted id is
	// ignored, as jsonplaceholder does) and returns the stored post.
	Create(ctx context.Context, post model.Post) (model.Post, error)

	// Reset drops everything and reinstalls the seed posts.
	Reset(ctx context.Context) error

	// Count returns the number of stored posts.
	Count(ctx context.Context) (int, error)

	Close() error
}

// SeedPosts is the fixture data installed on startup and on reset.
func SeedPosts() []model.Post {
	return []model.Post{
		{UserID: 1, ID: 1, Title: "sunt aut facere", Body: "quia et suscipit suscipit recusandae"},
		{UserID: 1, ID: 2, Title: "qui est esse", Body: "est rerum tempore vitae sequi sint"},
		{UserID: 2, ID: 3, Title: "ea molestias quasi", Body: "et iusto sed quo iure"},
		{UserID: 2, ID: 4, Title: "eum et est occaecati", Body: "ullam et saepe reiciendis voluptatem"},
		{UserID: 3, ID: 5, Title: "nesciunt quas odio", Body: "repudiandae veniam quaerat sunt sed"},
	}
}

// MemoryStore is the default in-memory PostStore.
type MemoryStore struct {
	mu     sync.RWMutex
	posts  map[int]model.Post
	nextID int
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	_ = s.Reset(context.Background())
	return s
}

func (s *MemoryStore) List(ctx context.Context) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) ListByOwner(ctx context.Context, userID int) ([]model.Post, error) {
	all, _ := s.List(ctx)
	out := make([]model.Post, 0, len(all))
	for _, p := range all {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, id int) (model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[id]
	if !ok {
		return model.Post{}, ErrPostNotFound
	}
	return p, nil
}

func (s *MemoryStore) Create(ctx context.Context, post model.Post) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post.ID = s.nextID
	s.nextID++
	s.posts[post.ID] = post
	return post, nil
}

func (s *MemoryStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = make(map[int]model.Post)
	maxID := 0
	for _, p := range SeedPosts() {
		s.posts[p.ID] = p
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	s.nextID = maxID + 1
	return nil
}

func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts), nil
}

func (s *MemoryStore) Close() error { return nil }
