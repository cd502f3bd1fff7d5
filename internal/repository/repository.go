// Package repository is the substitutable seam between callers and the
// concrete API client. Every operation forwards one-to-one: same inputs, same
// result, same failure semantics. Nothing here transforms data; the package
// exists so tests and alternate wirings can swap the implementation.
package repository

import (
	"context"

	"github.com/raysh454/posty/internal/api"
	"github.com/raysh454/posty/internal/model"
)

// Repository mirrors the API surface operation for operation.
type Repository interface {
	FetchDefault(ctx context.Context) api.CallResult[model.Post]
	FetchByID(ctx context.Context, id int) api.CallResult[model.Post]
	FetchByOwner(ctx context.Context, userID int) api.CallResult[[]model.Post]
	FetchByOwnerFiltered(ctx context.Context, userID int, opts api.Options) api.CallResult[[]model.Post]
	Create(ctx context.Context, post model.Post) api.CallResult[model.Post]
	CreateForm(ctx context.Context, userID, id int, title, body string) api.CallResult[model.Post]
}

// APIRepository forwards to a *api.Client.
type APIRepository struct {
	client *api.Client
}

func NewAPIRepository(client *api.Client) *APIRepository {
	return &APIRepository{client: client}
}

func (r *APIRepository) FetchDefault(ctx context.Context) api.CallResult[model.Post] {
	return r.client.FetchDefault(ctx)
}

func (r *APIRepository) FetchByID(ctx context.Context, id int) api.CallResult[model.Post] {
	return r.client.FetchByID(ctx, id)
}

func (r *APIRepository) FetchByOwner(ctx context.Context, userID int) api.CallResult[[]model.Post] {
	return r.client.FetchByOwner(ctx, userID)
}

func (r *APIRepository) FetchByOwnerFiltered(ctx context.Context, userID int, opts api.Options) api.CallResult[[]model.Post] {
	return r.client.FetchByOwnerFiltered(ctx, userID, opts)
}

func (r *APIRepository) Create(ctx context.Context, post model.Post) api.CallResult[model.Post] {
	return r.client.Create(ctx, post)
}

func (r *APIRepository) CreateForm(ctx context.Context, userID, id int, title, body string) api.CallResult[model.Post] {
	return r.client.CreateForm(ctx, userID, id, title, body)
}
