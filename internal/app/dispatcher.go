package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/raysh454/posty/internal/api"
	"github.com/raysh454/posty/internal/logging"
	"github.com/raysh454/posty/internal/model"
	"github.com/raysh454/posty/internal/observe"
	"github.com/raysh454/posty/internal/repository"
)

type CallStatus string

const (
	CallRunning  CallStatus = "running"
	CallDone     CallStatus = "done"
	CallCanceled CallStatus = "canceled"
)

// Call is the record of one dispatched operation.
type Call struct {
	ID        string     `json:"id"`
	Op        string     `json:"op"`
	Status    CallStatus `json:"status"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   time.Time  `json:"ended_at"`
}

// Dispatcher issues repository operations asynchronously and lands each
// outcome in the cell for that call shape. There is no admission control: any
// number of calls may be in flight, each resolving independently. Two calls
// sharing a cell race; the cell keeps whichever finished last.
//
// Single-post fetches share PostCell, list fetches share PostsCell, and both
// create variants share CreatedCell: one cell per distinct result signature.
type Dispatcher struct {
	repo   repository.Repository
	logger logging.Logger

	PostCell    *observe.Cell[api.CallResult[model.Post]]
	PostsCell   *observe.Cell[api.CallResult[[]model.Post]]
	CreatedCell *observe.Cell[api.CallResult[model.Post]]

	callsMu     sync.Mutex
	calls       map[string]*Call
	callCancels map[string]context.CancelFunc
	wg          sync.WaitGroup
}

func NewDispatcher(repo repository.Repository, logger logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Dispatcher{
		repo:        repo,
		logger:      logger.With(logging.Field{Key: "component", Value: "dispatcher"}),
		PostCell:    observe.NewCell[api.CallResult[model.Post]](),
		PostsCell:   observe.NewCell[api.CallResult[[]model.Post]](),
		CreatedCell: observe.NewCell[api.CallResult[model.Post]](),
		calls:       map[string]*Call{},
		callCancels: map[string]context.CancelFunc{},
	}
}

func (d *Dispatcher) FetchDefault(ctx context.Context, cbs ...observe.Callback[api.CallResult[model.Post]]) string {
	return dispatch(d, ctx, "fetch-default", d.PostCell, cbs, d.repo.FetchDefault)
}

func (d *Dispatcher) FetchByID(ctx context.Context, id int, cbs ...observe.Callback[api.CallResult[model.Post]]) string {
	return dispatch(d, ctx, "fetch-by-id", d.PostCell, cbs, func(ctx context.Context) api.CallResult[model.Post] {
		return d.repo.FetchByID(ctx, id)
	})
}

func (d *Dispatcher) FetchByOwner(ctx context.Context, userID int, cbs ...observe.Callback[api.CallResult[[]model.Post]]) string {
	return dispatch(d, ctx, "fetch-by-owner", d.PostsCell, cbs, func(ctx context.Context) api.CallResult[[]model.Post] {
		return d.repo.FetchByOwner(ctx, userID)
	})
}

func (d *Dispatcher) FetchByOwnerFiltered(ctx context.Context, userID int, opts api.Options, cbs ...observe.Callback[api.CallResult[[]model.Post]]) string {
	return dispatch(d, ctx, "fetch-by-owner-filtered", d.PostsCell, cbs, func(ctx context.Context) api.CallResult[[]model.Post] {
		return d.repo.FetchByOwnerFiltered(ctx, userID, opts)
	})
}

func (d *Dispatcher) Create(ctx context.Context, post model.Post, cbs ...observe.Callback[api.CallResult[model.Post]]) string {
	return dispatch(d, ctx, "create", d.CreatedCell, cbs, func(ctx context.Context) api.CallResult[model.Post] {
		return d.repo.Create(ctx, post)
	})
}

func (d *Dispatcher) CreateForm(ctx context.Context, userID, id int, title, body string, cbs ...observe.Callback[api.CallResult[model.Post]]) string {
	return dispatch(d, ctx, "create-form", d.CreatedCell, cbs, func(ctx context.Context) api.CallResult[model.Post] {
		return d.repo.CreateForm(ctx, userID, id, title, body)
	})
}

// dispatch runs op asynchronously, lands its result in cell and then in each
// per-call callback. It returns the call id immediately. The default lifecycle
// is run-to-completion; Cancel is the opt-in escape hatch.
func dispatch[T any](d *Dispatcher, ctx context.Context, op string, cell *observe.Cell[api.CallResult[T]], cbs []observe.Callback[api.CallResult[T]], fn func(context.Context) api.CallResult[T]) string {
	callCtx, cancel := context.WithCancel(ctx)

	call := &Call{
		ID:        uuid.New().String(),
		Op:        op,
		Status:    CallRunning,
		StartedAt: time.Now(),
	}

	d.callsMu.Lock()
	d.calls[call.ID] = call
	d.callCancels[call.ID] = cancel
	d.callsMu.Unlock()

	d.logger.Debug("dispatching call",
		logging.Field{Key: "call_id", Value: call.ID},
		logging.Field{Key: "op", Value: op})

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer cancel()

		result := fn(callCtx)
		cell.Set(result)
		for _, cb := range cbs {
			cb.Result(result, callCtx.Err())
		}

		d.callsMu.Lock()
		call.EndedAt = time.Now()
		if call.Status == CallRunning {
			call.Status = CallDone
		}
		delete(d.callCancels, call.ID)
		d.callsMu.Unlock()

		d.logger.Debug("call resolved",
			logging.Field{Key: "call_id", Value: call.ID},
			logging.Field{Key: "op", Value: op},
			logging.Field{Key: "outcome", Value: result.Outcome.String()})
	}()

	return call.ID
}

// Cancel aborts one in-flight call. The call still resolves (its cell is set
// with a transport-error result carrying the context error). Canceling an
// unknown or finished call is a no-op returning false.
func (d *Dispatcher) Cancel(id string) bool {
	d.callsMu.Lock()
	defer d.callsMu.Unlock()
	cancel, ok := d.callCancels[id]
	if !ok {
		return false
	}
	if call := d.calls[id]; call != nil {
		call.Status = CallCanceled
	}
	cancel()
	return true
}

// Calls returns a snapshot of all calls issued so far.
func (d *Dispatcher) Calls() []Call {
	d.callsMu.Lock()
	defer d.callsMu.Unlock()
	out := make([]Call, 0, len(d.calls))
	for _, c := range d.calls {
		out = append(out, *c)
	}
	return out
}

// Wait blocks until every dispatched call has resolved. Intended for the CLI
// and tests; a long-lived caller normally relies on cell observers instead.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
