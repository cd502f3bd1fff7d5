package observe

// Callback receives the one-shot outcome of a single asynchronous call.
type Callback[R any] interface {
	Result(result R, err error)
}

type simpleCallback[R any] struct {
	callback func(result R, err error)
}

func NewCallback[R any](callback func(result R, err error)) Callback[R] {
	return &simpleCallback[R]{
		callback: callback,
	}
}

func NewNoopCallback[R any]() Callback[R] {
	return &simpleCallback[R]{
		callback: func(result R, err error) {},
	}
}

func (s *simpleCallback[R]) Result(result R, err error) {
	s.callback(result, err)
}

// CallbackResult pairs a result with its error for channel delivery.
type CallbackResult[R any] struct {
	Result R
	Error  error
}

// NewBlockingCallback returns a callback and an unbuffered channel that
// receives the outcome once. Useful for synchronous call sites and tests.
func NewBlockingCallback[R any]() (Callback[R], chan CallbackResult[R]) {
	c := make(chan CallbackResult[R])
	callback := NewCallback[R](func(result R, err error) {
		c <- CallbackResult[R]{
			Result: result,
			Error:  err,
		}
	})
	return callback, c
}
