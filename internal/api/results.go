package api

import "net/http"

// Outcome tags the result of one remote operation.
type Outcome int

const (
	// OutcomeSuccess: 2xx status, decoded body available.
	OutcomeSuccess Outcome = iota

	// OutcomeFailure: a response arrived with a non-2xx status. No usable body.
	OutcomeFailure

	// OutcomeTransportError: no response at all (DNS, connect, timeout), or
	// the call never reached the network (bad request construction, or a 2xx
	// body that failed to decode). Err carries the cause; there is no status.
	OutcomeTransportError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeTransportError:
		return "transport-error"
	default:
		return "unknown"
	}
}

// CallResult is the outcome of one remote operation. Exactly one of the three
// outcomes applies; callers branch on Outcome before touching Body or Err.
// A CallResult is created fresh per invocation and never mutated after return.
type CallResult[T any] struct {
	Outcome    Outcome
	StatusCode int
	Headers    http.Header
	Body       T
	Err        error
}

// OK reports whether the call succeeded with a decoded body.
func (r CallResult[T]) OK() bool {
	return r.Outcome == OutcomeSuccess
}

func success[T any](status int, headers http.Header, body T) CallResult[T] {
	return CallResult[T]{
		Outcome:    OutcomeSuccess,
		StatusCode: status,
		Headers:    headers,
		Body:       body,
	}
}

func failure[T any](status int, headers http.Header) CallResult[T] {
	return CallResult[T]{
		Outcome:    OutcomeFailure,
		StatusCode: status,
		Headers:    headers,
	}
}

func transportError[T any](err error) CallResult[T] {
	return CallResult[T]{
		Outcome: OutcomeTransportError,
		Err:     err,
	}
}
