// Package observe holds the single-slot observable cells that deliver the
// latest call result to whoever registered interest. One cell per distinct
// call shape; a new result overwrites the previous one, it is never queued.
package observe

import "sync"

// Cell is a single-slot observable value holder. Set replaces the held value
// and notifies all observers synchronously, in registration order, on the
// calling goroutine. When two in-flight calls share a cell the cell ends up
// holding whichever completed last; completion order is unrelated to issue
// order and callers must not assume otherwise.
type Cell[T any] struct {
	mu        sync.Mutex
	value     T
	hasValue  bool
	observers []func(T)
}

func NewCell[T any]() *Cell[T] {
	return &Cell[T]{}
}

// Set stores v and notifies every current observer with it.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	c.hasValue = true
	observers := make([]func(T), len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()

	for _, fn := range observers {
		if fn != nil {
			fn(v)
		}
	}
}

// Get returns the held value and whether one was ever set.
func (c *Cell[T]) Get() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.hasValue
}

// Observe registers fn. If a value is already held, fn is invoked immediately
// with it; afterwards fn runs on every Set. The returned func unregisters fn;
// the observer's owner decides when to call it.
func (c *Cell[T]) Observe(fn func(T)) (unobserve func()) {
	c.mu.Lock()
	c.observers = append(c.observers, fn)
	idx := len(c.observers) - 1
	v, has := c.value, c.hasValue
	c.mu.Unlock()

	if has {
		fn(v)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.observers[idx] = nil
			// Compact trailing nils so indexes of live observers stay valid.
			for len(c.observers) > 0 && c.observers[len(c.observers)-1] == nil {
				c.observers = c.observers[:len(c.observers)-1]
			}
		})
	}
}
