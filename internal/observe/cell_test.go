package observe_test

import (
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/raysh454/posty/internal/observe"
)

func TestCell_SetThenObserve_DeliversLatestOnly(t *testing.T) {
	t.Parallel()
	cell := observe.NewCell[string]()
	cell.Set("A")
	cell.Set("B")

	var got []string
	cell.Observe(func(v string) { got = append(got, v) })

	// A newly-registered observer sees only the current value.
	assert.Equal(t, got, []string{"B"})
}

func TestCell_ObserveThenSet_DeliversInOrder(t *testing.T) {
	t.Parallel()
	cell := observe.NewCell[string]()

	var got []string
	cell.Observe(func(v string) { got = append(got, v) })

	cell.Set("A")
	cell.Set("B")

	assert.Equal(t, got, []string{"A", "B"})
}

func TestCell_ObserversNotifiedInRegistrationOrder(t *testing.T) {
	t.Parallel()
	cell := observe.NewCell[int]()

	var order []string
	cell.Observe(func(int) { order = append(order, "first") })
	cell.Observe(func(int) { order = append(order, "second") })
	cell.Observe(func(int) { order = append(order, "third") })

	cell.Set(1)

	assert.Equal(t, order, []string{"first", "second", "third"})
}

func TestCell_ObserveEmptyCell_NoImmediateDelivery(t *testing.T) {
	t.Parallel()
	cell := observe.NewCell[int]()

	called := false
	cell.Observe(func(int) { called = true })

	if called {
		t.Fatal("observer must not fire before any value is set")
	}
	if _, ok := cell.Get(); ok {
		t.Fatal("empty cell reported a value")
	}
}

func TestCell_SetOverwrites(t *testing.T) {
	t.Parallel()
	cell := observe.NewCell[int]()
	cell.Set(1)
	cell.Set(2)

	v, ok := cell.Get()
	if !ok {
		t.Fatal("cell lost its value")
	}
	assert.Equal(t, v, 2)
}

func TestCell_Unobserve(t *testing.T) {
	t.Parallel()
	cell := observe.NewCell[int]()

	var first, second int
	stop := cell.Observe(func(v int) { first = v })
	cell.Observe(func(v int) { second = v })

	cell.Set(1)
	stop()
	stop() // idempotent
	cell.Set(2)

	assert.Equal(t, first, 1)
	assert.Equal(t, second, 2)
}

func TestBlockingCallback(t *testing.T) {
	t.Parallel()
	callback, ch := observe.NewBlockingCallback[string]()

	go callback.Result("done", nil)

	got := <-ch
	assert.Equal(t, got.Result, "done")
	assert.Equal(t, got.Error, nil)
}

func TestCallback_Noop(t *testing.T) {
	t.Parallel()
	// Must not panic.
	observe.NewNoopCallback[int]().Result(1, nil)
}
