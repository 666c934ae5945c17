package pptx

// Lazy is a memoization cell backing the lazily-computed properties of the
// object model (core properties, presentation, slide collections). The
// initializer runs on the first successful Value call and never again;
// later calls return the identical cached value. A failed initialization
// is not cached, so the next access retries. There is no invalidation.
//
// The model is single-threaded, so the cell carries no locking.
type Lazy[T any] struct {
	init func() (T, error)
	done bool
	val  T
}

// NewLazy creates a cell that computes its value with init on first access.
func NewLazy[T any](init func() (T, error)) *Lazy[T] {
	return &Lazy[T]{init: init}
}

// Value returns the cached value, computing it on first access.
func (l *Lazy[T]) Value() (T, error) {
	if !l.done {
		val, err := l.init()
		if err != nil {
			var zero T
			return zero, err
		}
		l.val = val
		l.done = true
	}
	return l.val, nil
}
