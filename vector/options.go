package vector

// Option configures a Vector at construction time.
type Option[T any] func(v *Vector[T])

// WithDestroyer installs fn as the per-element finalizer. fn receives a
// pointer to the slot that is about to be removed or overwritten and
// must release whatever the element owns. Panics on nil.
func WithDestroyer[T any](fn func(p *T)) Option[T] {
	if fn == nil {
		panic("vector: WithDestroyer(nil)")
	}
	return func(v *Vector[T]) {
		v.destroy = fn
	}
}
