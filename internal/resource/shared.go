package resource

// Shared is a reference-counted owner of one native resource.
type Shared[T Resource] struct {
	owned *Owned[T]
	refs  int
}

// Ref is one holder's reference into a Shared resource.
type Ref[T Resource] struct {
	shared   *Shared[T]
	released bool
}

// Share consumes an exclusive handle and returns the first reference to it.
// The source handle is left empty.
func Share[T Resource](o *Owned[T]) *Ref[T] {
	s := &Shared[T]{owned: o.Move(), refs: 1}
	return &Ref[T]{shared: s}
}

// Clone returns a new reference to the same resource. Cloning a released or
// nil reference returns an empty reference.
func (r *Ref[T]) Clone() *Ref[T] {
	if !r.Valid() {
		return &Ref[T]{released: true}
	}
	r.shared.refs++
	return &Ref[T]{shared: r.shared}
}

// Get returns the shared resource. The second result is false when this
// reference was released or the resource is gone.
func (r *Ref[T]) Get() (T, bool) {
	if !r.Valid() {
		var zero T
		return zero, false
	}
	return r.shared.owned.Get()
}

// Value returns the shared resource or the zero value of T.
func (r *Ref[T]) Value() T {
	v, _ := r.Get()
	return v
}

// Valid reports whether this reference is still held and the resource alive.
func (r *Ref[T]) Valid() bool {
	return r != nil && !r.released && r.shared != nil && r.shared.owned.Valid()
}

// Count returns the number of live references, 0 once destroyed.
func (r *Ref[T]) Count() int {
	if r == nil || r.shared == nil {
		return 0
	}
	return r.shared.refs
}

// Release drops this reference. The resource is destroyed when the last
// reference is released. Releasing the same reference twice does nothing.
func (r *Ref[T]) Release() {
	if r == nil || r.released || r.shared == nil {
		return
	}
	r.released = true
	r.shared.refs--
	if r.shared.refs <= 0 {
		r.shared.refs = 0
		r.shared.owned.Release()
	}
}
