// Package resource provides owning handles for native multimedia objects.
//
// A native object (window, renderer, texture, surface) is wrapped exactly once
// by an Owned handle. Owned is exclusive: it is moved with Move, never copied,
// and releasing it calls the object's kind-specific Destroy. Shared turns an
// Owned handle into a reference-counted one; every holder gets its own Ref and
// the object is destroyed when the last Ref is released.
//
// Handles are not safe for concurrent use. They are meant to live on the one
// goroutine that owns the multimedia library.
package resource

import "fmt"

// Kind identifies the class of native object a handle wraps.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindWindow
	KindRenderer
	KindTexture
	KindSurface
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindWindow:
		return "window"
	case KindRenderer:
		return "renderer"
	case KindTexture:
		return "texture"
	case KindSurface:
		return "surface"
	default:
		return "unknown"
	}
}

// Resource is a native object that knows how to release itself.
// Destroy must be a no-op when the underlying native pointer is nil.
type Resource interface {
	Kind() Kind
	Destroy() error
}

// ReleaseFunc observes release failures. Handles never return them to the
// caller because release usually happens on a deferred path.
type ReleaseFunc func(kind Kind, err error)

// Owned is an exclusive handle to a single native resource.
type Owned[T Resource] struct {
	res      T
	valid    bool
	onFailed ReleaseFunc
}

// Own wraps res in an exclusive handle. The returned handle is empty when res
// is nil (including a typed nil pointer reported through IsNil).
func Own[T Resource](res T, onFailed ReleaseFunc) *Owned[T] {
	return &Owned[T]{res: res, valid: !isNil(res), onFailed: onFailed}
}

// Get returns the wrapped resource. The second result is false when the
// handle is empty.
func (o *Owned[T]) Get() (T, bool) {
	if o == nil || !o.valid {
		var zero T
		return zero, false
	}
	return o.res, true
}

// Value returns the wrapped resource or the zero value of T.
func (o *Owned[T]) Value() T {
	v, _ := o.Get()
	return v
}

// Valid reports whether the handle still owns a resource.
func (o *Owned[T]) Valid() bool {
	return o != nil && o.valid
}

// Kind returns the resource kind, or KindUnknown for an empty handle.
func (o *Owned[T]) Kind() Kind {
	if !o.Valid() {
		return KindUnknown
	}
	return o.res.Kind()
}

// Move transfers ownership to a new handle and leaves o empty.
func (o *Owned[T]) Move() *Owned[T] {
	if o == nil {
		return &Owned[T]{}
	}
	moved := &Owned[T]{res: o.res, valid: o.valid, onFailed: o.onFailed}
	o.clear()
	return moved
}

// Release destroys the resource and empties the handle. Releasing an empty
// handle does nothing.
func (o *Owned[T]) Release() {
	if !o.Valid() {
		return
	}
	res := o.res
	o.clear()
	if err := res.Destroy(); err != nil && o.onFailed != nil {
		o.onFailed(res.Kind(), err)
	}
}

// String describes the handle for logging.
func (o *Owned[T]) String() string {
	if !o.Valid() {
		return "resource(empty)"
	}
	return fmt.Sprintf("resource(%s)", o.res.Kind())
}

func (o *Owned[T]) clear() {
	var zero T
	o.res = zero
	o.valid = false
}

// nillable is implemented by wrapper types whose zero pointer is meaningful.
type nillable interface {
	IsNil() bool
}

func isNil(r Resource) bool {
	if r == nil {
		return true
	}
	if n, ok := r.(nillable); ok {
		return n.IsNil()
	}
	return false
}
