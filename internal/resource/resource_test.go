package resource

import (
	"errors"
	"testing"
)

// fakeResource counts how many times it was destroyed.
type fakeResource struct {
	kind      Kind
	destroyed int
	err       error
}

func (f *fakeResource) Kind() Kind { return f.kind }

func (f *fakeResource) Destroy() error {
	if f == nil {
		return nil
	}
	f.destroyed++
	return f.err
}

func (f *fakeResource) IsNil() bool { return f == nil }

func TestOwnedReleaseDestroysOnce(t *testing.T) {
	res := &fakeResource{kind: KindWindow}
	h := Own[*fakeResource](res, nil)

	if !h.Valid() {
		t.Fatal("new handle should be valid")
	}
	if h.Kind() != KindWindow {
		t.Errorf("Kind() = %v, expected window", h.Kind())
	}

	h.Release()
	h.Release()

	if res.destroyed != 1 {
		t.Errorf("Destroy called %d times, expected 1", res.destroyed)
	}
	if h.Valid() {
		t.Error("handle should be empty after release")
	}
	if _, ok := h.Get(); ok {
		t.Error("Get() on released handle should report false")
	}
}

func TestOwnedNilResourceIsEmpty(t *testing.T) {
	var res *fakeResource
	h := Own[*fakeResource](res, nil)

	if h.Valid() {
		t.Error("handle around a nil pointer should be empty")
	}
	// Must not panic or call Destroy
	h.Release()

	var nilHandle *Owned[*fakeResource]
	nilHandle.Release()
	if nilHandle.Valid() {
		t.Error("nil handle should not be valid")
	}
}

func TestOwnedMoveLeavesSourceEmpty(t *testing.T) {
	res := &fakeResource{kind: KindTexture}
	src := Own[*fakeResource](res, nil)

	dst := src.Move()

	if src.Valid() {
		t.Error("moved-from handle should be empty")
	}
	if !dst.Valid() {
		t.Fatal("moved-to handle should own the resource")
	}

	// Releasing the moved-from handle is a no-op
	src.Release()
	if res.destroyed != 0 {
		t.Errorf("moved-from release destroyed resource %d times", res.destroyed)
	}

	dst.Release()
	if res.destroyed != 1 {
		t.Errorf("Destroy called %d times, expected 1", res.destroyed)
	}
}

func TestOwnedReleaseReportsFailure(t *testing.T) {
	boom := errors.New("boom")
	res := &fakeResource{kind: KindRenderer, err: boom}

	var gotKind Kind
	var gotErr error
	h := Own[*fakeResource](res, func(kind Kind, err error) {
		gotKind = kind
		gotErr = err
	})
	h.Release()

	if gotKind != KindRenderer || !errors.Is(gotErr, boom) {
		t.Errorf("release failure callback got (%v, %v)", gotKind, gotErr)
	}
}

func TestSharedDestroyedByLastRef(t *testing.T) {
	res := &fakeResource{kind: KindRenderer}
	owned := Own[*fakeResource](res, nil)

	first := Share(owned)
	if owned.Valid() {
		t.Error("Share should consume the exclusive handle")
	}

	second := first.Clone()
	if first.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", first.Count())
	}

	first.Release()
	if res.destroyed != 0 {
		t.Fatal("resource destroyed while a reference is still held")
	}
	if v, ok := second.Get(); !ok || v != res {
		t.Error("remaining reference should still see the resource")
	}

	second.Release()
	if res.destroyed != 1 {
		t.Errorf("Destroy called %d times, expected 1", res.destroyed)
	}
}

func TestSharedDoubleReleaseIsNoop(t *testing.T) {
	res := &fakeResource{kind: KindWindow}
	first := Share(Own[*fakeResource](res, nil))
	second := first.Clone()

	// Releasing the same reference repeatedly must not steal the other holder's count
	first.Release()
	first.Release()
	first.Release()

	if res.destroyed != 0 {
		t.Fatal("double release of one reference destroyed the shared resource")
	}
	if !second.Valid() {
		t.Fatal("second reference should still be valid")
	}

	second.Release()
	second.Release()
	if res.destroyed != 1 {
		t.Errorf("Destroy called %d times, expected 1", res.destroyed)
	}
}

func TestCloneOfReleasedRefIsEmpty(t *testing.T) {
	res := &fakeResource{kind: KindSurface}
	ref := Share(Own[*fakeResource](res, nil))
	ref.Release()

	clone := ref.Clone()
	if clone.Valid() {
		t.Error("clone of a released reference should be empty")
	}
	clone.Release()
	if res.destroyed != 1 {
		t.Errorf("Destroy called %d times, expected 1", res.destroyed)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindWindow, "window"},
		{KindRenderer, "renderer"},
		{KindTexture, "texture"},
		{KindSurface, "surface"},
		{KindUnknown, "unknown"},
	}

	for _, tc := range tests {
		if tc.kind.String() != tc.expected {
			t.Errorf("Kind(%d).String() = %q, expected %q", tc.kind, tc.kind.String(), tc.expected)
		}
	}
}
