package gfx

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure reported by the graphics layer. It
// implements error so it can be used as an errors.Is target:
//
//	if errors.Is(err, gfx.WindowCreationFailed) { ... }
type ErrorKind uint8

const (
	InitFailed ErrorKind = iota + 1
	WindowCreationFailed
	RendererCreationFailed
	RenderingFailed
	TextureCreationFailed
	StateFailed
)

// Prefix returns the human-readable prefix used in diagnostics.
func (k ErrorKind) Prefix() string {
	switch k {
	case InitFailed:
		return "SDL initialization failed"
	case WindowCreationFailed:
		return "Window creation failed"
	case RendererCreationFailed:
		return "Renderer creation failed"
	case RenderingFailed:
		return "Rendering failed"
	case TextureCreationFailed:
		return "Texture creation failed"
	case StateFailed:
		return "SDL state failed"
	default:
		return "Unknown error"
	}
}

// String returns the kind's identifier.
func (k ErrorKind) String() string {
	switch k {
	case InitFailed:
		return "InitFailed"
	case WindowCreationFailed:
		return "WindowCreationFailed"
	case RendererCreationFailed:
		return "RendererCreationFailed"
	case RenderingFailed:
		return "RenderingFailed"
	case TextureCreationFailed:
		return "TextureCreationFailed"
	case StateFailed:
		return "StateFailed"
	default:
		return "Unknown"
	}
}

func (k ErrorKind) Error() string {
	return k.Prefix()
}

// Error is a tagged failure: the kind, the backend's detail string, and the
// underlying error if one was returned.
type Error struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

// newError builds an Error, taking the detail from err when the backend gave
// no separate message.
func newError(kind ErrorKind, detail string, err error) *Error {
	if detail == "" && err != nil {
		detail = err.Error()
	}
	return &Error{Kind: kind, Detail: detail, Err: err}
}

func (e *Error) Error() string {
	detail := e.Detail
	if detail == "" {
		detail = "No error"
	}
	return fmt.Sprintf("%s: %s", e.Kind.Prefix(), detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches an ErrorKind target against the error's kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// KindOf returns the ErrorKind carried by err, or 0 if err is not a
// graphics-layer error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var k ErrorKind
	if errors.As(err, &k) {
		return k
	}
	return 0
}
