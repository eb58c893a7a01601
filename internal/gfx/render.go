package gfx

import "github.com/vovakirdan/spriteloop/internal/core"

// DrawFunc draws one frame's content between clear and present.
type DrawFunc func(r Renderer) error

// RenderStep clears r to clear, runs draw, and presents the frame. A nil
// renderer makes it a no-op. Failures come back as RenderingFailed; the frame
// is still presented if clearing succeeded.
func RenderStep(r Renderer, clear core.Color, draw DrawFunc) error {
	if resourceIsNil(r) {
		return nil
	}

	if err := r.SetDrawColor(clear); err != nil {
		return newError(RenderingFailed, "", err)
	}
	if err := r.Clear(); err != nil {
		return newError(RenderingFailed, "", err)
	}

	var drawErr error
	if draw != nil {
		drawErr = draw(r)
	}
	if err := r.Present(); err != nil {
		return newError(RenderingFailed, "", err)
	}
	if drawErr != nil {
		return newError(RenderingFailed, "", drawErr)
	}
	return nil
}
