package picking

import (
	"image/color"

	"rubik-sketch/internal/camera"
	"rubik-sketch/internal/grid"
	"rubik-sketch/internal/logger"
)

// Highlighter keeps at most one piece highlighted: the nearest one under the pointer.
type Highlighter struct {
	color   color.RGBA
	current *grid.Piece
	log     logger.Logger
}

// NewHighlighter returns a Highlighter that paints hovered pieces with c.
func NewHighlighter(c color.RGBA, log logger.Logger) *Highlighter {
	return &Highlighter{color: c, log: logger.OrNop(log)}
}

// Color is the fixed highlight color.
func (h *Highlighter) Color() color.RGBA {
	return h.color
}

// Current is the highlighted piece, or nil.
func (h *Highlighter) Current() *grid.Piece {
	return h.current
}

// OnPointerMove re-evaluates the highlight for a pointer at the given normalized device
// coordinates.
func (h *Highlighter) OnPointerMove(ndcX, ndcY float32, cam *camera.Perspective, g *grid.Group) {
	h.Update(FromNDC(ndcX, ndcY, cam), g)
}

// Update moves the highlight to whatever r hits first. It reports whether anything changed.
func (h *Highlighter) Update(r Ray, g *grid.Group) bool {
	hit, ok := Cast(r, g)
	if !ok {
		if h.current == nil {
			return false
		}
		h.log.Debugf("highlight cleared: %s", h.current.Name)
		h.Clear()
		return true
	}
	if hit.Piece == h.current {
		return false
	}
	if h.current != nil {
		h.current.Restore()
	}
	hit.Piece.Highlight(h.color)
	h.current = hit.Piece
	h.log.Debugf("highlight: %s at %.3f", hit.Piece.Name, hit.T)
	return true
}

// Clear restores the highlighted piece, if any, and forgets it.
func (h *Highlighter) Clear() {
	if h.current == nil {
		return
	}
	h.current.Restore()
	h.current = nil
}

// Forget drops the reference without touching the piece. Used when the grid that owned the
// piece has been replaced.
func (h *Highlighter) Forget() {
	h.current = nil
}
