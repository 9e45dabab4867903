package render

// SlideRenderer is implemented by anything that paints part of a frame
type SlideRenderer interface {
	Render(ctx Context, buf *Buffer)
}

// Priority determines render order. Lower values render first.
type Priority int

const (
	PriorityBackground Priority = iota * 100
	PriorityContent
	PriorityDiagram
	PriorityControls
	PriorityUI
	PriorityOverlay
)
