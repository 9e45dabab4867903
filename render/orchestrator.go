package render

import "github.com/gdamore/tcell/v2"

type rendererEntry struct {
	renderer SlideRenderer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline: it owns the compositor
// buffer and invokes registered renderers in priority order each frame.
type Orchestrator struct {
	screen    tcell.Screen
	buffer    *Buffer
	renderers []rendererEntry
	regCount  int
	frame     uint64
}

// NewOrchestrator creates an orchestrator drawing to the given screen
func NewOrchestrator(screen tcell.Screen, width, height int) *Orchestrator {
	return &Orchestrator{
		screen:    screen,
		buffer:    NewBuffer(width, height),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order
// via insertion sort; equal priorities keep registration order.
func (o *Orchestrator) Register(r SlideRenderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (o *Orchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// RenderFrame clears the buffer, runs every renderer in priority order, and
// flushes the composed frame to the screen
func (o *Orchestrator) RenderFrame() {
	o.frame++
	o.buffer.Clear()

	ctx := Context{
		Width:  o.buffer.Width(),
		Height: o.buffer.Height(),
		Frame:  o.frame,
	}

	for _, e := range o.renderers {
		e.renderer.Render(ctx, o.buffer)
	}

	o.buffer.Flush(o.screen)
}
