package render

// Context carries per-frame information shared by all renderers. Renderers
// read application state through their own construction-time references;
// the frame context only describes the surface being drawn.
type Context struct {
	Width  int
	Height int
	Frame  uint64
}
