package render

// SystemRenderer is implemented by every layer of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for per-frame enable/disable
type VisibilityToggle interface {
	IsVisible(ctx RenderContext) bool
}
