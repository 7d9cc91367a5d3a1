package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityBlocks
	PriorityItems
	PriorityEntities
	PriorityParticle
	PriorityUI
	PriorityOverlay
)
