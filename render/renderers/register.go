package renderers

import "github.com/Caizj-lg/block-breaker-game/render"

// Register adds the standard layers to an orchestrator in draw order
func Register(o *render.RenderOrchestrator) {
	o.Register(NewFieldRenderer(), render.PriorityBlocks)
	o.Register(NewItemRenderer(), render.PriorityItems)
	o.Register(NewPaddleRenderer(), render.PriorityEntities)
	o.Register(NewBallRenderer(), render.PriorityEntities)
	o.Register(NewParticleRenderer(), render.PriorityParticle)
	o.Register(NewStatusBarRenderer(), render.PriorityUI)
	o.Register(NewOverlayRenderer(), render.PriorityOverlay)
}
