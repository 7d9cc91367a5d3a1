package modes

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Caizj-lg/block-breaker-game/constants"
	"github.com/Caizj-lg/block-breaker-game/render"
)

// GameController is the command surface the terminal input drives
type GameController interface {
	NudgePaddle(dx float64)
	SetPaddleCenter(x float64)
	Launch() bool
	Confirm() bool
	TogglePause() bool
}

// InputHandler processes user input events
type InputHandler struct {
	game     GameController
	bindings *BindingTable
	view     render.RenderContext

	// Last button state, clicks launch on press only
	buttons tcell.ButtonMask
}

// NewInputHandler creates a new input handler
func NewInputHandler(game GameController) *InputHandler {
	return &InputHandler{
		game:     game,
		bindings: DefaultBindings(),
	}
}

// SetView updates the screen layout used to map pointer columns to world x
func (h *InputHandler) SetView(view render.RenderContext) {
	h.view = view
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.handleMouse(x, y, ev.Buttons())
	}
	return true
}

// handleKey applies the bound action, false on quit
func (h *InputHandler) handleKey(key tcell.Key, r rune) bool {
	switch h.bindings.Lookup(key, r) {
	case ActionMoveLeft:
		h.game.NudgePaddle(-constants.PaddleKeyStep)
	case ActionMoveRight:
		h.game.NudgePaddle(constants.PaddleKeyStep)
	case ActionLaunch:
		h.game.Launch()
	case ActionConfirm:
		h.game.Confirm()
	case ActionPause:
		h.game.TogglePause()
	case ActionQuit:
		return false
	}
	return true
}

// handleMouse follows the pointer with the paddle; a primary press launches
func (h *InputHandler) handleMouse(x, _ int, buttons tcell.ButtonMask) {
	if wx, ok := h.view.ToWorldX(x); ok {
		h.game.SetPaddleCenter(wx)
	}

	pressed := buttons&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0
	h.buttons = buttons
	if pressed {
		h.game.Launch()
	}
}
