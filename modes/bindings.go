package modes

import "github.com/gdamore/tcell/v2"

// Action is a game command produced by a key
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionLaunch
	ActionConfirm
	ActionPause
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:      "none",
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionLaunch:    "launch",
	ActionConfirm:   "confirm",
	ActionPause:     "pause",
	ActionQuit:      "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// BindingTable maps special keys and runes to actions
type BindingTable struct {
	keys  map[tcell.Key]Action
	runes map[rune]Action
}

// DefaultBindings returns the default binding table
func DefaultBindings() *BindingTable {
	return &BindingTable{
		keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionMoveLeft,
			tcell.KeyRight:  ActionMoveRight,
			tcell.KeyEnter:  ActionConfirm,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		runes: map[rune]Action{
			'h': ActionMoveLeft,
			'a': ActionMoveLeft,
			'l': ActionMoveRight,
			'd': ActionMoveRight,
			' ': ActionLaunch,
			'p': ActionPause,
			'P': ActionPause,
			'q': ActionQuit,
			'Q': ActionQuit,
		},
	}
}

// Lookup resolves a key press; r is only consulted for tcell.KeyRune
func (b *BindingTable) Lookup(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		return b.runes[r]
	}
	return b.keys[key]
}
