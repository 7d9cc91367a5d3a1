package events

// EventType represents a game-level command routed through the state machine
type EventType int

const (
	// EventTick is the implicit per-frame trigger used by auto-transitions
	EventTick EventType = iota

	// EventStart begins a new session from the menu
	// Trigger: Enter key, "start" client message | Payload: nil
	EventStart

	// EventRestart begins a new session after game over
	// Trigger: Enter key, "restart" client message | Payload: nil
	EventRestart

	// EventContinue advances to the next level after a clear
	// Trigger: Enter key, "continue" client message | Payload: nil
	EventContinue

	// EventPause suspends the simulation
	// Trigger: 'p' key, "pause" client message | Payload: nil
	EventPause

	// EventResume restarts a paused simulation
	// Trigger: 'p' key while paused, "resume" client message | Payload: nil
	EventResume

	// EventLaunch detaches the resting ball
	// Trigger: Space key, mouse click, "launch" client message
	// Consumer: Game.Launch, never routed through the FSM graph
	EventLaunch
)

func (e EventType) String() string {
	return GetEventName(e)
}
