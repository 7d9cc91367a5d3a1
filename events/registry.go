package events

import (
	"strings"
	"sync"
)

var (
	nameToType   = make(map[string]EventType)
	typeToName   = make(map[EventType]string)
	registryOnce sync.Once
)

// RegisterType maps a string name to an EventType
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	// Special case for FSM "Tick"
	if strings.EqualFold(name, "Tick") {
		return EventTick, true
	}
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if et == EventTick {
		return "Tick"
	}
	return typeToName[et]
}

// InitRegistry populates the registry with all game events
// Safe to call from every session constructor
func InitRegistry() {
	registryOnce.Do(func() {
		RegisterType("EventStart", EventStart)
		RegisterType("EventRestart", EventRestart)
		RegisterType("EventContinue", EventContinue)
		RegisterType("EventPause", EventPause)
		RegisterType("EventResume", EventResume)
		RegisterType("EventLaunch", EventLaunch)
	})
}
