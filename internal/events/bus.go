// Package events re-exports the platform event bus for convenience.
// This allows internal modules to import events from internal/events
// while the implementation lives in platform/events.
package events

import (
	"leadmagnet_backend/platform/events"
)

// Re-exported platform types.
type (
	Event       = events.Event
	BaseEvent   = events.BaseEvent
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	Bus         = events.Bus
	InMemoryBus = events.InMemoryBus
)

// NewBaseEvent creates a base event stamped with the current time.
func NewBaseEvent() BaseEvent {
	return events.NewBaseEvent()
}

// NewInMemoryBus creates the default in-process bus.
var NewInMemoryBus = events.NewInMemoryBus
