// Package popup implements a named publish/subscribe mechanism for UI
// overlays. Producers broadcast the intent to open or close a popup by name;
// consumers hold a Binding that tracks visibility and runs their hooks with
// the broadcast payload. Neither side knows about the other: a broadcast with
// no consumer is a silent no-op, and state for a popup lives entirely inside
// whichever bindings currently listen for its intent.
package popup

import (
	"github.com/xaota/popup-bus/bus"
	"github.com/xaota/popup-bus/internal/logging/events"
)

// Open broadcasts the intent to open a popup on the default bus. The payload
// is passed through opaquely to every consumer currently bound to the intent;
// pass nil when there is nothing to carry.
func Open(intent string, payload any) {
	OpenOn(bus.Default(), intent, payload)
}

// Close broadcasts the intent to close a popup on the default bus.
func Close(intent string, payload any) {
	CloseOn(bus.Default(), intent, payload)
}

// OpenOn is Open against an explicit bus.
func OpenOn(b *bus.Bus, intent string, payload any) {
	events.Popup.Open(intent, payload != nil)
	b.Publish(OpenChannel(intent), payload)
}

// CloseOn is Close against an explicit bus.
func CloseOn(b *bus.Bus, intent string, payload any) {
	events.Popup.Close(intent, payload != nil)
	b.Publish(CloseChannel(intent), payload)
}
