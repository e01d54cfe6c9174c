package ui

import (
	"encoding/json"
	"fmt"

	"github.com/xaota/popup-bus/bus"
	"github.com/xaota/popup-bus/internal/logging/events"
	"github.com/xaota/popup-bus/popup"
)

// Overlay is one consumer: a named popup whose visibility and payload are
// driven entirely by broadcasts on its intent's channel pair.
type Overlay struct {
	intent      string
	title       string
	body        string
	binding     *popup.Binding
	lastPayload any
	openCount   int
	closeCount  int
}

// newOverlay mounts an overlay: it binds the intent's channels and starts
// hidden until an open broadcast arrives.
func newOverlay(b *bus.Bus, intent, title, body string) *Overlay {
	o := &Overlay{intent: intent, title: title, body: body}
	o.binding = popup.Bind(b, intent, popup.Hooks{
		OnOpen: func(payload any) {
			o.lastPayload = payload
			o.openCount++
		},
		OnClose: func(payload any) {
			o.lastPayload = payload
			o.closeCount++
		},
	})
	events.UI.OverlayMount(intent)
	return o
}

// Intent reports the intent this overlay listens for.
func (o *Overlay) Intent() string {
	return o.intent
}

// Visible reports whether the overlay is currently shown.
func (o *Overlay) Visible() bool {
	return o.binding.Visible()
}

// Counts reports how many open and close broadcasts the overlay has observed
// while mounted.
func (o *Overlay) Counts() (opens, closes int) {
	return o.openCount, o.closeCount
}

// LastPayload returns the payload of the most recent broadcast.
func (o *Overlay) LastPayload() any {
	return o.lastPayload
}

// Unmount releases the overlay's subscriptions; broadcasts on its intent no
// longer reach it.
func (o *Overlay) Unmount() {
	o.binding.Close()
	events.UI.OverlayUnmount(o.intent)
}

// payloadLine renders the last payload for display, JSON where possible.
func (o *Overlay) payloadLine() string {
	if o.lastPayload == nil {
		return ""
	}
	data, err := json.Marshal(o.lastPayload)
	if err != nil {
		return fmt.Sprintf("payload: %v", o.lastPayload)
	}
	return "payload: " + string(data)
}
