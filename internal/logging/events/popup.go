package events

import "github.com/xaota/popup-bus/internal/logging"

type PopupTracer struct{}

var Popup = PopupTracer{}

func (PopupTracer) Open(intent string, hasPayload bool) {
	logging.Trace("popup.open", map[string]interface{}{
		"intent":  intent,
		"payload": hasPayload,
	})
}

func (PopupTracer) Close(intent string, hasPayload bool) {
	logging.Trace("popup.close", map[string]interface{}{
		"intent":  intent,
		"payload": hasPayload,
	})
}

func (PopupTracer) Bind(intent string) {
	logging.Trace("popup.bind", map[string]interface{}{"intent": intent})
}

func (PopupTracer) Rebind(intent, direction string) {
	logging.Trace("popup.rebind", map[string]interface{}{
		"intent":    intent,
		"direction": direction,
	})
}

func (PopupTracer) Unbind(intent string) {
	logging.Trace("popup.unbind", map[string]interface{}{"intent": intent})
}
