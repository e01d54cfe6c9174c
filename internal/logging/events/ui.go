package events

import "github.com/xaota/popup-bus/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) LauncherEnter(intent, label, filter string) {
	logging.Trace("ui.launcher-enter", map[string]interface{}{
		"intent": intent,
		"label":  label,
		"filter": filter,
	})
}

func (UITracer) LauncherCursor(cursor int) {
	logging.Trace("ui.launcher-cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) FilterChanged(filter string) {
	logging.Trace("ui.filter", map[string]interface{}{"filter": filter})
}

func (UITracer) OverlayMount(intent string) {
	logging.Trace("ui.overlay-mount", map[string]interface{}{"intent": intent})
}

func (UITracer) OverlayUnmount(intent string) {
	logging.Trace("ui.overlay-unmount", map[string]interface{}{"intent": intent})
}
