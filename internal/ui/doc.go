// Package ui contains the Bubble Tea program that demonstrates the popup
// broadcast mechanism end to end.
//
// The model owns a launcher list of named popups and a set of overlay
// components. Each overlay holds a popup.Binding for its intent: the binding
// flips the overlay's visibility when an open or close broadcast arrives and
// records the broadcast payload. The launcher is a producer only - pressing
// enter broadcasts popup.Open for the selected intent and nothing else; the
// overlay that appears found out about it purely through the bus.
//
// Message flow follows the typed handler registry idiom: Update routes each
// tea.Msg through a map keyed by reflect.Type so key handling, resize, and
// cursor blinking stay in focused functions.
//
// The inspector overlay can be unmounted and remounted at runtime (ctrl+t) to
// show subscription lifecycle: while unmounted its binding is closed, so
// broadcasts on its intent do not reach it, and a remount starts hidden.
package ui
