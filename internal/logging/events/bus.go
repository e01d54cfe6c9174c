package events

import (
	"fmt"

	"github.com/xaota/popup-bus/internal/logging"
)

type BusTracer struct{}

var Bus = BusTracer{}

func (BusTracer) Subscribe(channel string) {
	logging.Trace("bus.subscribe", map[string]interface{}{"channel": channel})
}

func (BusTracer) Unsubscribe(channel string) {
	logging.Trace("bus.unsubscribe", map[string]interface{}{"channel": channel})
}

func (BusTracer) Publish(channel string, subscribers int) {
	logging.Trace("bus.publish", map[string]interface{}{
		"channel":     channel,
		"subscribers": subscribers,
	})
}

func (BusTracer) HandlerPanic(channel string, recovered interface{}) {
	logging.Trace("bus.handler-panic", map[string]interface{}{
		"channel": channel,
		"panic":   fmt.Sprint(recovered),
	})
}
