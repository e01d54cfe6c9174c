package popup

import (
	"reflect"
	"sync"

	"github.com/xaota/popup-bus/bus"
	"github.com/xaota/popup-bus/internal/logging/events"
)

// Hooks carries the caller's reactions to broadcasts on a bound intent.
// Either hook may be nil; the binding's visibility flag updates regardless.
type Hooks struct {
	OnOpen  func(payload any)
	OnClose func(payload any)
}

// BindOption customises a Binding at creation time.
type BindOption func(*Binding)

// WithNotify registers a function invoked after every broadcast the binding
// observes, once its state and hooks have run. Hosts use it to schedule a
// re-render when the visibility flag may have changed.
func WithNotify(fn func()) BindOption {
	return func(b *Binding) {
		b.notify = fn
	}
}

// Binding is one consumer's live subscription to an intent's channel pair.
// It owns a visibility flag that flips to true on an open broadcast and to
// false on a close broadcast. Bindings on the same intent are independent:
// each receives every broadcast and keeps its own flag.
type Binding struct {
	mu       sync.Mutex
	bus      *bus.Bus
	intent   string
	hooks    Hooks
	visible  bool
	closed   bool
	notify   func()
	openSub  *bus.Subscription
	closeSub *bus.Subscription
}

// Bind activates a consumer for intent on b: both direction channels are
// subscribed and the visibility flag starts at false. The caller must Close
// the binding when its owner goes away.
func Bind(b *bus.Bus, intent string, hooks Hooks, opts ...BindOption) *Binding {
	bd := &Binding{bus: b, intent: intent, hooks: hooks}
	for _, opt := range opts {
		opt(bd)
	}
	bd.openSub = bd.subscribe(DirectionOpen)
	bd.closeSub = bd.subscribe(DirectionClose)
	events.Popup.Bind(intent)
	return bd
}

// Intent reports the intent this binding listens for.
func (bd *Binding) Intent() string {
	return bd.intent
}

// Visible reports the current visibility flag.
func (bd *Binding) Visible() bool {
	bd.mu.Lock()
	defer bd.mu.Unlock()
	return bd.visible
}

// SetHooks replaces the caller's hooks. The stored hooks swap atomically, so
// a retired callback can never fire again even from a broadcast already in
// flight. A direction whose callback identity changed additionally has its
// subscription torn down and recreated; the visibility flag and the unchanged
// direction are untouched. No-op after Close.
func (bd *Binding) SetHooks(hooks Hooks) {
	bd.mu.Lock()
	if bd.closed {
		bd.mu.Unlock()
		return
	}
	rebindOpen := !sameFunc(bd.hooks.OnOpen, hooks.OnOpen)
	rebindClose := !sameFunc(bd.hooks.OnClose, hooks.OnClose)
	bd.hooks = hooks
	bd.mu.Unlock()

	if rebindOpen {
		bd.openSub.Cancel()
		bd.openSub = bd.subscribe(DirectionOpen)
		events.Popup.Rebind(bd.intent, DirectionOpen.String())
	}
	if rebindClose {
		bd.closeSub.Cancel()
		bd.closeSub = bd.subscribe(DirectionClose)
		events.Popup.Rebind(bd.intent, DirectionClose.String())
	}
}

// Close deactivates the binding: both subscriptions are released and no
// further broadcast affects it. Safe to call more than once.
func (bd *Binding) Close() {
	bd.mu.Lock()
	if bd.closed {
		bd.mu.Unlock()
		return
	}
	bd.closed = true
	bd.mu.Unlock()

	bd.openSub.Cancel()
	bd.closeSub.Cancel()
	events.Popup.Unbind(bd.intent)
}

// subscribe binds one direction. The hook to run is resolved when the
// broadcast arrives, not captured at bind time, so the latest hooks always
// win even while a rebind is in flight.
func (bd *Binding) subscribe(d Direction) *bus.Subscription {
	visible := d == DirectionOpen
	return bd.bus.Subscribe(Channel(bd.intent, d), func(payload any) {
		bd.mu.Lock()
		if bd.closed {
			bd.mu.Unlock()
			return
		}
		bd.visible = visible
		hook := bd.hooks.OnOpen
		if d == DirectionClose {
			hook = bd.hooks.OnClose
		}
		notify := bd.notify
		bd.mu.Unlock()
		if hook != nil {
			hook(payload)
		}
		if notify != nil {
			notify()
		}
	})
}

// sameFunc reports whether two hook funcs share an identity. Go funcs are not
// comparable, so identity means the same code pointer. Closures built from
// the same literal share a code pointer even when their captures differ;
// dispatch-time hook resolution above keeps such a swap from invoking the
// retired closure despite the subscription staying put.
func sameFunc(a, b func(any)) bool {
	if a == nil || b == nil {
		return (a == nil) == (b == nil)
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
