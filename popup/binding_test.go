package popup

import (
	"reflect"
	"testing"

	"github.com/xaota/popup-bus/bus"
)

func TestBindStartsHidden(t *testing.T) {
	b := bus.New()
	bd := Bind(b, "help", Hooks{})
	defer bd.Close()

	if bd.Visible() {
		t.Fatalf("expected a fresh binding to start hidden")
	}
	if bd.Intent() != "help" {
		t.Fatalf("expected intent help, got %q", bd.Intent())
	}
}

func TestOpenSetsVisibleAndRunsHookWithPayload(t *testing.T) {
	b := bus.New()
	var got []any
	bd := Bind(b, "help", Hooks{OnOpen: func(p any) { got = append(got, p) }})
	defer bd.Close()

	payload := map[string]any{"topic": "keys"}
	OpenOn(b, "help", payload)

	if !bd.Visible() {
		t.Fatalf("expected binding visible after open broadcast")
	}
	if len(got) != 1 || !reflect.DeepEqual(got[0], payload) {
		t.Fatalf("expected OnOpen invoked once with the payload, got %v", got)
	}
}

func TestCloseAffectsOnlyTheMatchingIntent(t *testing.T) {
	b := bus.New()
	help := Bind(b, "help", Hooks{})
	other := Bind(b, "confirm-quit", Hooks{})
	defer help.Close()
	defer other.Close()

	OpenOn(b, "help", nil)
	OpenOn(b, "confirm-quit", nil)
	CloseOn(b, "help", nil)

	if help.Visible() {
		t.Fatalf("expected help hidden after close broadcast")
	}
	if !other.Visible() {
		t.Fatalf("expected confirm-quit untouched by help's close")
	}
}

func TestRoundTripLeavesHiddenWithCloseLast(t *testing.T) {
	b := bus.New()
	var order []string
	var lastClose any
	bd := Bind(b, "help", Hooks{
		OnOpen:  func(any) { order = append(order, "open") },
		OnClose: func(p any) { order = append(order, "close"); lastClose = p },
	})
	defer bd.Close()

	OpenOn(b, "help", "p")
	CloseOn(b, "help", "q")

	if bd.Visible() {
		t.Fatalf("expected hidden after round trip")
	}
	if len(order) != 2 || order[1] != "close" {
		t.Fatalf("expected close to be the last hook, got %v", order)
	}
	if lastClose != "q" {
		t.Fatalf("expected close payload q, got %v", lastClose)
	}
}

func TestDoubleOpenReinvokesHookAndStaysVisible(t *testing.T) {
	b := bus.New()
	var got []any
	bd := Bind(b, "toast", Hooks{OnOpen: func(p any) { got = append(got, p) }})
	defer bd.Close()

	OpenOn(b, "toast", "first")
	OpenOn(b, "toast", "second")

	if !bd.Visible() {
		t.Fatalf("expected binding to stay visible")
	}
	if len(got) != 2 || got[1] != "second" {
		t.Fatalf("expected both opens to invoke the hook, got %v", got)
	}
}

func TestSetHooksRetiresTheOldCallback(t *testing.T) {
	b := bus.New()
	oldCalls, newCalls := 0, 0
	closeCalls := 0
	closeHook := func(any) { closeCalls++ }
	bd := Bind(b, "help", Hooks{
		OnOpen:  func(any) { oldCalls++ },
		OnClose: closeHook,
	})
	defer bd.Close()

	OpenOn(b, "help", nil)
	bd.SetHooks(Hooks{
		OnOpen:  func(any) { newCalls++ },
		OnClose: closeHook,
	})

	if !bd.Visible() {
		t.Fatalf("expected rebinding to leave the visibility flag alone")
	}

	OpenOn(b, "help", nil)
	if oldCalls != 1 {
		t.Fatalf("expected the retired hook to never fire again, got %d calls", oldCalls)
	}
	if newCalls != 1 {
		t.Fatalf("expected the new hook to fire once, got %d calls", newCalls)
	}

	CloseOn(b, "help", nil)
	if closeCalls != 1 {
		t.Fatalf("expected the unchanged close hook to keep working, got %d calls", closeCalls)
	}
}

func TestSetHooksLeavesUnchangedDirectionSubscribed(t *testing.T) {
	b := bus.New()
	closeHook := func(any) {}
	bd := Bind(b, "help", Hooks{OnClose: closeHook})
	defer bd.Close()

	before := b.Subscribers(CloseChannel("help"))
	bd.SetHooks(Hooks{OnOpen: func(any) {}, OnClose: closeHook})
	after := b.Subscribers(CloseChannel("help"))

	if before != 1 || after != 1 {
		t.Fatalf("expected the close subscription untouched, got %d -> %d", before, after)
	}
}

func TestCloseStopsDeliveryAndIsIdempotent(t *testing.T) {
	b := bus.New()
	calls := 0
	bd := Bind(b, "help", Hooks{OnOpen: func(any) { calls++ }})

	OpenOn(b, "help", nil)
	bd.Close()
	bd.Close()
	OpenOn(b, "help", nil)

	if calls != 1 {
		t.Fatalf("expected no delivery after Close, got %d calls", calls)
	}
	if n := b.Subscribers(OpenChannel("help")); n != 0 {
		t.Fatalf("expected open channel released, got %d subscribers", n)
	}
	if n := b.Subscribers(CloseChannel("help")); n != 0 {
		t.Fatalf("expected close channel released, got %d subscribers", n)
	}

	// SetHooks after Close must not resubscribe anything.
	bd.SetHooks(Hooks{OnOpen: func(any) {}})
	if n := b.Subscribers(OpenChannel("help")); n != 0 {
		t.Fatalf("expected SetHooks after Close to be a no-op, got %d subscribers", n)
	}
}

func TestIndependentConsumersOnOneIntent(t *testing.T) {
	b := bus.New()
	first := Bind(b, "help", Hooks{})
	second := Bind(b, "help", Hooks{})
	defer second.Close()

	OpenOn(b, "help", nil)
	if !first.Visible() || !second.Visible() {
		t.Fatalf("expected both consumers to observe the open broadcast")
	}

	// Tearing one consumer down leaves the other's state alone.
	first.Close()
	if !second.Visible() {
		t.Fatalf("expected the surviving consumer to keep its flag")
	}

	CloseOn(b, "help", nil)
	if !first.Visible() {
		t.Fatalf("expected the closed consumer's flag frozen at its last value")
	}
	if second.Visible() {
		t.Fatalf("expected surviving consumer hidden after close")
	}
}

func TestNotifyRunsAfterTheHook(t *testing.T) {
	b := bus.New()
	var order []string
	bd := Bind(b, "help",
		Hooks{OnOpen: func(any) { order = append(order, "hook") }},
		WithNotify(func() { order = append(order, "notify") }),
	)
	defer bd.Close()

	OpenOn(b, "help", nil)

	if len(order) != 2 || order[0] != "hook" || order[1] != "notify" {
		t.Fatalf("expected hook then notify, got %v", order)
	}
}

func TestProfileEditScenario(t *testing.T) {
	b := bus.New()
	var openPayloads, closePayloads []any
	bd := Bind(b, "profile-edit", Hooks{
		OnOpen:  func(p any) { openPayloads = append(openPayloads, p) },
		OnClose: func(p any) { closePayloads = append(closePayloads, p) },
	})
	defer bd.Close()

	OpenOn(b, "profile-edit", map[string]any{"userId": 42})
	if !bd.Visible() {
		t.Fatalf("expected visible after open")
	}
	if len(openPayloads) != 1 || !reflect.DeepEqual(openPayloads[0], map[string]any{"userId": 42}) {
		t.Fatalf("expected one open payload with userId 42, got %v", openPayloads)
	}

	CloseOn(b, "profile-edit", nil)
	if bd.Visible() {
		t.Fatalf("expected hidden after close")
	}
	if len(closePayloads) != 1 || closePayloads[0] != nil {
		t.Fatalf("expected one nil close payload, got %v", closePayloads)
	}
}

func TestMismatchedIntentIsSilent(t *testing.T) {
	b := bus.New()
	calls := 0
	bd := Bind(b, "profile-edit", Hooks{OnOpen: func(any) { calls++ }})
	defer bd.Close()

	// A producer-side typo delivers to nobody: no error, no state change.
	OpenOn(b, "profile_edit", nil)

	if bd.Visible() || calls != 0 {
		t.Fatalf("expected a mismatched intent to leave the consumer untouched")
	}
}
