package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/xaota/popup-bus/bus"
	"github.com/xaota/popup-bus/popup"
)

func plainView(m *Model) string {
	return ansi.Strip(m.View())
}

func TestViewListsTheLaunchers(t *testing.T) {
	m := newTestModel()
	out := plainView(m)
	for _, label := range []string{"popup-bus", "Help", "Toast", "Profile editor", "Confirm quit", "Inspector"} {
		if !strings.Contains(out, label) {
			t.Fatalf("expected view to contain %q, got:\n%s", label, out)
		}
	}
}

func TestViewShowsVisibleOverlaysOnly(t *testing.T) {
	m := newTestModel()
	if strings.Contains(plainView(m), "enter opens the selected popup") {
		t.Fatalf("expected help overlay hidden initially")
	}

	popup.OpenOn(m.bus, intentHelp, nil)
	if !strings.Contains(plainView(m), "enter opens the selected popup") {
		t.Fatalf("expected help overlay body after open broadcast")
	}

	popup.CloseOn(m.bus, intentHelp, nil)
	if strings.Contains(plainView(m), "enter opens the selected popup") {
		t.Fatalf("expected help overlay gone after close broadcast")
	}
}

func TestViewRendersThePayload(t *testing.T) {
	m := newTestModel()
	popup.OpenOn(m.bus, intentToast, map[string]any{"text": "saved"})
	out := plainView(m)
	if !strings.Contains(out, `"text":"saved"`) {
		t.Fatalf("expected toast payload in view, got:\n%s", out)
	}
}

func TestViewFooterCounters(t *testing.T) {
	m := NewModel(bus.New(), 80, 24, true, true)
	popup.OpenOn(m.bus, intentHelp, nil)
	out := plainView(m)
	if !strings.Contains(out, "help 1/0") {
		t.Fatalf("expected verbose footer counter help 1/0, got:\n%s", out)
	}

	quiet := NewModel(bus.New(), 80, 24, false, false)
	if strings.Contains(plainView(quiet), "ctrl+t inspector") {
		t.Fatalf("expected no footer when disabled")
	}
}

func TestViewInspectorSummarisesConsumers(t *testing.T) {
	m := newTestModel()
	popup.OpenOn(m.bus, intentToast, nil)
	popup.OpenOn(m.bus, intentInspector, nil)

	out := plainView(m)
	if !strings.Contains(out, "toast") || !strings.Contains(out, "open 1") {
		t.Fatalf("expected inspector to list the toast consumer's counters, got:\n%s", out)
	}
}

func TestViewReportsEmptyFilterMatches(t *testing.T) {
	m := newTestModel()
	typeRunes(m, "zzz")
	out := plainView(m)
	if !strings.Contains(out, `No matches for "zzz"`) {
		t.Fatalf("expected empty-filter message, got:\n%s", out)
	}
}

func TestViewClampsItemsToHeight(t *testing.T) {
	m := NewModel(bus.New(), 80, 5, false, false)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 5})
	out := plainView(m)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// header + filter + 3 items
	if len(lines) > 5 {
		t.Fatalf("expected at most 5 lines at height 5, got %d:\n%s", len(lines), out)
	}
}
