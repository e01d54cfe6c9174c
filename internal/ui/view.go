package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const minOverlayWidth = 24

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{m.renderLauncher()}
	for _, o := range m.overlays() {
		if !o.Visible() {
			continue
		}
		sections = append(sections, m.renderOverlayBox(o))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderLauncher() string {
	lines := make([]string, 0, 16)
	lines = append(lines, styles.Header.Render("popup-bus"))
	lines = append(lines, m.renderFilterLine())

	m.list.EnsureCursorVisible(m.maxVisibleItems())
	display := m.list.Items
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(display) > maxItems {
		start := m.list.ViewportOffset
		if start+maxItems > len(display) {
			start = len(display) - maxItems
		}
		display = display[start : start+maxItems]
	}

	if len(m.list.Items) == 0 {
		msg := "(no popups)"
		if m.list.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.list.Filter)
		}
		lines = append(lines, styles.Info.Render(msg))
	}
	for i, item := range display {
		absolute := i + m.list.ViewportOffset
		line := m.renderItem(item.Label, item.Hint, absolute == m.list.Cursor)
		lines = append(lines, line)
	}

	if m.showFooter {
		lines = append(lines, styles.Footer.Render(m.footerText()))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFilterLine() string {
	prompt := styles.FilterPrompt.Render("> ")
	text := styles.Filter.Render(m.list.Filter)
	return prompt + text + m.filterCursor.View()
}

func (m *Model) renderItem(label, hint string, selected bool) string {
	var line string
	if selected {
		line = styles.SelectedItemIndicator.Render("> ") + styles.SelectedItem.Render(label)
	} else {
		line = styles.ItemIndicator.Render("  ") + styles.Item.Render(label)
	}
	if hint != "" {
		line += "  " + styles.Hint.Render(hint)
	}
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, "…")
	}
	return line
}

func (m *Model) footerText() string {
	base := "enter open · esc close · ctrl+t inspector · ctrl+c quit"
	if !m.verbose {
		return base
	}
	parts := make([]string, 0, 6)
	for _, o := range m.overlays() {
		opens, closes := o.Counts()
		parts = append(parts, fmt.Sprintf("%s %d/%d", o.Intent(), opens, closes))
	}
	return base + "  " + strings.Join(parts, " ")
}

func (m *Model) renderOverlayBox(o *Overlay) string {
	body := o.body
	if o.Intent() == intentInspector {
		body = m.inspectorBody()
	}
	parts := []string{styles.OverlayTitle.Render(o.title)}
	if body != "" {
		parts = append(parts, styles.OverlayBody.Render(body))
	}
	if payload := o.payloadLine(); payload != "" {
		parts = append(parts, styles.Hint.Render(payload))
	}
	content := strings.Join(parts, "\n")
	box := styles.OverlayBorder.Render(content)
	if m.width >= minOverlayWidth {
		box = lipgloss.NewStyle().MaxWidth(m.width).Render(box)
	}
	return box
}

// inspectorBody summarises what every mounted consumer has observed so far.
func (m *Model) inspectorBody() string {
	lines := make([]string, 0, 6)
	for _, o := range m.overlays() {
		opens, closes := o.Counts()
		visible := "hidden"
		if o.Visible() {
			visible = "visible"
		}
		lines = append(lines, fmt.Sprintf("%-14s %s  open %d  close %d", o.Intent(), visible, opens, closes))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return 0
	}
	chrome := 2 // header + filter line
	if m.showFooter {
		chrome++
	}
	visible := m.height - chrome
	if visible < 1 {
		visible = 1
	}
	return visible
}
