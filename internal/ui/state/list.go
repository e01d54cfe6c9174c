package state

// List tracks cursor position, filter, and viewport for the launcher.
type List struct {
	Items          []Item
	Full           []Item
	Filter         string
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewList constructs a List over the provided items.
func NewList(items []Item) *List {
	l := &List{Cursor: -1, LastCursor: -1}
	l.UpdateItems(items)
	return l
}

// UpdateItems replaces the full item set and re-applies the current filter.
func (l *List) UpdateItems(items []Item) {
	l.Full = CloneItems(items)
	l.applyFilter()
	if l.Cursor < 0 && len(l.Items) > 0 {
		l.Cursor = 0
	}
}

// Current returns the item under the cursor, if any.
func (l *List) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}
