package state

// Item is one entry in the launcher list: the intent it broadcasts and the
// sample payload it carries.
type Item struct {
	Intent  string
	Label   string
	Hint    string
	Payload any
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
