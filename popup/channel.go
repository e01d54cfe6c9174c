package popup

// Direction selects one side of an intent's channel pair.
type Direction int

const (
	DirectionOpen Direction = iota
	DirectionClose
)

// Channel-name prefixes are an interop contract: any producer or consumer,
// in this process or another bundle sharing the bus, can construct the same
// channel name from an intent alone. Changing them breaks that interop.
const (
	OpenPrefix  = "popup.open:"
	ClosePrefix = "popup.close:"
)

// String returns the direction's name as used in trace events.
func (d Direction) String() string {
	if d == DirectionClose {
		return "close"
	}
	return "open"
}

// Channel derives the broadcast channel name for an intent and direction.
// Distinct (intent, direction) pairs always map to distinct names. An empty
// intent is legal but collapses every unnamed popup onto one channel pair.
func Channel(intent string, d Direction) string {
	if d == DirectionClose {
		return ClosePrefix + intent
	}
	return OpenPrefix + intent
}

// OpenChannel derives the open-direction channel name for an intent.
func OpenChannel(intent string) string {
	return Channel(intent, DirectionOpen)
}

// CloseChannel derives the close-direction channel name for an intent.
func CloseChannel(intent string) string {
	return Channel(intent, DirectionClose)
}
