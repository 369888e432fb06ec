package tui

// Focus is the pane that receives key input.
type Focus int

const (
	FocusSearch Focus = iota
	FocusResults
	FocusPlayer
)

func (f Focus) String() string {
	switch f {
	case FocusSearch:
		return "search"
	case FocusResults:
		return "results"
	case FocusPlayer:
		return "player"
	default:
		return "unknown"
	}
}

func (f Focus) next() Focus {
	return (f + 1) % 3
}

func (f Focus) prev() Focus {
	return (f + 2) % 3
}
