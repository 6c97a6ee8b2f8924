package app

// State tracks the page lifecycle from first paint to interactive.
type State uint8

const (
	// StateUninitialized is the zero value before Run begins.
	StateUninitialized State = iota
	// StateLoading covers the splash: content is being fetched and the
	// minimum hold time has not elapsed.
	StateLoading
	// StateReady means content is rendered and input is live.
	StateReady
	// StateFailed means the content fetch failed; a blocking dialog
	// offers reload or quit.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
