package app

// State is the page-level state of a session.
type State int

const (
	// Idle shows the input form.
	Idle State = iota
	// Loading waits for the latest load to finish.
	Loading
	// Displaying shows a projected source.
	Displaying
	// ErrorShown shows the input form with the last load error.
	ErrorShown
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Loading:
		return "Loading"
	case Displaying:
		return "Displaying"
	case ErrorShown:
		return "ErrorShown"
	default:
		return "Unknown"
	}
}
