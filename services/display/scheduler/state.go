package scheduler

// State is the scheduler lifecycle stage
type State int

// Scheduler states
const (
	StateSplash State = iota
	StateRunning
	StateStopped
)

// String returns the state name
func (state State) String() string {
	switch state {
	case StateSplash:
		return "SPLASH"
	case StateRunning:
		return "RUNNING"
	case StateStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}
