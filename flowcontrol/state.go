package flowcontrol

// State of the managed consumer subscription as seen by the Controller
type State int32

const (
	// Running means records are being polled
	Running State = iota
	// PauseRequested means the pause command is being applied
	PauseRequested
	// Paused means polling is stopped until the resume timer fires
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case PauseRequested:
		return "PAUSE_REQUESTED"
	case Paused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}
