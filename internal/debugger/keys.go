package debugger

// Key is the abstract key-event type consumed by a session. The source
// of these events (terminal polling) is external; the TUI translates
// real key presses into these values.
type Key int

const (
	// KeyStep performs a single engine step while paused.
	KeyStep Key = iota
	// KeyContinue switches from Paused to Running.
	KeyContinue
	// KeyPause switches from Running to Paused.
	KeyPause
	// KeyQuit terminates the session without executing further
	// instructions.
	KeyQuit
	// KeySpeedUp raises the redraw throttle (more instructions per
	// redraw).
	KeySpeedUp
	// KeySpeedDown lowers the redraw throttle, clamped to 1.
	KeySpeedDown
)

func (k Key) String() string {
	switch k {
	case KeyStep:
		return "step"
	case KeyContinue:
		return "continue"
	case KeyPause:
		return "pause"
	case KeyQuit:
		return "quit"
	case KeySpeedUp:
		return "speed-up"
	case KeySpeedDown:
		return "speed-down"
	}
	return "unknown"
}
