// Package debugger wraps the execution engine with pause, single-step
// and run-at-rate semantics.
//
// A session is a strict single-stepper in every mode: Running differs
// from Paused only in whether steps are driven automatically and how
// often the display updates, never in any parallelism. The engine's
// state is owned by the machine; the session only invokes its
// single-step operation.
package debugger

import (
	"time"

	"github.com/funvibe/funbf/internal/diagnostics"
	"github.com/funvibe/funbf/internal/engine"
)

// Mode is the debugger's state.
type Mode int

const (
	// Paused is the initial mode; steps are driven by key events.
	Paused Mode = iota
	// Running drives steps automatically, redrawing every Nth step.
	Running
	// Terminated means the session is over: quit was pressed, the
	// engine halted, or a fatal runtime error occurred.
	Terminated
)

func (m Mode) String() string {
	switch m {
	case Paused:
		return "paused"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// DefaultThrottle is the initial redraw throttle: one redraw per
// executed instruction.
const DefaultThrottle = 1

// MaxThrottle bounds the redraw throttle. Doubling saturates here
// instead of overflowing, so the throttle stays a positive integer no
// matter how many speed-up events arrive.
const MaxThrottle = 1 << 20

// Session is the interactive debugging controller.
type Session struct {
	machine *engine.Machine

	mode     Mode
	throttle int // instructions per redraw while running, >= 1

	// Redraw is the abstract redraw side effect. It observes the
	// session read-only; rendering itself is external.
	Redraw func(*Session)

	output  []byte
	err     *diagnostics.Error
	redraws uint64

	// ops/s gauge, recomputed about once a second
	opsSinceReset uint64
	lastOpsReset  time.Time
	opsPerSecond  uint64
}

// NewSession creates a session in Paused mode with the default
// throttle.
func NewSession(m *engine.Machine) *Session {
	return &Session{
		machine:      m,
		mode:         Paused,
		throttle:     DefaultThrottle,
		lastOpsReset: time.Now(),
	}
}

// Machine returns the underlying engine.
func (s *Session) Machine() *engine.Machine { return s.machine }

// Mode returns the current debugger mode.
func (s *Session) Mode() Mode { return s.mode }

// Throttle returns the current redraw throttle.
func (s *Session) Throttle() int { return s.throttle }

// SetThrottle overrides the redraw throttle, clamped to
// [1, MaxThrottle].
func (s *Session) SetThrottle(n int) {
	if n < 1 {
		n = 1
	}
	if n > MaxThrottle {
		n = MaxThrottle
	}
	s.throttle = n
}

// Output returns the bytes produced by the program so far.
func (s *Session) Output() []byte { return s.output }

// Err returns the fatal runtime error that terminated the session, if
// any.
func (s *Session) Err() *diagnostics.Error { return s.err }

// Redraws returns how many redraws the session has requested.
func (s *Session) Redraws() uint64 { return s.redraws }

// OpsPerSecond returns the most recent instructions-per-second
// measurement.
func (s *Session) OpsPerSecond() uint64 { return s.opsPerSecond }

// HandleKey applies one key event. Quit wins over everything in either
// mode. While Paused, any key that is not quit or continue performs
// exactly one engine step and redraws. While Running, speed keys adjust
// the throttle without touching execution state, and pause redraws
// immediately so the display shows where the program stopped.
func (s *Session) HandleKey(k Key) {
	if s.mode == Terminated {
		return
	}

	if k == KeyQuit {
		s.mode = Terminated
		return
	}

	switch s.mode {
	case Paused:
		switch k {
		case KeyContinue:
			s.mode = Running
		default:
			// Single-step semantics: every other key, the speed keys
			// included, performs exactly one step.
			s.stepOnce()
			if s.mode != Terminated {
				s.redraw()
			}
		}

	case Running:
		switch k {
		case KeyPause:
			s.mode = Paused
			s.redraw()
		case KeySpeedUp:
			s.speedUp()
		case KeySpeedDown:
			s.speedDown()
		}
	}
}

func (s *Session) speedUp() {
	// Saturating double: past the cap the throttle stays put.
	if s.throttle > MaxThrottle/2 {
		s.throttle = MaxThrottle
		return
	}
	s.throttle *= 2
}

func (s *Session) speedDown() {
	s.throttle /= 2
	if s.throttle < 1 {
		s.throttle = 1
	}
}

// stepOnce performs exactly one engine step and updates session
// bookkeeping. Halting or a fatal error terminates the session after a
// final redraw showing the halted state.
func (s *Session) stepOnce() {
	outcome, err := s.machine.Step()
	if err != nil {
		s.err = err
		s.mode = Terminated
		s.redraw()
		return
	}

	s.opsSinceReset++
	if now := time.Now(); now.Sub(s.lastOpsReset) >= time.Second {
		s.opsPerSecond = s.opsSinceReset
		s.opsSinceReset = 0
		s.lastOpsReset = now
	}

	switch outcome.Kind {
	case engine.ProducedOutput:
		s.output = append(s.output, outcome.Value)
	case engine.NeedsInput:
		// Sessions attach an input source up front, so an unanswered
		// Input means the source is exhausted: complete the step with
		// the read-zero convention.
		s.machine.SupplyInput(0)
	case engine.Halted:
		s.mode = Terminated
		s.redraw()
		return
	}

	if s.machine.Halted() {
		s.mode = Terminated
		s.redraw()
	}
}

// RunChunk advances the machine by up to throttle instructions and then
// redraws once. It is the unit of work a driver performs per iteration
// while Running; polling for key events between chunks bounds how long
// a quit can be outstanding.
func (s *Session) RunChunk() {
	if s.mode != Running {
		return
	}
	for i := 0; i < s.throttle && s.mode == Running; i++ {
		s.stepOnce()
	}
	if s.mode == Running {
		s.redraw()
	}
}

func (s *Session) redraw() {
	s.redraws++
	if s.Redraw != nil {
		s.Redraw(s)
	}
}

// RunLoop drives the session from a channel of key events until it
// terminates. All engine progress happens on the calling goroutine:
// while Paused the loop blocks on the next event, while Running it
// polls the channel without blocking before every single step, so a
// quit pressed mid-run is honored within one instruction no matter how
// high the throttle is. Redraws still happen once per throttle steps.
func (s *Session) RunLoop(events <-chan Key) {
	sinceRedraw := 0
	for s.mode != Terminated {
		switch s.mode {
		case Paused:
			sinceRedraw = 0
			k, ok := <-events
			if !ok {
				s.mode = Terminated
				return
			}
			s.HandleKey(k)

		case Running:
			select {
			case k, ok := <-events:
				if !ok {
					s.mode = Terminated
					return
				}
				s.HandleKey(k)
			default:
				s.stepOnce()
				sinceRedraw++
				if s.mode == Running && sinceRedraw >= s.throttle {
					s.redraw()
					sinceRedraw = 0
				}
			}
		}
	}
}
