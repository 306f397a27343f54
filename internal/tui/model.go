// Package tui renders an interactive debugging session in the
// terminal. The model owns no execution state: every key is translated
// into a debugger key event, and the view is a pure function of the
// session.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/funvibe/funbf/internal/debugger"
)

// stepMsg drives execution while the session is in Running mode. One
// message executes one chunk (throttle instructions), so key events
// interleave with execution at chunk granularity and quit is never
// outstanding for more than one chunk.
type stepMsg struct{}

const stepInterval = time.Millisecond

// Model is the bubbletea front end for a debugger session.
type Model struct {
	session *debugger.Session
	code    string // dense instruction characters, indexed by pc
	input   []byte

	width  int
	height int

	memStart int
}

// NewModel wraps a session for display. input is the full fixed input,
// shown with a caret at the consumed position.
func NewModel(session *debugger.Session, input []byte) Model {
	prog := session.Machine().Program()
	var sb strings.Builder
	for i := 0; i < prog.Len(); i++ {
		sb.WriteByte(prog.At(i).Op.Char())
	}
	return Model{
		session: session,
		code:    sb.String(),
		input:   input,
		width:   80,
		height:  24,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func stepTick() tea.Cmd {
	return tea.Tick(stepInterval, func(time.Time) tea.Msg { return stepMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scrollMemory()
		return m, nil

	case stepMsg:
		if m.session.Mode() != debugger.Running {
			return m, nil
		}
		m.session.RunChunk()
		m.scrollMemory()
		if m.session.Mode() == debugger.Running {
			return m, stepTick()
		}
		return m, nil

	case tea.KeyMsg:
		key, quit := mapKey(msg)
		if quit {
			m.session.HandleKey(debugger.KeyQuit)
			return m, tea.Quit
		}
		if m.session.Mode() == debugger.Terminated {
			// The final frame stays up until quit.
			return m, nil
		}
		wasRunning := m.session.Mode() == debugger.Running
		m.session.HandleKey(key)
		m.scrollMemory()
		if !wasRunning && m.session.Mode() == debugger.Running {
			return m, stepTick()
		}
		return m, nil
	}
	return m, nil
}

func mapKey(msg tea.KeyMsg) (key debugger.Key, quit bool) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return 0, true
	case "c":
		return debugger.KeyContinue, false
	case "p":
		return debugger.KeyPause, false
	case "up":
		return debugger.KeySpeedUp, false
	case "down":
		return debugger.KeySpeedDown, false
	default:
		return debugger.KeyStep, false
	}
}

// regionBounds centers a window of the given width on pos, clamped to
// [0, length).
func regionBounds(width, length, pos int) (start, end int) {
	if width < 1 {
		width = 1
	}
	start = pos - width/2
	if start < 0 {
		start = 0
	}
	end = start + width
	if end > length {
		end = length
	}
	return start, end
}

func (m Model) memoryCells() int {
	cells := (m.width - 4) / 4
	if cells < 1 {
		cells = 1
	}
	return cells
}

// scrollMemory keeps the data pointer inside the visible cell window,
// moving the window only when the pointer leaves it.
func (m *Model) scrollMemory() {
	cells := m.memoryCells()
	ptr := m.session.Machine().Pointer()
	if ptr < m.memStart {
		m.memStart = ptr
	}
	if ptr >= m.memStart+cells {
		m.memStart = ptr - cells + 1
	}
}

func printable(b byte) byte {
	if b < 32 || b > 126 {
		return '.'
	}
	return b
}

func (m Model) View() string {
	machine := m.session.Machine()
	lineWidth := m.width - 4
	if lineWidth < 8 {
		lineWidth = 8
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render("funbf debugger"))
	b.WriteString("  ")
	b.WriteString(m.badge())
	b.WriteString("\n\n")

	// Input region with a caret at the next unconsumed byte.
	start, end := regionBounds(lineWidth, len(m.input), machine.InputConsumed())
	chars := make([]byte, 0, end-start)
	for _, c := range m.input[start:end] {
		chars = append(chars, printable(c))
	}
	b.WriteString(LabelStyle.Render("Input:   "))
	b.WriteString(string(chars))
	b.WriteString("\n")
	b.WriteString(caretLine(9, machine.InputConsumed()-start))

	// Code region with a caret at the program counter.
	start, end = regionBounds(lineWidth, len(m.code), machine.PC())
	b.WriteString(LabelStyle.Render(fmt.Sprintf("Pos %d:   ", machine.PC())))
	b.WriteString(m.code[start:end])
	b.WriteString("\n")
	b.WriteString(caretLine(9, machine.PC()-start))

	// Memory region: a scrolling window of cells, pointer highlighted.
	cells := m.memoryCells()
	tape := machine.Tape()
	memEnd := m.memStart + cells
	if memEnd > tape.Len() {
		memEnd = tape.Len()
	}
	b.WriteString(LabelStyle.Render("Memory:  "))
	for i := m.memStart; i < memEnd; i++ {
		cell := fmt.Sprintf("%3d", tape.Get(i))
		if i == machine.Pointer() {
			b.WriteString(ActiveCellStyle.Render(cell))
		} else {
			b.WriteString(CellStyle.Render(cell))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")
	b.WriteString(caretLine(9, (machine.Pointer()-m.memStart)*4+1))
	b.WriteString(LabelStyle.Render("Pointer: "))
	b.WriteString(fmt.Sprintf("%d\n\n", machine.Pointer()))

	// Output region: the tail that fits the line.
	out := m.session.Output()
	if len(out) > lineWidth {
		out = out[len(out)-lineWidth:]
	}
	outChars := make([]byte, len(out))
	for i, c := range out {
		outChars[i] = printable(c)
	}
	b.WriteString(LabelStyle.Render("Output:  "))
	b.WriteString(string(outChars))
	b.WriteString("\n\n")

	if err := m.session.Err(); err != nil {
		b.WriteString(ErrorStyle.Render(err.Error()))
		b.WriteString("\n\n")
	}

	status := fmt.Sprintf("steps %d  redraw every %d ops  %d ops/s",
		machine.Steps(), m.session.Throttle(), m.session.OpsPerSecond())
	b.WriteString(StatusBarStyle.Render(status))
	b.WriteString("\n")

	help := "any key step • c continue • p pause • ↑/↓ speed • q quit"
	if m.session.Mode() == debugger.Terminated {
		help = "finished - press q to exit"
	}
	b.WriteString(HelpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

// caretLine is a line of indent+col spaces followed by a caret.
func caretLine(indent, col int) string {
	if col < 0 {
		col = 0
	}
	return strings.Repeat(" ", indent+col) + CaretStyle.Render("^") + "\n"
}

func (m Model) badge() string {
	switch m.session.Mode() {
	case debugger.Running:
		return RunningBadgeStyle.Render("RUNNING")
	case debugger.Terminated:
		if m.session.Err() != nil {
			return HaltedBadgeStyle.Render("ERROR")
		}
		return HaltedBadgeStyle.Render("HALTED")
	default:
		return PausedBadgeStyle.Render("PAUSED")
	}
}
