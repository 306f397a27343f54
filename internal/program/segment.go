package program

import (
	"encoding/json"
	"fmt"

	"github.com/funvibe/funbf/internal/token"
)

// Repeated is a run of identical instructions. Collapsing runs keeps the
// generated source small; it does not change semantics. Loop brackets
// and Input are never collapsed (a run of `,` reads distinct bytes).
type Repeated struct {
	Op    token.Type
	Count int
}

// Segment is the nested view of a program used by the code generator
// and the JSON dump: either a straight-line run of instructions or a
// loop containing nested segments.
type Segment struct {
	Run  []Repeated
	Body []Segment

	loop bool
}

// IsLoop reports whether the segment is a loop.
func (s Segment) IsLoop() bool {
	return s.loop
}

// Loop wraps nested segments into a loop segment.
func Loop(body []Segment) Segment {
	return Segment{Body: body, loop: true}
}

// Run wraps an instruction run into a straight-line segment.
func Run(run []Repeated) Segment {
	return Segment{Run: run}
}

func collapsible(op token.Type) bool {
	switch op {
	case token.LoopOpen, token.LoopClose, token.Input:
		return false
	}
	return true
}

// Segments converts the flat instruction sequence into its nested view.
// The program is well-formed by construction (the resolver rejects
// unmatched brackets), so bracket mismatches cannot occur here.
func Segments(p *Program) []Segment {
	root, _ := segmentsFrom(p.Instructions, 0)
	return root
}

func segmentsFrom(ins []Instruction, start int) ([]Segment, int) {
	var segments []Segment
	var run []Repeated

	flush := func() {
		if len(run) > 0 {
			segments = append(segments, Run(run))
			run = nil
		}
	}

	i := start
	for i < len(ins) {
		op := ins[i].Op
		switch op {
		case token.LoopOpen:
			flush()
			body, next := segmentsFrom(ins, i+1)
			segments = append(segments, Loop(body))
			i = next
		case token.LoopClose:
			flush()
			return segments, i + 1
		default:
			count := 1
			if collapsible(op) {
				for i+count < len(ins) && ins[i+count].Op == op {
					count++
				}
			}
			run = append(run, Repeated{Op: op, Count: count})
			i += count
		}
	}

	flush()
	return segments, i
}

// Dump is the serialized form of a parsed program, written by the
// front-end's --dump option.
type Dump struct {
	Segments   []Segment `json:"segments"`
	NeedsInput bool      `json:"needs_input"`
}

// NewDump builds the dump form of the program.
func NewDump(p *Program) Dump {
	return Dump{Segments: Segments(p), NeedsInput: p.NeedsInput()}
}

type repeatedJSON struct {
	Op    string `json:"op"`
	Count int    `json:"count"`
}

type segmentJSON struct {
	Run  []repeatedJSON `json:"run,omitempty"`
	Loop []Segment      `json:"loop,omitempty"`
}

// MarshalJSON encodes a run segment as {"run": [...]} and a loop
// segment as {"loop": [...]}.
func (s Segment) MarshalJSON() ([]byte, error) {
	if s.loop {
		// A loop with an empty body still needs a "loop" key.
		if s.Body == nil {
			s.Body = []Segment{}
		}
		return json.Marshal(segmentJSON{Loop: s.Body})
	}
	out := make([]repeatedJSON, len(s.Run))
	for i, r := range s.Run {
		out[i] = repeatedJSON{Op: string(r.Op.Char()), Count: r.Count}
	}
	return json.Marshal(segmentJSON{Run: out})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (s *Segment) UnmarshalJSON(data []byte) error {
	var raw segmentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Loop != nil {
		*s = Loop(raw.Loop)
		return nil
	}
	run := make([]Repeated, len(raw.Run))
	for i, r := range raw.Run {
		if len(r.Op) != 1 {
			return fmt.Errorf("invalid op %q", r.Op)
		}
		op, ok := token.FromChar(r.Op[0])
		if !ok {
			return fmt.Errorf("invalid op %q", r.Op)
		}
		run[i] = Repeated{Op: op, Count: r.Count}
	}
	*s = Run(run)
	return nil
}
