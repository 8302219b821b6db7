// Package parser implements the input-parser half of a VT500-series
// terminal emulator: the Paul Williams state diagram (component C3),
// fused with the universal "anywhere" transitions for CAN/SUB/ESC/C1
// control introducers.
//
// A Parser consumes one already-decoded code point at a time (see
// package utf8dec for turning a raw byte stream into code points) and
// returns the ordered list of actions the caller must apply: at most an
// exit action from the old state, one transition action, and an entry
// action into the new state, matching spec.md's exit/transition/entry
// sequencing rule exactly.
package parser

// Parser holds the current state of the Williams diagram. The zero
// value is not usable; construct with NewParser.
type Parser struct {
	state State
}

// NewParser returns a Parser positioned at GROUND.
func NewParser() *Parser {
	return &Parser{state: Ground}
}

// State reports the parser's current state, primarily for tests and
// diagnostics.
func (p *Parser) State() State { return p.state }

// Reset forces the parser back to GROUND without emitting any actions,
// used by hard_reset and hardware resets where no orderly exit from the
// prior state is meaningful.
func (p *Parser) Reset() { p.state = Ground }

// Parse feeds one code point through the state machine and returns the
// resulting actions in application order. The slice is empty when a
// transition carries no action and neither the old state's exit nor the
// new state's entry has one (for example a final byte leaving
// CSI_IGNORE, or SOS/PM/APC from GROUND), so callers must not assume a
// non-empty result.
func (p *Parser) Parse(r rune) []Action {
	tr, universal := anywhere(r)
	if !universal {
		tr = p.state.Parse(r)
	}

	var acts []Action
	if tr.Next != nil {
		if a := p.state.Exit(); a != nil {
			acts = append(acts, a)
		}
	}
	if tr.Action != nil {
		acts = append(acts, tr.Action)
	}
	if tr.Next != nil {
		if a := tr.Next.Enter(); a != nil {
			acts = append(acts, a)
		}
		p.state = tr.Next
	}
	return acts
}

// ParseAll feeds a sequence of code points and returns all resulting
// actions concatenated in order. Convenience for tests and simple
// callers; Emulator.Input drives Parse directly so it can interleave
// action handling with UTF-8 decoding.
func (p *Parser) ParseAll(rs []rune) []Action {
	var acts []Action
	for _, r := range rs {
		acts = append(acts, p.Parse(r)...)
	}
	return acts
}
