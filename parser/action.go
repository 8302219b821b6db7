package parser

// Action is one dispatchable unit produced while stepping the parser
// state machine. The concrete type identifies which of the Williams
// diagram's dispatch categories fired; Rune carries the associated code
// point where one applies (print/execute/dispatch-final/collect char/
// param digit/put byte/osc byte), and is zero for actions that carry no
// payload (Hook, Unhook, OscStart, OscEnd).
type Action interface {
	Rune() rune
	name() string
}

type action struct{ ch rune }

func (a action) Rune() rune { return a.ch }

// Ignore carries no semantic content; the dispatcher drops it.
type Ignore struct{ action }

func (Ignore) name() string { return "ignore" }

// Print is a printable code point to be written to the screen through
// the character-set mapper.
type Print struct{ action }

func (Print) name() string { return "print" }

// Execute is a C0/C1 control code to run in place.
type Execute struct{ action }

func (Execute) name() string { return "execute" }

// Clear resets the CSI parameter vector, the intermediate-flag bitset
// and the OSC accumulator.
type Clear struct{ action }

func (Clear) name() string { return "clear" }

// Collect appends an intermediate byte (0x20-0x2F, or a CSI private
// marker 0x3C-0x3F) to the accumulator.
type Collect struct{ action }

func (Collect) name() string { return "collect" }

// Param appends a digit or ';' separator to the CSI parameter vector.
type Param struct{ action }

func (Param) name() string { return "param" }

// EscDispatch fires a two-or-three-character escape sequence with the
// given final byte.
type EscDispatch struct{ action }

func (EscDispatch) name() string { return "esc_dispatch" }

// CsiDispatch fires a complete CSI sequence with the given final byte.
type CsiDispatch struct{ action }

func (CsiDispatch) name() string { return "csi_dispatch" }

// Hook marks entry into DCS passthrough; the dispatcher opens a new DCS
// handler at this point.
type Hook struct{ action }

func (Hook) name() string { return "hook" }

// Put delivers one payload byte to the currently open DCS handler.
type Put struct{ action }

func (Put) name() string { return "put" }

// Unhook marks exit from DCS passthrough; the dispatcher closes the
// open DCS handler.
type Unhook struct{ action }

func (Unhook) name() string { return "unhook" }

// OscStart marks entry into an OSC string; the dispatcher clears the
// OSC accumulator.
type OscStart struct{ action }

func (OscStart) name() string { return "osc_start" }

// OscPut appends one byte to the OSC accumulator.
type OscPut struct{ action }

func (OscPut) name() string { return "osc_put" }

// OscEnd marks the terminator of an OSC string; the dispatcher fires
// the registered OSC callback with the accumulated, NUL-terminated
// string.
type OscEnd struct{ action }

func (OscEnd) name() string { return "osc_end" }
