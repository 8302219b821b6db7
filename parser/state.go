package parser

// State implements one node of the Paul Williams VT500-series parser
// state diagram. Enter and Exit return the entry/exit action for this
// state (nil if the state has none); Parse classifies one input code
// point and returns the resulting transition.
type State interface {
	Enter() Action
	Exit() Action
	Parse(r rune) Transition
}

// Transition is the result of classifying one code point against a
// state's per-state byte-class table. Next is nil when the input keeps
// the machine in its current state.
type Transition struct {
	Next   State
	Action Action
}

// base supplies the no-op Enter/Exit every state that doesn't need one
// can embed.
type base struct{}

func (base) Enter() Action { return nil }
func (base) Exit() Action  { return nil }

// singleton state instances: none of the fourteen states carry any
// per-instance data, so one value each suffices.
var (
	Ground              State = ground{}
	Escape              State = escape{}
	EscapeIntermediate  State = escapeIntermediate{}
	CsiEntry            State = csiEntry{}
	CsiParam            State = csiParam{}
	CsiIntermediate     State = csiIntermediate{}
	CsiIgnore           State = csiIgnore{}
	DcsEntry            State = dcsEntry{}
	DcsParam            State = dcsParam{}
	DcsIntermediate     State = dcsIntermediate{}
	DcsPassthrough      State = dcsPassthrough{}
	DcsIgnore           State = dcsIgnore{}
	OscString           State = oscString{}
	StIgnore            State = stIgnore{}
)

// --- byte classes -----------------------------------------------------

// c0Executable reports whether r is a C0 control that executes in place
// wherever it appears, excluding CAN, SUB and ESC (those three are
// handled by the universal "anywhere" transitions) and BEL inside OSC
// strings (handled specially there).
func c0Executable(r rune) bool {
	return (r >= 0x00 && r <= 0x17) || r == 0x19 || (r >= 0x1C && r <= 0x1F)
}

func isIntermediate(r rune) bool { return r >= 0x20 && r <= 0x2F }
func isDelete(r rune) bool       { return r == 0x7F }
func isDigitOrSemi(r rune) bool  { return (r >= '0' && r <= '9') || r == ';' }
func isColon(r rune) bool        { return r == 0x3A }
func isCsiPrivateMarker(r rune) bool {
	return r >= 0x3C && r <= 0x3F
}
func isCsiDispatchFinal(r rune) bool { return r >= 0x40 && r <= 0x7E }
func isEscDispatchFinal(r rune) bool {
	// 0x30-0x7E minus the bytes that have dedicated transitions of
	// their own: 0x50 DCS, 0x58 SOS, 0x5B CSI, 0x5D OSC, 0x5E PM, 0x5F APC.
	if r < 0x30 || r > 0x7E {
		return false
	}
	switch r {
	case 0x50, 0x58, 0x5B, 0x5D, 0x5E, 0x5F:
		return false
	}
	return true
}

// anywhere applies the universal transitions that override per-state
// dispatch regardless of the current state.
func anywhere(r rune) (Transition, bool) {
	switch {
	case r == 0x18 || r == 0x1A:
		return Transition{Next: Ground, Action: Execute{action{r}}}, true
	case (r >= 0x80 && r <= 0x8F) || (r >= 0x91 && r <= 0x97) || r == 0x99 || r == 0x9A:
		return Transition{Next: Ground, Action: Execute{action{r}}}, true
	case r == 0x9C: // ST: exits whatever string state we're in
		return Transition{Next: Ground}, true
	case r == 0x1B:
		return Transition{Next: Escape}, true
	case r == 0x98 || r == 0x9E || r == 0x9F: // SOS, PM, APC
		return Transition{Next: StIgnore}, true
	case r == 0x90: // DCS
		return Transition{Next: DcsEntry}, true
	case r == 0x9D: // OSC
		return Transition{Next: OscString}, true
	case r == 0x9B: // CSI
		return Transition{Next: CsiEntry}, true
	}
	return Transition{}, false
}

// --- GROUND -------------------------------------------------------------

type ground struct{ base }

func (ground) Parse(r rune) Transition {
	if c0Executable(r) {
		return Transition{Action: Execute{action{r}}}
	}
	if isDelete(r) {
		return Transition{Action: Ignore{action{r}}}
	}
	return Transition{Action: Print{action{r}}}
}

// --- ESCAPE ---------------------------------------------------------------

type escape struct{ base }

func (escape) Enter() Action { return Clear{} }

func (escape) Parse(r rune) Transition {
	switch {
	case c0Executable(r):
		return Transition{Action: Execute{action{r}}}
	case isDelete(r):
		return Transition{Action: Ignore{action{r}}}
	case isIntermediate(r):
		return Transition{Next: EscapeIntermediate, Action: Collect{action{r}}}
	case r == 0x50:
		return Transition{Next: DcsEntry}
	case r == 0x58 || r == 0x5E || r == 0x5F:
		return Transition{Next: StIgnore}
	case r == 0x5B:
		return Transition{Next: CsiEntry}
	case r == 0x5D:
		return Transition{Next: OscString}
	case isEscDispatchFinal(r):
		return Transition{Next: Ground, Action: EscDispatch{action{r}}}
	}
	return Transition{Action: Ignore{action{r}}}
}

// --- ESCAPE_INTERMEDIATE ---------------------------------------------------

type escapeIntermediate struct{ base }

func (escapeIntermediate) Parse(r rune) Transition {
	switch {
	case c0Executable(r):
		return Transition{Action: Execute{action{r}}}
	case isDelete(r):
		return Transition{Action: Ignore{action{r}}}
	case isIntermediate(r):
		return Transition{Action: Collect{action{r}}}
	case r >= 0x30 && r <= 0x7E:
		return Transition{Next: Ground, Action: EscDispatch{action{r}}}
	}
	return Transition{Action: Ignore{action{r}}}
}

// --- CSI_ENTRY --------------------------------------------------------------

type csiEntry struct{ base }

func (csiEntry) Enter() Action { return Clear{} }

func (csiEntry) Parse(r rune) Transition {
	switch {
	case c0Executable(r):
		return Transition{Action: Execute{action{r}}}
	case isDelete(r):
		return Transition{Action: Ignore{action{r}}}
	case isIntermediate(r):
		return Transition{Next: CsiIntermediate, Action: Collect{action{r}}}
	case isColon(r):
		return Transition{Next: CsiIgnore}
	case isDigitOrSemi(r):
		return Transition{Next: CsiParam, Action: Param{action{r}}}
	case isCsiPrivateMarker(r):
		return Transition{Next: CsiParam, Action: Collect{action{r}}}
	case isCsiDispatchFinal(r):
		return Transition{Next: Ground, Action: CsiDispatch{action{r}}}
	}
	return Transition{Action: Ignore{action{r}}}
}

// --- CSI_PARAM --------------------------------------------------------------

type csiParam struct{ base }

func (csiParam) Parse(r rune) Transition {
	switch {
	case c0Executable(r):
		return Transition{Action: Execute{action{r}}}
	case isDelete(r):
		return Transition{Action: Ignore{action{r}}}
	case isDigitOrSemi(r):
		return Transition{Action: Param{action{r}}}
	case isColon(r) || isCsiPrivateMarker(r):
		return Transition{Next: CsiIgnore}
	case isIntermediate(r):
		return Transition{Next: CsiIntermediate, Action: Collect{action{r}}}
	case isCsiDispatchFinal(r):
		return Transition{Next: Ground, Action: CsiDispatch{action{r}}}
	}
	return Transition{Action: Ignore{action{r}}}
}

// --- CSI_INTERMEDIATE --------------------------------------------------------

type csiIntermediate struct{ base }

func (csiIntermediate) Parse(r rune) Transition {
	switch {
	case c0Executable(r):
		return Transition{Action: Execute{action{r}}}
	case isDelete(r):
		return Transition{Action: Ignore{action{r}}}
	case isIntermediate(r):
		return Transition{Action: Collect{action{r}}}
	case r >= 0x30 && r <= 0x3F:
		return Transition{Next: CsiIgnore}
	case isCsiDispatchFinal(r):
		return Transition{Next: Ground, Action: CsiDispatch{action{r}}}
	}
	return Transition{Action: Ignore{action{r}}}
}

// --- CSI_IGNORE --------------------------------------------------------------

type csiIgnore struct{ base }

func (csiIgnore) Parse(r rune) Transition {
	switch {
	case c0Executable(r):
		return Transition{Action: Execute{action{r}}}
	case r >= 0x20 && r <= 0x3F:
		return Transition{Action: Ignore{action{r}}}
	case isDelete(r):
		return Transition{Action: Ignore{action{r}}}
	case isCsiDispatchFinal(r):
		return Transition{Next: Ground}
	}
	return Transition{Action: Ignore{action{r}}}
}

// --- DCS_ENTRY ----------------------------------------------------------------

type dcsEntry struct{ base }

func (dcsEntry) Enter() Action { return Clear{} }

func (dcsEntry) Parse(r rune) Transition {
	switch {
	case c0Executable(r) || isDelete(r):
		return Transition{Action: Ignore{action{r}}}
	case isColon(r):
		return Transition{Next: DcsIgnore}
	case isIntermediate(r):
		return Transition{Next: DcsIntermediate, Action: Collect{action{r}}}
	case isDigitOrSemi(r):
		return Transition{Next: DcsParam, Action: Param{action{r}}}
	case isCsiPrivateMarker(r):
		return Transition{Next: DcsParam, Action: Collect{action{r}}}
	case isCsiDispatchFinal(r):
		return Transition{Next: DcsPassthrough}
	}
	return Transition{Action: Ignore{action{r}}}
}

// --- DCS_PARAM ------------------------------------------------------------------

type dcsParam struct{ base }

func (dcsParam) Parse(r rune) Transition {
	switch {
	case c0Executable(r) || isDelete(r):
		return Transition{Action: Ignore{action{r}}}
	case isDigitOrSemi(r):
		return Transition{Action: Param{action{r}}}
	case isColon(r) || isCsiPrivateMarker(r):
		return Transition{Next: DcsIgnore}
	case isIntermediate(r):
		return Transition{Next: DcsIntermediate, Action: Collect{action{r}}}
	case isCsiDispatchFinal(r):
		return Transition{Next: DcsPassthrough}
	}
	return Transition{Action: Ignore{action{r}}}
}

// --- DCS_INTERMEDIATE ---------------------------------------------------------

type dcsIntermediate struct{ base }

func (dcsIntermediate) Parse(r rune) Transition {
	switch {
	case c0Executable(r) || isDelete(r):
		return Transition{Action: Ignore{action{r}}}
	case isIntermediate(r):
		return Transition{Action: Collect{action{r}}}
	case r >= 0x30 && r <= 0x3F:
		return Transition{Next: DcsIgnore}
	case isCsiDispatchFinal(r):
		return Transition{Next: DcsPassthrough}
	}
	return Transition{Action: Ignore{action{r}}}
}

// --- DCS_PASSTHROUGH ------------------------------------------------------------

type dcsPassthrough struct{ base }

func (dcsPassthrough) Enter() Action { return Hook{} }
func (dcsPassthrough) Exit() Action  { return Unhook{} }

func (dcsPassthrough) Parse(r rune) Transition {
	if isDelete(r) {
		return Transition{Action: Ignore{action{r}}}
	}
	if (r >= 0x00 && r <= 0x17) || r == 0x19 || (r >= 0x1C && r <= 0x1F) || (r >= 0x20 && r <= 0x7E) {
		return Transition{Action: Put{action{r}}}
	}
	return Transition{Action: Ignore{action{r}}}
}

// --- DCS_IGNORE ------------------------------------------------------------------

type dcsIgnore struct{ base }

func (dcsIgnore) Parse(r rune) Transition {
	return Transition{Action: Ignore{action{r}}}
}

// --- OSC_STRING ------------------------------------------------------------------

type oscString struct{ base }

func (oscString) Enter() Action { return OscStart{} }
func (oscString) Exit() Action  { return OscEnd{} }

func (oscString) Parse(r rune) Transition {
	switch {
	case r == 0x07: // BEL terminator
		return Transition{Next: Ground}
	case (r >= 0x00 && r <= 0x17) || r == 0x19 || (r >= 0x1C && r <= 0x1F):
		return Transition{Action: Ignore{action{r}}}
	case r >= 0x20 && r <= 0x7F:
		return Transition{Action: OscPut{action{r}}}
	}
	return Transition{Action: Ignore{action{r}}}
}

// --- ST_IGNORE (SOS/PM/APC catch-all) ---------------------------------------------

type stIgnore struct{ base }

func (stIgnore) Parse(r rune) Transition {
	return Transition{Action: Ignore{action{r}}}
}
