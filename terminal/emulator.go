package terminal

import (
	"log"
	"os"
	"sync/atomic"

	"github.com/wq-tty/vte/parser"
	"github.com/wq-tty/vte/utf8dec"
)

// Modes is a plain record of the emulator's named boolean state, one
// field per DEC/ANSI mode this implementation tracks. A bitset would be
// smaller, but a named record reads better at every call site that
// checks a single mode.
type Modes struct {
	CursorKeyMode          bool // DECCKM
	KeypadApplicationMode  bool // DECKPAM/DECKPNM
	LineFeedNewLineMode    bool // LNM
	Use8Bit                bool
	Use7Bit                bool
	UseC1                  bool
	KeyboardActionMode     bool // KAM
	InsertMode             bool // IRM
	SendReceiveMode        bool // SRM; true means local echo is off
	TextCursorVisible      bool // DECTCEM
	InverseScreen          bool // DECSCNM
	OriginMode             bool // DECOM
	AutoWrap               bool // DECAWM
	AutoRepeat             bool // DECARM
	NationalCharsetMode    bool
	BackgroundColorErase   bool
	PrependEscape          bool // one-shot ALT-key prefix
	TiteInhibit            bool
}

// savedState holds the DECSC/DECRC and alternate-screen cursor context.
type savedState struct {
	cursorX, cursorY int
	attr             Attribute
	gl, gr           int
	wrapMode         bool
	originMode       bool
}

// Emulator is the reference counted VT500-series terminal state
// machine: it owns the parser, the character-attribute and charset
// state, and drives a Screen collaborator. It never touches cell
// storage directly.
type Emulator struct {
	refs int32

	screen Screen
	write  func([]byte)
	bellCB func()
	oscCB  func(id int, arg string)

	p *parser.Parser
	m utf8dec.Machine

	csi csiAccumulator
	osc oscAccumulator

	attr    Attribute
	charset CharsetState
	modes   Modes

	altScreen        bool
	altCursorX       int
	altCursorY       int
	saved            savedState
	altSaved         savedState

	paletteName    string
	palette        Palette
	customPalette  *Palette
	defAttr        Attribute

	parseDepth int  // re-entrancy guard for local-echo suppression
	dcsActive  bool // inside a DCS_PASSTHROUGH payload; contents are discarded

	logE *log.Logger
	logT *log.Logger
	logU *log.Logger
	logW *log.Logger
	logI *log.Logger
}

// NewEmulator builds an Emulator bound to screen, writing host-directed
// replies (DA/DSR/keyboard bytes) through write. Both arguments are
// mandatory; a nil screen or write callback is a configuration error,
// not a runtime one, so it is reported immediately rather than
// deferred to first use.
func NewEmulator(screen Screen, write func([]byte)) (*Emulator, error) {
	if screen == nil {
		return nil, newErr(ErrNilScreen)
	}
	if write == nil {
		return nil, newErr(ErrNilWriter)
	}
	e := &Emulator{
		refs:   1,
		screen: screen,
		write:  write,
		p:      parser.NewParser(),
	}
	e.initLog()
	e.defAttr = Attribute{FgCode: ColorForeground, BgCode: ColorBackground}
	e.SetPalette("default")
	e.HardReset()
	return e, nil
}

func (e *Emulator) initLog() {
	e.logT = log.New(os.Stderr, "TRAC: ", log.Ldate|log.Ltime|log.Lshortfile)
	e.logI = log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	e.logE = log.New(os.Stderr, "ERRO: ", log.Ldate|log.Ltime|log.Lshortfile)
	e.logW = log.New(os.Stderr, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	e.logU = log.New(os.Stderr, "(unimplemented): ", log.Ldate|log.Ltime|log.Lshortfile)
}

// Ref/Unref implement the reference-counted lifecycle a host embedding
// multiple views of the same session relies on.
func (e *Emulator) Ref() { atomic.AddInt32(&e.refs, 1) }

// Unref drops a reference; the caller must not use e afterward once the
// count reaches zero.
func (e *Emulator) Unref() int32 { return atomic.AddInt32(&e.refs, -1) }

// SetBellCB registers the callback fired on BEL.
func (e *Emulator) SetBellCB(cb func()) { e.bellCB = cb }

// SetOscCB registers the callback fired for every OSC sequence, with
// the numeric identifier and the remaining argument text; the emulator
// interprets no OSC command itself.
func (e *Emulator) SetOscCB(cb func(id int, arg string)) { e.oscCB = cb }

// GetDefAttr returns the attribute newly cleared cells receive.
func (e *Emulator) GetDefAttr() Attribute { return e.defAttr }

// SetSendReceiveMode sets SRM directly, the same flag CSI 12h/12l
// toggles. SRM true means the host is expected to echo; false enables
// local echo (see writeOut).
func (e *Emulator) SetSendReceiveMode(on bool) { e.modes.SendReceiveMode = on }

// Reset performs a soft reset: mode flags, charset slots, the current
// attribute and the parser all return to power-on defaults. It does
// not touch the screen's cell contents beyond what Screen.Reset does.
func (e *Emulator) Reset() {
	e.modes = Modes{
		TextCursorVisible:    true,
		AutoRepeat:           true,
		SendReceiveMode:      true,
		AutoWrap:             true,
		BackgroundColorErase: true,
	}
	e.screen.Reset()
	e.screen.SetFlag(FlagAutoWrap, true)

	e.m.Reset()
	e.p.Reset()
	e.parseDepth = 0

	e.charset = newCharsetState()

	e.attr = e.defAttr
	e.ResolveAttribute(&e.attr)
	e.screen.SetDefaultAttribute(e.defAttr)

	e.saved = savedState{wrapMode: true}
	e.altSaved = savedState{wrapMode: true}
	e.altScreen = false
	e.csi.Clear()
	e.osc.Clear()
}

// HardReset performs a soft reset and additionally erases the screen,
// discards scrollback, and homes the cursor.
func (e *Emulator) HardReset() {
	e.Reset()
	e.screen.Erase(EraseScreen)
	e.screen.ClearScrollback()
	e.screen.CursorSet(0, 0)
}

// Input feeds raw bytes from the host-facing side (usually a PTY) into
// the parser. Bytes are treated as UTF-8 unless Use7Bit/Use8Bit force a
// single-byte interpretation, matching tsm_vte_input's three branches.
func (e *Emulator) Input(data []byte) {
	e.parseDepth++
	defer func() { e.parseDepth-- }()
	for _, b := range data {
		switch {
		case e.modes.Use7Bit:
			e.feed(rune(b & 0x7f))
		case e.modes.Use8Bit:
			e.feed(rune(b))
		default:
			r, state := e.m.Feed(b)
			switch state {
			case utf8dec.StateAccept:
				e.feed(r)
			case utf8dec.StateReject:
				e.feed(r)
				if b < 0x80 {
					// an ASCII byte that cut a sequence short is
					// still a code point of its own
					e.feed(rune(b))
				}
			}
		}
	}
}

func (e *Emulator) feed(r rune) {
	for _, a := range e.p.Parse(r) {
		e.dispatch(a)
	}
}

// localEcho reports whether a reply originates from outside Input's
// call stack and local echo is enabled, matching "!parse_cnt &&
// !SendReceiveMode": replies generated while already processing host
// input (DA/DSR/ENQ answers) are never fed back to ourselves, only
// ones raised independently (keyboard encoding) are.
func (e *Emulator) localEcho() bool {
	return e.parseDepth == 0 && !e.modes.SendReceiveMode
}

// writeOut sends data to the host, honoring the one-shot ALT
// prepend-escape flag and, when applicable, echoing the same bytes
// back through the parser as if the host had sent them.
func (e *Emulator) writeOut(data []byte) {
	if e.localEcho() {
		if e.modes.PrependEscape {
			e.Input([]byte{0x1b})
		}
		e.Input(data)
	}
	if e.modes.PrependEscape {
		e.writeRaw([]byte{0x1b})
	}
	e.writeRaw(data)
	e.modes.PrependEscape = false
}

func (e *Emulator) writeRaw(b []byte) {
	if e.write != nil {
		e.write(b)
	}
}
