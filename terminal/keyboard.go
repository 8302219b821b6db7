package terminal

// Key names one non-printable key the host keyboard layer can report;
// printable keys are delivered through their Unicode code point
// instead (see HandleKeyboard's unicode parameter).
type Key int

const (
	KeyNone Key = iota
	KeyBackspace
	KeyTab
	KeyBacktab // ISO Left Tab
	KeyLinefeed
	KeyClear
	KeySysReq
	KeyEscape
	KeyEnter
	KeyKPEnter
	KeyFind
	KeyInsert
	KeyDelete
	KeySelect
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPSubtract
	KeyKPSeparator
	KeyKPDecimal
	KeyKPDivide
	KeyKPMultiply
	KeyKPAdd
	KeyKPSpace
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
)

// Modifiers is a bitset of keyboard modifiers active alongside a key
// event, matching the TSM_*_MASK constants this encoding is grounded
// on.
type Modifiers int

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
)

var ctrlLetterReply = [26]byte{
	0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a,
	0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14,
	0x15, 0x16, 0x17, 0x18, 0x19, 0x1a,
}

// ctrlPunctReply maps the CTRL-modified ASCII code points outside a-z
// that produce a control code, keyed by the ASCII rune.
var ctrlPunctReply = map[rune]byte{
	' ': 0x00, '2': 0x00,
	'3': 0x1b, '[': 0x1b, '{': 0x1b,
	'4': 0x1c, '\\': 0x1c, '|': 0x1c,
	'5': 0x1d, ']': 0x1d, '}': 0x1d,
	'6': 0x1e, '`': 0x1e, '~': 0x1e,
	'7': 0x1f, '/': 0x1f, '?': 0x1f,
	'8': 0x7f,
}

// HandleKeyboard encodes one key event into the byte sequence a host
// terminal would transmit, writing it out (with ALT/echo semantics)
// and reporting whether the event was consumed. asciiChar is the
// layout-independent ASCII equivalent of key/unicode used for CTRL
// shortcuts (0 if none); unicode is the printable code point the
// key produces with no modifiers applied (0 for pure function keys).
func (e *Emulator) HandleKeyboard(key Key, asciiChar rune, mods Modifiers, unicode rune) bool {
	if mods&ModAlt != 0 {
		e.modes.PrependEscape = true
	}

	sym := asciiChar
	if sym == 0 {
		sym = unicode
	}

	if mods&ModControl != 0 {
		switch {
		case sym >= 'a' && sym <= 'z':
			e.writeOut([]byte{ctrlLetterReply[sym-'a']})
			return true
		case sym >= 'A' && sym <= 'Z':
			e.writeOut([]byte{ctrlLetterReply[sym-'A']})
			return true
		default:
			if b, ok := ctrlPunctReply[sym]; ok {
				e.writeOut([]byte{b})
				return true
			}
		}
	}

	if key != KeyNone {
		if handled := e.handleNamedKey(key, mods); handled {
			return true
		}
	}

	if unicode != 0 {
		e.writeUnicode(unicode)
		return true
	}

	e.modes.PrependEscape = false
	return false
}

func (e *Emulator) handleNamedKey(key Key, mods Modifiers) bool {
	ctrl := mods&ModControl != 0
	shift := mods&ModShift != 0
	appK := e.modes.KeypadApplicationMode
	cursorApp := e.modes.CursorKeyMode

	switch key {
	case KeyBackspace:
		e.writeOut([]byte{0x08})
	case KeyTab:
		e.writeOut([]byte{0x09})
	case KeyBacktab:
		e.writeOut([]byte("\x1b[Z"))
	case KeyLinefeed:
		e.writeOut([]byte{0x0a})
	case KeyClear:
		e.writeOut([]byte{0x0b})
	case KeySysReq:
		e.writeOut([]byte{0x15})
	case KeyEscape:
		e.writeOut([]byte{0x1b})
	case KeyKPEnter:
		if appK {
			e.writeOut([]byte("\x1bOM"))
			return true
		}
		fallthrough
	case KeyEnter:
		if e.modes.LineFeedNewLineMode {
			e.writeOut([]byte("\x0d\x0a"))
		} else {
			e.writeOut([]byte{0x0d})
		}
	case KeyFind:
		e.writeOut([]byte("\x1b[1~"))
	case KeyInsert:
		e.writeOut([]byte("\x1b[2~"))
	case KeyDelete:
		e.writeOut([]byte("\x1b[3~"))
	case KeySelect:
		e.writeOut([]byte("\x1b[4~"))
	case KeyPageUp:
		e.writeOut([]byte("\x1b[5~"))
	case KeyPageDown:
		e.writeOut([]byte("\x1b[6~"))
	case KeyUp:
		e.writeOut(arrowSeq(ctrl, cursorApp, 'A'))
	case KeyDown:
		e.writeOut(arrowSeq(ctrl, cursorApp, 'B'))
	case KeyRight:
		e.writeOut(arrowSeq(ctrl, cursorApp, 'C'))
	case KeyLeft:
		e.writeOut(arrowSeq(ctrl, cursorApp, 'D'))
	case KeyHome:
		e.writeOut(homeEndSeq(ctrl, cursorApp, 'H'))
	case KeyEnd:
		e.writeOut(homeEndSeq(ctrl, cursorApp, 'F'))
	case KeyKP0:
		e.writeOut(keypadSeq(appK, 'p', '0'))
	case KeyKP1:
		e.writeOut(keypadSeq(appK, 'q', '1'))
	case KeyKP2:
		e.writeOut(keypadSeq(appK, 'r', '2'))
	case KeyKP3:
		e.writeOut(keypadSeq(appK, 's', '3'))
	case KeyKP4:
		e.writeOut(keypadSeq(appK, 't', '4'))
	case KeyKP5:
		e.writeOut(keypadSeq(appK, 'u', '5'))
	case KeyKP6:
		e.writeOut(keypadSeq(appK, 'v', '6'))
	case KeyKP7:
		e.writeOut(keypadSeq(appK, 'w', '7'))
	case KeyKP8:
		e.writeOut(keypadSeq(appK, 'x', '8'))
	case KeyKP9:
		e.writeOut(keypadSeq(appK, 'y', '9'))
	case KeyKPSubtract:
		e.writeOut(keypadSeq(appK, 'm', '-'))
	case KeyKPSeparator:
		e.writeOut(keypadSeq(appK, 'l', ','))
	case KeyKPDecimal:
		e.writeOut(keypadSeq(appK, 'n', '.'))
	case KeyKPDivide:
		e.writeOut(keypadSeq(appK, 'j', '/'))
	case KeyKPMultiply:
		e.writeOut(keypadSeq(appK, 'o', '*'))
	case KeyKPAdd:
		e.writeOut(keypadSeq(appK, 'k', '+'))
	case KeyKPSpace:
		e.writeOut([]byte(" "))
	case KeyF1:
		e.writeOut(fkeySeq(shift, "\x1b[23~", "\x1bOP"))
	case KeyF2:
		e.writeOut(fkeySeq(shift, "\x1b[24~", "\x1bOQ"))
	case KeyF3:
		e.writeOut(fkeySeq(shift, "\x1b[25~", "\x1bOR"))
	case KeyF4:
		e.writeOut(fkeySeq(shift, "\x1b[26~", "\x1bOS"))
	case KeyF5:
		e.writeOut(fkeySeq(shift, "\x1b[28~", "\x1b[15~"))
	case KeyF6:
		e.writeOut(fkeySeq(shift, "\x1b[29~", "\x1b[17~"))
	case KeyF7:
		e.writeOut(fkeySeq(shift, "\x1b[31~", "\x1b[18~"))
	case KeyF8:
		e.writeOut(fkeySeq(shift, "\x1b[32~", "\x1b[19~"))
	case KeyF9:
		e.writeOut(fkeySeq(shift, "\x1b[33~", "\x1b[20~"))
	case KeyF10:
		e.writeOut(fkeySeq(shift, "\x1b[34~", "\x1b[21~"))
	case KeyF11:
		e.writeOut(fkeySeq(shift, "\x1b[23;2~", "\x1b[23~"))
	case KeyF12:
		e.writeOut(fkeySeq(shift, "\x1b[24;2~", "\x1b[24~"))
	case KeyF13:
		e.writeOut(fkeySeq(shift, "\x1b[25;2~", "\x1b[25~"))
	case KeyF14:
		e.writeOut(fkeySeq(shift, "\x1b[26;2~", "\x1b[26~"))
	case KeyF15:
		e.writeOut(fkeySeq(shift, "\x1b[28;2~", "\x1b[28~"))
	case KeyF16:
		e.writeOut(fkeySeq(shift, "\x1b[29;2~", "\x1b[29~"))
	case KeyF17:
		e.writeOut(fkeySeq(shift, "\x1b[31;2~", "\x1b[31~"))
	case KeyF18:
		e.writeOut(fkeySeq(shift, "\x1b[32;2~", "\x1b[32~"))
	case KeyF19:
		e.writeOut(fkeySeq(shift, "\x1b[33;2~", "\x1b[33~"))
	case KeyF20:
		e.writeOut(fkeySeq(shift, "\x1b[34;2~", "\x1b[34~"))
	default:
		return false
	}
	return true
}

func arrowSeq(ctrl, appMode bool, final byte) []byte {
	switch {
	case ctrl:
		return []byte{0x1b, '[', '1', ';', '5', final}
	case appMode:
		return []byte{0x1b, 'O', final}
	default:
		return []byte{0x1b, '[', final}
	}
}

func homeEndSeq(ctrl, appMode bool, final byte) []byte {
	switch {
	case ctrl:
		return []byte{0x1b, '[', '1', ';', '5', final}
	case appMode:
		return []byte{0x1b, 'O', final}
	default:
		return []byte{0x1b, '[', final}
	}
}

func keypadSeq(appMode bool, appFinal byte, plain byte) []byte {
	if appMode {
		return []byte{0x1b, 'O', appFinal}
	}
	return []byte{plain}
}

func fkeySeq(shift bool, shifted, plain string) []byte {
	if shift {
		return []byte(shifted)
	}
	return []byte(plain)
}

func (e *Emulator) writeUnicode(r rune) {
	switch {
	case e.modes.Use7Bit:
		if r > 0x7f {
			e.logT.Printf("invalid keyboard input in 7bit mode U+%x; mapping to '?'", r)
			r = '?'
		}
		e.writeOut([]byte{byte(r)})
	case e.modes.Use8Bit:
		if r > 0xff {
			e.logT.Printf("invalid keyboard input in 8bit mode U+%x; mapping to '?'", r)
			r = '?'
		}
		e.writeOut([]byte{byte(r)})
	default:
		e.writeOut([]byte(string(r)))
	}
}
