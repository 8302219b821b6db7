package terminal

import "fmt"

// hdlPrint writes one mapped, charset-translated code point at the
// cursor using the current graphic attribute.
func (e *Emulator) hdlPrint(r rune) {
	r = e.charset.Map(r)
	e.screen.WriteSymbol(r, e.attr)
}

// hdlExecute runs a single C0 or C1 control function. Everything not
// named here is silently ignored, matching the reference's default
// branch.
func (e *Emulator) hdlExecute(ctrl rune) {
	switch ctrl {
	case 0x00: // NUL
	case 0x05: // ENQ
		e.writeOut([]byte{0x06})
	case 0x07: // BEL
		if e.bellCB != nil {
			e.bellCB()
		}
	case 0x08: // BS
		e.screen.CursorMove(0, -1)
	case 0x09: // HT
		e.screen.TabRight(1)
	case 0x0a, 0x0b, 0x0c: // LF, VT, FF
		if e.modes.LineFeedNewLineMode {
			e.screen.Newline()
		} else {
			e.screen.LineFeed()
		}
	case 0x0d: // CR
		e.screen.ColumnHome()
	case 0x0e: // SO: G1 into GL
		e.charset.gl = 1
	case 0x0f: // SI: G0 into GL
		e.charset.gl = 0
	case 0x18, 0x1b: // CAN, ESC: nothing to do, the parser already aborted
	case 0x1a: // SUB
		e.hdlPrint(0xbf)
	case 0x1f: // DEL, ignored
	case 0x84: // IND
		e.scrollingMoveDown(1)
	case 0x85: // NEL
		e.screen.Newline()
	case 0x88: // HTS
		e.screen.SetTabStop()
	case 0x8d: // RI
		e.scrollingMoveUp(1)
	case 0x8e: // SS2
		e.charset.SingleShift(2)
	case 0x8f: // SS3
		e.charset.SingleShift(3)
	case 0x9a: // DECID
		e.sendPrimaryDA()
	case 0x9c: // ST, nothing to do
	}
}

// scrollingMoveDown/scrollingMoveUp implement IND/RI: move the cursor
// one row, scrolling the region when it is already at the relevant
// margin, matching tsm_screen_move_down/up's "scroll" argument.
func (e *Emulator) scrollingMoveDown(n int) {
	for ; n > 0; n-- {
		e.screen.LineFeed()
	}
}
func (e *Emulator) scrollingMoveUp(n int) {
	for ; n > 0; n-- {
		e.screen.ReverseNewline()
	}
}

func (e *Emulator) sendPrimaryDA() {
	e.writeOut([]byte("\x1b[?60;1;6;9;15c"))
}

// hdlEsc handles a two-character (or SP-prefixed three-character)
// escape sequence identified by its final byte, plus whatever
// intermediate/private markers were collected first.
func (e *Emulator) hdlEsc(final rune) {
	switch final {
	case 'B': // ASCII into G0-G3
		if e.designate(CharsetASCII) {
			return
		}
	case '<': // DEC supplemental into G0-G3
		if e.designate(CharsetDECSupplemental) {
			return
		}
	case '0': // DEC special graphics into G0-G3
		if e.designate(CharsetDECSpecialGraphics) {
			return
		}
	case 'A', '4', 'C', '5', 'R', 'Q', 'K', 'Y', 'E', '6', 'Z', 'H', '7', '=':
		// National variants this implementation does not carry a
		// distinct table for map to ASCII, matching the reference's
		// TODO-marked fallbacks to its own upper/lower unicode tables.
		if e.designate(CharsetASCII) {
			return
		}
	case 'F':
		if e.csi.Has(csiSpace) { // S7C1T
			e.modes.UseC1 = false
			return
		}
	case 'G':
		if e.csi.Has(csiSpace) { // S8C1T
			e.modes.UseC1 = true
			return
		}
	}

	if e.csi.flags != 0 {
		e.logU.Printf("unhandled escape sequence with intermediates, final=%q", final)
		return
	}

	switch final {
	case 'D': // IND
		e.scrollingMoveDown(1)
	case 'E': // NEL
		e.screen.Newline()
	case 'H': // HTS
		e.screen.SetTabStop()
	case 'M': // RI
		e.scrollingMoveUp(1)
	case 'N': // SS2
		e.charset.SingleShift(2)
	case 'O': // SS3
		e.charset.SingleShift(3)
	case 'Z': // DECID
		e.sendPrimaryDA()
	case '\\': // ST, nothing to do
	case '~': // LS1R
		e.charset.gr = 1
	case 'n': // LS2
		e.charset.gl = 2
	case '}': // LS2R
		e.charset.gr = 2
	case 'o': // LS3
		e.charset.gl = 3
	case '|': // LS3R
		e.charset.gr = 3
	case '=': // DECKPAM
		e.modes.KeypadApplicationMode = true
	case '>': // DECKPNM
		e.modes.KeypadApplicationMode = false
	case 'c': // RIS
		e.HardReset()
	case '7': // DECSC
		e.saveState()
	case '8': // DECRC
		e.restoreState()
	default:
		e.logU.Printf("unhandled escape sequence final=%q", final)
	}
}

// designate assigns id to whichever G-slot was selected by a collected
// '(' ')' '*' '+' intermediate, matching set_charset. It reports false
// if none of the four markers was collected, so the caller can fall
// through to the plain-escape switch below (matching set_charset
// returning false and do_esc continuing on to its "everything below is
// only valid without CSI flags" guard).
func (e *Emulator) designate(id CharsetID) bool {
	switch {
	case e.csi.Has(csiPOpen):
		e.charset.Designate(0, id)
	case e.csi.Has(csiPClose):
		e.charset.Designate(1, id)
	case e.csi.Has(csiMult):
		e.charset.Designate(2, id)
	case e.csi.Has(csiPlus):
		e.charset.Designate(3, id)
	default:
		return false
	}
	return true
}

func (e *Emulator) saveState() {
	x, y := e.screen.CursorGet()
	e.saved = savedState{
		cursorX: x, cursorY: y,
		attr:       e.attr,
		gl:         e.charset.gl,
		gr:         e.charset.gr,
		wrapMode:   e.modes.AutoWrap,
		originMode: e.modes.OriginMode,
	}
}

func (e *Emulator) restoreState() {
	e.screen.CursorSet(e.saved.cursorX, e.saved.cursorY)
	e.attr = e.saved.attr
	e.ResolveAttribute(&e.attr)
	if e.modes.BackgroundColorErase {
		e.screen.SetDefaultAttribute(e.attr)
	}
	e.charset.gl = e.saved.gl
	e.charset.gr = e.saved.gr
	e.modes.AutoWrap = e.saved.wrapMode
	e.screen.SetFlag(FlagAutoWrap, e.saved.wrapMode)
	e.modes.OriginMode = e.saved.originMode
	e.screen.SetFlag(FlagOrigin, e.saved.originMode)
}

// hdlCsi dispatches a fully collected CSI sequence by its final byte.
func (e *Emulator) hdlCsi(final rune) {
	get1 := func() int {
		n := e.csi.Get(0, 0)
		if n <= 0 {
			return 1
		}
		return n
	}

	switch final {
	case 'A': // CUU
		e.screen.CursorMove(-get1(), 0)
	case 'B': // CUD
		e.screen.CursorMove(get1(), 0)
	case 'C': // CUF
		e.screen.CursorMove(0, get1())
	case 'D': // CUB
		e.screen.CursorMove(0, -get1())
	case 'd': // VPA
		_, col := e.screen.CursorGet()
		e.screen.CursorSet(get1()-1, col)
	case 'e': // VPR
		row, col := e.screen.CursorGet()
		e.screen.CursorSet(row+get1(), col)
	case 'H', 'f': // CUP, HVP
		row := e.csi.Get(0, 0)
		if row <= 0 {
			row = 1
		}
		col := e.csi.Get(1, 0)
		if col <= 0 {
			col = 1
		}
		e.screen.CursorSet(row-1, col-1)
	case 'G': // CHA
		row, _ := e.screen.CursorGet()
		e.screen.CursorSet(row, get1()-1)
	case 'J': // ED
		n := e.csi.Get(0, 0)
		switch {
		case n <= 0:
			e.screen.Erase(EraseCursorToScreen)
		case n == 1:
			e.screen.Erase(EraseScreenToCursor)
		case n == 2:
			e.screen.Erase(EraseScreen)
		}
	case 'K': // EL
		n := e.csi.Get(0, 0)
		switch {
		case n <= 0:
			e.screen.Erase(EraseToEnd)
		case n == 1:
			e.screen.Erase(EraseToCursor)
		case n == 2:
			e.screen.Erase(EraseCurrentLine)
		}
	case 'X': // ECH
		e.screen.EraseChars(get1())
	case 'm': // SGR (or XTMODKEYS if '>' collected, ignored)
		if !e.csi.Has(csiGt) {
			e.hdlSgr()
		}
	case 'p':
		switch {
		case e.csi.Has(csiGt), e.csi.Has(csiBang):
			e.Reset()
		case e.csi.Has(csiCash):
			if !e.csi.Has(csiWhat) {
				e.Reset()
			}
		default:
			e.hdlCompatMode()
		}
	case 'h': // SM
		e.hdlMode(true)
	case 'l': // RM
		e.hdlMode(false)
	case 'r': // DECSTBM; parameters are 1-based, SetMargins is 0-based
		top := e.csi.Get(0, 0)
		if top < 1 {
			top = 1
		}
		bot := e.csi.Get(1, 0)
		if bot < 0 {
			bot = 0
		}
		e.screen.SetMargins(top-1, bot-1)
	case 'c': // DA
		e.hdlDeviceAttr()
	case 'L': // IL
		e.screen.InsertLines(get1())
	case 'M': // DL
		e.screen.DeleteLines(get1())
	case 'g': // TBC
		n := e.csi.Get(0, 0)
		if n <= 0 {
			e.screen.ResetTabStop()
		} else if n == 3 {
			e.screen.ResetAllTabStops()
		}
	case '@': // ICH
		e.screen.InsertChars(get1())
	case 'P': // DCH
		e.screen.DeleteChars(get1())
	case 'Z': // CBT
		e.screen.TabLeft(get1())
	case 'I': // CHT
		e.screen.TabRight(get1())
	case 'n': // DSR
		e.hdlDsr()
	case 'S': // SU
		e.screen.ScrollUp(get1())
	case 'T': // SD
		e.screen.ScrollDown(get1())
	default:
		e.logU.Printf("unhandled CSI final=%q argc=%d", final, e.csi.argc)
	}
}

func (e *Emulator) hdlCompatMode() {
	e.Reset()
	switch e.csi.Get(0, 0) {
	case 61:
		e.modes.Use7Bit = true
	case 62, 63, 64:
		if e.csi.Get(1, 0) == 1 || e.csi.Get(1, 0) == 2 {
			e.modes.UseC1 = true
		}
		e.modes.Use8Bit = true
	}
}

func (e *Emulator) hdlDeviceAttr() {
	if e.csi.argc <= 1 && e.csi.Get(0, 0) <= 0 {
		if e.csi.flags == 0 {
			e.sendPrimaryDA()
			return
		}
		if e.csi.Has(csiGt) {
			e.writeOut([]byte("\x1b[>1;1;0c"))
			return
		}
	}
}

func (e *Emulator) hdlDsr() {
	switch e.csi.Get(0, 0) {
	case 5:
		e.writeOut([]byte("\x1b[0n"))
	case 6:
		row, col := e.screen.CursorGet()
		e.writeOut([]byte(fmt.Sprintf("\x1b[%d;%dR", row+1, col+1)))
	}
}

// hdlMode implements SM/RM, matching csi_mode's split between non-DEC
// (no '?' marker) and DEC-private (with '?' marker) parameter tables.
func (e *Emulator) hdlMode(set bool) {
	for i := 0; i < e.csi.argc; i++ {
		n := e.csi.argv[i]
		if n < 0 {
			continue
		}
		if !e.csi.Has(csiWhat) {
			switch n {
			case 2:
				e.modes.KeyboardActionMode = set
			case 4:
				e.modes.InsertMode = set
				e.screen.SetFlag(FlagInsert, set)
			case 12:
				e.modes.SendReceiveMode = set
			case 20:
				e.modes.LineFeedNewLineMode = set
			}
			continue
		}

		switch n {
		case 1: // DECCKM
			e.modes.CursorKeyMode = set
		case 2, 3, 4: // DECANM, DECCOLM, DECSCLM: not supported, ignored
		case 5: // DECSCNM
			e.modes.InverseScreen = set
			e.screen.SetFlag(FlagInverse, set)
		case 6: // DECOM
			e.modes.OriginMode = set
			e.screen.SetFlag(FlagOrigin, set)
		case 7: // DECAWM
			e.modes.AutoWrap = set
			e.screen.SetFlag(FlagAutoWrap, set)
		case 8: // DECARM
			e.modes.AutoRepeat = set
		case 12, 18, 19: // blinking cursor, DECPFF, DECPEX: not implemented
		case 25: // DECTCEM
			e.modes.TextCursorVisible = set
			e.screen.SetFlag(FlagHideCursor, !set)
		case 42: // DECNRCM
			e.modes.NationalCharsetMode = set
		case 47:
			if !e.modes.TiteInhibit {
				e.screen.SetFlag(FlagAlternate, set)
			}
		case 1047:
			if !e.modes.TiteInhibit {
				if set {
					e.screen.SetFlag(FlagAlternate, true)
				} else {
					e.screen.Erase(EraseScreen)
					e.screen.SetFlag(FlagAlternate, false)
				}
			}
		case 1048:
			if !e.modes.TiteInhibit {
				if set {
					e.altCursorX, e.altCursorY = e.screen.CursorGet()
				} else {
					e.screen.CursorSet(e.altCursorX, e.altCursorY)
				}
			}
		case 1049:
			if !e.modes.TiteInhibit {
				if set {
					e.altCursorX, e.altCursorY = e.screen.CursorGet()
					e.screen.SetFlag(FlagAlternate, true)
					e.screen.Erase(EraseScreen)
				} else {
					e.screen.SetFlag(FlagAlternate, false)
					e.screen.CursorSet(e.altCursorX, e.altCursorY)
				}
			}
		}
	}
}

// hdlSgr implements Select Graphic Rendition, including the 256-color
// and truecolor extensions (38/48;5;n and 38/48;2;r;g;b).
func (e *Emulator) hdlSgr() {
	if e.csi.argc <= 1 && e.csi.Get(0, -1) < 0 {
		e.csi.argc = 1
		e.csi.argv[0] = 0
	}

	for i := 0; i < e.csi.argc; i++ {
		n := e.csi.argv[i]
		switch n {
		case -1:
		case 0:
			e.attr = e.defAttr
			e.attr.Bold, e.attr.Italic, e.attr.Underline = false, false, false
			e.attr.Inverse, e.attr.Blink = false, false
		case 1:
			e.attr.Bold = true
		case 3:
			e.attr.Italic = true
		case 4:
			e.attr.Underline = true
		case 5:
			e.attr.Blink = true
		case 7:
			e.attr.Inverse = true
		case 22:
			e.attr.Bold = false
		case 23:
			e.attr.Italic = false
		case 24:
			e.attr.Underline = false
		case 25:
			e.attr.Blink = false
		case 27:
			e.attr.Inverse = false
		case 30, 31, 32, 33, 34, 35, 36, 37:
			e.attr.FgCode = n - 30
		case 39:
			e.attr.FgCode = e.defAttr.FgCode
		case 40, 41, 42, 43, 44, 45, 46, 47:
			e.attr.BgCode = n - 40
		case 49:
			e.attr.BgCode = e.defAttr.BgCode
		case 90, 91, 92, 93, 94, 95, 96, 97:
			e.attr.FgCode = ColorDarkGrey + (n - 90)
		case 100, 101, 102, 103, 104, 105, 106, 107:
			e.attr.BgCode = ColorDarkGrey + (n - 100)
		case 38, 48:
			i = e.hdlSgrExtended(i, n)
		default:
			e.logU.Printf("unhandled SGR attribute %d", n)
		}
	}

	e.ResolveAttribute(&e.attr)
	if e.modes.BackgroundColorErase {
		e.screen.SetDefaultAttribute(e.attr)
	}
}

// hdlSgrExtended handles the 38/48;5;n and 38/48;2;r;g;b subsequences,
// returning the updated loop index (mirroring csi_attribute's i += 2 /
// i += 4 skip-ahead).
func (e *Emulator) hdlSgrExtended(i, which int) int {
	mode := e.csi.Get(i+1, -1)
	switch mode {
	case 5:
		code := e.csi.Get(i+2, -1)
		if code < 0 {
			e.logU.Printf("invalid 256-color SGR")
			return i
		}
		rgb := e.Resolve256(code)
		e.setExtColor(which, -1, rgb)
		return i + 2
	case 2:
		r := e.csi.Get(i+2, -1)
		g := e.csi.Get(i+3, -1)
		b := e.csi.Get(i+4, -1)
		if r < 0 || g < 0 || b < 0 {
			e.logU.Printf("invalid truecolor SGR")
			return i
		}
		e.setExtColor(which, -1, RGB{uint8(r), uint8(g), uint8(b)})
		return i + 4
	default:
		e.logU.Printf("invalid extended-color SGR")
		return i
	}
}

func (e *Emulator) setExtColor(which, code int, rgb RGB) {
	if which == 38 {
		e.attr.FgCode = code
		e.attr.FgRGB = rgb
	} else {
		e.attr.BgCode = code
		e.attr.BgRGB = rgb
	}
}

// hdlOsc dispatches a fully collected OSC control string.
func (e *Emulator) hdlOsc(s string) {
	id, arg := splitOsc(s)
	if e.oscCB != nil {
		e.oscCB(id, arg)
	}
}
