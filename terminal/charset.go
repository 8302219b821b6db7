package terminal

// CharsetID names one of the three character-set tables this
// implementation actually maps; any other designator final accepted by
// the ESC dispatch grammar falls back to CharsetASCII (a documented
// no-op, matching the source's national-charset handling).
type CharsetID int

const (
	CharsetASCII CharsetID = iota
	CharsetDECSpecialGraphics
	CharsetDECSupplemental
)

// charsetTable maps a code point in the printable range (33-126 for GL,
// 161-254 for GR) to its mapped code point. Only the DEC-special-graphics
// table actually remaps anything; ASCII and DEC-supplemental are
// identity mappings at this level of fidelity (DEC-supplemental differs
// from ASCII only in the GR half, which callers reach via the same
// identity function since our internal representation is already
// Unicode).
func charsetTable(id CharsetID) func(rune) rune {
	switch id {
	case CharsetDECSpecialGraphics:
		return decSpecialGraphics
	default:
		return func(r rune) rune { return r }
	}
}

// decSpecialGraphics implements the VT100 line-drawing set: characters
// 0x60-0x7E (`a`-`~`) map to box-drawing glyphs; everything else passes
// through unchanged.
func decSpecialGraphics(r rune) rune {
	if m, ok := decSpecialGraphicsTable[r]; ok {
		return m
	}
	return r
}

var decSpecialGraphicsTable = map[rune]rune{
	0x60: '◆', 0x61: '▒', 0x62: '␉', 0x63: '␌', 0x64: '␍', 0x65: '␊',
	0x66: '°', 0x67: '±', 0x68: '␤', 0x69: '␋', 0x6a: '┘', 0x6b: '┐',
	0x6c: '┌', 0x6d: '└', 0x6e: '┼', 0x6f: '⎺', 0x70: '⎻', 0x71: '─',
	0x72: '⎼', 0x73: '⎽', 0x74: '├', 0x75: '┤', 0x76: '┴', 0x77: '┬',
	0x78: '│', 0x79: '≤', 0x7a: '≥', 0x7b: 'π', 0x7c: '≠', 0x7d: '£',
	0x7e: '·',
}

// CharsetState holds the four designatable slots (G0-G3), the two
// active mapping pointers (GL, GR) and the two single-shift overrides
// (GLT, GRT, cleared after the next mapped character).
type CharsetState struct {
	g      [4]CharsetID
	gl, gr int // index into g[], the active slot for GL/GR
	glt    int // single-shift slot for GL, or -1 if none pending
	grt    int // single-shift slot for GR, or -1 if none pending
}

func newCharsetState() CharsetState {
	return CharsetState{
		g:   [4]CharsetID{CharsetASCII, CharsetASCII, CharsetASCII, CharsetASCII},
		gl:  0, gr: 1, glt: -1, grt: -1,
	}
}

// Designate sets one of the four G-slots to a charset.
func (c *CharsetState) Designate(slot int, id CharsetID) {
	if slot >= 0 && slot < 4 {
		c.g[slot] = id
	}
}

// SingleShift arms a one-character override of GL (SS2 selects G2, SS3
// selects G3); it is consumed by the next call to Map.
func (c *CharsetState) SingleShift(slot int) { c.glt = slot }

// Map applies the character-set mapping rules from spec.md §4.3: 33-126
// use the active GL table, 161-254 use GR, everything else (32, 127,
// 160, and code points above 255) passes through unchanged. A pending
// single-shift is consumed even if the code point falls outside the
// GL/GR ranges, matching "cleared after the next printed character".
func (c *CharsetState) Map(r rune) rune {
	slot := -1
	switch {
	case r >= 33 && r <= 126:
		if c.glt >= 0 {
			slot = c.glt
		} else {
			slot = c.gl
		}
	case r >= 161 && r <= 254:
		if c.grt >= 0 {
			slot = c.grt
		} else {
			slot = c.gr
		}
	}
	if c.glt >= 0 {
		c.glt = -1
	}
	if c.grt >= 0 {
		c.grt = -1
	}
	if slot < 0 {
		return r
	}
	return charsetTable(c.g[slot])(r)
}
