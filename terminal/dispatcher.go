package terminal

import (
	"strconv"
	"strings"

	"github.com/wq-tty/vte/parser"
)

const csiArgMax = 16

// csiFlag records which private-marker or intermediate byte was seen
// while collecting a CSI sequence, matching CSI_WHAT/CSI_GT/CSI_BANG/
// CSI_CASH/CSI_DQUOTE from the reference collector.
type csiFlag int

const (
	csiWhat   csiFlag = 1 << iota // '?'
	csiGt                         // '>'
	csiBang                       // '!'
	csiCash                       // '$'
	csiDquote                     // '"'
	csiSquote                     // '\''
	csiSpace                      // ' '
	csiMult                       // '*' (designate G2)
	csiPlus                       // '+' (designate G3)
	csiPOpen                      // '(' (designate G0)
	csiPClose                     // ')' (designate G1)
)

// csiAccumulator collects a CSI sequence's parameters and marker/
// intermediate bytes across successive Collect/Param actions.
type csiAccumulator struct {
	argv  [csiArgMax]int
	argc  int
	flags csiFlag
}

func (c *csiAccumulator) Clear() {
	for i := range c.argv {
		c.argv[i] = -1
	}
	c.argc = 0
	c.flags = 0
}

// Collect records a private marker or intermediate byte seen before the
// final dispatch character.
func (c *csiAccumulator) Collect(r rune) {
	switch r {
	case '?':
		c.flags |= csiWhat
	case '>':
		c.flags |= csiGt
	case '!':
		c.flags |= csiBang
	case '$':
		c.flags |= csiCash
	case '"':
		c.flags |= csiDquote
	case '\'':
		c.flags |= csiSquote
	case ' ':
		c.flags |= csiSpace
	case '*':
		c.flags |= csiMult
	case '+':
		c.flags |= csiPlus
	case '(':
		c.flags |= csiPOpen
	case ')':
		c.flags |= csiPClose
	}
}

// Digit accumulates one decimal digit into the current parameter,
// saturating at 65535 to match the reference implementation's overflow
// guard.
func (c *csiAccumulator) Digit(r rune) {
	if c.argc >= csiArgMax {
		return
	}
	if c.argv[c.argc] < 0 {
		c.argv[c.argc] = 0
	}
	c.argv[c.argc] = c.argv[c.argc]*10 + int(r-'0')
	if c.argv[c.argc] > 65535 {
		c.argv[c.argc] = 65535
	}
}

// Semi advances to the next parameter slot.
func (c *csiAccumulator) Semi() {
	if c.argc < csiArgMax-1 {
		c.argc++
	}
}

// Get returns the i-th parameter, or def if it was never supplied or
// supplied as zero-length (sentinel -1).
func (c *csiAccumulator) Get(i, def int) int {
	if i < 0 || i > c.argc || i >= csiArgMax || c.argv[i] < 0 {
		return def
	}
	return c.argv[i]
}

// Has reports whether flag was collected for this sequence.
func (c *csiAccumulator) Has(flag csiFlag) bool { return c.flags&flag != 0 }

const oscMax = 4096

// oscAccumulator collects an OSC control string's raw bytes; unlike the
// reference implementation's fixed 128-byte buffer, this one grows to a
// generous cap since Go makes that cheap and window-title/palette
// strings are rarely bounded in practice.
type oscAccumulator struct {
	buf strings.Builder
}

func (o *oscAccumulator) Clear() { o.buf.Reset() }

func (o *oscAccumulator) Put(r rune) {
	if o.buf.Len() < oscMax {
		o.buf.WriteRune(r)
	}
}

func (o *oscAccumulator) String() string { return o.buf.String() }

// dispatch routes one parser action to the appropriate handler. Param
// and Collect arrive for ESC intermediates and CSI/DCS sequences, and
// they always feed the CSI accumulator (hdlEsc reads its intermediate
// flags too); DCS payload bytes arrive through Put instead.
func (e *Emulator) dispatch(a parser.Action) {
	switch v := a.(type) {
	case parser.Ignore:
		// nothing to do
	case parser.Print:
		e.hdlPrint(v.Rune())
	case parser.Execute:
		e.hdlExecute(v.Rune())
	case parser.Clear:
		e.csi.Clear()
		e.osc.Clear()
	case parser.Collect:
		e.csi.Collect(v.Rune())
	case parser.Param:
		r := v.Rune()
		if r == ';' {
			e.csi.Semi()
		} else {
			e.csi.Digit(r)
		}
	case parser.EscDispatch:
		e.hdlEsc(v.Rune())
	case parser.CsiDispatch:
		if e.csi.argc < csiArgMax {
			e.csi.argc++
		}
		e.hdlCsi(v.Rune())
	case parser.Hook:
		e.dcsActive = true
	case parser.Put:
		// DCS payload bytes are not interpreted by this implementation;
		// they are discarded once collected, matching the reference's
		// treatment of DCS sequences it does not itself claim (Sixel,
		// termcap queries, ...).
	case parser.Unhook:
		e.dcsActive = false
	case parser.OscStart:
		e.osc.Clear()
	case parser.OscPut:
		e.osc.Put(v.Rune())
	case parser.OscEnd:
		e.hdlOsc(e.osc.String())
		e.osc.Clear()
	}
}

// splitOsc splits "ID;rest" into its numeric identifier and the
// remaining argument text; id is -1 if no numeric prefix is present.
func splitOsc(s string) (id int, arg string) {
	i := strings.IndexByte(s, ';')
	head := s
	if i >= 0 {
		head = s[:i]
		arg = s[i+1:]
	}
	n, err := strconv.Atoi(head)
	if err != nil {
		return -1, s
	}
	return n, arg
}
