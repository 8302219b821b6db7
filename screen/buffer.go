package screen

import (
	"github.com/wq-tty/vte/terminal"
)

const defaultScrollback = 2000

// Buffer is a reference terminal.Screen implementation backed by a
// plain slice-of-rows grid. It maintains a bounded scrollback for the
// primary screen and a separate, scrollback-free grid for the
// alternate screen, switched by FlagAlternate exactly as DEC's
// 47/1047/1049 modes expect.
type Buffer struct {
	cols, rows int

	primary    []*Row
	scrollback []*Row
	maxScroll  int
	alt        []*Row
	altActive  bool

	cx, cy int // 0-based cursor position in the active grid

	marginTop, marginBottom int // inclusive, 0-based, within the active grid

	defAttr terminal.Attribute
	flags   [6]bool
}

// New creates a Buffer of the given size with a default-sized
// scrollback for the primary screen.
func New(cols, rows int) *Buffer {
	b := &Buffer{cols: cols, rows: rows, maxScroll: defaultScrollback}
	b.primary = makeGrid(cols, rows, newCell(terminal.Attribute{}))
	b.alt = makeGrid(cols, rows, newCell(terminal.Attribute{}))
	b.marginBottom = rows - 1
	b.flags[terminal.FlagAutoWrap] = true
	return b
}

func makeGrid(cols, rows int, fill Cell) []*Row {
	g := make([]*Row, rows)
	for i := range g {
		g[i] = newRow(cols, fill)
	}
	return g
}

func (b *Buffer) grid() []*Row {
	if b.altActive {
		return b.alt
	}
	return b.primary
}

func (b *Buffer) Size() (rows, cols int) { return b.rows, b.cols }

func (b *Buffer) CursorGet() (row, col int) { return b.cy, b.cx }

func (b *Buffer) clampCursor() {
	if b.cx < 0 {
		b.cx = 0
	}
	if b.cx >= b.cols {
		b.cx = b.cols - 1
	}
	lo, hi := 0, b.rows-1
	if b.flags[terminal.FlagOrigin] {
		lo, hi = b.marginTop, b.marginBottom
	}
	if b.cy < lo {
		b.cy = lo
	}
	if b.cy > hi {
		b.cy = hi
	}
}

func (b *Buffer) CursorSet(row, col int) {
	b.cy, b.cx = row, col
	if b.flags[terminal.FlagOrigin] {
		b.cy += b.marginTop
	}
	b.clampCursor()
}

func (b *Buffer) CursorMove(dRow, dCol int) {
	b.cy += dRow
	b.cx += dCol
	b.clampCursor()
}

func (b *Buffer) ColumnHome() { b.cx = 0 }

func (b *Buffer) TabRight(n int) {
	g := b.grid()
	row := g[b.cy]
	for ; n > 0; n-- {
		next := b.cols - 1
		for c := b.cx + 1; c < b.cols; c++ {
			if row.tabStops[c] {
				next = c
				break
			}
		}
		b.cx = next
	}
}

func (b *Buffer) TabLeft(n int) {
	g := b.grid()
	row := g[b.cy]
	for ; n > 0; n-- {
		prev := 0
		for c := b.cx - 1; c >= 0; c-- {
			if row.tabStops[c] {
				prev = c
				break
			}
		}
		b.cx = prev
	}
}

func (b *Buffer) SetTabStop() { b.grid()[b.cy].tabStops[b.cx] = true }

func (b *Buffer) ResetTabStop() { b.grid()[b.cy].tabStops[b.cx] = false }

func (b *Buffer) ResetAllTabStops() {
	row := b.grid()[b.cy]
	for i := range row.tabStops {
		row.tabStops[i] = false
	}
}

// LineFeed implements IND semantics: move down one row, scrolling the
// region up by one when already at its bottom margin.
func (b *Buffer) LineFeed() {
	if b.cy == b.marginBottom {
		b.ScrollUp(1)
	} else if b.cy < b.rows-1 {
		b.cy++
	}
}

// Newline implements NEL semantics: column-home followed by LineFeed.
func (b *Buffer) Newline() {
	b.cx = 0
	b.LineFeed()
}

func (b *Buffer) ReverseNewline() {
	if b.cy == b.marginTop {
		b.ScrollDown(1)
	} else if b.cy > 0 {
		b.cy--
	}
}

func (b *Buffer) blankCell() Cell { return newCell(b.defAttr) }

func (b *Buffer) ScrollUp(n int) {
	g := b.grid()
	top, bot := b.marginTop, b.marginBottom
	for ; n > 0; n-- {
		if !b.altActive && top == 0 {
			b.pushScrollback(g[top])
		}
		copy(g[top:bot], g[top+1:bot+1])
		g[bot] = newRow(b.cols, b.blankCell())
	}
}

func (b *Buffer) ScrollDown(n int) {
	g := b.grid()
	top, bot := b.marginTop, b.marginBottom
	for ; n > 0; n-- {
		for r := bot; r > top; r-- {
			g[r] = g[r-1]
		}
		g[top] = newRow(b.cols, b.blankCell())
	}
}

func (b *Buffer) pushScrollback(r *Row) {
	if b.maxScroll <= 0 {
		return
	}
	b.scrollback = append(b.scrollback, r)
	if len(b.scrollback) > b.maxScroll {
		b.scrollback = b.scrollback[len(b.scrollback)-b.maxScroll:]
	}
}

func (b *Buffer) InsertLines(n int) {
	g := b.grid()
	if b.cy < b.marginTop || b.cy > b.marginBottom {
		return
	}
	for ; n > 0; n-- {
		for r := b.marginBottom; r > b.cy; r-- {
			g[r] = g[r-1]
		}
		g[b.cy] = newRow(b.cols, b.blankCell())
	}
}

func (b *Buffer) DeleteLines(n int) {
	g := b.grid()
	if b.cy < b.marginTop || b.cy > b.marginBottom {
		return
	}
	for ; n > 0; n-- {
		copy(g[b.cy:b.marginBottom], g[b.cy+1:b.marginBottom+1])
		g[b.marginBottom] = newRow(b.cols, b.blankCell())
	}
}

func (b *Buffer) InsertChars(n int) {
	row := b.grid()[b.cy]
	for ; n > 0; n-- {
		copy(row.cells[b.cx+1:], row.cells[b.cx:len(row.cells)-1])
		row.cells[b.cx] = b.blankCell()
	}
	row.gen = nextGen()
}

func (b *Buffer) DeleteChars(n int) {
	row := b.grid()[b.cy]
	for ; n > 0; n-- {
		copy(row.cells[b.cx:], row.cells[b.cx+1:])
		row.cells[len(row.cells)-1] = b.blankCell()
	}
	row.gen = nextGen()
}

func (b *Buffer) Erase(mode terminal.EraseMode) {
	g := b.grid()
	blank := b.blankCell()
	switch mode {
	case terminal.EraseToEnd:
		g[b.cy].fill(b.cx, b.cols, blank)
	case terminal.EraseToCursor:
		g[b.cy].fill(0, b.cx+1, blank)
	case terminal.EraseCurrentLine:
		g[b.cy].fill(0, b.cols, blank)
	case terminal.EraseCursorToScreen:
		g[b.cy].fill(b.cx, b.cols, blank)
		for r := b.cy + 1; r < b.rows; r++ {
			g[r].fill(0, b.cols, blank)
		}
	case terminal.EraseScreenToCursor:
		for r := 0; r < b.cy; r++ {
			g[r].fill(0, b.cols, blank)
		}
		g[b.cy].fill(0, b.cx+1, blank)
	case terminal.EraseScreen:
		for r := 0; r < b.rows; r++ {
			g[r].fill(0, b.cols, blank)
		}
	}
}

func (b *Buffer) EraseChars(n int) {
	row := b.grid()[b.cy]
	row.fill(b.cx, b.cx+n, b.blankCell())
}

func (b *Buffer) SetFlag(flag terminal.ScreenFlag, on bool) {
	if int(flag) < len(b.flags) {
		b.flags[flag] = on
	}
	if flag == terminal.FlagAlternate {
		b.setAlternate(on)
	}
}

func (b *Buffer) GetFlag(flag terminal.ScreenFlag) bool {
	if int(flag) < len(b.flags) {
		return b.flags[flag]
	}
	return false
}

func (b *Buffer) setAlternate(on bool) {
	if b.altActive == on {
		return
	}
	b.altActive = on
	b.clampCursor()
}

func (b *Buffer) SetMargins(top, bottom int) {
	if top < 0 {
		top = 0
	}
	if bottom <= 0 || bottom >= b.rows {
		bottom = b.rows - 1
	}
	if top >= bottom {
		top, bottom = 0, b.rows-1
	}
	b.marginTop, b.marginBottom = top, bottom
	b.cy, b.cx = top, 0
	if b.flags[terminal.FlagOrigin] {
		b.cy = top
	}
}

func (b *Buffer) SetDefaultAttribute(attr terminal.Attribute) { b.defAttr = attr }

// WriteSymbol writes r at the cursor, honoring insert mode and
// auto-wrap, then advances the cursor by the symbol's display width.
// Passing the last column wraps to the start of the next line when
// auto-wrap is on, and leaves the cursor on the last column otherwise.
func (b *Buffer) WriteSymbol(r rune, attr terminal.Attribute) {
	w := 1
	if wide(r) {
		w = 2
	}
	g := b.grid()
	if b.cx+w > b.cols {
		if b.flags[terminal.FlagAutoWrap] {
			b.cx = 0
			b.LineFeed()
			g = b.grid()
		} else {
			b.cx = b.cols - w
		}
	}
	row := g[b.cy]
	if b.flags[terminal.FlagInsert] {
		copy(row.cells[b.cx+w:], row.cells[b.cx:len(row.cells)-w])
	}
	row.cells[b.cx] = Cell{Rune: r, Width: w, Attr: attr}
	if w == 2 && b.cx+1 < b.cols {
		row.cells[b.cx+1] = Cell{Rune: 0, Width: 0, Attr: attr}
	}
	row.gen = nextGen()
	b.cx += w
	if b.cx >= b.cols {
		if b.flags[terminal.FlagAutoWrap] {
			b.cx = 0
			b.LineFeed()
		} else {
			b.cx = b.cols - 1
		}
	}
}

func (b *Buffer) Reset() {
	blank := newCell(terminal.Attribute{})
	b.primary = makeGrid(b.cols, b.rows, blank)
	b.alt = makeGrid(b.cols, b.rows, blank)
	b.altActive = false
	b.cx, b.cy = 0, 0
	b.marginTop, b.marginBottom = 0, b.rows-1
	b.flags = [6]bool{}
	b.flags[terminal.FlagAutoWrap] = true
}

func (b *Buffer) ClearScrollback() { b.scrollback = nil }

// Cell exposes the cell at (row, col) of the active grid, or nil if
// out of bounds. Consumers (renderers, tests) use this to inspect the
// grid; the Screen interface itself has no read accessor since the
// emulator never needs one.
func (b *Buffer) Cell(row, col int) *Cell {
	g := b.grid()
	if row < 0 || row >= len(g) {
		return nil
	}
	return g[row].at(col)
}

// ScrollbackLen reports how many lines have scrolled off the top of
// the primary screen and are still retained.
func (b *Buffer) ScrollbackLen() int { return len(b.scrollback) }
