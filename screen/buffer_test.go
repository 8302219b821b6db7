package screen

import (
	"testing"

	"github.com/wq-tty/vte/terminal"
)

func TestWriteSymbolAdvancesCursor(t *testing.T) {
	b := New(10, 5)
	b.WriteSymbol('a', terminal.Attribute{})
	row, col := b.CursorGet()
	if row != 0 || col != 1 {
		t.Fatalf("cursor after write = %d,%d, want 0,1", row, col)
	}
	if c := b.Cell(0, 0); c == nil || c.Rune != 'a' {
		t.Fatalf("cell 0,0 = %+v, want 'a'", c)
	}
}

func TestWriteSymbolAutoWrap(t *testing.T) {
	b := New(3, 3)
	b.SetFlag(terminal.FlagAutoWrap, true)
	b.WriteSymbol('a', terminal.Attribute{})
	b.WriteSymbol('b', terminal.Attribute{})
	b.WriteSymbol('c', terminal.Attribute{})
	row, col := b.CursorGet()
	if row != 1 || col != 0 {
		t.Fatalf("cursor after wrap = %d,%d, want 1,0", row, col)
	}
}

func TestWriteSymbolNoAutoWrapClampsColumn(t *testing.T) {
	b := New(3, 3)
	b.SetFlag(terminal.FlagAutoWrap, false)
	b.WriteSymbol('a', terminal.Attribute{})
	b.WriteSymbol('b', terminal.Attribute{})
	b.WriteSymbol('c', terminal.Attribute{})
	b.WriteSymbol('d', terminal.Attribute{})
	row, col := b.CursorGet()
	if row != 0 || col != 2 {
		t.Fatalf("cursor with autowrap off = %d,%d, want 0,2", row, col)
	}
	if c := b.Cell(0, 2); c == nil || c.Rune != 'd' {
		t.Fatalf("last column should hold the overwritten symbol, got %+v", c)
	}
}

func TestWideCharacterOccupiesTwoCells(t *testing.T) {
	b := New(10, 3)
	b.WriteSymbol('世', terminal.Attribute{})
	c0 := b.Cell(0, 0)
	c1 := b.Cell(0, 1)
	if c0 == nil || c0.Width != 2 {
		t.Fatalf("wide cell width = %+v, want 2", c0)
	}
	if c1 == nil || c1.Width != 0 {
		t.Fatalf("wide cell's second column width = %+v, want 0", c1)
	}
	_, col := b.CursorGet()
	if col != 2 {
		t.Fatalf("cursor after wide char = col %d, want 2", col)
	}
}

func TestLineFeedScrollsAtBottomMargin(t *testing.T) {
	b := New(5, 3)
	b.WriteSymbol('a', terminal.Attribute{})
	b.CursorSet(2, 0)
	b.LineFeed()
	row, _ := b.CursorGet()
	if row != 2 {
		t.Fatalf("cursor row after LineFeed at bottom margin = %d, want clamped to 2", row)
	}
	if c := b.Cell(0, 0); c == nil || c.Rune != ' ' {
		t.Fatalf("row 0 should have scrolled off after LineFeed at bottom margin, got %+v", c)
	}
}

func TestNewlineHomesColumn(t *testing.T) {
	b := New(5, 3)
	b.WriteSymbol('a', terminal.Attribute{})
	b.Newline()
	_, col := b.CursorGet()
	if col != 0 {
		t.Fatalf("cursor column after Newline = %d, want 0", col)
	}
}

func TestScrollUpPushesScrollback(t *testing.T) {
	b := New(5, 3)
	if got := b.ScrollbackLen(); got != 0 {
		t.Fatalf("initial scrollback length = %d, want 0", got)
	}
	b.ScrollUp(1)
	if got := b.ScrollbackLen(); got != 1 {
		t.Fatalf("scrollback length after ScrollUp = %d, want 1", got)
	}
}

func TestAlternateScreenIsolatesContent(t *testing.T) {
	b := New(5, 3)
	b.WriteSymbol('p', terminal.Attribute{})
	b.SetFlag(terminal.FlagAlternate, true)
	if c := b.Cell(0, 0); c == nil || c.Rune != ' ' {
		t.Fatalf("alt screen should start blank, got %+v", c)
	}
	b.WriteSymbol('a', terminal.Attribute{})
	b.SetFlag(terminal.FlagAlternate, false)
	if c := b.Cell(0, 0); c == nil || c.Rune != 'p' {
		t.Fatalf("primary content should survive alt-screen round trip, got %+v", c)
	}
}

func TestEraseScreen(t *testing.T) {
	b := New(5, 3)
	b.WriteSymbol('x', terminal.Attribute{})
	b.Erase(terminal.EraseScreen)
	if c := b.Cell(0, 0); c == nil || c.Rune != ' ' {
		t.Fatalf("cell 0,0 after EraseScreen = %+v, want blank", c)
	}
}

func TestInsertAndDeleteChars(t *testing.T) {
	b := New(5, 3)
	b.WriteSymbol('a', terminal.Attribute{})
	b.WriteSymbol('b', terminal.Attribute{})
	b.WriteSymbol('c', terminal.Attribute{})
	b.CursorSet(0, 1)
	b.InsertChars(1)
	if c := b.Cell(0, 1); c == nil || c.Rune != ' ' {
		t.Fatalf("cell after InsertChars = %+v, want blank", c)
	}
	if c := b.Cell(0, 2); c == nil || c.Rune != 'b' {
		t.Fatalf("shifted cell = %+v, want 'b'", c)
	}
	b.DeleteChars(1)
	if c := b.Cell(0, 1); c == nil || c.Rune != 'b' {
		t.Fatalf("cell after DeleteChars = %+v, want 'b'", c)
	}
}

func TestTabStopsDefaultEveryEightColumns(t *testing.T) {
	b := New(20, 3)
	b.TabRight(1)
	_, col := b.CursorGet()
	if col != 8 {
		t.Fatalf("first default tab stop = col %d, want 8", col)
	}
}
