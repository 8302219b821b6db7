// Package screen provides a reference implementation of the
// terminal.Screen collaborator: a row/column cell grid with
// scrollback, tab stops, and a scrolling region, driven entirely by
// the calls the emulator package's command interpreter makes.
package screen

import (
	"github.com/mattn/go-runewidth"

	"github.com/wq-tty/vte/terminal"
)

// Cell is a single grid position: the code point it holds (' ' for a
// blank or erased cell, 0 for the second column of a wide character),
// its display width in columns, and the attribute it was written with.
type Cell struct {
	Rune  rune
	Width int
	Attr  terminal.Attribute
}

// wide reports whether r occupies two display columns.
func wide(r rune) bool { return runewidth.RuneWidth(r) == 2 }

func newCell(attr terminal.Attribute) Cell {
	return Cell{Rune: ' ', Width: 1, Attr: attr}
}
