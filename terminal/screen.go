package terminal

// EraseMode selects one of the six erase variants used by ED/EL.
type EraseMode int

const (
	EraseToEnd EraseMode = iota
	EraseToCursor
	EraseCurrentLine
	EraseCursorToScreen
	EraseScreenToCursor
	EraseScreen
)

// ScreenFlag names one of the boolean display flags the screen
// collaborator tracks on the emulator's behalf.
type ScreenFlag int

const (
	FlagAutoWrap ScreenFlag = iota
	FlagInsert
	FlagHideCursor
	FlagInverse
	FlagOrigin
	FlagAlternate
)

// Screen is the external collaborator the command interpreter (C4)
// calls into. It owns the row/column cell store, scrollback, and
// cursor position; the Emulator never touches cell storage directly.
// See package screen for a reference implementation.
type Screen interface {
	// Size reports the current screen dimensions in cells.
	Size() (rows, cols int)

	// CursorGet returns the cursor's current 0-based (row, col).
	CursorGet() (row, col int)
	// CursorSet moves the cursor to an absolute 0-based position,
	// clamped to the screen (or scrolling region, if origin mode is
	// active).
	CursorSet(row, col int)
	// CursorMove moves the cursor by a relative offset, clamped the
	// same way as CursorSet.
	CursorMove(dRow, dCol int)
	// ColumnHome moves the cursor to column 0 of the current row.
	ColumnHome()

	// TabRight advances the cursor to the n-th next tab stop.
	TabRight(n int)
	// TabLeft moves the cursor back to the n-th previous tab stop.
	TabLeft(n int)
	// SetTabStop sets a tab stop at the cursor's current column.
	SetTabStop()
	// ResetTabStop clears the tab stop at the cursor's current column.
	ResetTabStop()
	// ResetAllTabStops clears every tab stop.
	ResetAllTabStops()

	// LineFeed moves down one row, scrolling the scrolling region if
	// already at its bottom margin; it does not touch the column
	// (IND, and LF/VT/FF outside line-feed/new-line mode).
	LineFeed()
	// Newline is LineFeed preceded by a column-home (NEL, and LF/VT/FF
	// under line-feed/new-line mode).
	Newline()
	// ReverseNewline moves up one row, scrolling the scrolling region
	// down if already at its top margin (RI).
	ReverseNewline()
	// ScrollUp/ScrollDown scroll the scrolling region by n lines,
	// filling exposed rows with the current default attribute.
	ScrollUp(n int)
	ScrollDown(n int)

	// InsertLines/DeleteLines operate at the cursor's row, within the
	// scrolling region.
	InsertLines(n int)
	DeleteLines(n int)
	// InsertChars/DeleteChars operate at the cursor's column, within
	// the current row.
	InsertChars(n int)
	DeleteChars(n int)

	// Erase clears cells per mode, using the screen's current default
	// attribute for the cleared cells' background.
	Erase(mode EraseMode)
	// EraseChars clears n cells starting at the cursor, without
	// shifting any other cells (ECH).
	EraseChars(n int)

	// SetFlag sets or clears one boolean display flag.
	SetFlag(flag ScreenFlag, on bool)
	// GetFlag reports whether a display flag is currently set.
	GetFlag(flag ScreenFlag) bool

	// SetMargins sets the scrolling region, 0-based and inclusive.
	SetMargins(top, bottom int)

	// SetDefaultAttribute sets the attribute newly-erased/scrolled-in
	// cells receive.
	SetDefaultAttribute(attr Attribute)
	// WriteSymbol writes r at the cursor with attr, honoring auto-wrap
	// and insert/replace mode, and advances the cursor.
	WriteSymbol(r rune, attr Attribute)

	// Reset clears all screen state (cells, cursor, tabstops, margins)
	// to power-on defaults. It does not touch scrollback.
	Reset()
	// ClearScrollback discards any retained scrollback history.
	ClearScrollback()
}
