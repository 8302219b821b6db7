package terminal_test

import (
	"testing"

	"github.com/wq-tty/vte/screen"
	. "github.com/wq-tty/vte/terminal"
)

func newTestEmulator(t *testing.T, cols, rows int) (*Emulator, *screen.Buffer, *[]byte) {
	t.Helper()
	buf := screen.New(cols, rows)
	var out []byte
	e, err := NewEmulator(buf, func(p []byte) { out = append(out, p...) })
	if err != nil {
		t.Fatalf("NewEmulator: %v", err)
	}
	return e, buf, &out
}

func TestNewEmulatorRejectsNil(t *testing.T) {
	buf := screen.New(80, 24)
	if _, err := NewEmulator(nil, func([]byte) {}); err == nil {
		t.Fatal("expected error for nil screen")
	}
	if _, err := NewEmulator(buf, nil); err == nil {
		t.Fatal("expected error for nil write callback")
	}
}

func TestPlainPrint(t *testing.T) {
	e, buf, _ := newTestEmulator(t, 80, 24)
	e.Input([]byte("hi"))
	if c := buf.Cell(0, 0); c == nil || c.Rune != 'h' {
		t.Fatalf("cell 0,0 = %+v, want 'h'", c)
	}
	if c := buf.Cell(0, 1); c == nil || c.Rune != 'i' {
		t.Fatalf("cell 0,1 = %+v, want 'i'", c)
	}
	row, col := buf.CursorGet()
	if row != 0 || col != 2 {
		t.Fatalf("cursor = %d,%d, want 0,2", row, col)
	}
}

func TestSgrRedBoldPromotesToLight(t *testing.T) {
	e, buf, _ := newTestEmulator(t, 80, 24)
	e.Input([]byte("\x1b[1;31mX"))
	c := buf.Cell(0, 0)
	if c == nil {
		t.Fatal("cell 0,0 is nil")
	}
	if !c.Attr.Bold {
		t.Fatal("expected bold attribute")
	}
	want := PaletteDefaultForTest[ColorLightRed]
	if c.Attr.FgRGB != want {
		t.Fatalf("fg rgb = %+v, want light red %+v", c.Attr.FgRGB, want)
	}
}

func TestSgrTruecolorBackground(t *testing.T) {
	e, buf, _ := newTestEmulator(t, 80, 24)
	e.Input([]byte("\x1b[48;2;10;20;30mX"))
	c := buf.Cell(0, 0)
	if c == nil {
		t.Fatal("cell 0,0 is nil")
	}
	want := RGB{10, 20, 30}
	if c.Attr.BgRGB != want {
		t.Fatalf("bg rgb = %+v, want %+v", c.Attr.BgRGB, want)
	}
}

func TestCursorPositionReportRoundTrip(t *testing.T) {
	e, _, out := newTestEmulator(t, 80, 24)
	e.Input([]byte("\x1b[10;5H"))
	*out = nil
	e.Input([]byte("\x1b[6n"))
	got := string(*out)
	want := "\x1b[10;5R"
	if got != want {
		t.Fatalf("DSR reply = %q, want %q", got, want)
	}
}

func TestSaveRestoreCursor(t *testing.T) {
	e, buf, _ := newTestEmulator(t, 80, 24)
	e.Input([]byte("\x1b[5;5H\x1b7"))
	e.Input([]byte("\x1b[1;1H"))
	row, col := buf.CursorGet()
	if row != 0 || col != 0 {
		t.Fatalf("cursor after CUP = %d,%d, want 0,0", row, col)
	}
	e.Input([]byte("\x1b8"))
	row, col = buf.CursorGet()
	if row != 4 || col != 4 {
		t.Fatalf("cursor after DECRC = %d,%d, want 4,4", row, col)
	}
}

func TestAltScreen1049Symmetry(t *testing.T) {
	e, buf, _ := newTestEmulator(t, 80, 24)
	e.Input([]byte("primary"))
	e.Input([]byte("\x1b[?1049h"))
	if buf.Cell(0, 0).Rune != ' ' {
		t.Fatal("alt screen should start blank")
	}
	e.Input([]byte("alt"))
	e.Input([]byte("\x1b[?1049l"))
	if c := buf.Cell(0, 0); c == nil || c.Rune != 'p' {
		t.Fatalf("primary screen not restored, cell 0,0 = %+v", c)
	}
}

func TestLineFeedNewLineModeAffectsColumn(t *testing.T) {
	e, buf, _ := newTestEmulator(t, 80, 24)
	e.Input([]byte("ab\n"))
	_, col := buf.CursorGet()
	if col != 2 {
		t.Fatalf("LF without LNM moved column to %d, want unchanged 2", col)
	}
	e.Input([]byte("\x1b[20h")) // LNM
	e.Input([]byte("\n"))
	_, col = buf.CursorGet()
	if col != 0 {
		t.Fatalf("LF under LNM left column at %d, want 0", col)
	}
}

func TestHardResetClearsScreen(t *testing.T) {
	e, buf, _ := newTestEmulator(t, 10, 5)
	e.Input([]byte("hello"))
	e.HardReset()
	if c := buf.Cell(0, 0); c == nil || c.Rune != ' ' {
		t.Fatalf("cell 0,0 after hard reset = %+v, want blank", c)
	}
	row, col := buf.CursorGet()
	if row != 0 || col != 0 {
		t.Fatalf("cursor after hard reset = %d,%d, want 0,0", row, col)
	}
}
