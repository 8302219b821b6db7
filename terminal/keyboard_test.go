package terminal_test

import (
	"testing"

	"github.com/wq-tty/vte/screen"
	. "github.com/wq-tty/vte/terminal"
)

func newKeyboardEmulator(t *testing.T) (*Emulator, *[]byte) {
	t.Helper()
	buf := screen.New(80, 24)
	var out []byte
	e, err := NewEmulator(buf, func(p []byte) { out = append(out, p...) })
	if err != nil {
		t.Fatalf("NewEmulator: %v", err)
	}
	return e, &out
}

func TestHandleKeyboardCtrlLetters(t *testing.T) {
	e, out := newKeyboardEmulator(t)
	e.HandleKeyboard(KeyNone, 'c', ModControl, 'c')
	if got, want := *out, []byte{0x03}; string(got) != string(want) {
		t.Fatalf("CTRL-c = %v, want %v", got, want)
	}
}

func TestHandleKeyboardArrowPlain(t *testing.T) {
	e, out := newKeyboardEmulator(t)
	e.HandleKeyboard(KeyUp, 0, 0, 0)
	if string(*out) != "\x1b[A" {
		t.Fatalf("KeyUp = %q, want \\x1b[A", *out)
	}
}

func TestHandleKeyboardArrowCursorApplicationMode(t *testing.T) {
	e, out := newKeyboardEmulator(t)
	e.SetSendReceiveMode(true)
	e.Input([]byte("\x1b[?1h")) // DECCKM
	*out = nil
	e.HandleKeyboard(KeyUp, 0, 0, 0)
	if string(*out) != "\x1bOA" {
		t.Fatalf("KeyUp under DECCKM = %q, want \\x1bOA", *out)
	}
}

func TestHandleKeyboardAltPrependsEscape(t *testing.T) {
	e, out := newKeyboardEmulator(t)
	e.HandleKeyboard(KeyNone, 0, ModAlt, 'x')
	if string(*out) != "\x1bx" {
		t.Fatalf("ALT-x = %q, want \\x1bx", *out)
	}
}

func TestHandleKeyboardUnicodePassthrough(t *testing.T) {
	e, out := newKeyboardEmulator(t)
	e.HandleKeyboard(KeyNone, 0, 0, '€')
	if string(*out) != "€" {
		t.Fatalf("unicode passthrough = %q, want €", *out)
	}
}

func TestHandleKeyboardNoneReportsUnhandled(t *testing.T) {
	e, _ := newKeyboardEmulator(t)
	if handled := e.HandleKeyboard(KeyNone, 0, 0, 0); handled {
		t.Fatal("expected unhandled event for a fully empty key event")
	}
}
