// Package session wires a subprocess under a PTY to the vte emulator
// core: PTY output flows through terminal.Emulator onto a screen.Buffer
// which is rendered to stdout, and stdin bytes are translated back
// through terminal.Emulator.HandleKeyboard onto the PTY.
package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"unicode/utf8"

	"github.com/creack/pty"
	"golang.org/x/term"

	"pkt.systems/pslog"

	"github.com/wq-tty/vte/screen"
	"github.com/wq-tty/vte/terminal"
)

// Config carries the demo's runtime settings, populated from cobra
// flags layered on viper defaults/environment.
type Config struct {
	Command   []string
	Palette   string
	Rows      int
	Cols      int
	LocalEcho bool
	Logger    pslog.Logger
}

// Run spawns Config.Command under a PTY, puts the controlling terminal
// into raw mode, and pumps bytes between the PTY and the emulator core
// until the subprocess exits or ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	log := cfg.Logger
	if log == nil {
		log = pslog.LoggerFromEnv()
	}

	buf := screen.New(cfg.Cols, cfg.Rows)

	var mu sync.Mutex
	var ptmx *os.File

	emu, err := terminal.NewEmulator(buf, func(p []byte) {
		mu.Lock()
		f := ptmx
		mu.Unlock()
		if f != nil {
			_, _ = f.Write(p)
		}
	})
	if err != nil {
		return fmt.Errorf("vtdemo: creating emulator: %w", err)
	}
	emu.SetPalette(cfg.Palette)
	if cfg.LocalEcho {
		emu.SetSendReceiveMode(false)
	}

	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	ptmx, err = pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(cfg.Rows), Cols: uint16(cfg.Cols)})
	if err != nil {
		return fmt.Errorf("vtdemo: starting %s under pty: %w", cfg.Command[0], err)
	}
	defer ptmx.Close()

	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)
	go func() {
		for range winch {
			mu.Lock()
			f := ptmx
			mu.Unlock()
			if f != nil {
				_ = pty.InheritSize(os.Stdin, f)
			}
		}
	}()

	stdinFd := int(os.Stdin.Fd())
	var restore func()
	if term.IsTerminal(stdinFd) {
		prev, err := term.MakeRaw(stdinFd)
		if err != nil {
			return fmt.Errorf("vtdemo: entering raw mode: %w", err)
		}
		restore = func() { _ = term.Restore(stdinFd, prev) }
		defer restore()
	}

	render := func() {
		var sb strings.Builder
		sb.WriteString("\x1b[H\x1b[2J")
		rows, cols := buf.Size()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := buf.Cell(r, c)
				if cell == nil || cell.Width == 0 {
					continue
				}
				if cell.Rune == 0 {
					sb.WriteByte(' ')
				} else {
					sb.WriteRune(cell.Rune)
				}
			}
			if r != rows-1 {
				sb.WriteString("\r\n")
			}
		}
		os.Stdout.WriteString(sb.String())
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		out := make([]byte, 4096)
		for {
			n, err := ptmx.Read(out)
			if n > 0 {
				emu.Input(out[:n])
				render()
			}
			if err != nil {
				return
			}
		}
	}()

	go pumpKeyboard(ctx, emu, os.Stdin, log)

	select {
	case <-done:
	case <-ctx.Done():
	}
	return cmd.Wait()
}

// pumpKeyboard decodes stdin as UTF-8, translates a handful of common
// escape sequences into named keys, and feeds everything else through
// as unicode input.
func pumpKeyboard(ctx context.Context, emu *terminal.Emulator, r io.Reader, log pslog.Logger) {
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			decodeKeys(emu, buf[:n])
		}
		if err != nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

func decodeKeys(emu *terminal.Emulator, b []byte) {
	for i := 0; i < len(b); i++ {
		if b[i] == 0x1b && i+2 < len(b) && b[i+1] == '[' {
			switch b[i+2] {
			case 'A':
				emu.HandleKeyboard(terminal.KeyUp, 0, 0, 0)
				i += 2
				continue
			case 'B':
				emu.HandleKeyboard(terminal.KeyDown, 0, 0, 0)
				i += 2
				continue
			case 'C':
				emu.HandleKeyboard(terminal.KeyRight, 0, 0, 0)
				i += 2
				continue
			case 'D':
				emu.HandleKeyboard(terminal.KeyLeft, 0, 0, 0)
				i += 2
				continue
			}
		}
		switch b[i] {
		case 0x1b:
			emu.HandleKeyboard(terminal.KeyEscape, 0, 0, 0)
		case '\r', '\n':
			emu.HandleKeyboard(terminal.KeyEnter, 0, 0, 0)
		case 0x7f, 0x08:
			emu.HandleKeyboard(terminal.KeyBackspace, 0, 0, 0)
		case '\t':
			emu.HandleKeyboard(terminal.KeyTab, 0, 0, 0)
		default:
			r, size := utf8.DecodeRune(b[i:])
			emu.HandleKeyboard(terminal.KeyNone, r, 0, r)
			i += size - 1
		}
	}
}
