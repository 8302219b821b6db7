package terminal

// Code identifies a stable VTE construction/configuration failure kind.
type Code int

const (
	ErrNilScreen Code = iota
	ErrNilWriter
	ErrNilOutput
	ErrPaletteAlloc
)

var codeText = map[Code]string{
	ErrNilScreen:    "screen must not be nil",
	ErrNilWriter:    "write callback must not be nil",
	ErrNilOutput:    "output buffer must not be nil",
	ErrPaletteAlloc: "failed to allocate palette",
}

// VteError reports a construction or configuration failure at the
// Emulator's API boundary. Parse-time errors (malformed sequences,
// argument overflow, unknown SGR subcommands) are never surfaced this
// way; they are silently recovered per spec, at most logged.
type VteError struct {
	Code Code
}

func (e *VteError) Error() string {
	if s, ok := codeText[e.Code]; ok {
		return "vte: " + s
	}
	return "vte: unknown error"
}

func newErr(c Code) *VteError { return &VteError{Code: c} }
