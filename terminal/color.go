package terminal

// RGB is a resolved 24-bit color.
type RGB struct{ R, G, B uint8 }

// Attribute is a single cell's character attribute: foreground and
// background each carry a semantic code (negative => explicit RGB set
// via SGR 38/48;2, nonnegative => a palette index 0-17) plus the RGB
// triple already resolved from that code by the active palette. The RGB
// fields are only meaningful once ResolveAttribute has run; handlers
// build attributes with just the codes set and let the emulator resolve
// them before handing off to the screen, matching to_rgb in the
// original C source.
type Attribute struct {
	FgCode int
	FgRGB  RGB
	BgCode int
	BgRGB  RGB

	Bold      bool
	Italic    bool
	Underline bool
	Inverse   bool
	Blink     bool
	Protect   bool
}

// Palette indices, matching TSM_COLOR_* order exactly so the built-in
// tables below can be transcribed byte-for-byte from the reference
// implementation.
const (
	ColorBlack = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorLightGrey
	ColorDarkGrey
	ColorLightRed
	ColorLightGreen
	ColorLightYellow
	ColorLightBlue
	ColorLightMagenta
	ColorLightCyan
	ColorWhite
	ColorForeground
	ColorBackground
	colorNum
)

// Palette is an 18-entry named RGB table: the 16 ANSI colors plus the
// default foreground and background.
type Palette [colorNum]RGB

func rgb(r, g, b uint8) RGB { return RGB{r, g, b} }

var paletteDefault = Palette{
	ColorBlack: rgb(0, 0, 0), ColorRed: rgb(205, 0, 0), ColorGreen: rgb(0, 205, 0),
	ColorYellow: rgb(205, 205, 0), ColorBlue: rgb(0, 0, 238), ColorMagenta: rgb(205, 0, 205),
	ColorCyan: rgb(0, 205, 205), ColorLightGrey: rgb(229, 229, 229), ColorDarkGrey: rgb(127, 127, 127),
	ColorLightRed: rgb(255, 0, 0), ColorLightGreen: rgb(0, 255, 0), ColorLightYellow: rgb(255, 255, 0),
	ColorLightBlue: rgb(92, 92, 255), ColorLightMagenta: rgb(255, 0, 255), ColorLightCyan: rgb(0, 255, 255),
	ColorWhite: rgb(255, 255, 255), ColorForeground: rgb(229, 229, 229), ColorBackground: rgb(0, 0, 0),
}

var paletteSolarized = Palette{
	ColorBlack: rgb(7, 54, 66), ColorRed: rgb(220, 50, 47), ColorGreen: rgb(133, 153, 0),
	ColorYellow: rgb(181, 137, 0), ColorBlue: rgb(38, 139, 210), ColorMagenta: rgb(211, 54, 130),
	ColorCyan: rgb(42, 161, 152), ColorLightGrey: rgb(238, 232, 213), ColorDarkGrey: rgb(0, 43, 54),
	ColorLightRed: rgb(203, 75, 22), ColorLightGreen: rgb(88, 110, 117), ColorLightYellow: rgb(101, 123, 131),
	ColorLightBlue: rgb(131, 148, 150), ColorLightMagenta: rgb(108, 113, 196), ColorLightCyan: rgb(147, 161, 161),
	ColorWhite: rgb(253, 246, 227), ColorForeground: rgb(238, 232, 213), ColorBackground: rgb(7, 54, 66),
}

var paletteSolarizedBlack = Palette{
	ColorBlack: rgb(0, 0, 0), ColorRed: rgb(220, 50, 47), ColorGreen: rgb(133, 153, 0),
	ColorYellow: rgb(181, 137, 0), ColorBlue: rgb(38, 139, 210), ColorMagenta: rgb(211, 54, 130),
	ColorCyan: rgb(42, 161, 152), ColorLightGrey: rgb(238, 232, 213), ColorDarkGrey: rgb(0, 43, 54),
	ColorLightRed: rgb(203, 75, 22), ColorLightGreen: rgb(88, 110, 117), ColorLightYellow: rgb(101, 123, 131),
	ColorLightBlue: rgb(131, 148, 150), ColorLightMagenta: rgb(108, 113, 196), ColorLightCyan: rgb(147, 161, 161),
	ColorWhite: rgb(253, 246, 227), ColorForeground: rgb(238, 232, 213), ColorBackground: rgb(0, 0, 0),
}

var paletteSolarizedWhite = Palette{
	ColorBlack: rgb(7, 54, 66), ColorRed: rgb(220, 50, 47), ColorGreen: rgb(133, 153, 0),
	ColorYellow: rgb(181, 137, 0), ColorBlue: rgb(38, 139, 210), ColorMagenta: rgb(211, 54, 130),
	ColorCyan: rgb(42, 161, 152), ColorLightGrey: rgb(238, 232, 213), ColorDarkGrey: rgb(0, 43, 54),
	ColorLightRed: rgb(203, 75, 22), ColorLightGreen: rgb(88, 110, 117), ColorLightYellow: rgb(101, 123, 131),
	ColorLightBlue: rgb(131, 148, 150), ColorLightMagenta: rgb(108, 113, 196), ColorLightCyan: rgb(147, 161, 161),
	ColorWhite: rgb(253, 246, 227), ColorForeground: rgb(7, 54, 66), ColorBackground: rgb(238, 232, 213),
}

var paletteSoftBlack = Palette{
	ColorBlack: rgb(0x3f, 0x3f, 0x3f), ColorRed: rgb(0x70, 0x50, 0x50), ColorGreen: rgb(0x60, 0xb4, 0x8a),
	ColorYellow: rgb(0xdf, 0xaf, 0x8f), ColorBlue: rgb(0x9a, 0xb8, 0xd7), ColorMagenta: rgb(0xdc, 0x8c, 0xc3),
	ColorCyan: rgb(0x8c, 0xd0, 0xd3), ColorLightGrey: rgb(0xff, 0xff, 0xff), ColorDarkGrey: rgb(0x70, 0x90, 0x80),
	ColorLightRed: rgb(0xdc, 0xa3, 0xa3), ColorLightGreen: rgb(0x72, 0xd5, 0xa3), ColorLightYellow: rgb(0xf0, 0xdf, 0xaf),
	ColorLightBlue: rgb(0x94, 0xbf, 0xf3), ColorLightMagenta: rgb(0xec, 0x93, 0xd3), ColorLightCyan: rgb(0x93, 0xe0, 0xe3),
	ColorWhite: rgb(0xdc, 0xdc, 0xcc), ColorForeground: rgb(0xdc, 0xdc, 0xcc), ColorBackground: rgb(0x2c, 0x2c, 0x2c),
}

var paletteBase16Dark = Palette{
	ColorBlack: rgb(0x00, 0x00, 0x00), ColorRed: rgb(0xab, 0x46, 0x42), ColorGreen: rgb(0xa1, 0xb5, 0x6c),
	ColorYellow: rgb(0xf7, 0xca, 0x88), ColorBlue: rgb(0x7c, 0xaf, 0xc2), ColorMagenta: rgb(0xba, 0x8b, 0xaf),
	ColorCyan: rgb(0x86, 0xc1, 0xb9), ColorLightGrey: rgb(0xaa, 0xaa, 0xaa), ColorDarkGrey: rgb(0x55, 0x55, 0x55),
	ColorLightRed: rgb(0xab, 0x46, 0x42), ColorLightGreen: rgb(0xa1, 0xb5, 0x6c), ColorLightYellow: rgb(0xf7, 0xca, 0x88),
	ColorLightBlue: rgb(0x7c, 0xaf, 0xc2), ColorLightMagenta: rgb(0xba, 0x8b, 0xaf), ColorLightCyan: rgb(0x86, 0xc1, 0xb9),
	ColorWhite: rgb(0xff, 0xff, 0xff), ColorForeground: rgb(0xd8, 0xd8, 0xd8), ColorBackground: rgb(0x18, 0x18, 0x18),
}

var paletteBase16Light = Palette{
	ColorBlack: rgb(0x00, 0x00, 0x00), ColorRed: rgb(0xab, 0x46, 0x42), ColorGreen: rgb(0xa1, 0xb5, 0x6c),
	ColorYellow: rgb(0xf7, 0xca, 0x88), ColorBlue: rgb(0x7c, 0xaf, 0xc2), ColorMagenta: rgb(0xba, 0x8b, 0xaf),
	ColorCyan: rgb(0x86, 0xc1, 0xb9), ColorLightGrey: rgb(0xaa, 0xaa, 0xaa), ColorDarkGrey: rgb(0x55, 0x55, 0x55),
	ColorLightRed: rgb(0xab, 0x46, 0x42), ColorLightGreen: rgb(0xa1, 0xb5, 0x6c), ColorLightYellow: rgb(0xf7, 0xca, 0x88),
	ColorLightBlue: rgb(0x7c, 0xaf, 0xc2), ColorLightMagenta: rgb(0xba, 0x8b, 0xaf), ColorLightCyan: rgb(0x86, 0xc1, 0xb9),
	ColorWhite: rgb(0xff, 0xff, 0xff), ColorForeground: rgb(0x18, 0x18, 0x18), ColorBackground: rgb(0xd8, 0xd8, 0xd8),
}

var namedPalettes = map[string]Palette{
	"":                 paletteDefault,
	"default":          paletteDefault,
	"solarized":        paletteSolarized,
	"solarized-black":  paletteSolarizedBlack,
	"solarized-white":  paletteSolarizedWhite,
	"soft-black":       paletteSoftBlack,
	"base16-dark":      paletteBase16Dark,
	"base16-light":     paletteBase16Light,
}

// SetPalette selects one of the built-in named palettes, or "custom" to
// use whatever was last installed with SetCustomPalette. An unknown name
// falls back to the default palette, matching get_palette's behavior.
func (e *Emulator) SetPalette(name string) {
	e.paletteName = name
	if name == "custom" && e.customPalette != nil {
		e.palette = *e.customPalette
	} else if p, ok := namedPalettes[name]; ok {
		e.palette = p
	} else {
		e.palette = paletteDefault
	}
	e.ResolveAttribute(&e.defAttr)
}

// SetCustomPalette installs a user-supplied 18-entry palette, used when
// the active palette name is "custom".
func (e *Emulator) SetCustomPalette(p Palette) {
	e.customPalette = &p
	if e.paletteName == "custom" {
		e.palette = p
		e.ResolveAttribute(&e.defAttr)
	}
}

// ResolveAttribute fills in RGB fields from the semantic codes using
// the active palette, applying the bold-promotion rule (palette index
// 0-7 with bold set is promoted to its light counterpart 8-15). Codes
// that are already negative (explicit RGB set by SGR 38/48;2) are left
// untouched, matching to_rgb.
func (e *Emulator) ResolveAttribute(a *Attribute) {
	if a.FgCode >= 0 {
		code := a.FgCode
		if a.Bold && code < 8 {
			code += 8
		}
		if code >= colorNum {
			code = ColorForeground
		}
		a.FgRGB = e.palette[code]
	}
	if a.BgCode >= 0 {
		code := a.BgCode
		if code >= colorNum {
			code = ColorBackground
		}
		a.BgRGB = e.palette[code]
	}
}

// cube6 is the fixed intensity ramp used by the 6x6x6 color cube of the
// xterm 256-color palette (indices 16-231).
var cube6 = [6]uint8{0x00, 0x5F, 0x87, 0xAF, 0xD7, 0xFF}

// Resolve256 converts an xterm 256-color index (0-255) to RGB: 0-15 are
// the named palette's ANSI colors (bold-unpromoted; direct SGR 38;5;n
// selection does not apply the bold-promotion rule), 16-231 are the
// 6x6x6 color cube, and 232-255 are a 24-step grayscale ramp.
func (e *Emulator) Resolve256(n int) RGB {
	switch {
	case n < 0:
		return RGB{}
	case n < 16:
		return e.palette[n]
	case n < 232:
		n -= 16
		r := cube6[(n/36)%6]
		g := cube6[(n/6)%6]
		b := cube6[n%6]
		return RGB{r, g, b}
	default:
		level := uint8((n-232)*10 + 8)
		return RGB{level, level, level}
	}
}
