package terminal

import "testing"

func TestResolveAttributeBoldPromotion(t *testing.T) {
	e := &Emulator{}
	e.SetPalette("default")
	a := Attribute{FgCode: ColorRed, Bold: true}
	e.ResolveAttribute(&a)
	if a.FgRGB != paletteDefault[ColorLightRed] {
		t.Fatalf("bold red = %+v, want light red %+v", a.FgRGB, paletteDefault[ColorLightRed])
	}
}

func TestResolveAttributeExplicitRGBUntouched(t *testing.T) {
	e := &Emulator{}
	e.SetPalette("default")
	a := Attribute{FgCode: -1, FgRGB: RGB{1, 2, 3}}
	e.ResolveAttribute(&a)
	if a.FgRGB != (RGB{1, 2, 3}) {
		t.Fatalf("explicit RGB was overwritten: %+v", a.FgRGB)
	}
}

func TestResolve256Cube(t *testing.T) {
	e := &Emulator{}
	e.SetPalette("default")
	// index 16 is the cube's (0,0,0) corner: pure black.
	if got := e.Resolve256(16); got != (RGB{0, 0, 0}) {
		t.Fatalf("Resolve256(16) = %+v, want black", got)
	}
	// index 231 is the cube's (5,5,5) corner: pure white-ish (0xFF).
	if got := e.Resolve256(231); got != (RGB{0xFF, 0xFF, 0xFF}) {
		t.Fatalf("Resolve256(231) = %+v, want {255,255,255}", got)
	}
}

func TestResolve256Grayscale(t *testing.T) {
	e := &Emulator{}
	e.SetPalette("default")
	got := e.Resolve256(232)
	want := RGB{8, 8, 8}
	if got != want {
		t.Fatalf("Resolve256(232) = %+v, want %+v", got, want)
	}
	got = e.Resolve256(255)
	want = RGB{238, 238, 238}
	if got != want {
		t.Fatalf("Resolve256(255) = %+v, want %+v", got, want)
	}
}

func TestSetPaletteUnknownFallsBackToDefault(t *testing.T) {
	e := &Emulator{}
	e.SetPalette("no-such-palette")
	if e.palette != paletteDefault {
		t.Fatal("unknown palette name did not fall back to default")
	}
}

func TestSetCustomPalette(t *testing.T) {
	e := &Emulator{}
	custom := paletteDefault
	custom[ColorBlack] = RGB{9, 9, 9}
	e.SetCustomPalette(custom)
	e.SetPalette("custom")
	if e.palette[ColorBlack] != (RGB{9, 9, 9}) {
		t.Fatal("custom palette not applied")
	}
}
