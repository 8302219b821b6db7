package terminal

var PaletteDefaultForTest = paletteDefault
