package widget

import (
	"image/color"

	"github.com/gochoam/phosphor-splitpanel/util/fontutil"
)

// The zero value is a valid theme that defers to the parent nodes (and
// ultimately to the default palette).
type Theme struct {
	Palette  Palette
	FontFace *fontutil.FontFace
}

func (t *Theme) SetPaletteColor(name string, c color.Color) {
	if t.Palette == nil {
		t.Palette = make(Palette)
	}
	t.Palette[name] = c
}

func (t *Theme) SetFontFace(ff *fontutil.FontFace) {
	t.FontFace = ff
}

//----------

type Palette map[string]color.Color

//----------

var DefaultPalette = Palette{
	"fg":                cint(0x1e1e1e),
	"bg":                cint(0xf2f2f2),
	"text_fg":           cint(0x1e1e1e),
	"text_bg":           cint(0xffffff),
	"pad":               cint(0xffffff),
	"border":            cint(0x8f8f8f),
	"button_fg":         cint(0x1e1e1e),
	"button_bg":         cint(0xdbdbdb),
	"splitpanel_handle": cint(0xc3c3c3),
}

//----------

func cint(c int) color.RGBA {
	v := c & 0xffffff
	return color.RGBA{
		uint8(v >> 16),
		uint8(v >> 8),
		uint8(v),
		255,
	}
}
