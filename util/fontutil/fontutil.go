package fontutil

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/math/fixed"
)

type Font struct {
	Font  *truetype.Font
	faces map[truetype.Options]*FontFace
}

func NewFont(ttf []byte) (*Font, error) {
	f0, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	f := &Font{
		Font:  f0,
		faces: map[truetype.Options]*FontFace{},
	}
	return f, nil
}

// Faces are cached per options; use a fixed options value to reuse.
func (f *Font) FontFace(opt truetype.Options) *FontFace {
	ff, ok := f.faces[opt]
	if !ok {
		ff = newFontFace(f, opt)
		f.faces[opt] = ff
	}
	return ff
}

//----------

type FontFace struct {
	Font    *Font
	Face    font.Face
	Metrics font.Metrics
}

func newFontFace(f *Font, opt truetype.Options) *FontFace {
	face := truetype.NewFace(f.Font, &opt)
	face2 := NewFaceRunes(face)
	ff := &FontFace{Font: f, Face: face2, Metrics: face2.Metrics()}
	return ff
}

func (ff *FontFace) LineHeight() int {
	lh := ff.Metrics.Ascent + ff.Metrics.Descent
	// align with an int to have predictable line positions
	return lh.Ceil()
}

func (ff *FontFace) Baseline() fixed.Int26_6 {
	return ff.Metrics.Ascent
}

//----------

var defFont *Font
var defFontFace *FontFace

func DefaultFont() *Font {
	if defFont == nil {
		f, err := NewFont(gomedium.TTF)
		if err != nil {
			panic(err) // golden ttf data, parse can't fail
		}
		defFont = f
	}
	return defFont
}

func DefaultFontFace() *FontFace {
	if defFontFace == nil {
		opt := truetype.Options{Size: 12, Hinting: font.HintingFull}
		defFontFace = DefaultFont().FontFace(opt)
	}
	return defFontFace
}
