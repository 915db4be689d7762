package widget

import (
	"image"
	"image/draw"
	"strings"

	"github.com/gochoam/phosphor-splitpanel/util/imageutil"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draws a str block, one line per newline, without line wrapping.
type Text struct {
	ENode
	ctx ImageContext
	str string
}

func NewText(ctx ImageContext) *Text {
	return &Text{ctx: ctx}
}

//----------

func (t *Text) Str() string {
	return t.str
}

func (t *Text) SetStr(str string) {
	if t.str == str {
		return
	}
	t.str = str
	t.MarkNeedsLayoutAndPaint()
}

func (t *Text) lines() []string {
	return strings.Split(t.str, "\n")
}

//----------

func (t *Text) Measure(hint image.Point) image.Point {
	ff := t.TreeThemeFontFace()
	var m image.Point
	for _, ln := range t.lines() {
		w := font.MeasureString(ff.Face, ln).Ceil()
		if w > m.X {
			m.X = w
		}
		m.Y += ff.LineHeight()
	}
	return imageutil.MinPoint(m, hint)
}

//----------

func (t *Text) Paint() {
	b := t.Bounds
	imageutil.FillRectangle(t.ctx.Image(), &b, t.TreeThemePaletteColor("text_bg"))

	ff := t.TreeThemeFontFace()
	d := font.Drawer{
		Dst:  t.clippedImage(&b),
		Src:  image.NewUniform(t.TreeThemePaletteColor("text_fg")),
		Face: ff.Face,
	}
	y := fixed.I(b.Min.Y) + ff.Baseline()
	for _, ln := range t.lines() {
		if (y - ff.Baseline()).Ceil() >= b.Max.Y {
			break
		}
		d.Dot = fixed.Point26_6{X: fixed.I(b.Min.X), Y: y}
		d.DrawString(ln)
		y += fixed.I(ff.LineHeight())
	}
}

// Avoids drawing glyph fragments outside the bounds (shares the pixels).
func (t *Text) clippedImage(b *image.Rectangle) draw.Image {
	img := t.ctx.Image()
	type subImager interface {
		SubImage(image.Rectangle) image.Image
	}
	if si, ok := img.(subImager); ok {
		if img2, ok := si.SubImage(*b).(draw.Image); ok {
			return img2
		}
	}
	return img
}
