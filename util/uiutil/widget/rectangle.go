package widget

import (
	"image"
	"image/color"

	"github.com/gochoam/phosphor-splitpanel/util/imageutil"
)

type Rectangle struct {
	ENode
	Size image.Point
	ctx  ImageContext
}

func NewRectangle(ctx ImageContext) *Rectangle {
	r := &Rectangle{ctx: ctx}
	return r
}

func (r *Rectangle) Measure(hint image.Point) image.Point {
	return imageutil.MinPoint(r.Size, hint)
}

func (r *Rectangle) Paint() {
	r.paint(r.TreeThemePaletteColor("bg"))
}

func (r *Rectangle) paint(c color.Color) {
	imageutil.FillRectangle(r.ctx.Image(), &r.Bounds, c)
}
