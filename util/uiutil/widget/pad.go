package widget

import (
	"image"
	"image/color"

	"github.com/gochoam/phosphor-splitpanel/util/imageutil"
)

type Pad struct {
	ENode
	Top, Right, Bottom, Left int
	ctx                      ImageContext
}

func NewPad(ctx ImageContext, child Node) *Pad {
	p := &Pad{ctx: ctx}
	p.Append(child)
	return p
}

func (p *Pad) Set(t, r, b, l int) {
	p.Top = t
	p.Right = r
	p.Bottom = b
	p.Left = l
}

func (p *Pad) SetAll(v int) {
	p.Set(v, v, v, v)
}

func (p *Pad) Measure(hint image.Point) image.Point {
	h := hint
	h.X -= p.Right + p.Left
	h.Y -= p.Top + p.Bottom
	h = imageutil.MaxPoint(h, image.Point{0, 0})
	m := p.ENode.Measure(h)
	m.X += p.Right + p.Left
	m.Y += p.Top + p.Bottom
	m = imageutil.MinPoint(m, hint)
	return m
}

func (p *Pad) Layout() {
	u := p.Bounds
	u.Min = u.Min.Add(image.Point{p.Left, p.Top})
	u.Max = u.Max.Sub(image.Point{p.Right, p.Bottom})
	u = u.Intersect(p.Bounds)
	p.Iterate2(func(c *EmbedNode) {
		c.Bounds = u
	})
}

func (p *Pad) Paint() {
	p.paint(p.TreeThemePaletteColor("pad"))
}

func (p *Pad) paint(c1 color.Color) {
	b := p.Bounds
	// top
	u := b
	u.Max.Y = u.Min.Y + p.Top
	u = u.Intersect(b)
	imageutil.FillRectangle(p.ctx.Image(), &u, c1)
	// bottom
	u = b
	u.Min.Y = u.Max.Y - p.Bottom
	u = u.Intersect(b)
	imageutil.FillRectangle(p.ctx.Image(), &u, c1)
	// right
	u = b
	u.Min.X = u.Max.X - p.Right
	u = u.Intersect(b)
	imageutil.FillRectangle(p.ctx.Image(), &u, c1)
	// left
	u = b
	u.Max.X = u.Min.X + p.Left
	u = u.Intersect(b)
	imageutil.FillRectangle(p.ctx.Image(), &u, c1)
}
