package widget

import (
	"image"

	"github.com/gochoam/phosphor-splitpanel/util/imageutil"
	"github.com/gochoam/phosphor-splitpanel/util/uiutil/event"
)

type Button struct {
	ENode
	Label   *Label
	Sticky  bool // stay down after click on mouseup
	OnClick func(ev *event.MouseClick)

	down   bool
	active bool
}

func NewButton(ctx ImageContext) *Button {
	b := &Button{}
	b.Label = NewLabel(ctx)
	b.Append(b.Label)
	return b
}

func (b *Button) OnInputEvent(ev interface{}, p image.Point) event.Handled {
	switch t := ev.(type) {
	case *event.MouseEnter:
		if !b.active {
			b.hoverColor()
		}
	case *event.MouseLeave:
		if !b.active {
			b.baseColor()
		}
	case *event.MouseDown:
		if !b.active {
			b.down = true
			b.pressColor()
		}
	case *event.MouseUp:
		if b.down {
			b.down = false
			if b.Sticky {
				b.active = true
			} else {
				b.hoverColor()
			}
		} else if b.active {
			b.active = false
			b.hoverColor()
		}
	case *event.MouseClick:
		if b.OnClick != nil {
			b.OnClick(t)
			return true
		}
	}
	return false
}

//----------

// The label resolves "text_*" from this node's palette, keeping the
// hover/press states local to this button.

func (b *Button) baseColor() {
	b.SetThemePaletteColor("text_fg", b.TreeThemePaletteColor("button_fg"))
	b.SetThemePaletteColor("text_bg", b.TreeThemePaletteColor("button_bg"))
}

func (b *Button) hoverColor() {
	bg := imageutil.TintOrShade(b.TreeThemePaletteColor("button_bg"), 0.10)
	b.SetThemePaletteColor("text_fg", b.TreeThemePaletteColor("button_fg"))
	b.SetThemePaletteColor("text_bg", bg)
}

func (b *Button) pressColor() {
	b.SetThemePaletteColor("text_fg", b.TreeThemePaletteColor("button_bg"))
	b.SetThemePaletteColor("text_bg", b.TreeThemePaletteColor("button_fg"))
}

//----------

func (b *Button) OnThemeChange() {
	if b.theme.Palette == nil {
		b.baseColor()
	}
}
