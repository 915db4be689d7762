package widget

import (
	"image/draw"

	"github.com/gochoam/phosphor-splitpanel/util/uiutil/event"
)

type ImageContext interface {
	Image() draw.Image
}

type CursorContext interface {
	SetCursor(event.Cursor)
}
