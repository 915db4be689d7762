package driver

import (
	"image"
	"image/draw"

	"github.com/gochoam/phosphor-splitpanel/driver/xdriver"
	"github.com/gochoam/phosphor-splitpanel/util/uiutil/event"
)

type Window interface {
	EventLoop(events chan<- interface{}) // should emit events from uiutil/event

	Close() error
	SetWindowName(string)

	Image() draw.Image
	PutImage(image.Rectangle) error
	UpdateImageSize() error

	SetCursor(event.Cursor)
	QueryPointer() (*image.Point, error)
	WarpPointer(*image.Point)
}

func NewWindow() (Window, error) {
	return xdriver.NewWindow()
}
