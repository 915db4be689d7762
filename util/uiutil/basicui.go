package uiutil

import (
	"image"
	"image/draw"
	"log"
	"time"

	"github.com/gochoam/phosphor-splitpanel/driver"
	"github.com/gochoam/phosphor-splitpanel/util/uiutil/event"
	"github.com/gochoam/phosphor-splitpanel/util/uiutil/mousefilter"
	"github.com/gochoam/phosphor-splitpanel/util/uiutil/widget"
)

type BasicUI struct {
	DrawFrameRate int // frames per second
	RootNode      widget.Node
	Win           driver.Window
	ApplyEv       *widget.ApplyEvent

	events    chan<- interface{}
	lastPaint time.Time
	curCursor event.Cursor

	clickf *mousefilter.ClickFilter
	dragf  *mousefilter.DragFilter
}

func NewBasicUI(events chan<- interface{}, winName string, root widget.Node) (*BasicUI, error) {
	win, err := driver.NewWindow()
	if err != nil {
		return nil, err
	}
	win.SetWindowName(winName)

	ui := &BasicUI{
		DrawFrameRate: 37,
		RootNode:      root,
		Win:           win,
		events:        events,
	}

	ui.ApplyEv = widget.NewApplyEvent(ui)

	// filters produce events not sent by the driver (clicks, drags)
	ui.clickf = mousefilter.NewClickFilter(ui.handleWidgetEv)
	ui.dragf = mousefilter.NewDragFilter(ui.handleWidgetEv)

	ui.RootNode.Embed().SetWrapperForRoot(ui.RootNode)

	// start window event loop with a mousemove event filter
	events2 := make(chan interface{}, cap(events))
	go ui.Win.EventLoop(events2)
	go MouseMoveFilterLoop(events2, events, &ui.DrawFrameRate)

	return ui, nil
}

func (ui *BasicUI) Close() {
	ui.ApplyEv.CancelDrag() // the drag node restores its pre-drag state
	if err := ui.Win.Close(); err != nil {
		log.Println(err)
	}
}

func (ui *BasicUI) HandleEvent(ev interface{}) {
	switch t := ev.(type) {
	case *event.WindowExpose:
		ui.UpdateImageSize()
		ui.RootNode.Embed().MarkNeedsPaint()
	case *event.WindowInput:
		ui.handleWindowInput(t)
	case *UIRunFuncEvent:
		t.Func()
	case struct{}:
		// no op
	default:
		log.Printf("unhandled event: %#v", ev)
	}
}

func (ui *BasicUI) handleWindowInput(wi *event.WindowInput) {
	ui.handleWidgetEv(wi.Event, wi.Point)
	ui.clickf.Filter(wi.Event)
	ui.dragf.Filter(wi.Event)
}
func (ui *BasicUI) handleWidgetEv(ev interface{}, p image.Point) {
	ui.ApplyEv.Apply(ui.RootNode, ev, p)
}

func (ui *BasicUI) UpdateImageSize() {
	err := ui.Win.UpdateImageSize()
	if err != nil {
		log.Println(err)
	} else {
		ib := ui.Win.Image().Bounds()
		en := ui.RootNode.Embed()
		if !en.Bounds.Eq(ib) {
			en.Bounds = ib
			en.MarkNeedsLayoutAndPaint()
		}
	}
}

// This function should be called in the event loop after every event.
func (ui *BasicUI) PaintIfTime() {
	now := time.Now()
	d := now.Sub(ui.lastPaint)
	canPaint := d > (time.Second / time.Duration(ui.DrawFrameRate))
	if canPaint {
		painted := ui.paintIfNeeded()
		if painted {
			ui.lastPaint = now
		}
	} else {
		if len(ui.events) == 0 {
			// Didn't paint to avoid high fps. Need to ensure a new paint
			// call will happen later by sending a no op event just to allow
			// the loop to iterate.
			ui.EnqueueNoOpEvent()
		}
	}
}

func (ui *BasicUI) paintIfNeeded() (painted bool) {
	en := ui.RootNode.Embed()
	en.LayoutMarked()
	u := en.PaintMarked()
	r := u.Intersect(ui.Image().Bounds())
	if !r.Empty() {
		ui.putImage(r)
		painted = true
	}
	return painted
}

func (ui *BasicUI) putImage(r image.Rectangle) {
	if err := ui.Win.PutImage(r); err != nil {
		log.Println(err)
	}
}

func (ui *BasicUI) EnqueueNoOpEvent() {
	ui.events <- struct{}{}
}
func (ui *BasicUI) RequestPaint() {
	ui.EnqueueNoOpEvent()
}

// Implements widget.ImageContext
func (ui *BasicUI) Image() draw.Image {
	return ui.Win.Image()
}

// Implements widget.CursorContext
func (ui *BasicUI) SetCursor(c event.Cursor) {
	if ui.curCursor == c {
		return
	}
	ui.curCursor = c
	ui.Win.SetCursor(c)
}

func (ui *BasicUI) WarpPointer(p *image.Point) {
	ui.Win.WarpPointer(p)
}

func (ui *BasicUI) QueryPointer() (*image.Point, error) {
	return ui.Win.QueryPointer()
}

func (ui *BasicUI) RunOnUIThread(f func()) {
	ui.events <- &UIRunFuncEvent{f}
}

type UIRunFuncEvent struct {
	Func func()
}
