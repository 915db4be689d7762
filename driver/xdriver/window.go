package xdriver

import (
	"image"
	"image/draw"
	"log"
	"os"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/shm"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/gochoam/phosphor-splitpanel/driver/xdriver/wimage"
	"github.com/gochoam/phosphor-splitpanel/driver/xdriver/wmprotocols"
	"github.com/gochoam/phosphor-splitpanel/driver/xdriver/xcursors"
	"github.com/gochoam/phosphor-splitpanel/driver/xdriver/xinput"
	"github.com/gochoam/phosphor-splitpanel/driver/xdriver/xutil"
	"github.com/gochoam/phosphor-splitpanel/util/uiutil/event"
	"github.com/pkg/errors"
)

type Window struct {
	Conn   *xgb.Conn
	Window xproto.Window
	Screen *xproto.ScreenInfo
	GCtx   xproto.Gcontext

	closeOnce sync.Once

	Cursors *xcursors.Cursors
	XInput  *xinput.XInput
	Wmp     *wmprotocols.WMP

	WImg wimage.WImage
}

func NewWindow() (*Window, error) {
	display := os.Getenv("DISPLAY")
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, errors.Wrap(err, "x conn")
	}

	win := &Window{Conn: conn}

	if err := win.initialize(); err != nil {
		return nil, errors.Wrap(err, "win init")
	}

	return win, nil
}
func (win *Window) initialize() error {
	si := xproto.Setup(win.Conn)
	win.Screen = si.DefaultScreen(win.Conn)

	window, err := xproto.NewWindowId(win.Conn)
	if err != nil {
		return err
	}
	win.Window = window

	// event mask
	var evMask uint32 = 0 |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskExposure |
		xproto.EventMaskPointerMotion |
		xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		xproto.EventMaskKeyPress |
		xproto.EventMaskKeyRelease |
		0
	// mask/values order is defined by the protocol
	mask := uint32(xproto.CwEventMask)
	values := []uint32{evMask}

	_ = xproto.CreateWindow(
		win.Conn,
		win.Screen.RootDepth,
		win.Window,
		win.Screen.Root,
		0, 0, 500, 500,
		0, // border width
		xproto.WindowClassInputOutput,
		win.Screen.RootVisual,
		mask, values)

	_ = xproto.MapWindow(win.Conn, window)

	if err := xutil.LoadAtoms(win.Conn, &Atoms, false); err != nil {
		return err
	}

	// graphical context
	gCtx, err := xproto.NewGcontextId(win.Conn)
	if err != nil {
		return err
	}
	win.GCtx = gCtx

	gmask := uint32(0)
	gvalues := []uint32{}
	c2 := xproto.CreateGCChecked(win.Conn, win.GCtx, xproto.Drawable(win.Window), gmask, gvalues)
	if err := c2.Check(); err != nil {
		return err
	}

	xi, err := xinput.NewXInput(win.Conn)
	if err != nil {
		return err
	}
	win.XInput = xi

	c, err := xcursors.NewCursors(win.Conn, win.Window)
	if err != nil {
		return err
	}
	win.Cursors = c

	// init the shm extension before the event loop goroutine runs (the xgb
	// extension map is not safe for concurrent access)
	wimage.Init(win.Conn)

	opt := &wimage.Options{win.Conn, win.Window, win.Screen, win.GCtx}
	img, err := wimage.NewWImage(opt)
	if err != nil {
		return err
	}
	win.WImg = img

	wmp, err := wmprotocols.NewWMP(win.Conn, win.Window)
	if err != nil {
		return err
	}
	win.Wmp = wmp

	return nil
}

func (win *Window) Close() error {
	win.closeOnce.Do(func() {
		err := win.WImg.Close()
		if err != nil {
			log.Printf("%v", err)
		}
		win.Conn.Close()
	})
	return nil
}

func (win *Window) EventLoop(events chan<- interface{}) {
	for {
		if !win.handleEvent(events) {
			break
		}
	}
}

func (win *Window) handleEvent(events chan<- interface{}) bool {
	ev, xerr := win.Conn.WaitForEvent()
	if ev == nil && xerr == nil { // connection closed
		events <- &event.WindowClose{}
		return false
	}
	if xerr != nil {
		events <- error(xerr)
	}
	if ev != nil {
		switch t := ev.(type) {
		case xproto.ConfigureNotifyEvent: // window structure (position,size,...)
			events <- &event.WindowExpose{}
		case xproto.ExposeEvent: // region needs paint
			events <- &event.WindowExpose{}
		case xproto.MapNotifyEvent: // window mapped (created)

		case shm.CompletionEvent:
			win.WImg.PutImageCompleted()

		case xproto.MappingNotifyEvent: // keyboard mapping
			win.XInput.ReadMapTable()

		case xproto.KeyPressEvent:
			events <- win.XInput.KeyPress(&t)
		case xproto.KeyReleaseEvent:
			events <- win.XInput.KeyRelease(&t)
		case xproto.ButtonPressEvent:
			events <- win.XInput.ButtonPress(&t)
		case xproto.ButtonReleaseEvent:
			events <- win.XInput.ButtonRelease(&t)
		case xproto.MotionNotifyEvent:
			events <- win.XInput.MotionNotify(&t)

		case xproto.ClientMessageEvent:
			if win.Wmp.OnClientMessageDeleteWindow(&t) {
				events <- &event.WindowClose{}
			}

		default:
			log.Printf("unhandled event: %#v", ev)
		}
	}
	return true
}

func (win *Window) SetWindowName(str string) {
	b := []byte(str)
	_ = xproto.ChangeProperty(
		win.Conn,
		xproto.PropModeReplace,
		win.Window,       // requestor window
		Atoms.NetWMName,  // property
		Atoms.Utf8String, // target
		8,                // format
		uint32(len(b)),
		b)
}

func (win *Window) geometry() (*xproto.GetGeometryReply, error) {
	drawable := xproto.Drawable(win.Window)
	cookie := xproto.GetGeometry(win.Conn, drawable)
	return cookie.Reply()
}

func (win *Window) Image() draw.Image {
	return win.WImg.Image()
}
func (win *Window) PutImage(rect image.Rectangle) error {
	return win.WImg.PutImage(rect)
}
func (win *Window) UpdateImageSize() error {
	geom, err := win.geometry()
	if err != nil {
		return err
	}
	w, h := int(geom.Width), int(geom.Height)
	r := image.Rect(0, 0, w, h)
	ib := win.Image().Bounds()
	if !r.Eq(ib) {
		if err := win.WImg.Resize(r); err != nil {
			return err
		}
	}
	return nil
}

func (win *Window) WarpPointer(p *image.Point) {
	// warp pointer only if the window has input focus
	cookie := xproto.GetInputFocus(win.Conn)
	reply, err := cookie.Reply()
	if err != nil {
		log.Print(err)
		return
	}
	if reply.Focus != win.Window {
		return
	}
	_ = xproto.WarpPointer(
		win.Conn,
		xproto.WindowNone,
		win.Window,
		0, 0, 0, 0,
		int16(p.X), int16(p.Y))
}
func (win *Window) QueryPointer() (*image.Point, error) {
	cookie := xproto.QueryPointer(win.Conn, win.Window)
	r, err := cookie.Reply()
	if err != nil {
		return nil, err
	}
	p := &image.Point{int(r.WinX), int(r.WinY)}
	return p, nil
}

func (win *Window) SetCursor(c event.Cursor) {
	sc := func(c2 xcursors.Cursor) {
		err := win.Cursors.SetCursor(c2)
		if err != nil {
			log.Print(err)
		}
	}
	switch c {
	case event.NoneCursor:
		sc(xcursors.XCNone)
	case event.DefaultCursor:
		sc(xcursors.XCNone)
	case event.NSResizeCursor:
		sc(xcursor.SBVDoubleArrow)
	case event.WEResizeCursor:
		sc(xcursor.SBHDoubleArrow)
	case event.CloseCursor:
		sc(xcursor.XCursor)
	case event.MoveCursor:
		sc(xcursor.Fleur)
	case event.PointerCursor:
		sc(xcursor.Hand2)
	case event.BeamCursor:
		sc(xcursor.XTerm)
	case event.WaitCursor:
		sc(xcursor.Watch)
	}
}

//----------

var Atoms struct {
	NetWMName  xproto.Atom `loadAtoms:"_NET_WM_NAME"`
	Utf8String xproto.Atom `loadAtoms:"UTF8_STRING"`
}
