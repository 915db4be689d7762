// Package demo assembles the example program: a window whose root holds a
// toolbar over a split panel, with one file viewer pane per argument file.
package demo

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/gochoam/phosphor-splitpanel/util/fontutil"
	"github.com/gochoam/phosphor-splitpanel/util/fswatcher"
	"github.com/gochoam/phosphor-splitpanel/util/uiutil"
	"github.com/gochoam/phosphor-splitpanel/util/uiutil/event"
	"github.com/gochoam/phosphor-splitpanel/util/uiutil/widget"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

type Options struct {
	Vertical bool // panes in a column instead of a row
	Spacing  int  // handle strip thickness in pixels
	FontSize float64
	Files    []string
}

type Demo struct {
	*uiutil.SimpleUI
	Root    *RootNode
	Panel   *widget.SplitPanel
	Watcher fswatcher.Watcher

	viewers map[string]*FileViewer // keyed by watched path
}

// Opens the window and blocks in the event loop until the window is closed
// or "q" is pressed.
func NewDemo(opt *Options) (*Demo, error) {
	if len(opt.Files) == 0 {
		return nil, fmt.Errorf("missing file arguments")
	}

	d := &Demo{viewers: map[string]*FileViewer{}}

	w, err := fswatcher.NewFsnWatcher()
	if err != nil {
		return nil, err
	}
	d.Watcher = w

	// the root is built with the demo as the image context, the ui it
	// delegates to is assigned below before any paint runs
	d.Root = newRootNode(d, opt)

	sui, err := uiutil.NewSimpleUI("SplitPanel demo", d.Root)
	if err != nil {
		return nil, err
	}
	d.SimpleUI = sui
	d.SimpleUI.OnError = d.Error
	d.SimpleUI.OnClose = func() {
		if err := d.Watcher.Close(); err != nil {
			d.Error(err)
		}
	}

	// set before the first layout so measures use the final font metrics
	d.Root.Embed().SetThemeFontFace(demoFontFace(opt.FontSize))

	for _, f := range opt.Files {
		if err := d.addViewer(f); err != nil {
			d.Error(err)
		}
	}
	if d.Panel.PanesLen() == 0 {
		_ = d.Watcher.Close()
		return nil, fmt.Errorf("no file could be opened")
	}
	d.Root.updateStatus()

	go d.watcherEventLoop()
	d.SimpleUI.EventLoop() // blocks

	return d, nil
}

func (d *Demo) Error(err error) {
	log.Println(err)
}

//----------

func (d *Demo) addViewer(path string) error {
	fv, err := NewFileViewer(d, path)
	if err != nil {
		return err
	}
	if err := d.Watcher.Add(path); err != nil {
		d.Error(err)
	} else {
		d.viewers[path] = fv
	}
	d.Panel.Append(fv)
	return nil
}

func (d *Demo) watcherEventLoop() {
	for {
		ev, ok := <-d.Watcher.Events()
		if !ok {
			return
		}
		switch t := ev.(type) {
		case error:
			d.Error(t)
		case *fswatcher.Event:
			d.handleWatcherEvent(t)
		}
	}
}

func (d *Demo) handleWatcherEvent(ev *fswatcher.Event) {
	fv, ok := d.viewers[ev.Name]
	if !ok {
		return
	}
	d.RunOnUIThread(func() {
		if err := fv.Reload(); err != nil {
			d.Error(err)
		}
	})
}

//----------

func (d *Demo) onKeyDown(ev *event.KeyDown) event.Handled {
	mods := ev.Mods.ClearLocks()
	switch {
	case ev.KeySym == event.KSymQ && mods.Is(0):
		d.Close()
		return true
	case ev.KeySym >= event.KSym1 && ev.KeySym <= event.KSym9 && mods.Is(0):
		idx := int(ev.KeySym - event.KSym1)
		d.togglePane(idx)
		return true
	case ev.KeySym == event.KSymO && mods.Is(0):
		d.Panel.SetYAxis(!d.Panel.YAxis)
		return true
	case ev.Rune == '=' && mods.Is(0):
		d.equalize()
		return true
	}
	return false
}

func (d *Demo) togglePane(idx int) {
	if idx >= d.Panel.PanesLen() {
		return
	}
	pane := d.Panel.Pane(idx)
	d.Panel.SetPaneHidden(pane, !d.Panel.PaneHidden(pane))
	d.Root.updateStatus()
}

func (d *Demo) equalize() {
	sizes := make([]float64, d.Panel.PanesLen())
	for i := range sizes {
		sizes[i] = 1
	}
	d.Panel.SetSizes(sizes)
	d.Root.updateStatus()
}

//----------

func demoFontFace(size float64) *fontutil.FontFace {
	if size <= 0 {
		return fontutil.DefaultFontFace()
	}
	opt := truetype.Options{Size: size, Hinting: font.HintingFull}
	return fontutil.DefaultFont().FontFace(opt)
}

//----------
//----------
//----------

// Window root: toolbar and status line over the split panel. Receives the
// key events that no pane handled.
type RootNode struct {
	*widget.BoxLayout
	d      *Demo
	status *widget.Label
}

func newRootNode(d *Demo, opt *Options) *RootNode {
	r := &RootNode{d: d}
	r.BoxLayout = widget.NewBoxLayout()
	r.YAxis = true

	tb := widget.NewBoxLayout()
	eq := widget.NewButton(d)
	eq.Label.Text.SetStr("equalize")
	eq.OnClick = func(*event.MouseClick) { d.equalize() }
	r.status = widget.NewLabel(d)
	r.status.Pad.SetAll(2)
	tb.Append(eq, r.status)
	tb.SetChildFlex(r.status, true, false)

	sep := widget.NewSeparator(d)
	sep.Size.Y = 1

	d.Panel = widget.NewSplitPanel(d)
	d.Panel.YAxis = opt.Vertical
	if opt.Spacing > 0 {
		d.Panel.SetSpacing(opt.Spacing)
	}

	r.Append(tb, sep, d.Panel)
	r.SetChildFill(tb, true, false)
	r.SetChildFill(sep, true, false)
	r.SetChildFlex(d.Panel, true, true)
	return r
}

func (r *RootNode) OnInputEvent(ev interface{}, p image.Point) event.Handled {
	switch t := ev.(type) {
	case *event.KeyDown:
		return r.d.onKeyDown(t)
	}
	return false
}

func (r *RootNode) updateStatus() {
	s := "q:quit 1-9:toggle o:flip =:equalize |"
	for _, v := range r.d.Panel.Sizes() {
		s += fmt.Sprintf(" %2.0f%%", v*100)
	}
	r.status.Text.SetStr(s)
}

//----------
//----------
//----------

// A pane of the demo panel: filename header over the file content. The
// watcher triggers Reload when the file changes on disk.
type FileViewer struct {
	*widget.BoxLayout
	d    *Demo
	path string

	name *widget.Label
	text *widget.Text
}

func NewFileViewer(d *Demo, path string) (*FileViewer, error) {
	fv := &FileViewer{d: d, path: path}
	fv.BoxLayout = widget.NewBoxLayout()
	fv.YAxis = true

	fv.name = widget.NewLabel(d)
	fv.name.Text.SetStr(path)
	fv.name.Pad.SetAll(2)

	sep := widget.NewSeparator(d)
	sep.Size.Y = 1

	fv.text = widget.NewText(d)

	fv.Append(fv.name, sep, fv.text)
	fv.SetChildFill(fv.name, true, false)
	fv.SetChildFill(sep, true, false)
	fv.SetChildFlex(fv.text, true, true)

	if err := fv.Reload(); err != nil {
		return nil, err
	}
	return fv, nil
}

func (fv *FileViewer) Reload() error {
	b, err := os.ReadFile(fv.path)
	if err != nil {
		return err
	}
	fv.text.SetStr(string(b))
	return nil
}

// Keeps the header visible when the pane is squeezed by a handle drag.
func (fv *FileViewer) SizeLimits() (min, max image.Point) {
	lh := fv.TreeThemeFontFace().LineHeight()
	m := image.Point{4 * lh, 2 * lh}
	return m, image.Point{widget.MaxSizeLimit, widget.MaxSizeLimit}
}
