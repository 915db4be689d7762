package widget

import (
	"image"

	"github.com/gochoam/phosphor-splitpanel/util/uiutil/event"
	"github.com/gochoam/phosphor-splitpanel/util/uiutil/mousefilter"
)

// A transparent widget over the divider strip that follows a pane. The strip
// itself is thin, so the input bounds extend over the neighbour panes by the
// panel handle pad to be easy to grab. The panel paints the strip.
type SplitHandle struct {
	ENode
	DragPad image.Point

	sp   *SplitPanel
	pane Node // the pane this handle trails

	savedHints []float64 // size hints at drag start, restored on cancel
}

func newSplitHandle(sp *SplitPanel, pane Node) *SplitHandle {
	sh := &SplitHandle{sp: sp, pane: pane}
	sh.AddMarks(MarkNotPaintable)
	return sh
}

func (sh *SplitHandle) Measure(hint image.Point) image.Point {
	panic("calling measure on split panel handle")
}

//----------

func (sh *SplitHandle) setHidden(v bool) {
	if v {
		sh.AddMarks(MarkForceZeroBounds)
	} else {
		sh.RemoveMarks(MarkForceZeroBounds)
	}
}

//----------

// The visual strip between the trailing pane and the next visible one.
func (sh *SplitHandle) stripBounds() image.Rectangle {
	xya := XYAxis{sh.sp.YAxis}
	pb := *xya.Rectangle(&sh.pane.Embed().Bounds)
	ab := *xya.Rectangle(&sh.sp.Bounds)
	r := image.Rect(pb.Max.X, ab.Min.Y, pb.Max.X+sh.sp.Spacing, ab.Max.Y)
	return (*xya.Rectangle(&r)).Intersect(sh.sp.Bounds)
}

func (sh *SplitHandle) Layout() {
	if sh.HasAnyMarks(MarkForceZeroBounds) {
		sh.Bounds = image.Rectangle{}
		return
	}
	b := sh.stripBounds()
	// extend the input area over the neighbour panes
	xya := XYAxis{sh.sp.YAxis}
	ab := *xya.Rectangle(&b)
	ab.Min.X -= sh.sp.HandlePad
	ab.Max.X += sh.sp.HandlePad
	b = *xya.Rectangle(&ab)
	sh.Bounds = b.Intersect(sh.sp.Bounds)
}

//----------

func (sh *SplitHandle) OnInputEvent(ev0 interface{}, p image.Point) event.Handled {
	switch ev := ev0.(type) {
	case *event.MouseDragStart:
		u := sh.stripBounds().Min
		sh.DragPad = mousefilter.DetectMovePad(ev.Point2, ev.Point, u)
		sh.savedHints = sh.sp.sizeHints()
		sh.dragMove(ev.Point2)
		return true
	case *event.MouseDragMove:
		sh.dragMove(ev.Point)
		return true
	case *event.MouseDragEnd:
		sh.dragMove(ev.Point)
		sh.savedHints = nil
		return true
	case *event.MouseDragCancel:
		sh.sp.restoreSizeHints(sh.savedHints)
		sh.savedHints = nil
		return true
	}
	return false
}

func (sh *SplitHandle) dragMove(p image.Point) {
	_, idx := sh.sp.itemOfHandle(sh)
	if idx < 0 {
		return
	}
	p2 := p.Add(sh.DragPad)
	xya := XYAxis{sh.sp.YAxis}
	ap := *xya.Point(&p2)
	ab := *xya.Rectangle(&sh.sp.Bounds)
	sh.sp.MoveHandle(idx, ap.X-ab.Min.X)
}
