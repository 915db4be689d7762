package widget

import (
	"image"
	"math"
	"testing"

	"github.com/gochoam/phosphor-splitpanel/util/uiutil/event"
)

//----------

// pane with explicit size limits
type sizedRect struct {
	*Rectangle
	min, max image.Point
}

func newSizedRect(min, max image.Point) *sizedRect {
	return &sizedRect{Rectangle: NewRectangle(nil), min: min, max: max}
}

func (s *sizedRect) SizeLimits() (image.Point, image.Point) {
	return s.min, s.max
}

func unbounded() image.Point {
	return image.Point{MaxSizeLimit, MaxSizeLimit}
}

//----------

func feqSlice(t *testing.T, u, v []float64) {
	t.Helper()
	if len(u) != len(v) {
		t.Log(u, v)
		t.Fatal()
	}
	for i := range u {
		if math.Abs(u[i]-v[i]) > 1e-8 {
			t.Log(u, v)
			t.Fatal()
		}
	}
}

func layoutPanel(sp *SplitPanel, r image.Rectangle) {
	sp.Bounds = r
	sp.LayoutTree()
}

//----------

func TestSplitPanelLayout(t *testing.T) {
	sp := NewSplitPanel(nil)
	sp.YAxis = true
	sp.Spacing = 8

	p1 := NewRectangle(nil)
	p2 := newSizedRect(image.Point{0, 50}, unbounded())
	sp.Append(p1, p2)

	layoutPanel(sp, image.Rect(0, 0, 100, 70))

	// space 62: p2 holds its minimum, the rest is split evenly
	if !(p1.Bounds == image.Rect(0, 0, 100, 6) &&
		p2.Bounds == image.Rect(0, 14, 100, 70)) {
		t.Log(p1.Bounds, p2.Bounds)
		t.Fatal()
	}

	// first handle covers the strip plus the input pad
	h1 := sp.items[0].handle
	if h1.stripBounds() != image.Rect(0, 6, 100, 14) {
		t.Log(h1.stripBounds())
		t.Fatal()
	}
	if h1.Bounds != image.Rect(0, 3, 100, 17) {
		t.Log(h1.Bounds)
		t.Fatal()
	}

	// the last visible pane has no handle
	h2 := sp.items[1].handle
	if !h2.HasAnyMarks(MarkForceZeroBounds) || h2.Bounds != (image.Rectangle{}) {
		t.Log(h2.Bounds)
		t.Fatal()
	}

	feqSlice(t, sp.Sizes(), []float64{6.0 / 62.0, 56.0 / 62.0})
}

func TestSplitPanelSetSizes(t *testing.T) {
	sp := NewSplitPanel(nil)
	sp.YAxis = true
	sp.Spacing = 8

	p1 := NewRectangle(nil)
	p2 := NewRectangle(nil)
	sp.Append(p1, p2)

	sp.SetSizes([]float64{1, 4})
	layoutPanel(sp, image.Rect(0, 0, 100, 70))

	if !(p1.Bounds == image.Rect(0, 0, 100, 12) &&
		p2.Bounds == image.Rect(0, 20, 100, 70)) {
		t.Log(p1.Bounds, p2.Bounds)
		t.Fatal()
	}
	feqSlice(t, sp.Sizes(), []float64{0.2, 0.8})

	// negative and missing entries become zero
	sp.SetSizes([]float64{-1, 4})
	feqSlice(t, sp.Sizes(), []float64{0, 1})
}

func TestSplitPanelMoveHandle(t *testing.T) {
	sp := NewSplitPanel(nil)

	p1 := NewRectangle(nil)
	p2 := NewRectangle(nil)
	sp.Append(p1, p2)

	sp.SetSizes([]float64{1, 1})
	layoutPanel(sp, image.Rect(0, 0, 104, 50))
	if !(p1.Bounds == image.Rect(0, 0, 50, 50) &&
		p2.Bounds == image.Rect(54, 0, 104, 50)) {
		t.Log(p1.Bounds, p2.Bounds)
		t.Fatal()
	}

	sp.MoveHandle(0, 70)
	sp.LayoutMarked()
	if !(p1.Bounds == image.Rect(0, 0, 70, 50) &&
		p2.Bounds == image.Rect(74, 0, 104, 50)) {
		t.Log(p1.Bounds, p2.Bounds)
		t.Fatal()
	}
	feqSlice(t, sp.Sizes(), []float64{0.7, 0.3})

	// clamped at the second pane minimum (zero)
	sp.MoveHandle(0, 120)
	sp.LayoutMarked()
	if !(p1.Bounds == image.Rect(0, 0, 100, 50) &&
		p2.Bounds == (image.Rectangle{})) {
		t.Log(p1.Bounds, p2.Bounds)
		t.Fatal()
	}
	feqSlice(t, sp.Sizes(), []float64{1, 0})

	// the last visible handle can't be dragged
	sp.MoveHandle(1, 10)
	sp.LayoutMarked()
	feqSlice(t, sp.Sizes(), []float64{1, 0})
}

func TestSplitPanelSqueeze(t *testing.T) {
	sp := NewSplitPanel(nil)
	sp.YAxis = true
	sp.Spacing = 8

	p1 := newSizedRect(image.Point{0, 20}, unbounded())
	p2 := newSizedRect(image.Point{0, 20}, unbounded())
	sp.Append(p1, p2)

	// space 22 is below the minimums total 40, shrink in proportion
	layoutPanel(sp, image.Rect(0, 0, 100, 30))
	if !(p1.Bounds == image.Rect(0, 0, 100, 11) &&
		p2.Bounds == image.Rect(0, 19, 100, 30)) {
		t.Log(p1.Bounds, p2.Bounds)
		t.Fatal()
	}
}

func TestSplitPanelStretch(t *testing.T) {
	sp := NewSplitPanel(nil)

	p1 := NewRectangle(nil)
	p2 := NewRectangle(nil)
	sp.Append(p1, p2)
	sp.SetStretch(p1, 1)
	sp.SetStretch(p2, 3)

	layoutPanel(sp, image.Rect(0, 0, 104, 50))
	feqSlice(t, sp.Sizes(), []float64{0.25, 0.75})
	if !(p1.Bounds == image.Rect(0, 0, 25, 50) &&
		p2.Bounds == image.Rect(29, 0, 104, 50)) {
		t.Log(p1.Bounds, p2.Bounds)
		t.Fatal()
	}
}

func TestSplitPanelHiddenPane(t *testing.T) {
	sp := NewSplitPanel(nil)
	sp.YAxis = true

	p1 := NewRectangle(nil)
	p2 := NewRectangle(nil)
	p3 := NewRectangle(nil)
	sp.Append(p1, p2, p3)
	sp.SetSizes([]float64{1, 1, 2})

	layoutPanel(sp, image.Rect(0, 0, 100, 100))
	feqSlice(t, sp.Sizes(), []float64{0.25, 0.25, 0.5})

	sp.SetPaneHidden(p2, true)
	sp.LayoutMarked()

	// the hidden pane collapses and its space is redistributed
	if p2.Bounds != (image.Rectangle{}) {
		t.Log(p2.Bounds)
		t.Fatal()
	}
	u := sp.Sizes()
	if !(u[1] == 0 && u[0] > 0 && u[2] > 0) {
		t.Log(u)
		t.Fatal()
	}

	// handle visibility: p1 keeps its handle, p2 is hidden, p3 is last
	if sp.items[0].handle.HasAnyMarks(MarkForceZeroBounds) ||
		!sp.items[1].handle.HasAnyMarks(MarkForceZeroBounds) ||
		!sp.items[2].handle.HasAnyMarks(MarkForceZeroBounds) {
		t.Fatal()
	}

	// showing the pane again restores a share of the space
	sp.SetPaneHidden(p2, false)
	sp.LayoutMarked()
	u = sp.Sizes()
	if !(u[0] > 0 && u[1] > 0 && u[2] > 0) {
		t.Log(u)
		t.Fatal()
	}
	if p2.Bounds == (image.Rectangle{}) {
		t.Fatal()
	}
}

func TestSplitPanelInsertRemove(t *testing.T) {
	sp := NewSplitPanel(nil)

	p1 := NewRectangle(nil)
	p2 := NewRectangle(nil)
	sp.Append(p1, p2)
	sp.SetSpacing(0)
	sp.SetSizes([]float64{1, 1})
	layoutPanel(sp, image.Rect(0, 0, 100, 10))

	// a new pane starts at the average of the current sizes
	p3 := NewRectangle(nil)
	sp.Append(p3)
	if sp.items[2].sizer.SizeHint != 50 {
		t.Log(sp.items[2].sizer.SizeHint)
		t.Fatal()
	}
	sp.LayoutMarked()
	feqSlice(t, sp.Sizes(), []float64{1.0 / 3, 1.0 / 3, 1.0 / 3})

	// insert before a pane, panes keep list order before the handles
	p4 := NewRectangle(nil)
	sp.InsertBefore(p4, p2.Embed())
	if !(sp.PanesLen() == 4 && sp.Pane(1) == Node(p4)) {
		t.Fatal()
	}
	w := sp.ChildsWrappers()
	if len(w) != 8 {
		t.Log(len(w))
		t.Fatal()
	}
	if !(w[0] == Node(p1) && w[1] == Node(p4) && w[2] == Node(p2) && w[3] == Node(p3)) {
		t.Fatal()
	}
	for _, n := range w[4:] {
		if _, ok := n.(*SplitHandle); !ok {
			t.Fatal()
		}
	}

	// removing a pane removes its handle too
	sp.Remove(p4)
	if !(sp.PanesLen() == 3 && sp.ChildsLen() == 6) {
		t.Log(sp.PanesLen(), sp.ChildsLen())
		t.Fatal()
	}
}

func TestSplitPanelSizeLimits(t *testing.T) {
	sp := NewSplitPanel(nil)
	sp.YAxis = true
	sp.Spacing = 8

	p1 := newSizedRect(image.Point{30, 20}, unbounded())
	p2 := newSizedRect(image.Point{40, 25}, image.Point{50, 60})
	sp.Append(p1, p2)

	min, max := sp.SizeLimits()
	if min != (image.Point{40, 53}) {
		t.Log(min)
		t.Fatal()
	}
	if max != (image.Point{50, MaxSizeLimit}) {
		t.Log(max)
		t.Fatal()
	}

	if m := sp.Measure(image.Point{200, 200}); m != (image.Point{40, 53}) {
		t.Log(m)
		t.Fatal()
	}
	if m := sp.Measure(image.Point{30, 30}); m != (image.Point{30, 30}) {
		t.Log(m)
		t.Fatal()
	}

	// a nested panel reports its combined limits to the outer panel
	outer := NewSplitPanel(nil)
	outer.Append(sp, NewRectangle(nil))
	layoutPanel(outer, image.Rect(0, 0, 300, 53))
	if sp.Bounds.Dx() < 40 {
		t.Log(sp.Bounds)
		t.Fatal()
	}
}

func TestSplitPanelDragRouting(t *testing.T) {
	sp := NewSplitPanel(nil)

	p1 := NewRectangle(nil)
	p2 := NewRectangle(nil)
	sp.Append(p1, p2)
	sp.SetSizes([]float64{1, 1})
	layoutPanel(sp, image.Rect(0, 0, 104, 50))

	cctx := &testCursorCtx{}
	ae := NewApplyEvent(cctx)

	// press inside the handle pad and drag right
	left := event.ButtonLeft
	p := image.Pt(52, 25)
	ae.Apply(sp, &event.MouseDragStart{p, image.Pt(58, 25), left, 0, 0}, p)
	sp.LayoutMarked()
	feqSlice(t, sp.Sizes(), []float64{0.58, 0.42})
	if cctx.c != event.WEResizeCursor {
		t.Log(cctx.c)
		t.Fatal()
	}

	ae.Apply(sp, &event.MouseDragMove{image.Pt(80, 25), 0, 0}, image.Pt(80, 25))
	sp.LayoutMarked()
	feqSlice(t, sp.Sizes(), []float64{0.8, 0.2})

	// escape interrupts the drag and restores the sizes
	ae.Apply(sp, &event.KeyDown{image.Pt(80, 25), event.KSymEscape, 0, 0, 0}, image.Pt(80, 25))
	sp.LayoutMarked()
	feqSlice(t, sp.Sizes(), []float64{0.5, 0.5})
	if !(p1.Bounds == image.Rect(0, 0, 50, 50) &&
		p2.Bounds == image.Rect(54, 0, 104, 50)) {
		t.Log(p1.Bounds, p2.Bounds)
		t.Fatal()
	}

	// a drag end after the cancel is ignored
	ae.Apply(sp, &event.MouseDragEnd{image.Pt(90, 25), left, 0, 0}, image.Pt(90, 25))
	sp.LayoutMarked()
	feqSlice(t, sp.Sizes(), []float64{0.5, 0.5})
}

func TestSplitPanelSpacingChange(t *testing.T) {
	sp := NewSplitPanel(nil)

	p1 := NewRectangle(nil)
	p2 := NewRectangle(nil)
	sp.Append(p1, p2)
	sp.SetSizes([]float64{1, 1})
	layoutPanel(sp, image.Rect(0, 0, 104, 50))

	sp.SetSpacing(0)
	sp.LayoutMarked()
	if !(p1.Bounds == image.Rect(0, 0, 52, 50) &&
		p2.Bounds == image.Rect(52, 0, 104, 50)) {
		t.Log(p1.Bounds, p2.Bounds)
		t.Fatal()
	}
}

func TestSplitPanelAxisChange(t *testing.T) {
	sp := NewSplitPanel(nil)
	sp.SetSpacing(0)

	p1 := NewRectangle(nil)
	p2 := NewRectangle(nil)
	sp.Append(p1, p2)
	sp.SetSizes([]float64{1, 1})
	layoutPanel(sp, image.Rect(0, 0, 100, 50))
	if !(p1.Bounds == image.Rect(0, 0, 50, 50) &&
		p2.Bounds == image.Rect(50, 0, 100, 50)) {
		t.Log(p1.Bounds, p2.Bounds)
		t.Fatal()
	}

	// flip to a column, the proportions carry over to the new main axis
	sp.SetYAxis(true)
	sp.LayoutMarked()
	if !(p1.Bounds == image.Rect(0, 0, 100, 25) &&
		p2.Bounds == image.Rect(0, 25, 100, 50)) {
		t.Log(p1.Bounds, p2.Bounds)
		t.Fatal()
	}
	if sp.items[0].handle.Cursor != event.NSResizeCursor {
		t.Fatal(sp.items[0].handle.Cursor)
	}
}

//----------

type testCursorCtx struct {
	c event.Cursor
}

func (t *testCursorCtx) SetCursor(c event.Cursor) {
	t.c = c
}
