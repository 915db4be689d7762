package widget

import (
	"image"
	"math"

	"github.com/gochoam/phosphor-splitpanel/util/boxutil"
	"github.com/gochoam/phosphor-splitpanel/util/imageutil"
	"github.com/gochoam/phosphor-splitpanel/util/mathutil"
	"github.com/gochoam/phosphor-splitpanel/util/uiutil/event"
)

// Implemented by panes that constrain their own size. Panes without it get
// a zero minimum and an unbounded maximum.
type SizeLimiter interface {
	SizeLimits() (min, max image.Point)
}

// Upper bound for size limits. Nodes with no tighter maximum report this.
const MaxSizeLimit = 1 << 24

//----------

// Arranges panes in a row or column with a draggable handle between each
// pair of visible panes. Pane sizes honor the panes size limits, leftover
// space goes to the panes in proportion to their stretch factors, and a
// handle drag redistributes space between the panes on each side of it.
type SplitPanel struct {
	ENode
	YAxis     bool
	Spacing   int // handle strip thickness in pixels
	HandlePad int // extra handle input margin on each side of the strip

	ctx   ImageContext
	items []*splitItem

	hasNormedSizes bool // SetSizes hints are relative until the next layout
}

// A pane and its trailing drag handle. The sizer persists across layouts so
// that pane sizes survive relayouts and window resizes.
type splitItem struct {
	pane    Node
	handle  *SplitHandle
	sizer   *boxutil.Sizer
	stretch int
}

func NewSplitPanel(ctx ImageContext) *SplitPanel {
	sp := &SplitPanel{ctx: ctx, Spacing: 4, HandlePad: 3}
	// ensure append uses this insertbefore implementation
	sp.Wrapper = sp
	return sp
}

//----------

// Panes keep list order, handles stay at the back of the childs list so they
// get input priority over the panes their pads cross.
func (sp *SplitPanel) InsertBefore(n Node, mark *EmbedNode) {
	idx := len(sp.items)
	if mark != nil {
		_, i := sp.itemOfEmbed(mark)
		if i < 0 {
			panic("mark is not a pane of this panel")
		}
		idx = i
	}
	sp.insertItem(n, idx)
}

func (sp *SplitPanel) insertItem(pane Node, idx int) {
	var next *EmbedNode
	if idx < len(sp.items) {
		next = sp.items[idx].pane.Embed()
	} else {
		next = sp.firstHandleEmbed() // end of the panes segment
	}
	sp.ENode.InsertBefore(pane, next)

	it := &splitItem{pane: pane, sizer: boxutil.NewSizer()}
	// new panes start at the average of the current pane sizes
	it.sizer.SizeHint = sp.averageSize()
	it.handle = newSplitHandle(sp, pane)
	sp.ENode.InsertBefore(it.handle, nil)

	sp.items = append(sp.items, nil)
	copy(sp.items[idx+1:], sp.items[idx:])
	sp.items[idx] = it
}

func (sp *SplitPanel) Remove(child Node) {
	it, idx := sp.itemOf(child)
	if it == nil {
		// ex: a handle being detached
		sp.ENode.Remove(child)
		return
	}
	sp.ENode.Remove(it.pane)
	sp.ENode.Remove(it.handle)
	sp.items = append(sp.items[:idx], sp.items[idx+1:]...)
}

//----------

func (sp *SplitPanel) PanesLen() int {
	return len(sp.items)
}

func (sp *SplitPanel) Pane(idx int) Node {
	return sp.items[idx].pane
}

func (sp *SplitPanel) itemOf(pane Node) (*splitItem, int) {
	for i, it := range sp.items {
		if it.pane == pane {
			return it, i
		}
	}
	return nil, -1
}

func (sp *SplitPanel) itemOfEmbed(en *EmbedNode) (*splitItem, int) {
	for i, it := range sp.items {
		if it.pane.Embed() == en {
			return it, i
		}
	}
	return nil, -1
}

func (sp *SplitPanel) itemOfHandle(sh *SplitHandle) (*splitItem, int) {
	for i, it := range sp.items {
		if it.handle == sh {
			return it, i
		}
	}
	return nil, -1
}

func (sp *SplitPanel) firstHandleEmbed() *EmbedNode {
	var first *EmbedNode
	sp.Iterate(func(e *EmbedNode) bool {
		if _, ok := e.Wrapper.(*SplitHandle); ok {
			first = e
			return false
		}
		return true
	})
	return first
}

//----------

func (sp *SplitPanel) Stretch(pane Node) int {
	it, _ := sp.itemOf(pane)
	if it == nil {
		return 0
	}
	return it.stretch
}

// Stretch sets how leftover space is shared once every pane sits at its size
// hint. Zero keeps the pane at its hint unless space runs out.
func (sp *SplitPanel) SetStretch(pane Node, stretch int) {
	it, _ := sp.itemOf(pane)
	if it == nil {
		return
	}
	stretch = mathutil.Max(stretch, 0)
	if it.stretch != stretch {
		it.stretch = stretch
		sp.MarkNeedsLayout()
	}
}

//----------

func (sp *SplitPanel) SetYAxis(v bool) {
	if sp.YAxis != v {
		sp.YAxis = v
		sp.MarkNeedsLayoutAndPaint()
	}
}

func (sp *SplitPanel) SetSpacing(v int) {
	v = mathutil.Max(v, 0)
	if sp.Spacing != v {
		sp.Spacing = v
		sp.MarkNeedsLayoutAndPaint()
	}
}

//----------

func (sp *SplitPanel) PaneHidden(pane Node) bool {
	return pane.Embed().HasAnyMarks(MarkForceZeroBounds)
}

// A hidden pane collapses to zero size and its space is redistributed. The
// pane keeps its sizer, showing it again restores its share.
func (sp *SplitPanel) SetPaneHidden(pane Node, hidden bool) {
	if sp.PaneHidden(pane) == hidden {
		return
	}
	e := pane.Embed()
	if hidden {
		e.AddMarks(MarkForceZeroBounds)
	} else {
		e.RemoveMarks(MarkForceZeroBounds)
	}
	sp.MarkNeedsLayoutAndPaint()
}

//----------

// Current pane sizes normalized to sum to one. Hidden panes report zero.
func (sp *SplitPanel) Sizes() []float64 {
	v := make([]float64, len(sp.items))
	for i, it := range sp.items {
		v[i] = it.sizer.Size
	}
	return boxutil.Normalize(v)
}

// Relative pane sizes to establish on the next layout. Values are clamped to
// zero, missing entries get zero, extra entries are dropped.
func (sp *SplitPanel) SetSizes(sizes []float64) {
	temp := make([]float64, len(sp.items))
	for i := range temp {
		if i < len(sizes) && sizes[i] > 0 {
			temp[i] = sizes[i]
		}
	}
	normed := boxutil.Normalize(temp)
	for i, it := range sp.items {
		it.sizer.SizeHint = normed[i]
		it.sizer.Size = normed[i]
	}
	sp.hasNormedSizes = true
	sp.MarkNeedsLayoutAndPaint()
}

func (sp *SplitPanel) averageSize() float64 {
	if len(sp.items) == 0 {
		return 0
	}
	t := 0.0
	for _, it := range sp.items {
		t += it.sizer.Size
	}
	return t / float64(len(sp.items))
}

//----------

// Drags handle index to pos, an offset in pixels from the panel origin along
// the main axis. Space moves between the panes on each side of the handle,
// honoring their size limits.
func (sp *SplitPanel) MoveHandle(index int, pos int) {
	if index < 0 || index >= len(sp.items) {
		return
	}
	it := sp.items[index]
	if it.handle.HasAnyMarks(MarkForceZeroBounds) {
		return
	}
	xya := XYAxis{sp.YAxis}
	pb := *xya.Rectangle(&it.pane.Embed().Bounds)
	ab := *xya.Rectangle(&sp.Bounds)
	delta := (ab.Min.X + pos) - pb.Max.X
	if delta == 0 {
		return
	}
	sizers := sp.sizers()
	boxutil.StoreSizes(sizers)
	boxutil.Adjust(sizers, index, float64(delta))
	// sizes follow the adjusted hints, otherwise the next layout pins the
	// pre-drag sizes back over them
	for _, sz := range sizers {
		sz.Size = sz.SizeHint
	}
	sp.MarkNeedsLayoutAndPaint()
}

func (sp *SplitPanel) sizers() []*boxutil.Sizer {
	u := make([]*boxutil.Sizer, len(sp.items))
	for i, it := range sp.items {
		u[i] = it.sizer
	}
	return u
}

// Snapshot/restore of the size hints, used to undo an interrupted drag.
func (sp *SplitPanel) sizeHints() []float64 {
	u := make([]float64, len(sp.items))
	for i, it := range sp.items {
		u[i] = it.sizer.SizeHint
	}
	return u
}

func (sp *SplitPanel) restoreSizeHints(hints []float64) {
	if len(hints) != len(sp.items) {
		return // panes changed during the drag
	}
	for i, it := range sp.items {
		it.sizer.SizeHint = hints[i]
		// sizes follow, otherwise the next layout pins the dragged sizes
		it.sizer.Size = hints[i]
	}
	sp.MarkNeedsLayoutAndPaint()
}

//----------

func (sp *SplitPanel) paneSizeLimits(pane Node) (image.Point, image.Point) {
	if sl, ok := pane.(SizeLimiter); ok {
		return sl.SizeLimits()
	}
	return image.Point{}, image.Point{MaxSizeLimit, MaxSizeLimit}
}

// Combined limits: the main axis accumulates pane limits plus the handle
// strips, the cross axis takes the tightest pane limits. Allows nesting a
// panel as a pane of another panel.
func (sp *SplitPanel) SizeLimits() (image.Point, image.Point) {
	xya := XYAxis{sp.YAxis}
	nVisible := 0
	minMain, maxMain := 0, 0
	minCross, maxCross := 0, MaxSizeLimit
	for _, it := range sp.items {
		if sp.PaneHidden(it.pane) {
			continue
		}
		nVisible++
		pmin, pmax := sp.paneSizeLimits(it.pane)
		amin := *xya.Point(&pmin)
		amax := *xya.Point(&pmax)
		minMain += amin.X
		maxMain += amax.X
		minCross = mathutil.Max(minCross, amin.Y)
		maxCross = mathutil.Min(maxCross, amax.Y)
	}
	fixed := sp.Spacing * mathutil.Max(nVisible-1, 0)
	minMain += fixed
	maxMain = mathutil.Min(maxMain+fixed, MaxSizeLimit)
	maxCross = mathutil.Max(maxCross, minCross)
	min := image.Point{minMain, minCross}
	max := image.Point{maxMain, maxCross}
	return *xya.Point(&min), *xya.Point(&max)
}

func (sp *SplitPanel) Measure(hint image.Point) image.Point {
	min, _ := sp.SizeLimits()
	return imageutil.MinPoint(min, hint)
}

//----------

func (sp *SplitPanel) Layout() {
	xya := XYAxis{sp.YAxis}
	ab := *xya.Rectangle(&sp.Bounds)

	// refresh handle visibility, the last visible pane has no handle
	nVisible := 0
	var lastVis *splitItem
	cursor := event.WEResizeCursor
	if sp.YAxis {
		cursor = event.NSResizeCursor
	}
	for _, it := range sp.items {
		it.handle.Cursor = cursor
		if sp.PaneHidden(it.pane) {
			it.handle.setHidden(true)
			continue
		}
		nVisible++
		it.handle.setHidden(false)
		lastVis = it
	}
	if lastVis != nil {
		lastVis.handle.setHidden(true)
	}

	fixed := sp.Spacing * mathutil.Max(nVisible-1, 0)
	space := mathutil.Max(ab.Dx()-fixed, 0)

	// sizer setup: current sizes become the hints so panes keep their
	// size across relayouts, limits are recomputed from the panes
	for _, it := range sp.items {
		sz := it.sizer
		if sz.Size > 0 {
			sz.SizeHint = sz.Size
		}
		if sp.PaneHidden(it.pane) {
			sz.MinSize = 0
			sz.MaxSize = 0
			continue
		}
		pmin, pmax := sp.paneSizeLimits(it.pane)
		amin := *xya.Point(&pmin)
		amax := *xya.Point(&pmax)
		sz.MinSize = float64(amin.X)
		sz.MaxSize = float64(amax.X)
		if amax.X >= MaxSizeLimit {
			sz.MaxSize = math.Inf(1)
		}
		sz.Stretch = it.stretch
	}

	// relative sizes from SetSizes become pixel hints now
	if sp.hasNormedSizes {
		for _, it := range sp.items {
			it.sizer.SizeHint *= float64(space)
		}
		sp.hasNormedSizes = false
	}

	boxutil.Calc(sp.sizers(), float64(space))

	// place panes at rounded boundaries computed on float offsets, so the
	// rounding error never accumulates
	off := float64(ab.Min.X)
	for _, it := range sp.items {
		if sp.PaneHidden(it.pane) {
			continue
		}
		start := int(math.Round(off))
		end := int(math.Round(off + it.sizer.Size))
		r := image.Rect(start, ab.Min.Y, end, ab.Max.Y)
		it.pane.Embed().Bounds = (*xya.Rectangle(&r)).Intersect(sp.Bounds)
		off += it.sizer.Size + float64(sp.Spacing)
	}
}

//----------

func (sp *SplitPanel) PaintBase() {
	imageutil.FillRectangle(sp.ctx.Image(), &sp.Bounds, sp.TreeThemePaletteColor("bg"))
}

func (sp *SplitPanel) Paint() {
	// divider strips between visible panes
	c := sp.TreeThemePaletteColor("splitpanel_handle")
	for _, it := range sp.items {
		if it.handle.HasAnyMarks(MarkForceZeroBounds) {
			continue
		}
		r := it.handle.stripBounds()
		imageutil.FillRectangle(sp.ctx.Image(), &r, c)
	}
}

//----------

func (sp *SplitPanel) OnChildMarked(child Node, newMarks Marks) {
	// a pane changing its layout needs may change its size limits
	if _, i := sp.itemOf(child); i >= 0 {
		if newMarks.HasAny(MarkNeedsLayout | MarkForceZeroBounds) {
			sp.MarkNeedsLayout()
		}
	}
}
