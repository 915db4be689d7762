package boxutil

// Adjust redistributes space around the handle at index by delta units,
// writing only size hints. Positive delta grows the sizers at/left of
// index at the expense of the ones at the right; negative delta mirrors.
// The caller runs Calc afterwards to settle the sizes.
func Adjust(sizers []*Sizer, index int, delta float64) {
	if index < 0 || index >= len(sizers) {
		return
	}
	if delta > 0 {
		Grow(sizers, index, delta)
	} else if delta < 0 {
		Shrink(sizers, index, -delta)
	}
}

//----------

// Grow expands the left side of the handle at index by up to delta,
// shrinking the right side by the same amount. The move is clamped to
// what both sides can structurally take. Walks outward from the handle
// so the adjacent sizers absorb the change first.
func Grow(sizers []*Sizer, index int, delta float64) {
	growLimit := 0.0
	for i := 0; i <= index; i++ {
		sz := sizers[i]
		growLimit += sz.MaxSize - sz.Size
	}
	shrinkLimit := 0.0
	for i := index + 1; i < len(sizers); i++ {
		sz := sizers[i]
		shrinkLimit += sz.Size - sz.MinSize
	}
	if delta > growLimit {
		delta = growLimit
	}
	if delta > shrinkLimit {
		delta = shrinkLimit
	}

	grow := delta
	for i := index; i >= 0 && grow > 0; i-- {
		sz := sizers[i]
		limit := sz.MaxSize - sz.Size
		if limit >= grow {
			sz.SizeHint = sz.Size + grow
			grow = 0
		} else {
			sz.SizeHint = sz.Size + limit
			grow -= limit
		}
	}
	shrink := delta
	for i := index + 1; i < len(sizers) && shrink > 0; i++ {
		sz := sizers[i]
		limit := sz.Size - sz.MinSize
		if limit >= shrink {
			sz.SizeHint = sz.Size - shrink
			shrink = 0
		} else {
			sz.SizeHint = sz.Size - limit
			shrink -= limit
		}
	}
}

// Shrink expands the right side of the handle at index by up to delta,
// shrinking the left side by the same amount. Mirror of Grow.
func Shrink(sizers []*Sizer, index int, delta float64) {
	growLimit := 0.0
	for i := index + 1; i < len(sizers); i++ {
		sz := sizers[i]
		growLimit += sz.MaxSize - sz.Size
	}
	shrinkLimit := 0.0
	for i := 0; i <= index; i++ {
		sz := sizers[i]
		shrinkLimit += sz.Size - sz.MinSize
	}
	if delta > growLimit {
		delta = growLimit
	}
	if delta > shrinkLimit {
		delta = shrinkLimit
	}

	grow := delta
	for i := index + 1; i < len(sizers) && grow > 0; i++ {
		sz := sizers[i]
		limit := sz.MaxSize - sz.Size
		if limit >= grow {
			sz.SizeHint = sz.Size + grow
			grow = 0
		} else {
			sz.SizeHint = sz.Size + limit
			grow -= limit
		}
	}
	shrink := delta
	for i := index; i >= 0 && shrink > 0; i-- {
		sz := sizers[i]
		limit := sz.Size - sz.MinSize
		if limit >= shrink {
			sz.SizeHint = sz.Size - shrink
			shrink = 0
		} else {
			sz.SizeHint = sz.Size - limit
			shrink -= limit
		}
	}
}

//----------

// StoreSizes pins each sizer's hint to its current size so the last
// settled layout, not a stale hint, is the adjustment baseline. Zero
// sizes are skipped to keep a usable hint on newly shown sizers.
func StoreSizes(sizers []*Sizer) {
	for _, sz := range sizers {
		if sz.Size > 0 {
			sz.SizeHint = sz.Size
		}
	}
}

// SumSizes returns the total of the current sizes.
func SumSizes(sizers []*Sizer) float64 {
	t := 0.0
	for _, sz := range sizers {
		t += sz.Size
	}
	return t
}
