package boxutil

import (
	"math"
)

// Sizer holds the geometry bookkeeping of one box in a layout sequence.
// Calc writes Size; Grow/Shrink/Adjust write SizeHint; the remaining
// fields belong to the caller.
type Sizer struct {
	// Size is the computed length, valid after a Calc call.
	Size float64

	// SizeHint is the preferred length. Calc starts from it before
	// clamping to the bounds.
	SizeHint float64

	// MinSize and MaxSize are hard bounds. MinSize wins if the caller
	// provides MinSize>MaxSize.
	MinSize float64
	MaxSize float64

	// Stretch weights how surplus space is shared relative to other
	// sizers with positive stretch. Zero keeps the sizer at its clamped
	// hint unless bound squeezing forces otherwise.
	Stretch int

	done bool // calc scratch flag
}

func NewSizer() *Sizer {
	return &Sizer{MaxSize: math.Inf(1), Stretch: 1}
}

//----------

// clampedHint bounds the hint; min wins over max on inverted bounds.
func (sz *Sizer) clampedHint() float64 {
	v := sz.SizeHint
	if v > sz.MaxSize {
		v = sz.MaxSize
	}
	if v < sz.MinSize {
		v = sz.MinSize
	}
	return v
}
