package boxutil

// Distribution loops stop when the remaining space drops below this.
const nearZero = 0.01

// Calc distributes space among the sizers, writing each sizer's Size.
// Within [total min, total max] the assigned sizes sum to space exactly.
// Below the total minimum every sizer is squeezed proportionally under
// its minimum so the total never exceeds space. Above the total maximum
// every sizer gets its maximum and the rest of the space is unused.
// Surplus over the clamped hints goes first to sizers with positive
// stretch, proportionally to their weight, then evenly to whoever can
// still take it. Pure function of its inputs; never fails.
func Calc(sizers []*Sizer, space float64) {
	count := len(sizers)
	if count == 0 {
		return
	}

	// setup from the clamped hints
	totalMin, totalMax, totalSize := 0.0, 0.0, 0.0
	totalStretch, stretchCount := 0, 0
	for _, sz := range sizers {
		sz.done = false
		sz.Size = sz.clampedHint()
		totalMin += sz.MinSize
		totalMax += sz.MaxSize
		totalSize += sz.Size
		if sz.Stretch > 0 {
			totalStretch += sz.Stretch
			stretchCount++
		}
	}

	if space == totalSize {
		return
	}

	// not enough space for the minimum sizes: squeeze proportionally so
	// the result still fits
	if space <= totalMin {
		if totalMin <= 0 {
			for _, sz := range sizers {
				sz.Size = 0
			}
			return
		}
		f := space / totalMin
		if f < 0 {
			f = 0
		}
		for _, sz := range sizers {
			sz.Size = sz.MinSize * f
		}
		return
	}

	// more space than the maximum sizes: underfill
	if space >= totalMax {
		for _, sz := range sizers {
			sz.Size = sz.MaxSize
		}
		return
	}

	notDoneCount := count
	if space < totalSize {
		shrink(sizers, totalSize-space, totalStretch, stretchCount, notDoneCount)
	} else {
		grow(sizers, space-totalSize, totalStretch, stretchCount, notDoneCount)
	}
}

//----------

func grow(sizers []*Sizer, amountLeft float64, totalStretch, stretchCount, notDoneCount int) {
	// distribute among the stretch sizers, proportionally to weight
	for stretchCount > 0 && amountLeft > nearZero {
		amountLeft0 := amountLeft
		totalStretch0 := totalStretch
		for _, sz := range sizers {
			if sz.done || sz.Stretch == 0 {
				continue
			}
			amount := float64(sz.Stretch) * amountLeft0 / float64(totalStretch0)
			if sz.Size+amount >= sz.MaxSize {
				amountLeft -= sz.MaxSize - sz.Size
				totalStretch -= sz.Stretch
				stretchCount--
				notDoneCount--
				sz.done = true
				sz.Size = sz.MaxSize
			} else {
				amountLeft -= amount
				sz.Size += amount
			}
		}
	}
	// distribute the remainder evenly
	for notDoneCount > 0 && amountLeft > nearZero {
		amount := amountLeft / float64(notDoneCount)
		for _, sz := range sizers {
			if sz.done {
				continue
			}
			if sz.Size+amount >= sz.MaxSize {
				amountLeft -= sz.MaxSize - sz.Size
				notDoneCount--
				sz.done = true
				sz.Size = sz.MaxSize
			} else {
				amountLeft -= amount
				sz.Size += amount
			}
		}
	}
}

func shrink(sizers []*Sizer, amountLeft float64, totalStretch, stretchCount, notDoneCount int) {
	for stretchCount > 0 && amountLeft > nearZero {
		amountLeft0 := amountLeft
		totalStretch0 := totalStretch
		for _, sz := range sizers {
			if sz.done || sz.Stretch == 0 {
				continue
			}
			amount := float64(sz.Stretch) * amountLeft0 / float64(totalStretch0)
			if sz.Size-amount <= sz.MinSize {
				amountLeft -= sz.Size - sz.MinSize
				totalStretch -= sz.Stretch
				stretchCount--
				notDoneCount--
				sz.done = true
				sz.Size = sz.MinSize
			} else {
				amountLeft -= amount
				sz.Size -= amount
			}
		}
	}
	for notDoneCount > 0 && amountLeft > nearZero {
		amount := amountLeft / float64(notDoneCount)
		for _, sz := range sizers {
			if sz.done {
				continue
			}
			if sz.Size-amount <= sz.MinSize {
				amountLeft -= sz.Size - sz.MinSize
				notDoneCount--
				sz.done = true
				sz.Size = sz.MinSize
			} else {
				amountLeft -= amount
				sz.Size -= amount
			}
		}
	}
}
