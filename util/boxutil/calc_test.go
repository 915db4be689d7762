package boxutil

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func feq(a, b float64) bool {
	const eps = 1e-8
	return math.Abs(a-b) < eps
}

func newTestSizer(hint, min, max float64, stretch int) *Sizer {
	sz := NewSizer()
	sz.SizeHint = hint
	sz.MinSize = min
	sz.MaxSize = max
	sz.Stretch = stretch
	return sz
}

func sizes(sizers []*Sizer) []float64 {
	w := make([]float64, len(sizers))
	for i, sz := range sizers {
		w[i] = sz.Size
	}
	return w
}

// calc and check bounds plus the exact-fit sum contract
func calcAndCheck(t *testing.T, sizers []*Sizer, space float64) {
	t.Helper()
	Calc(sizers, space)
	totalMin, totalMax := 0.0, 0.0
	for _, sz := range sizers {
		totalMin += sz.MinSize
		totalMax += sz.MaxSize
	}
	if space >= totalMin && space <= totalMax {
		if !feq(SumSizes(sizers), space) {
			t.Fatalf("sum %v, space %v\n%s", SumSizes(sizers), space, spew.Sdump(sizers))
		}
		for i, sz := range sizers {
			if sz.Size < sz.MinSize || sz.Size > sz.MaxSize {
				t.Fatalf("sizer %v out of bounds\n%s", i, spew.Sdump(sz))
			}
		}
	}
}

//----------

func TestCalcEqualStretch(t *testing.T) {
	u := []*Sizer{NewSizer(), NewSizer()}
	calcAndCheck(t, u, 100)
	if !feq(u[0].Size, 50) || !feq(u[1].Size, 50) {
		t.Fatal(spew.Sdump(u))
	}
}

func TestCalcStretchWeights(t *testing.T) {
	inf := math.Inf(1)
	u := []*Sizer{
		newTestSizer(0, 0, inf, 1),
		newTestSizer(0, 0, inf, 3),
	}
	calcAndCheck(t, u, 100)
	if !feq(u[0].Size, 25) || !feq(u[1].Size, 75) {
		t.Fatal(spew.Sdump(u))
	}
}

func TestCalcZeroStretchKeepsHint(t *testing.T) {
	inf := math.Inf(1)
	u := []*Sizer{
		newTestSizer(30, 0, inf, 0),
		newTestSizer(0, 0, inf, 1),
	}
	calcAndCheck(t, u, 100)
	if !feq(u[0].Size, 30) || !feq(u[1].Size, 70) {
		t.Fatal(spew.Sdump(u))
	}
}

func TestCalcEvenWithoutStretch(t *testing.T) {
	// no stretch sizers: the surplus is split evenly
	inf := math.Inf(1)
	u := []*Sizer{
		newTestSizer(0, 0, inf, 0),
		newTestSizer(0, 50, inf, 0),
	}
	calcAndCheck(t, u, 62)
	if !feq(u[0].Size, 6) || !feq(u[1].Size, 56) {
		t.Fatal(spew.Sdump(u))
	}
}

func TestCalcBelowMin(t *testing.T) {
	inf := math.Inf(1)
	u := []*Sizer{
		newTestSizer(0, 30, inf, 1),
		newTestSizer(0, 50, inf, 1),
		newTestSizer(0, 20, inf, 1),
	}
	Calc(u, 50)
	// squeezed proportionally under the minimums, total still fits
	if !feq(u[0].Size, 15) || !feq(u[1].Size, 25) || !feq(u[2].Size, 10) {
		t.Fatal(spew.Sdump(u))
	}
	if !feq(SumSizes(u), 50) {
		t.Fatal(SumSizes(u))
	}

	Calc(u, 0)
	if !feq(SumSizes(u), 0) {
		t.Fatal(spew.Sdump(u))
	}
}

func TestCalcAboveMax(t *testing.T) {
	u := []*Sizer{
		newTestSizer(0, 0, 10, 1),
		newTestSizer(0, 0, 20, 1),
	}
	Calc(u, 100)
	// underfill, everyone at max
	if !feq(u[0].Size, 10) || !feq(u[1].Size, 20) {
		t.Fatal(spew.Sdump(u))
	}
}

func TestCalcMaxStopsStretch(t *testing.T) {
	inf := math.Inf(1)
	u := []*Sizer{
		newTestSizer(0, 0, 10, 1),
		newTestSizer(0, 0, inf, 1),
	}
	calcAndCheck(t, u, 100)
	if !feq(u[0].Size, 10) || !feq(u[1].Size, 90) {
		t.Fatal(spew.Sdump(u))
	}
}

func TestCalcIdempotent(t *testing.T) {
	inf := math.Inf(1)
	u := []*Sizer{
		newTestSizer(20, 10, 80, 2),
		newTestSizer(0, 30, inf, 0),
		newTestSizer(5, 0, 40, 1),
	}
	Calc(u, 120)
	w1 := sizes(u)
	Calc(u, 120)
	w2 := sizes(u)
	for i := range w1 {
		if w1[i] != w2[i] {
			t.Fatalf("%v != %v", w1, w2)
		}
	}
}

func TestCalcInvertedBounds(t *testing.T) {
	// min>max from a bad measurement must terminate with a finite size
	u := []*Sizer{newTestSizer(60, 50, 40, 1)}
	Calc(u, 100)
	if math.IsNaN(u[0].Size) || math.IsInf(u[0].Size, 0) {
		t.Fatal(spew.Sdump(u))
	}

	u2 := []*Sizer{
		newTestSizer(60, 50, 40, 1),
		newTestSizer(0, 0, 100, 1),
	}
	Calc(u2, 80)
	for _, sz := range u2 {
		if math.IsNaN(sz.Size) || math.IsInf(sz.Size, 0) {
			t.Fatal(spew.Sdump(u2))
		}
	}
}

func TestCalcEmpty(t *testing.T) {
	Calc(nil, 100)
	Calc([]*Sizer{}, 0)
}
