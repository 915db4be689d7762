package mousefilter

import (
	"image"
	"testing"
)

func TestDetectMove(t *testing.T) {
	press := image.Point{10, 10}
	// within the press pad: not a move yet
	for _, p := range []image.Point{
		press,
		{12, 10},
		{10, 12},
		{7, 7},
	} {
		if DetectMove(press, p) {
			t.Fatal(p)
		}
	}
	// beyond the pad on any axis: a move
	for _, p := range []image.Point{
		{13, 10},
		{10, 13},
		{6, 10},
		{14, 14},
	} {
		if !DetectMove(press, p) {
			t.Fatal(p)
		}
	}
}

func TestDetectMovePad(t *testing.T) {
	press := image.Point{10, 10}
	p := image.Point{9, 10}

	// grab offset within the pad is kept
	u := DetectMovePad(p, press, image.Point{12, 10})
	if u != (image.Point{3, 0}) {
		t.Fatal(u)
	}

	// reference too far from the detection point gets dropped
	u = DetectMovePad(p, press, image.Point{30, 10})
	if u != (image.Point{}) {
		t.Fatal(u)
	}
}
