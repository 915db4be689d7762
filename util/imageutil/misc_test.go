package imageutil

import (
	"image"
	"image/color"
	"testing"
)

func TestBGRASetAt(t *testing.T) {
	r := image.Rect(0, 0, 4, 4)
	img := NewBGRA(&r)
	c := color.RGBA{10, 20, 30, 255}
	img.Set(1, 1, c)
	// stored flipped, read back unflipped
	if img.RGBA.RGBAAt(1, 1) != (color.RGBA{30, 20, 10, 255}) {
		t.Fatal(img.RGBA.RGBAAt(1, 1))
	}
	if img.At(1, 1) != c {
		t.Fatal(img.At(1, 1))
	}
}

var drawRect = image.Rect(0, 0, 400, 400)

func BenchmarkFillRect1(b *testing.B) {
	img := image.NewRGBA(drawRect)
	bounds := img.Bounds()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FillRectangle(img, &bounds, color.White)
	}
}
func BenchmarkFillRect2(b *testing.B) {
	img := NewBGRA(&drawRect)
	bounds := img.Bounds()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FillRectangle(img, &bounds, color.White)
	}
}
