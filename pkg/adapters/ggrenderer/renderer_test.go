package ggrenderer

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func red(img image.Image, x, y int) uint32 {
	r, _, _, _ := img.At(x, y).RGBA()
	return r >> 8
}

func TestRenderer_Resize(t *testing.T) {
	r := New()

	resized := r.Resize(solid(100, 50, color.White), 40, 30)
	if resized.Bounds().Dx() != 40 || resized.Bounds().Dy() != 30 {
		t.Errorf("expected 40x30, got %v", resized.Bounds())
	}
	if red(resized, 20, 15) < 250 {
		t.Errorf("expected white after resize, got r=%d", red(resized, 20, 15))
	}
}

func TestRenderer_Letterbox(t *testing.T) {
	r := New()

	// A square frame in a 2:1 box is pillarboxed into x 10..30.
	img := r.Letterbox(solid(10, 10, color.White), 40, 20, color.Black)
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 20 {
		t.Fatalf("expected 40x20, got %v", img.Bounds())
	}
	if red(img, 20, 10) < 200 {
		t.Errorf("expected white inside the fit rectangle, got r=%d", red(img, 20, 10))
	}
	if red(img, 2, 10) > 50 || red(img, 37, 10) > 50 {
		t.Error("expected black bars on both sides")
	}
}

func TestRenderer_Letterbox_OffsetBounds(t *testing.T) {
	r := New()

	src := solid(20, 20, color.White).SubImage(image.Rect(10, 10, 20, 20))
	img := r.Letterbox(src, 10, 10, color.Black)
	if red(img, 5, 5) < 200 {
		t.Errorf("expected sub-image to fill the frame, got r=%d", red(img, 5, 5))
	}
}

func TestRenderer_EncodeJPEG(t *testing.T) {
	r := New()

	data, err := r.EncodeJPEG(solid(50, 40, color.RGBA{R: 255, A: 255}), 80)
	if err != nil {
		t.Fatalf("EncodeJPEG failed: %v", err)
	}

	decoded, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("jpeg.Decode failed: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 40 {
		t.Errorf("expected 50x40, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_EncodeJPEG_QualityAffectsSize(t *testing.T) {
	r := New()

	// Noise compresses poorly so the quality difference shows in the size.
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 7919 % 251)
	}

	low, err := r.EncodeJPEG(img, 10)
	if err != nil {
		t.Fatal(err)
	}
	high, err := r.EncodeJPEG(img, 95)
	if err != nil {
		t.Fatal(err)
	}
	if len(low) >= len(high) {
		t.Errorf("expected quality 10 (%d bytes) to be smaller than quality 95 (%d bytes)", len(low), len(high))
	}
	if _, err := r.EncodeJPEG(img, 0); err != nil {
		t.Errorf("out of range quality should fall back to the default: %v", err)
	}
}

func TestRenderer_EncodePNG(t *testing.T) {
	r := New()

	data, err := r.EncodePNG(solid(30, 20, color.RGBA{G: 255, A: 255}))
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	if decoded.Bounds().Dx() != 30 || decoded.Bounds().Dy() != 20 {
		t.Errorf("unexpected bounds %v", decoded.Bounds())
	}
}

func TestFitRect(t *testing.T) {
	tests := []struct {
		srcW, srcH, dstW, dstH int
		want                   image.Rectangle
	}{
		{100, 100, 200, 100, image.Rect(50, 0, 150, 100)},
		{200, 100, 100, 100, image.Rect(0, 25, 100, 75)},
		{40, 30, 80, 60, image.Rect(0, 0, 80, 60)},
		{1000, 1, 10, 10, image.Rect(0, 4, 10, 5)},
	}
	for _, tt := range tests {
		if got := fitRect(tt.srcW, tt.srcH, tt.dstW, tt.dstH); got != tt.want {
			t.Errorf("fitRect(%d,%d,%d,%d) = %v, want %v", tt.srcW, tt.srcH, tt.dstW, tt.dstH, got, tt.want)
		}
	}
}
