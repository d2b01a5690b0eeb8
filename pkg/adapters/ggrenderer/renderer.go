// Package ggrenderer scales and encodes frames using the gg library and x/image.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/framereel/pkg/ports"
)

// Renderer implements ports.Renderer.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Resize scales img to width x height with Catmull-Rom filtering.
func (r *Renderer) Resize(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Letterbox draws img scaled into its fit rectangle on a bg-filled frame.
func (r *Renderer) Letterbox(img image.Image, width, height int, bg color.Color) image.Image {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()

	b := img.Bounds()
	rect := fitRect(b.Dx(), b.Dy(), width, height)

	dc.Push()
	dc.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	dc.Scale(float64(rect.Dx())/float64(b.Dx()), float64(rect.Dy())/float64(b.Dy()))
	dc.DrawImage(img, -b.Min.X, -b.Min.Y)
	dc.Pop()

	return dc.Image()
}

// EncodeJPEG encodes img as JPEG. Out of range quality uses the library default.
func (r *Renderer) EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	if quality < 1 || quality > 100 {
		quality = jpeg.DefaultQuality
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodePNG encodes img as PNG.
func (r *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// fitRect returns the largest rectangle with the source aspect ratio that
// fits inside dstW x dstH, centered.
func fitRect(srcW, srcH, dstW, dstH int) image.Rectangle {
	w, h := dstW, srcH*dstW/srcW
	if h > dstH {
		w, h = srcW*dstH/srcH, dstH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	x := (dstW - w) / 2
	y := (dstH - h) / 2
	return image.Rect(x, y, x+w, y+h)
}

var _ ports.Renderer = (*Renderer)(nil)
