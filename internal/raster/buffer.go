package raster

import (
	"errors"
	"fmt"
	"image"
)

// ErrBufferShape is returned when a pixel buffer does not hold exactly
// Width*Height RGBA pixels.
var ErrBufferShape = errors.New("raster: pixel buffer shape mismatch")

// Frame holds an sRGB-encoded image as a flat slice for cache locality.
type Frame struct {
	Width  int
	Height int
	Pix    []uint8 // RGBA interleaved, row-major, len = W*H*4
}

// NewFrame allocates a zeroed (transparent black) frame.
func NewFrame(w, h int) *Frame {
	return &Frame{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*4),
	}
}

// Validate checks that Pix matches the declared dimensions.
func (f *Frame) Validate() error {
	if f == nil {
		return fmt.Errorf("%w: nil frame", ErrBufferShape)
	}
	if f.Width < 0 || f.Height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrBufferShape, f.Width, f.Height)
	}
	if len(f.Pix)%4 != 0 {
		return fmt.Errorf("%w: length %d is not a multiple of 4", ErrBufferShape, len(f.Pix))
	}
	if want := f.Width * f.Height * 4; len(f.Pix) != want {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrBufferShape, f.Width, f.Height, want, len(f.Pix))
	}
	return nil
}

// Len returns the number of pixels.
func (f *Frame) Len() int {
	return len(f.Pix) / 4
}

// FromNRGBA copies an NRGBA image into a tightly packed frame.
// Sub-images and padded strides are handled.
func FromNRGBA(img *image.NRGBA) *Frame {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	f := NewFrame(w, h)
	for y := 0; y < h; y++ {
		si := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(f.Pix[y*w*4:(y+1)*w*4], img.Pix[si:si+w*4])
	}
	return f
}

// NRGBA wraps the frame's pixels as an image without copying.
func (f *Frame) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    f.Pix,
		Stride: f.Width * 4,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}
