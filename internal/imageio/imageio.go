package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// ErrFormat is returned for an output format other than png or webp.
var ErrFormat = errors.New("imageio: unsupported output format")

// Formats lists the accepted output formats.
var Formats = []string{"webp", "png"}

// ErrInputFormat is returned by Load for an extension it has no decoder for.
var ErrInputFormat = errors.New("imageio: unsupported input format")

// decoders is keyed by lower-case extension. The tga package registers
// itself with image.Decode under an empty magic that matches every file,
// so Load never goes through the registry.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".gif":  gif.Decode,
	".bmp":  bmp.Decode,
	".webp": webp.Decode,
	".tga":  tga.Decode,
}

// IsImage reports whether path has an extension Load can decode.
func IsImage(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Load decodes an image file, picking the decoder by extension, and
// returns it as NRGBA.
func Load(path string) (*image.NRGBA, error) {
	decode, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInputFormat, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}

	return ToNRGBA(img), nil
}

// Save encodes img to path as png or webp, creating parent directories.
func Save(path string, img image.Image, format string) error {
	if format != "png" && format != "webp" {
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("imageio: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	switch format {
	case "webp":
		err = nativewebp.Encode(w, img, nil)
	case "png":
		err = png.Encode(w, img)
	}
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s %s: %w", format, path, err)
	}
	return nil
}

// ToNRGBA converts any image to NRGBA format with a zero origin.
func ToNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha: draw and set alpha to 255
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 255
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
			}
		}
	}
	return dst
}
