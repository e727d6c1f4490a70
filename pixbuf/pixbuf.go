// Package pixbuf provides the decoded pixel data consumed by the image header
// generator: tightly packed, row-major, non-premultiplied RGBA8888.
package pixbuf

import (
	"errors"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/clktmr/assetc/asset"
)

// BytesPerPixel is the size of one RGBA8888 pixel.
const BytesPerPixel = 4

// Buffer stores pixels in RGBA with 32bit (8:8:8:8) without alpha
// premultiplication. Rows are not padded.
type Buffer struct {
	Width, Height uint32
	Pix           []uint8
}

// New returns a Buffer wrapping pix. It fails unless both dimensions are
// non-zero and len(pix) == width*height*4.
func New(width, height uint32, pix []uint8) (*Buffer, error) {
	if width == 0 || height == 0 {
		return nil, asset.Errorf(asset.KindSchema, "", "empty image %dx%d", width, height)
	}
	size := uint64(width) * uint64(height) * BytesPerPixel
	if size > math.MaxUint32 {
		return nil, asset.Errorf(asset.KindSchema, "", "image %dx%d too large", width, height)
	}
	if uint64(len(pix)) != size {
		return nil, asset.Errorf(asset.KindSchema, "", "image %dx%d needs %d bytes, got %d",
			width, height, size, len(pix))
	}
	return &Buffer{Width: width, Height: height, Pix: pix}, nil
}

// Len returns the size of the pixel data in bytes.
func (b *Buffer) Len() int { return len(b.Pix) }

// FromImage converts src into a Buffer, starting at src.Bounds().Min.
func FromImage(src image.Image) (*Buffer, error) {
	r := src.Bounds()
	if r.Empty() {
		return nil, asset.Errorf(asset.KindSchema, "", "empty image %v", r)
	}
	w, h := r.Dx(), r.Dy()
	pix := make([]uint8, w*h*BytesPerPixel)
	stride := w * BytesPerPixel

	switch img := src.(type) {
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			offset := img.PixOffset(r.Min.X, r.Min.Y+y)
			copy(pix[y*stride:(y+1)*stride], img.Pix[offset:offset+stride])
		}
	default:
		i := 0
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				pix[i+0] = c.R
				pix[i+1] = c.G
				pix[i+2] = c.B
				pix[i+3] = c.A
				i += BytesPerPixel
			}
		}
	}

	return New(uint32(w), uint32(h), pix)
}

// Decode reads an image in any registered format from r.
func Decode(r io.Reader) (*Buffer, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, asset.Wrap(asset.KindDecode, "", err)
	}
	return FromImage(src)
}

// Load decodes the image file at path.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, asset.Wrap(asset.KindDecode, path, err)
	}
	defer f.Close()

	b, err := Decode(f)
	if err != nil {
		var e *asset.Error
		if errors.As(err, &e) && e.Path == "" {
			e.Path = path
		}
		return nil, err
	}
	return b, nil
}
