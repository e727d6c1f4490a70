package imagegen

import (
	"fmt"
	"io"
	"text/template"

	"github.com/clktmr/assetc/pixbuf"
)

type ImageFormat uint8

const (
	ImageFormatRaw ImageFormat = iota
)

func (f ImageFormat) String() string {
	switch f {
	case ImageFormatRaw:
		return "IMAGE_FORMAT_RAW"
	}
	return fmt.Sprintf("ImageFormat(%d)", uint8(f))
}

type PixelFormat uint8

const (
	PixelFormatRGBA8888 PixelFormat = iota
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGBA8888:
		return "PIXEL_FORMAT_RGBA8888"
	}
	return fmt.Sprintf("PixelFormat(%d)", uint8(f))
}

// Descriptor is the metadata emitted next to an image's byte array. Data
// names the array symbol, the descriptor never holds the pixels itself.
type Descriptor struct {
	DataSize      uint32
	Width, Height uint32
	ImageFormat   ImageFormat
	PixelFormat   PixelFormat
	Data          string
}

// NewDescriptor describes b stored in the array symbol data.
func NewDescriptor(b *pixbuf.Buffer, data string) Descriptor {
	return Descriptor{
		DataSize:    uint32(b.Len()),
		Width:       b.Width,
		Height:      b.Height,
		ImageFormat: ImageFormatRaw,
		PixelFormat: PixelFormatRGBA8888,
		Data:        data,
	}
}

// data_size is always sizeof the array, never a literal.
var descriptorTmpl = template.Must(template.New("descriptor").Parse(
	`inline const image_descriptor_t {{ .Name }} = {
    .data_size = sizeof({{ .Data }}),
    .width = {{ .Width }},
    .height = {{ .Height }},
    .image_format = {{ .ImageFormat }},
    .pixel_format = {{ .PixelFormat }},
    .data = {{ .Data }},
};
`))

// Render writes d as a constant initializer named name.
func (d Descriptor) Render(w io.Writer, name string) error {
	return descriptorTmpl.Execute(w, struct {
		Descriptor
		Name string
	}{d, name})
}
