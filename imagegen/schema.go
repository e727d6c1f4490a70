package imagegen

import (
	"bytes"
	"text/template"

	"github.com/clktmr/assetc/header"
)

var schemaTmpl = template.Must(template.New("schema").Parse(
	`typedef enum pixel_format {
{{- range .PixelFormats }}
    {{ . }} = {{ printf "%d" . }},
{{- end }}
} pixel_format_t;

typedef enum image_format {
{{- range .ImageFormats }}
    {{ . }} = {{ printf "%d" . }},
{{- end }}
} image_format_t;

typedef struct image_descriptor {
    size_t data_size;
    int width;
    int height;
    image_format_t image_format;
    pixel_format_t pixel_format;
    const uint8_t *data;
} image_descriptor_t;
`))

// SchemaHeader returns the header that declares the types referenced by
// generated image headers, see SchemaInclude.
func SchemaHeader() *header.Header {
	h := &header.Header{Includes: []header.Include{
		{Path: "stddef.h", System: true},
		{Path: "stdint.h", System: true},
	}}

	var b bytes.Buffer
	err := schemaTmpl.Execute(&b, struct {
		PixelFormats []PixelFormat
		ImageFormats []ImageFormat
	}{
		PixelFormats: []PixelFormat{PixelFormatRGBA8888},
		ImageFormats: []ImageFormat{ImageFormatRaw},
	})
	if err != nil {
		panic(err)
	}
	h.Add(b.Bytes())
	return h
}
