package imagegen

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clktmr/assetc/asset"
	"github.com/clktmr/assetc/pixbuf"
)

func mustBuffer(t *testing.T, w, h uint32) *pixbuf.Buffer {
	t.Helper()
	pix := make([]uint8, w*h*pixbuf.BytesPerPixel)
	for i := range pix {
		pix[i] = uint8(i * 7)
	}
	b, err := pixbuf.New(w, h, pix)
	require.NoError(t, err)
	return b
}

func TestGenerate(t *testing.T) {
	b, err := pixbuf.New(2, 1, []uint8{255, 0, 0, 255, 0, 255, 0, 128})
	require.NoError(t, err)

	h, err := Generate(b, DefaultName)
	require.NoError(t, err)

	const want = `#pragma once

#include <stdint.h>

#include "image_descriptor.h"

inline const uint8_t image_data[] = {
    0xff, 0x00, 0x00, 0xff, 0x00, 0xff, 0x00, 0x80,
};

inline const image_descriptor_t image = {
    .data_size = sizeof(image_data),
    .width = 2,
    .height = 1,
    .image_format = IMAGE_FORMAT_RAW,
    .pixel_format = PIXEL_FORMAT_RGBA8888,
    .data = image_data,
};
`
	assert.Equal(t, want, string(h.Bytes()))
}

func TestGenerateDeterministic(t *testing.T) {
	b := mustBuffer(t, 7, 5)
	h1, err := Generate(b, "logo")
	require.NoError(t, err)
	h2, err := Generate(b, "logo")
	require.NoError(t, err)
	assert.Equal(t, h1.Bytes(), h2.Bytes())
}

func TestGenerateName(t *testing.T) {
	b := mustBuffer(t, 1, 1)
	for _, name := range []string{"logo", "_x", "Icon2", "a_b_c"} {
		h, err := Generate(b, name)
		require.NoError(t, err, name)
		text := string(h.Bytes())
		assert.Contains(t, text, "inline const uint8_t "+name+"_data[] = {")
		assert.Contains(t, text, "inline const image_descriptor_t "+name+" = {")
		assert.Contains(t, text, ".data = "+name+"_data,")
	}
	for _, name := range []string{"", "2x", "my-logo", "a b", "logo;"} {
		_, err := Generate(b, name)
		assert.Equal(t, asset.KindSchema, asset.KindOf(err), name)
	}
}

var token = regexp.MustCompile(`^0x[0-9a-f]{2},$`)

func TestAppendBytes(t *testing.T) {
	assert.Empty(t, AppendBytes(nil, nil))

	sizes := [][2]uint32{{1, 1}, {2, 2}, {4, 1}, {3, 3}, {16, 1}, {5, 7}}
	for _, size := range sizes {
		w, h := size[0], size[1]
		t.Run(fmt.Sprintf("%dx%d", w, h), func(t *testing.T) {
			b := mustBuffer(t, w, h)
			out := string(AppendBytes(nil, b.Pix))
			require.True(t, strings.HasSuffix(out, "\n"))

			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			var tokens []string
			for i, line := range lines {
				require.True(t, strings.HasPrefix(line, indent), line)
				fields := strings.Split(strings.TrimPrefix(line, indent), " ")
				if i < len(lines)-1 {
					assert.Len(t, fields, BytesPerLine)
				} else {
					assert.LessOrEqual(t, len(fields), BytesPerLine)
				}
				tokens = append(tokens, fields...)
			}

			require.Len(t, tokens, int(w*h*4))
			for i, tok := range tokens {
				assert.Regexp(t, token, tok)
				assert.Equal(t, fmt.Sprintf("0x%02x,", b.Pix[i]), tok)
			}
		})
	}
}

func TestAppendBytesWrap(t *testing.T) {
	data := bytes.Repeat([]byte{0xab}, 17)
	want := indent + strings.TrimSuffix(strings.Repeat("0xab, ", 16), " ") + "\n" + indent + "0xab,\n"
	assert.Equal(t, want, string(AppendBytes(nil, data)))

	// A full last line does not leave an empty line behind.
	out := AppendBytes(nil, data[:16])
	assert.Equal(t, 1, bytes.Count(out, []byte("\n")))
}

func TestDescriptor(t *testing.T) {
	for _, size := range [][2]uint32{{1, 1}, {2, 1}, {13, 9}, {320, 240}} {
		b := mustBuffer(t, size[0], size[1])
		d := NewDescriptor(b, "img_data")
		assert.Equal(t, size[0]*size[1]*4, d.DataSize)
		assert.Equal(t, size[0], d.Width)
		assert.Equal(t, size[1], d.Height)
		assert.Equal(t, ImageFormatRaw, d.ImageFormat)
		assert.Equal(t, PixelFormatRGBA8888, d.PixelFormat)
	}
}

func TestDescriptorFieldOrder(t *testing.T) {
	var out bytes.Buffer
	d := NewDescriptor(mustBuffer(t, 3, 2), "img_data")
	require.NoError(t, d.Render(&out, "img"))

	fields := regexp.MustCompile(`(?m)^\s+\.(\w+) = `).FindAllStringSubmatch(out.String(), -1)
	var names []string
	for _, f := range fields {
		names = append(names, f[1])
	}
	assert.Equal(t, []string{"data_size", "width", "height", "image_format", "pixel_format", "data"}, names)
	assert.Contains(t, out.String(), ".data_size = sizeof(img_data),")
}

func TestFormatStrings(t *testing.T) {
	assert.Equal(t, "IMAGE_FORMAT_RAW", ImageFormatRaw.String())
	assert.Equal(t, "PIXEL_FORMAT_RGBA8888", PixelFormatRGBA8888.String())
	assert.Equal(t, "ImageFormat(9)", ImageFormat(9).String())
	assert.Equal(t, "PixelFormat(9)", PixelFormat(9).String())
}

func TestSchemaHeader(t *testing.T) {
	const want = `#pragma once

#include <stddef.h>
#include <stdint.h>

typedef enum pixel_format {
    PIXEL_FORMAT_RGBA8888 = 0,
} pixel_format_t;

typedef enum image_format {
    IMAGE_FORMAT_RAW = 0,
} image_format_t;

typedef struct image_descriptor {
    size_t data_size;
    int width;
    int height;
    image_format_t image_format;
    pixel_format_t pixel_format;
    const uint8_t *data;
} image_descriptor_t;
`
	assert.Equal(t, want, string(SchemaHeader().Bytes()))
}
