// Package imagegen turns decoded images into C headers holding the raw
// RGBA8888 pixel data and an image_descriptor_t describing it.
//
// For an image named "logo" the generated header declares
//
//	inline const uint8_t logo_data[] = { ... };
//	inline const image_descriptor_t logo = { ... };
package imagegen

import (
	"bytes"
	"regexp"

	"github.com/clktmr/assetc/asset"
	"github.com/clktmr/assetc/header"
	"github.com/clktmr/assetc/pixbuf"
)

const (
	// DefaultName is used when no variable name is given.
	DefaultName = "image"

	// DataSuffix is appended to the variable name to name the byte array.
	DataSuffix = "_data"

	// SchemaInclude is the header declaring image_descriptor_t.
	SchemaInclude = "image_descriptor.h"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Generate returns the header for b with the descriptor named name.
func Generate(b *pixbuf.Buffer, name string) (*header.Header, error) {
	if !identifier.MatchString(name) {
		return nil, asset.Errorf(asset.KindSchema, "", "invalid variable name %q", name)
	}
	data := name + DataSuffix

	h := &header.Header{Includes: []header.Include{
		{Path: "stdint.h", System: true},
		{Path: SchemaInclude},
	}}

	arr := []byte("inline const uint8_t " + data + "[] = {\n")
	arr = AppendBytes(arr, b.Pix)
	arr = append(arr, "};\n"...)
	h.Add(arr)

	var desc bytes.Buffer
	if err := NewDescriptor(b, data).Render(&desc, name); err != nil {
		return nil, err
	}
	h.Add(desc.Bytes())

	return h, nil
}
