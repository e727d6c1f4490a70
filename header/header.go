// Package header assembles generated C headers and writes them to disk.
package header

import (
	"bytes"
	"fmt"
	"os"

	"github.com/clktmr/assetc/asset"
)

// Include is a single #include directive. System includes use angle
// brackets, all others quotes.
type Include struct {
	Path   string
	System bool
}

func (i Include) String() string {
	if i.System {
		return fmt.Sprintf("#include <%s>", i.Path)
	}
	return fmt.Sprintf("#include %q", i.Path)
}

// Header is the in-memory form of a generated header file.
//
// The rendered text starts with `#pragma once`, followed by the system
// includes, the local includes and the body sections, each group separated by
// a single blank line.
type Header struct {
	Includes []Include
	sections [][]byte
}

// Add appends a body section. A missing final newline is added on render.
func (h *Header) Add(section []byte) {
	h.sections = append(h.sections, section)
}

// Addf appends a formatted body section.
func (h *Header) Addf(format string, args ...any) {
	h.Add(fmt.Appendf(nil, format, args...))
}

// Bytes renders the header.
func (h *Header) Bytes() []byte {
	var b bytes.Buffer
	b.WriteString("#pragma once\n")

	for _, system := range []bool{true, false} {
		first := true
		for _, inc := range h.Includes {
			if inc.System != system {
				continue
			}
			if first {
				b.WriteByte('\n')
				first = false
			}
			b.WriteString(inc.String())
			b.WriteByte('\n')
		}
	}

	for _, s := range h.sections {
		if len(s) == 0 {
			continue
		}
		b.WriteByte('\n')
		b.Write(s)
		if s[len(s)-1] != '\n' {
			b.WriteByte('\n')
		}
	}
	return b.Bytes()
}

// WriteFile writes the rendered header to path, replacing any previous
// content.
func (h *Header) WriteFile(path string) error {
	err := os.WriteFile(path, h.Bytes(), 0o644)
	return asset.Wrap(asset.KindIO, path, err)
}

// Emit writes h to path and runs f on it afterwards. A nil f skips
// formatting. Formatting only starts after a successful write, so an error of
// kind asset.KindFormat always leaves a complete header behind.
func Emit(path string, h *Header, f Formatter) error {
	if err := h.WriteFile(path); err != nil {
		return err
	}
	if f == nil {
		return nil
	}
	return f.Format(path)
}
