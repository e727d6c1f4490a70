package glyphgen

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/clktmr/assetc/asset"
)

// Override assigns Name to the glyph at code point Target.
type Override struct {
	Target int
	Name   string
}

type overrideEntry struct {
	Target *int    `yaml:"target"`
	Name   *string `yaml:"name"`
}

type overridesFile struct {
	Overrides []*overrideEntry `yaml:"overrides"`
}

// Decode reads a YAML overrides document from r:
//
//	overrides:
//	  - target: 0x41
//	    name: A
//
// Entries are returned in document order. An empty document or one without
// an overrides key yields no entries.
func Decode(r io.Reader) ([]Override, error) {
	var doc overridesFile
	err := yaml.NewDecoder(r).Decode(&doc)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		return nil, asset.Wrap(asset.KindSchema, "", err)
	}
	if err != nil {
		return nil, asset.Wrap(asset.KindDecode, "", err)
	}

	var overrides []Override
	for i, e := range doc.Overrides {
		switch {
		case e == nil:
			return nil, asset.Errorf(asset.KindSchema, "", "override %d: empty entry", i)
		case e.Target == nil:
			return nil, asset.Errorf(asset.KindSchema, "", "override %d: missing target", i)
		case e.Name == nil:
			return nil, asset.Errorf(asset.KindSchema, "", "override %d: missing name", i)
		}
		overrides = append(overrides, Override{Target: *e.Target, Name: *e.Name})
	}
	return overrides, nil
}

// Load decodes the overrides file at path.
func Load(path string) ([]Override, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, asset.Wrap(asset.KindDecode, path, err)
	}
	defer f.Close()

	overrides, err := Decode(f)
	if err != nil {
		var e *asset.Error
		if errors.As(err, &e) && e.Path == "" {
			e.Path = path
		}
		return nil, err
	}
	return overrides, nil
}
