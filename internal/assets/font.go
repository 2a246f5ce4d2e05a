// Package assets loads files the explorer needs at startup.
package assets

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Font is a parsed TrueType or OpenType font together with its raw bytes,
// which the display needs to build faces.
type Font struct {
	Name string
	Data []byte
}

// LoadFont reads the font at path and checks that it parses.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read font")
	}
	f, err := ParseFont(data)
	if err != nil {
		return nil, errors.Wrapf(err, "font %s", path)
	}
	return f, nil
}

// ParseFont validates data as a font.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, errors.New("empty font data")
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse font")
	}
	if parsed.NumGlyphs() == 0 {
		return nil, errors.New("font has no glyphs")
	}

	name, _ := parsed.Name(nil, sfnt.NameIDFull)
	return &Font{Name: name, Data: data}, nil
}
