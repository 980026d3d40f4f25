// Package assets holds the embedded presentation data used by the debug
// renderer.
package assets

import (
	_ "embed"
	"fmt"
	"image/color"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"
)

//go:embed palette.yaml
var paletteYAML []byte

type paletteFile struct {
	Default  string            `yaml:"default"`
	Keys     map[string]string `yaml:"keys"`
	Prefixes map[string]string `yaml:"prefixes"`
}

// Palette maps sprite keys to flat colours.
type Palette struct {
	fallback color.RGBA
	keys     map[string]color.RGBA
	prefixes map[string]color.RGBA
}

// DefaultPalette decodes the embedded palette.
func DefaultPalette() (*Palette, error) {
	return ParsePalette(paletteYAML)
}

// ParsePalette decodes a palette document. Colours accept any CSS syntax.
func ParsePalette(data []byte) (*Palette, error) {
	var f paletteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("assets: decode palette: %w", err)
	}
	p := &Palette{
		keys:     make(map[string]color.RGBA, len(f.Keys)),
		prefixes: make(map[string]color.RGBA, len(f.Prefixes)),
	}
	var err error
	if p.fallback, err = parseColor(f.Default); err != nil {
		return nil, fmt.Errorf("assets: default: %w", err)
	}
	for k, v := range f.Keys {
		if p.keys[k], err = parseColor(v); err != nil {
			return nil, fmt.Errorf("assets: key %s: %w", k, err)
		}
	}
	for k, v := range f.Prefixes {
		if p.prefixes[k], err = parseColor(v); err != nil {
			return nil, fmt.Errorf("assets: prefix %s: %w", k, err)
		}
	}
	return p, nil
}

// Color resolves key: exact match, then longest prefix, then the default.
func (p *Palette) Color(key string) color.RGBA {
	if c, ok := p.keys[key]; ok {
		return c
	}
	best, bestLen := p.fallback, -1
	for prefix, c := range p.prefixes {
		if strings.HasPrefix(key, prefix) && len(prefix) > bestLen {
			best, bestLen = c, len(prefix)
		}
	}
	return best
}

func parseColor(s string) (color.RGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b, a := c.RGBA255()
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}
