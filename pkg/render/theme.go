package render

import (
	"image/color"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/timoleistner/plotrna/pkg/errors"
)

// Theme bundles every visual constant for one render call: radii, padding,
// stroke widths, font size, and the fixed colors that are not produced by
// the color mapper. Immutable once built.
type Theme struct {
	BaseRadius float64 // nucleotide circle radius, canvas units
	Padding    float64 // margin between drawing extent and canvas edge
	LineWidth  float64 // backbone and base-pair stroke width
	FontSize   float64 // nucleotide label size

	Background color.RGBA // canvas fill, also the glyph erase color
	Backbone   color.RGBA // consecutive-nucleotide segments
	Basepair   color.RGBA // base-pair segments
	Outline    color.RGBA // nucleotide circle stroke
	Text       color.RGBA // nucleotide label color
}

// DefaultTheme returns the built-in look: white background, dark grey
// backbone, lighter pair lines.
func DefaultTheme() Theme {
	return Theme{
		BaseRadius: 9,
		Padding:    12,
		LineWidth:  1.8,
		FontSize:   11,
		Background: color.RGBA{255, 255, 255, 255},
		Backbone:   color.RGBA{64, 64, 64, 255},
		Basepair:   color.RGBA{160, 160, 160, 255},
		Outline:    color.RGBA{32, 32, 32, 255},
		Text:       color.RGBA{16, 16, 16, 255},
	}
}

// themeFile is the TOML representation of a theme. All fields are optional;
// unset ones keep their defaults.
type themeFile struct {
	BaseRadius float64 `toml:"base_radius"`
	Padding    float64 `toml:"padding"`
	LineWidth  float64 `toml:"line_width"`
	FontSize   float64 `toml:"font_size"`

	Background string `toml:"background"`
	Backbone   string `toml:"backbone"`
	Basepair   string `toml:"basepair"`
	Outline    string `toml:"outline"`
	Text       string `toml:"text"`
}

// LoadTheme reads a TOML theme file and overlays it on the defaults.
//
//	base_radius = 12
//	backbone = "#333333"
//	basepair = "#a0c0ff"
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "read theme %s", path)
	}
	return parseTheme(data)
}

func parseTheme(data []byte) (Theme, error) {
	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "parse theme")
	}

	th := DefaultTheme()
	if tf.BaseRadius > 0 {
		th.BaseRadius = tf.BaseRadius
	}
	if tf.Padding > 0 {
		th.Padding = tf.Padding
	}
	if tf.LineWidth > 0 {
		th.LineWidth = tf.LineWidth
	}
	if tf.FontSize > 0 {
		th.FontSize = tf.FontSize
	}

	for _, c := range []struct {
		hex string
		dst *color.RGBA
	}{
		{tf.Background, &th.Background},
		{tf.Backbone, &th.Backbone},
		{tf.Basepair, &th.Basepair},
		{tf.Outline, &th.Outline},
		{tf.Text, &th.Text},
	} {
		if c.hex == "" {
			continue
		}
		parsed, err := parseHexColor(c.hex)
		if err != nil {
			return Theme{}, err
		}
		*c.dst = parsed
	}
	return th, nil
}

// parseHexColor parses "#rrggbb" into an opaque RGBA.
func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, errors.New(errors.ErrCodeInvalidTheme,
			"invalid color %q (expected #rrggbb)", s)
	}
	var c color.RGBA
	c.A = 255
	for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
		hi, okHi := hexDigit(s[1+2*i])
		lo, okLo := hexDigit(s[2+2*i])
		if !okHi || !okLo {
			return color.RGBA{}, errors.New(errors.ErrCodeInvalidTheme,
				"invalid color %q (expected #rrggbb)", s)
		}
		*dst = hi<<4 | lo
	}
	return c, nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
