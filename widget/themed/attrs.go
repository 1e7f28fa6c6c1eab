// SPDX-License-Identifier: Unlicense OR MIT

package themed

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gioui.org/unit"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by LoadAttributes for files that are
// neither TOML nor YAML.
var ErrUnknownFormat = errors.New("unknown attribute file format")

// Attributes is the declarative form of a switch: its labels, initial
// state and style. Dimensions are in dp, label sizes in sp, colors in
// ParseColor form and durations in time.ParseDuration form.
type Attributes struct {
	TextOff string `toml:"text_off" yaml:"text_off"`
	TextOn  string `toml:"text_on" yaml:"text_on"`
	Checked bool   `toml:"checked" yaml:"checked"`

	StrokeWidth   float32 `toml:"stroke_width" yaml:"stroke_width"`
	StrokeColor   string  `toml:"stroke_color" yaml:"stroke_color"`
	TrackColor    string  `toml:"track_color" yaml:"track_color"`
	ThumbColor    string  `toml:"thumb_color" yaml:"thumb_color"`
	LabelColor    string  `toml:"label_color" yaml:"label_color"`
	LabelSize     float32 `toml:"label_size" yaml:"label_size"`
	LabelMaxLines int     `toml:"label_max_lines" yaml:"label_max_lines"`
	CornerRadius  float32 `toml:"corner_radius" yaml:"corner_radius"`
	ThumbInset    float32 `toml:"thumb_inset" yaml:"thumb_inset"`
	SlideDuration string  `toml:"slide_duration" yaml:"slide_duration"`
}

// DefaultAttributes describes DefaultStyle with the labels "OFF" and
// "ON".
func DefaultAttributes() Attributes {
	a := AttributesOf(DefaultStyle())
	a.TextOff = "OFF"
	a.TextOn = "ON"
	return a
}

// AttributesOf returns the declarative form of s, without labels.
func AttributesOf(s Style) Attributes {
	return Attributes{
		StrokeWidth:   float32(s.StrokeWidth),
		StrokeColor:   FormatColor(s.StrokeColor),
		TrackColor:    FormatColor(s.TrackColor),
		ThumbColor:    FormatColor(s.ThumbColor),
		LabelColor:    FormatColor(s.LabelColor),
		LabelSize:     float32(s.LabelSize),
		LabelMaxLines: s.LabelMaxLines,
		CornerRadius:  float32(s.CornerRadius),
		ThumbInset:    float32(s.ThumbInset),
		SlideDuration: s.SlideDuration.String(),
	}
}

// Style converts a to a validated Style.
func (a Attributes) Style() (Style, error) {
	s := DefaultStyle()
	s.StrokeWidth = unit.Dp(a.StrokeWidth)
	s.LabelSize = unit.Sp(a.LabelSize)
	s.LabelMaxLines = a.LabelMaxLines
	s.CornerRadius = unit.Dp(a.CornerRadius)
	s.ThumbInset = unit.Dp(a.ThumbInset)
	for _, c := range []struct {
		name string
		src  string
		dst  *color.NRGBA
	}{
		{"stroke_color", a.StrokeColor, &s.StrokeColor},
		{"track_color", a.TrackColor, &s.TrackColor},
		{"thumb_color", a.ThumbColor, &s.ThumbColor},
		{"label_color", a.LabelColor, &s.LabelColor},
	} {
		col, err := ParseColor(c.src)
		if err != nil {
			return Style{}, fmt.Errorf("%s: %w", c.name, err)
		}
		*c.dst = col
	}
	d, err := time.ParseDuration(a.SlideDuration)
	if err != nil {
		return Style{}, fmt.Errorf("slide_duration: %w", err)
	}
	s.SlideDuration = d
	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// DecodeTOML decodes TOML attributes over DefaultAttributes. Unknown
// keys are an error.
func DecodeTOML(data []byte) (Attributes, error) {
	a := DefaultAttributes()
	md, err := toml.Decode(string(data), &a)
	if err != nil {
		return Attributes{}, fmt.Errorf("decode TOML attributes: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Attributes{}, fmt.Errorf("decode TOML attributes: unknown keys %s", strings.Join(keys, ", "))
	}
	return a, nil
}

// DecodeYAML decodes YAML attributes over DefaultAttributes. Unknown
// keys are an error.
func DecodeYAML(data []byte) (Attributes, error) {
	a := DefaultAttributes()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&a); err != nil && !errors.Is(err, io.EOF) {
		return Attributes{}, fmt.Errorf("decode YAML attributes: %w", err)
	}
	return a, nil
}

// LoadAttributes reads an attribute file, choosing the decoder from its
// extension.
func LoadAttributes(path string) (Attributes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Attributes{}, err
	}
	var a Attributes
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		a, err = DecodeTOML(data)
	case ".yaml", ".yml":
		a, err = DecodeYAML(data)
	default:
		return Attributes{}, fmt.Errorf("%s: %w %q", path, ErrUnknownFormat, ext)
	}
	if err != nil {
		return Attributes{}, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}
