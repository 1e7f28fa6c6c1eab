// SPDX-License-Identifier: Unlicense OR MIT

package themed

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"gioui.org/font"
	"gioui.org/unit"
)

// Style holds the fixed visual parameters of a themed switch. A Style is
// a plain value: copies are independent, and any number of switches may
// share one.
type Style struct {
	StrokeWidth unit.Dp
	StrokeColor color.NRGBA
	// TrackColor fills the track below the stroke. The zero value leaves
	// the track unfilled.
	TrackColor color.NRGBA
	ThumbColor color.NRGBA

	LabelColor color.NRGBA
	LabelSize  unit.Sp
	LabelFont  font.Font
	// LabelMaxLines limits the lines of a label. Zero means no limit.
	LabelMaxLines int

	CornerRadius unit.Dp
	ThumbInset   unit.Dp

	// SlideDuration is the time the thumb takes to cross the track. Zero
	// disables the animation.
	SlideDuration time.Duration
}

// DefaultStyle returns the stock look: a thin light cyan outline, a
// translucent white thumb and white 14sp labels.
func DefaultStyle() Style {
	return Style{
		StrokeWidth:   1,
		StrokeColor:   rgb(0xe6f5f7),
		ThumbColor:    argb(0x33ffffff),
		LabelColor:    rgb(0xffffff),
		LabelSize:     14,
		LabelMaxLines: 1,
		CornerRadius:  8,
		ThumbInset:    4,
		SlideDuration: 150 * time.Millisecond,
	}
}

var errInvalidStyle = errors.New("invalid style")

// Validate reports whether s can be painted.
func (s Style) Validate() error {
	switch {
	case s.StrokeWidth < 0:
		return fmt.Errorf("%w: negative stroke width %v", errInvalidStyle, s.StrokeWidth)
	case s.LabelSize <= 0:
		return fmt.Errorf("%w: label size %v must be positive", errInvalidStyle, s.LabelSize)
	case s.LabelMaxLines < 0:
		return fmt.Errorf("%w: negative label line limit %d", errInvalidStyle, s.LabelMaxLines)
	case s.CornerRadius < 0:
		return fmt.Errorf("%w: negative corner radius %v", errInvalidStyle, s.CornerRadius)
	case s.ThumbInset < 0:
		return fmt.Errorf("%w: negative thumb inset %v", errInvalidStyle, s.ThumbInset)
	case s.SlideDuration < 0:
		return fmt.Errorf("%w: negative slide duration %v", errInvalidStyle, s.SlideDuration)
	}
	return nil
}

// disabled returns s with every color faded.
func (s Style) disabled() Style {
	s.StrokeColor = mulAlpha(s.StrokeColor, 150)
	s.TrackColor = mulAlpha(s.TrackColor, 150)
	s.ThumbColor = mulAlpha(s.ThumbColor, 150)
	s.LabelColor = mulAlpha(s.LabelColor, 150)
	return s
}

func rgb(c uint32) color.NRGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}

func mulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}
