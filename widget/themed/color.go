// SPDX-License-Identifier: Unlicense OR MIT

package themed

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for color strings ParseColor does not
// accept.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor parses "#RRGGBB" or "#AARRGGBB", alpha first.
func ParseColor(s string) (color.NRGBA, error) {
	h, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w %q: missing #", ErrInvalidColor, s)
	}
	alpha := uint8(0xff)
	switch len(h) {
	case 6:
	case 8:
		a, err := strconv.ParseUint(h[:2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
		}
		alpha = uint8(a)
		h = h[2:]
	default:
		return color.NRGBA{}, fmt.Errorf("%w %q: want 6 or 8 hex digits", ErrInvalidColor, s)
	}
	c, err := colorful.Hex("#" + h)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// FormatColor is the inverse of ParseColor. Opaque colors use the short
// form.
func FormatColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}
