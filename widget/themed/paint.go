// SPDX-License-Identifier: Unlicense OR MIT

package themed

import (
	"image"
	"math"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"

	"github.com/trueconf/toggle/widget"
)

// PaintTrack draws the track of g: the optional fill, the rounded
// outline, and the off and on labels centered in their halves.
func (s Style) PaintTrack(gtx layout.Context, sh *text.Shaper, g widget.Geometry, off, on string) {
	if g.Track.Empty() {
		return
	}
	radius := clampRadius(g.Track, g.Radius)
	if s.TrackColor.A != 0 {
		paint.FillShape(gtx.Ops, s.TrackColor, clip.UniformRRect(g.Track, radius).Op(gtx.Ops))
	}
	if width := float32(s.StrokeWidth) * gtx.Metric.PxPerDp; width > 0 && s.StrokeColor.A != 0 {
		r := widget.InsetRect(g.Track, strokeInset(width))
		if !r.Empty() {
			path := clip.UniformRRect(r, clampRadius(r, radius)).Path(gtx.Ops)
			paint.FillShape(gtx.Ops, s.StrokeColor, clip.Stroke{Path: path, Width: width}.Op())
		}
	}
	s.LayoutLabel(gtx, sh, g.Off, off)
	s.LayoutLabel(gtx, sh, g.On, on)
}

// PaintThumb fills r with the rounded thumb. Empty rectangles are
// skipped.
func (s Style) PaintThumb(gtx layout.Context, r image.Rectangle, radius int) {
	if r.Empty() || s.ThumbColor.A == 0 {
		return
	}
	paint.FillShape(gtx.Ops, s.ThumbColor, clip.UniformRRect(r, clampRadius(r, radius)).Op(gtx.Ops))
}

// strokeInset is the inset that keeps a stroke of the given width
// inside its rectangle.
func strokeInset(width float32) int {
	return int(math.Ceil(float64(width) / 2))
}

// clampRadius limits radius to what fits in r.
func clampRadius(r image.Rectangle, radius int) int {
	return max(0, min(radius, r.Dx()/2, r.Dy()/2))
}
