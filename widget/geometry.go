// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"
)

// Geometry is the set of regions a toggle paints into, derived from its
// size. The track spans the whole toggle and is split into an off half
// and an on half; the thumb covers the off half and is shrunk by Inset
// before painting.
type Geometry struct {
	Size image.Point
	// Track is the full toggle area.
	Track image.Rectangle
	// Off and On are the label areas, left and right.
	Off, On image.Rectangle
	// Thumb is the thumb bounds at the unchecked position.
	Thumb image.Rectangle
	// ThumbPaint is Thumb moved inward by Inset on every edge.
	ThumbPaint image.Rectangle
	Radius     int
	Inset      int
}

// Resize recomputes every region for a toggle of the given size. It
// reports whether anything changed. Negative dimensions are treated as
// zero.
func (g *Geometry) Resize(size image.Point, radius, inset int) bool {
	size.X = max(size.X, 0)
	size.Y = max(size.Y, 0)
	if size == g.Size && radius == g.Radius && inset == g.Inset {
		return false
	}
	g.Size = size
	g.Radius = radius
	g.Inset = inset
	g.Track = image.Rectangle{Max: size}
	g.Off, g.On = SplitTrack(g.Track)
	g.Thumb = image.Rectangle{Max: image.Pt(size.X/2, size.Y)}
	g.ThumbPaint = InsetRect(g.Thumb, inset)
	return true
}

// ThumbAt returns the thumb paint bounds for a slide position, where 0
// is the unchecked and 1 the checked position. At 1 the thumb lines up
// with the right edge of the track.
func (g Geometry) ThumbAt(pos float32) image.Rectangle {
	pos = min(max(pos, 0), 1)
	travel := g.Size.X - g.Thumb.Dx()
	dx := int(math.Round(float64(pos) * float64(travel)))
	return g.ThumbPaint.Add(image.Pt(dx, 0))
}

// SplitTrack splits r by width into a left and a right half. The left
// half is ⌊W/2⌋ wide; the right half takes the remainder so the two
// are adjacent and cover r exactly.
func SplitTrack(r image.Rectangle) (left, right image.Rectangle) {
	mid := r.Min.X + r.Dx()/2
	left = image.Rect(r.Min.X, r.Min.Y, mid, r.Max.Y)
	right = image.Rect(mid, r.Min.Y, r.Max.X, r.Max.Y)
	return left, right
}

// InsetRect moves every edge of r inward by n. Unlike image.Rect the
// result is not canonicalized: a rectangle smaller than 2n comes back
// inverted, and reports Empty.
func InsetRect(r image.Rectangle, n int) image.Rectangle {
	d := image.Pt(n, n)
	return image.Rectangle{Min: r.Min.Add(d), Max: r.Max.Sub(d)}
}
