// SPDX-License-Identifier: Unlicense OR MIT

package themed

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	giowidget "gioui.org/widget"
)

// inf is an unbounded label height; labels taller than their region
// overflow it evenly above and below.
const inf = 1e6

// LayoutLabel draws txt centered in r and returns the bounds it drew
// into. Nothing is drawn, and ok is false, when txt is empty or r has no
// width.
func (s Style) LayoutLabel(gtx layout.Context, sh *text.Shaper, r image.Rectangle, txt string) (drawn image.Rectangle, ok bool) {
	if txt == "" || r.Dx() <= 0 {
		return image.Rectangle{}, false
	}
	// The label is as wide as r and centers its lines; the offset
	// below centers it vertically.
	gtx.Constraints = layout.Constraints{
		Min: image.Pt(r.Dx(), 0),
		Max: image.Pt(r.Dx(), inf),
	}

	colMacro := op.Record(gtx.Ops)
	paint.ColorOp{Color: s.LabelColor}.Add(gtx.Ops)
	material := colMacro.Stop()

	m := op.Record(gtx.Ops)
	l := giowidget.Label{Alignment: text.Middle, MaxLines: s.LabelMaxLines}
	dims := l.Layout(gtx, sh, s.LabelFont, s.LabelSize, txt, material)
	call := m.Stop()

	off := CenterOffset(r, dims.Size)
	t := op.Offset(off).Push(gtx.Ops)
	call.Add(gtx.Ops)
	t.Pop()
	return image.Rectangle{Min: off, Max: off.Add(dims.Size)}, true
}

// CenterOffset returns the top-left corner that centers content of size
// sz in r.
func CenterOffset(r image.Rectangle, sz image.Point) image.Point {
	return r.Min.Add(r.Size().Sub(sz).Div(2))
}
