// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGeometryResize(t *testing.T) {
	var g Geometry
	if !g.Resize(image.Pt(200, 100), 8, 4) {
		t.Fatal("first resize reported no change")
	}
	want := Geometry{
		Size:       image.Pt(200, 100),
		Track:      image.Rect(0, 0, 200, 100),
		Off:        image.Rect(0, 0, 100, 100),
		On:         image.Rect(100, 0, 200, 100),
		Thumb:      image.Rect(0, 0, 100, 100),
		ThumbPaint: image.Rect(4, 4, 96, 96),
		Radius:     8,
		Inset:      4,
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("geometry mismatch (-want +got):\n%s", diff)
	}
	if g.Resize(image.Pt(200, 100), 8, 4) {
		t.Error("resize to the same size reported a change")
	}
}

func TestGeometryResizeRecomputesAll(t *testing.T) {
	var g Geometry
	g.Resize(image.Pt(200, 100), 8, 4)
	g.Resize(image.Pt(61, 30), 8, 4)
	if g.Track != image.Rect(0, 0, 61, 30) {
		t.Errorf("track = %v", g.Track)
	}
	if g.Off != image.Rect(0, 0, 30, 30) || g.On != image.Rect(30, 0, 61, 30) {
		t.Errorf("halves = %v %v", g.Off, g.On)
	}
	if g.Thumb != image.Rect(0, 0, 30, 30) || g.ThumbPaint != image.Rect(4, 4, 26, 26) {
		t.Errorf("thumb = %v, paint = %v", g.Thumb, g.ThumbPaint)
	}
}

func TestGeometryResizeNegative(t *testing.T) {
	var g Geometry
	g.Resize(image.Pt(-5, -1), 0, 0)
	if g.Size != (image.Point{}) || !g.Track.Empty() {
		t.Errorf("negative size not clamped: %+v", g)
	}
}

func TestSplitTrack(t *testing.T) {
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, 0, 10),
		image.Rect(0, 0, 1, 10),
		image.Rect(0, 0, 200, 100),
		image.Rect(0, 0, 201, 100),
		image.Rect(13, 7, 50, 20),
		image.Rect(-10, 0, 11, 4),
	} {
		left, right := SplitTrack(r)
		w := r.Dx()
		if left.Dx() != w/2 {
			t.Errorf("%v: left width %d, want %d", r, left.Dx(), w/2)
		}
		if right.Dx() != w-w/2 {
			t.Errorf("%v: right width %d, want %d", r, right.Dx(), w-w/2)
		}
		if left.Max.X != right.Min.X {
			t.Errorf("%v: halves not adjacent: %v %v", r, left, right)
		}
		if left.Overlaps(right) {
			t.Errorf("%v: halves overlap: %v %v", r, left, right)
		}
		if u := left.Union(right); w > 0 && u != r {
			t.Errorf("%v: union %v does not cover", r, u)
		}
		if left.Min.Y != r.Min.Y || left.Max.Y != r.Max.Y || right.Min.Y != r.Min.Y || right.Max.Y != r.Max.Y {
			t.Errorf("%v: halves changed height: %v %v", r, left, right)
		}
	}
}

func TestInsetRect(t *testing.T) {
	for _, tc := range []struct {
		r     image.Rectangle
		n     int
		empty bool
	}{
		{image.Rect(0, 0, 100, 100), 4, false},
		{image.Rect(10, 20, 30, 60), 4, false},
		{image.Rect(0, 0, 8, 100), 4, true},
		{image.Rect(0, 0, 7, 7), 4, true},
		{image.Rect(0, 0, 9, 9), 4, false},
		{image.Rect(0, 0, 0, 0), 4, true},
	} {
		got := InsetRect(tc.r, tc.n)
		if got.Min.X-tc.r.Min.X != tc.n || got.Min.Y-tc.r.Min.Y != tc.n ||
			tc.r.Max.X-got.Max.X != tc.n || tc.r.Max.Y-got.Max.Y != tc.n {
			t.Errorf("InsetRect(%v, %d) = %v", tc.r, tc.n, got)
		}
		if got.Empty() != tc.empty {
			t.Errorf("InsetRect(%v, %d).Empty() = %v, want %v", tc.r, tc.n, got.Empty(), tc.empty)
		}
	}
}

func TestThumbAt(t *testing.T) {
	var g Geometry
	g.Resize(image.Pt(201, 100), 8, 4)
	if got := g.ThumbAt(0); got != image.Rect(4, 4, 96, 96) {
		t.Errorf("ThumbAt(0) = %v", got)
	}
	// The checked thumb ends flush with the on half.
	on := InsetRect(g.On, 4)
	on.Min.X = on.Max.X - g.ThumbPaint.Dx()
	if got := g.ThumbAt(1); got != on {
		t.Errorf("ThumbAt(1) = %v, want %v", got, on)
	}
	if got := g.ThumbAt(2); got != g.ThumbAt(1) {
		t.Errorf("ThumbAt(2) = %v, not clamped", got)
	}
	if got := g.ThumbAt(-1); got != g.ThumbAt(0) {
		t.Errorf("ThumbAt(-1) = %v, not clamped", got)
	}
	if got := g.ThumbAt(.5); got.Min.X != 4+51 {
		t.Errorf("ThumbAt(.5).Min.X = %d", got.Min.X)
	}
}
