// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"time"

	"gioui.org/layout"
	giowidget "gioui.org/widget"
)

// Toggle is the state of a two-state switch. Pointer, keyboard and
// semantic handling come from the embedded Gio Bool; Toggle adds change
// listeners and tracks the sliding thumb.
type Toggle struct {
	b giowidget.Bool

	listeners []func(checked bool)
	changed   bool

	// pos is the thumb position in [0,1], valid once placed is set.
	pos     float32
	placed  bool
	last    time.Time
	restart bool
}

// Checked reports the current state.
func (t *Toggle) Checked() bool {
	return t.b.Value
}

// SetChecked sets the state. Listeners are notified only when the
// state actually changes.
func (t *Toggle) SetChecked(checked bool) {
	if t.b.Value == checked {
		return
	}
	t.b.Value = checked
	t.notify()
}

// Toggle flips the state.
func (t *Toggle) Toggle() {
	t.SetChecked(!t.b.Value)
}

// OnChange registers f to be called with the new state after every
// change, whether from input or SetChecked.
func (t *Toggle) OnChange(f func(checked bool)) {
	t.listeners = append(t.listeners, f)
}

// Changed reports whether the state has changed since the last call to
// Changed.
func (t *Toggle) Changed() bool {
	changed := t.changed
	t.changed = false
	return changed
}

// Update processes input events and reports whether the state changed.
func (t *Toggle) Update(gtx layout.Context) bool {
	if !t.b.Update(gtx) {
		return false
	}
	t.notify()
	return true
}

// Layout processes input and lays out w as the clickable area of the
// toggle.
func (t *Toggle) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	t.Update(gtx)
	return t.b.Layout(gtx, w)
}

// Position advances the thumb toward the current state and returns its
// position, 0 for unchecked and 1 for checked. The thumb covers the full
// distance in d. The second result reports whether the thumb is still
// moving; callers should only request another frame while it is.
func (t *Toggle) Position(gtx layout.Context, d time.Duration) (float32, bool) {
	var target float32
	if t.b.Value {
		target = 1
	}
	if !t.placed || d <= 0 {
		t.placed = true
		t.restart = false
		t.pos = target
		return t.pos, false
	}
	if t.pos == target {
		t.restart = false
		return t.pos, false
	}
	if t.restart {
		// First frame after a change; the previous frame may be
		// arbitrarily old.
		t.restart = false
		t.last = gtx.Now
		return t.pos, true
	}
	step := float32(gtx.Now.Sub(t.last)) / float32(d)
	t.last = gtx.Now
	if step < 0 {
		step = 0
	}
	if target > t.pos {
		t.pos = min(target, t.pos+step)
	} else {
		t.pos = max(target, t.pos-step)
	}
	return t.pos, t.pos != target
}

func (t *Toggle) notify() {
	t.changed = true
	t.restart = true
	for _, f := range t.listeners {
		f(t.b.Value)
	}
}
