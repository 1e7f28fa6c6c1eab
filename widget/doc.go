// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget implements the state and geometry of a two-state
switch, independent of how it is drawn.

A Toggle wraps Gio's widget.Bool for input and adds change listeners
and a sliding thumb position. Geometry derives the track, label halves
and thumb of a switch from its size.

The zero value of Toggle is an unchecked switch:

	var dark widget.Toggle
	dark.OnChange(func(on bool) { ... })
*/
package widget
