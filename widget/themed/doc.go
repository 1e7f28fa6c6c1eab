// SPDX-License-Identifier: Unlicense OR MIT

/*
Package themed draws a toggle as a rounded outlined track showing both
state labels side by side, with a translucent thumb that slides over
the active label.

Looks are described by a Style value. DefaultStyle is a thin light
outline with white labels, meant for dark backgrounds; Attributes load
variations from TOML or YAML.

	th := themed.DefaultStyle()
	themed.Switch(th, shaper, &toggle, "OFF", "ON").Layout(gtx)

The switch only asks for new frames while the thumb is moving.
*/
package themed
