// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

func TestLoadAttributesFlags(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "switch.toml")
	if err := os.WriteFile(cfg, []byte("text_off = \"Mic off\"\nchecked = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := parseFlags([]string{"--config", cfg, "--on", "Mic on"})
	attrs, err := loadAttributes(opts)
	if err != nil {
		t.Fatal(err)
	}
	if attrs.TextOff != "Mic off" || attrs.TextOn != "Mic on" || !attrs.Checked {
		t.Errorf("attributes = %+v", attrs)
	}

	opts = parseFlags([]string{"--config", cfg, "--checked=false", "--off="})
	attrs, err = loadAttributes(opts)
	if err != nil {
		t.Fatal(err)
	}
	if attrs.Checked || attrs.TextOff != "" {
		t.Errorf("flags did not override config: %+v", attrs)
	}
}

func TestUILayout(t *testing.T) {
	opts := parseFlags(nil)
	attrs, err := loadAttributes(opts)
	if err != nil {
		t.Fatal(err)
	}
	u, err := newUI(attrs, opts)
	if err != nil {
		t.Fatal(err)
	}
	var ops op.Ops
	gtx := layout.Context{
		Ops:         &ops,
		Metric:      unit.Metric{PxPerDp: 2, PxPerSp: 2},
		Constraints: layout.Exact(image.Pt(720, 480)),
	}
	for i := 0; i < 2; i++ {
		ops.Reset()
		if dims := u.layout(gtx); dims.Size != image.Pt(720, 480) {
			t.Errorf("size = %v", dims.Size)
		}
		u.main.Toggle()
	}
}
