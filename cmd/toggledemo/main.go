// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program showing themed switches. Pass --config to load switch
// attributes from a TOML or YAML file.

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"gioui.org/app"
	"gioui.org/gpu/headless"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/trueconf/toggle/widget/themed"
)

type options struct {
	config     string
	off, on    string
	checked    bool
	width      float32
	height     float32
	screenshot string

	// set records the label and state flags given on the command line.
	set map[string]bool
}

func main() {
	opts := parseFlags(os.Args[1:])
	defer klog.Flush()

	attrs, err := loadAttributes(opts)
	if err != nil {
		klog.ErrorS(err, "Failed to load switch attributes", "config", opts.config)
		klog.Flush()
		os.Exit(2)
	}
	u, err := newUI(attrs, opts)
	if err != nil {
		klog.ErrorS(err, "Invalid switch style", "config", opts.config)
		klog.Flush()
		os.Exit(2)
	}

	if opts.screenshot != "" {
		if err := saveScreenshot(u, opts.screenshot); err != nil {
			klog.ErrorS(err, "Failed to save screenshot", "path", opts.screenshot)
			klog.Flush()
			os.Exit(1)
		}
		klog.InfoS("Saved screenshot", "path", opts.screenshot)
		return
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("Themed switch"), app.Size(unit.Dp(360), unit.Dp(240)))
		if err := loop(w, u); err != nil {
			klog.ErrorS(err, "Window loop failed")
			klog.Flush()
			os.Exit(1)
		}
		klog.Flush()
		os.Exit(0)
	}()
	app.Main()
}

func parseFlags(args []string) options {
	var opts options
	fs := pflag.NewFlagSet("toggledemo", pflag.ExitOnError)
	fs.StringVar(&opts.config, "config", "", "TOML or YAML file with switch attributes")
	fs.StringVar(&opts.off, "off", "", "label of the unchecked half (overrides config)")
	fs.StringVar(&opts.on, "on", "", "label of the checked half (overrides config)")
	fs.BoolVar(&opts.checked, "checked", false, "start checked (overrides config)")
	fs.Float32Var(&opts.width, "width", 200, "switch width in dp")
	fs.Float32Var(&opts.height, "height", 48, "switch height in dp")
	fs.StringVar(&opts.screenshot, "screenshot", "", "save a PNG screenshot to a file and exit")

	klogFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)

	fs.Parse(args)
	opts.set = make(map[string]bool)
	for _, name := range []string{"off", "on", "checked"} {
		opts.set[name] = fs.Changed(name)
	}
	return opts
}

// loadAttributes returns the attributes from the config file, if any,
// with the label and state flags applied on top.
func loadAttributes(opts options) (themed.Attributes, error) {
	attrs := themed.DefaultAttributes()
	if opts.config != "" {
		var err error
		attrs, err = themed.LoadAttributes(opts.config)
		if err != nil {
			return themed.Attributes{}, err
		}
	}
	if opts.set["off"] {
		attrs.TextOff = opts.off
	}
	if opts.set["on"] {
		attrs.TextOn = opts.on
	}
	if opts.set["checked"] {
		attrs.Checked = opts.checked
	}
	return attrs, nil
}

func loop(w *app.Window, u *ui) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			u.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func saveScreenshot(u *ui, path string) error {
	const scale = 1.5
	sz := image.Point{X: 360 * scale, Y: 240 * scale}
	w, err := headless.NewWindow(sz.X, sz.Y)
	if err != nil {
		return err
	}
	defer w.Release()
	var ops op.Ops
	gtx := layout.Context{
		Ops: &ops,
		Metric: unit.Metric{
			PxPerDp: scale,
			PxPerSp: scale,
		},
		Constraints: layout.Exact(sz),
	}
	u.layout(gtx)
	if err := w.Frame(&ops); err != nil {
		return err
	}
	img := image.NewRGBA(image.Rectangle{Max: sz})
	if err := w.Screenshot(img); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
