package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"scrollscene/app"
	"scrollscene/hal"
	"scrollscene/internal/buildinfo"
	"scrollscene/internal/experience"
)

func main() {
	var headless hal.HeadlessConfig
	var configPath, assetsDir, snapshot string
	var wireframe, version bool
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&headless.Width, "width", 960, "Viewport width in pixels.")
	flag.IntVar(&headless.Height, "height", 600, "Viewport height in pixels.")
	flag.Float64Var(&headless.Autoscroll, "autoscroll", 0, "Headless wheel notches per second.")
	flag.BoolVar(&headless.Quiet, "quiet", false, "Discard log output.")
	flag.StringVar(&configPath, "config", "", "JSON scene parameter file.")
	flag.StringVar(&assetsDir, "assets", "assets", "Directory textures are loaded from.")
	flag.StringVar(&snapshot, "snapshot", "", "Write the last frame to this PNG file on exit.")
	flag.BoolVar(&wireframe, "wireframe", false, "Start in wireframe mode.")
	flag.BoolVar(&version, "version", false, "Print the build version and exit.")
	flag.Parse()

	if version {
		fmt.Printf("scrollscene %s (commit %s, built %s)\n", buildinfo.Short(), buildinfo.Commit, buildinfo.Date)
		return
	}

	scene, err := experience.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg := app.Config{
		Scene:     scene,
		Assets:    assetsDir,
		Snapshot:  snapshot,
		Wireframe: wireframe,
	}

	var a *app.App
	newApp := func(h hal.HAL) func() error {
		a = app.New(h, cfg)
		return a.StepFunc()
	}

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, newApp, headless)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	} else {
		err = hal.RunWindow(newApp, hal.WindowConfig{
			Title:  "scrollscene " + buildinfo.Short(),
			Width:  headless.Width,
			Height: headless.Height,
			Scale:  1,
			TPS:    60,
			Quiet:  headless.Quiet,
		})
	}

	if a != nil {
		if cerr := a.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
