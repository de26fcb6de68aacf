package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/x/explorer"
	"git.sr.ht/~whereswaldon/hue-wheel/backend"
)

func main() {
	cfg, err := parseConfig(os.Args[0], os.Stderr, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		log.Fatal(err)
	}
	go func() {
		w := app.NewWindow(
			app.Title("Hue Wheel"),
			app.Size(unit.Dp(420), unit.Dp(760)),
		)
		if err := loop(w, cfg); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window, cfg config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	bundle, err := backend.NewBundle(cfg.initial)
	if err != nil {
		return err
	}
	defer bundle.Trace.Close()
	ws := backend.NewWindowState(ctx, bundle, w)
	expl := explorer.NewExplorer(w)
	ui := NewUI(ctx, ws, expl, newTheme(cfg.light))

	if cfg.tracePath != "" {
		go func() {
			applied, err := bundle.Trace.ReplayFile(ctx, cfg.tracePath, cfg.follow)
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("failed replaying %q: %v", cfg.tracePath, err)
				return
			}
			log.Printf("replayed %d events from %q", applied, cfg.tracePath)
		}()
	}

	var ops op.Ops
	for {
		ev := w.NextEvent()
		expl.ListenEvents(ev)
		switch ev := ev.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, ev)
			ui.Layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}
