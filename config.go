package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"git.sr.ht/~whereswaldon/hue-wheel/picker"
)

type config struct {
	initial   picker.State
	tracePath string
	follow    bool
	light     bool
}

func parseConfig(name string, output io.Writer, args []string) (config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `%[1]s: pick a color on a hue wheel
Usage:

 %[1]s [flags]

Events recorded in a trace file (see -trace) are applied as if they came from the
pointer, and with -follow the file keeps being watched for new events.

`, name)
		fs.PrintDefaults()
	}
	def := picker.DefaultState()
	hue := fs.Float64("hue", float64(def.Hue), "initial hue in [0,1)")
	sat := fs.Float64("sat", float64(def.Saturation), "initial saturation in [0,1]")
	lum := fs.Float64("lum", float64(def.Luminance), "initial luminance in [0,1]")
	tracePath := fs.String("trace", "", "CSV event trace to replay on startup")
	follow := fs.Bool("follow", false, "keep applying events appended to the -trace file")
	light := fs.Bool("light", false, "use a light theme")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}
	cfg := config{
		initial: picker.State{
			Hue:        float32(*hue),
			Saturation: float32(*sat),
			Luminance:  float32(*lum),
		},
		tracePath: *tracePath,
		follow:    *follow,
		light:     *light,
	}
	if err := cfg.initial.Validate(); err != nil {
		return config{}, fmt.Errorf("invalid initial color: %w", err)
	}
	if cfg.follow && cfg.tracePath == "" {
		return config{}, errors.New("-follow requires -trace")
	}
	return cfg, nil
}
