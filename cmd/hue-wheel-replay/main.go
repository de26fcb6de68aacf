package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"git.sr.ht/~whereswaldon/hue-wheel/backend"
	"git.sr.ht/~whereswaldon/hue-wheel/picker"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `%[1]s: replay a hue-wheel event trace without a window
Usage:

 %[1]s [flags] [trace.csv] > colors.csv

OR

 some-event-source | %[1]s

Each line of the trace is one event: "hue, v", "sat, v", "lum, v" or
"touch, center x, center y, size, touch x, touch y". One CSV row is written for
the initial color and for every event applied.

`, os.Args[0])
	flag.PrintDefaults()
}

var heading = []string{"hue", "saturation", "luminance", "hex", "marker x", "marker y"}

func formatFloat(v float32) string {
	return fmt.Sprintf("%f", v)
}

func record(vm picker.ViewModel) []string {
	return []string{
		formatFloat(vm.Hue),
		formatFloat(vm.Saturation),
		formatFloat(vm.Luminance),
		vm.Hex,
		formatFloat(vm.MarkerOffset.X),
		formatFloat(vm.MarkerOffset.Y),
	}
}

// run replays input into a fresh store and writes every snapshot to output.
func run(ctx context.Context, initial picker.State, input io.Reader, follow bool, output io.Writer) (int, error) {
	store := backend.NewStore(initial)
	trace, err := backend.NewTrace(store)
	if err != nil {
		return 0, err
	}
	defer trace.Close()

	w := csv.NewWriter(output)
	if err := w.Write(heading); err != nil {
		return 0, fmt.Errorf("failed writing heading: %w", err)
	}
	var writeErr error
	cancel := store.Subscribe(func(vm picker.ViewModel) {
		if writeErr != nil {
			return
		}
		writeErr = w.Write(record(vm))
		// Followed traces are open ended; keep the output current.
		if follow {
			w.Flush()
		}
	})
	applied, err := trace.Replay(ctx, input, follow)
	cancel()
	w.Flush()
	if follow && errors.Is(err, context.Canceled) {
		err = nil
	}
	return applied, errors.Join(err, writeErr, w.Error())
}

func main() {
	flag.Usage = usage
	def := picker.DefaultState()
	hue := flag.Float64("hue", float64(def.Hue), "initial hue in [0,1)")
	sat := flag.Float64("sat", float64(def.Saturation), "initial saturation in [0,1]")
	lum := flag.Float64("lum", float64(def.Luminance), "initial luminance in [0,1]")
	follow := flag.Bool("follow", false, "keep applying events appended to the trace file until interrupted")
	outputName := flag.String("output", "-", "Output file for CSV color data")
	flag.Parse()

	initial := picker.State{
		Hue:        float32(*hue),
		Saturation: float32(*sat),
		Luminance:  float32(*lum),
	}
	if err := initial.Validate(); err != nil {
		log.Fatalf("invalid initial color: %v", err)
	}

	var input io.ReadCloser = os.Stdin
	switch flag.NArg() {
	case 0:
		if *follow {
			log.Fatalf("-follow requires a trace file argument")
		}
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("failed opening trace %q: %v", flag.Arg(0), err)
		}
		input = f
	default:
		flag.Usage()
		os.Exit(2)
	}
	defer input.Close()

	var output io.WriteCloser
	if *outputName == "-" {
		output = os.Stdout
	} else {
		f, err := os.Create(*outputName)
		if err != nil {
			log.Fatalf("failed opening output file %q: %v", *outputName, err)
		}
		output = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	applied, err := run(ctx, initial, input, *follow, output)
	err = errors.Join(err, output.Close())
	if err != nil {
		log.Fatalf("failed replaying trace: %v", err)
	}
	log.Printf("applied %d events", applied)
}
