// Command sysid identifies continuous-time transfer functions from
// measured frequency-response data and provides a few supporting
// operations (connecting, open/closed-loop conversion, polar conversion,
// stability checking, convergence plotting) on the same sample format.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zhidao-sysid/sysid/config"
	"github.com/zhidao-sysid/sysid/diag"
	"github.com/zhidao-sysid/sysid/fr"
	"github.com/zhidao-sysid/sysid/ident"
	"github.com/zhidao-sysid/sysid/tf"
)

func usage() {
	fmt.Println(`usage: sysid <identify|connect|loop|convert|stable|plot> [options]

Subcommands:
  identify   Fit a transfer function to sampled frequency-response data
             Flags:
               -in       <path>   sample file (required)
               -nn       <int>    numerator degree (default: from config)
               -nd       <int>    denominator degree (default: from config)
               -config   <path>   optional TOML run parameters
               -v                 print per-phase timing after completion
               -timeout  <dur>    wall-clock deadline, e.g. 30s (default: none)
               -history-out <path> write the step-size history for "plot" (default: none)

  connect    Multiply a sample list's complex gain by a transfer function
             Flags:
               -in  <path>  sample file (required)
               -tf  <path>  transfer function file (required), "num/den" lines
               -out <path>  output sample file (required)

  loop       Convert a sample list between open-loop and closed-loop gain
             Usage: sysid loop <open2closed|closed2open> -in a.txt -out b.txt

  convert    One-shot polar round trip printed to stdout
             Flags: -f <hz> -g <db> -p <deg>

  stable     Report Routh-Hurwitz stability of a transfer function file
             Flags: -tf <path>

  plot       Render an HTML chart of a step-size history written by
             "identify -history-out"
             Flags: -history <path> -out <path>`)
	os.Exit(1)
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "identify":
		runIdentify(os.Args[2:])
	case "connect":
		runConnect(os.Args[2:])
	case "loop":
		runLoop(os.Args[2:])
	case "convert":
		runConvert(os.Args[2:])
	case "stable":
		runStable(os.Args[2:])
	case "plot":
		runPlot(os.Args[2:])
	default:
		usage()
	}
}

func runIdentify(args []string) {
	fs := flag.NewFlagSet("identify", flag.ExitOnError)
	inPath := fs.String("in", "", "sample file (required)")
	nn := fs.Int("nn", -1, "numerator degree (-1 = use config)")
	nd := fs.Int("nd", -1, "denominator degree (-1 = use config)")
	cfgPath := fs.String("config", "", "optional TOML run parameters")
	verbose := fs.Bool("v", false, "print per-phase timing after completion")
	timeout := fs.Duration("timeout", 0, "wall-clock deadline, e.g. 30s (0 = none)")
	historyPath := fs.String("history-out", "", "optional path to write the step-size history, one value per line")
	fs.Parse(args)

	if *inPath == "" {
		log.Fatal().Msg("identify: -in is required")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("identify: load config")
	}
	if *nn >= 0 {
		cfg.NumDegree = *nn
	}
	if *nd >= 0 {
		cfg.DenDegree = *nd
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if *timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	defer diag.Track(time.Now(), "identify:total")

	list, err := fr.ReadFile(*inPath)
	if err != nil {
		log.Fatal().Err(err).Msg("identify: read samples")
	}
	list.Filter(cfg.FMin, cfg.FMax)

	done := make(chan struct{})
	var result tf.TF
	var history []float64
	var identErr error
	go func() {
		readStart := time.Now()
		result, history, identErr = ident.IdentifyWithHistory(list.Samples, cfg.NumDegree, cfg.DenDegree, cfg.MaxIter, cfg.Tolerance)
		diag.Track(readStart, "identify:core")
		close(done)
	}()

	select {
	case <-ctx.Done():
		log.Fatal().Msg("identify: timed out")
	case <-done:
	}

	if identErr != nil {
		log.Error().Err(identErr).Msg("identify: did not fully converge")
	}
	fmt.Println(result.String())

	if *historyPath != "" {
		if err := writeHistoryFile(*historyPath, history); err != nil {
			log.Fatal().Err(err).Msg("identify: write history")
		}
	}

	if *verbose {
		for _, e := range diag.SnapshotAndReset() {
			fmt.Printf("  %-20s %s\n", e.Label, e.Dur)
		}
	}
	if identErr != nil {
		os.Exit(1)
	}
}

func runConnect(args []string) {
	fs := flag.NewFlagSet("connect", flag.ExitOnError)
	inPath := fs.String("in", "", "sample file (required)")
	tfPath := fs.String("tf", "", "transfer function file (required)")
	outPath := fs.String("out", "", "output sample file (required)")
	fs.Parse(args)

	if *inPath == "" || *tfPath == "" || *outPath == "" {
		log.Fatal().Msg("connect: -in, -tf, and -out are required")
	}

	list, err := fr.ReadFile(*inPath)
	if err != nil {
		log.Fatal().Err(err).Msg("connect: read samples")
	}
	g, err := readTFFile(*tfPath)
	if err != nil {
		log.Fatal().Err(err).Msg("connect: read transfer function")
	}
	out, err := list.ConnectWithTF(g)
	if err != nil {
		log.Fatal().Err(err).Msg("connect: apply transfer function")
	}
	if err := out.WriteFile(*outPath); err != nil {
		log.Fatal().Err(err).Msg("connect: write samples")
	}
	fmt.Printf("wrote %d samples to %s\n", len(out.Samples), *outPath)
}

func runLoop(args []string) {
	if len(args) < 1 {
		log.Fatal().Msg("loop: requires open2closed or closed2open")
	}
	mode := args[0]
	fs := flag.NewFlagSet("loop", flag.ExitOnError)
	inPath := fs.String("in", "", "sample file (required)")
	outPath := fs.String("out", "", "output sample file (required)")
	fs.Parse(args[1:])

	if *inPath == "" || *outPath == "" {
		log.Fatal().Msg("loop: -in and -out are required")
	}

	list, err := fr.ReadFile(*inPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loop: read samples")
	}

	var out fr.List
	switch mode {
	case "open2closed":
		out, err = list.OpenToClosed()
	case "closed2open":
		out, err = list.ClosedToOpen()
	default:
		log.Fatal().Str("mode", mode).Msg("loop: unknown mode, want open2closed or closed2open")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("loop: convert samples")
	}
	if err := out.WriteFile(*outPath); err != nil {
		log.Fatal().Err(err).Msg("loop: write samples")
	}
	fmt.Printf("wrote %d samples to %s\n", len(out.Samples), *outPath)
}

func runConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	f := fs.Float64("f", 0, "frequency (hz)")
	g := fs.Float64("g", 0, "gain (db)")
	p := fs.Float64("p", 0, "phase (deg)")
	fs.Parse(args)

	sample := fr.FR{F: *f, G: *g, P: *p}
	c, omega := sample.ToComplex()
	fmt.Printf("omega=%g re=%g im=%g\n", omega, c.Re, c.Im)
}

func runStable(args []string) {
	fs := flag.NewFlagSet("stable", flag.ExitOnError)
	tfPath := fs.String("tf", "", "transfer function file (required)")
	fs.Parse(args)

	if *tfPath == "" {
		log.Fatal().Msg("stable: -tf is required")
	}
	g, err := readTFFile(*tfPath)
	if err != nil {
		log.Fatal().Err(err).Msg("stable: read transfer function")
	}
	stable, err := g.IsStable()
	if err != nil {
		log.Fatal().Err(err).Msg("stable: evaluate stability")
	}
	fmt.Printf("stable=%v\n", stable)
}

func runPlot(args []string) {
	fs := flag.NewFlagSet("plot", flag.ExitOnError)
	historyPath := fs.String("history", "", "convergence history file, one step size per line (required)")
	outPath := fs.String("out", "convergence.html", "output HTML file")
	fs.Parse(args)

	if *historyPath == "" {
		log.Fatal().Msg("plot: -history is required")
	}
	history, err := readHistoryFile(*historyPath)
	if err != nil {
		log.Fatal().Err(err).Msg("plot: read history")
	}
	if err := diag.ConvergencePlot(history, *outPath); err != nil {
		log.Fatal().Err(err).Msg("plot: render")
	}
	fmt.Printf("wrote %s\n", *outPath)
}
