// Command ringdown computes the informational diffusivity of
// gravitational-wave ringdown events.
//
// Usage:
//
//	ringdown -event GW150914
//	ringdown -event GW150914 -event GW190521 -json
//	ringdown -custom tau_ms=4.0 -custom freq_hz=251
//	ringdown -custom tau_ms=4.0 freq_hz=251        # trailing args are key=value too
//	ringdown -event GW150914 -wav ringdown.wav     # write a sonified waveform
//	ringdown -catalogue extra.yaml -list           # show the merged catalogue
//
// Exit status is 0 on success, 1 on a lookup, validation, unit, or I/O
// error, and 2 when no events are selected or flags are malformed.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	ringdown "github.com/gwphen/go-ringdown"
	"github.com/gwphen/go-ringdown/internal/waveform"
)

func main() {
	var (
		eventNames  []string
		customItems []string
	)
	var (
		customName    = flag.String("name", "", "Optional label for a custom event")
		cataloguePath = flag.String("catalogue", "", "YAML catalogue extension file to merge over the built-in events")
		jsonOut       = flag.Bool("json", false, "Emit JSON instead of text")
		listOnly      = flag.Bool("list", false, "List the catalogue and exit")
		wavPath       = flag.String("wav", "", "Write a sonified ringdown waveform to this WAV path")
		verbose       = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Func("event", "Evaluate a catalogued event by name (repeatable)", func(s string) error {
		eventNames = append(eventNames, s)
		return nil
	})
	flag.Func("custom", "Supply a custom parameter as key=value: tau_ms=<float>, freq_hz=<float> (repeatable)", func(s string) error {
		customItems = append(customItems, s)
		return nil
	})
	flag.Parse()

	setupLogging(*verbose)

	cat := ringdown.Builtin()
	if *cataloguePath != "" {
		extended, err := cat.Extend(*cataloguePath)
		if err != nil {
			fatal(err)
		}
		slog.Debug("catalogue extended", "path", *cataloguePath, "events", len(extended))
		cat = extended
	}

	if *listOnly {
		printCatalogue(cat)
		return
	}

	// Trailing positional arguments are additional key=value custom
	// parameters, so `-custom tau_ms=4.0 freq_hz=251` works as one flag.
	if len(customItems) > 0 {
		customItems = append(customItems, flag.Args()...)
	} else if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %v\n", flag.Args())
		flag.Usage()
		os.Exit(exitUsage)
	}

	selection, err := buildSelection(cat, eventNames, customItems, *customName)
	if err != nil {
		fatal(err)
	}
	if len(selection) == 0 {
		fmt.Fprintln(os.Stderr, "no events specified: use -event or -custom to provide parameters")
		flag.Usage()
		os.Exit(exitUsage)
	}

	reports, err := ringdown.SummarizeAll(selection)
	if err != nil {
		fatal(err)
	}

	if *wavPath != "" {
		if err := writeSonifications(*wavPath, selection); err != nil {
			fatal(err)
		}
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			fatal(err)
		}
		return
	}

	for i, report := range reports {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(report.Text())
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))
}

func fatal(err error) {
	slog.Error("ringdown failed", "err", err)
	os.Exit(exitFailure)
}

func printCatalogue(cat ringdown.Catalogue) {
	for _, name := range cat.Names() {
		ev := cat[name]
		fmt.Printf("%s: tau_220=%.3f ms freq_220=%.1f Hz  [%s]\n",
			name,
			float64(ev.Tau)*millisecondsPerSecond,
			float64(ev.Freq),
			ev.Reference)
	}
}

// writeSonifications synthesizes and writes one waveform per selected
// event. Runs before any numeric output so a failed write never leaves a
// half-reported invocation.
func writeSonifications(base string, events []ringdown.Event) error {
	multiple := len(events) > 1
	for _, ev := range events {
		samples, err := waveform.Damped(float64(ev.Tau), float64(ev.Freq), sonifySampleRate, 0)
		if err != nil {
			return fmt.Errorf("sonification of %s: %w", ev.Name, err)
		}
		path := sonifyPath(base, ev.Name, multiple)
		if err := writeWAV(path, samples, sonifySampleRate, sonifyBitDepth); err != nil {
			return fmt.Errorf("sonification of %s: %w", ev.Name, err)
		}
		slog.Info("wrote sonification", "event", ev.Name, "path", path, "samples", len(samples))
	}
	return nil
}
