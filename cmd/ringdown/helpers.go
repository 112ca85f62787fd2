package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	ringdown "github.com/gwphen/go-ringdown"
)

// parseCustomParams parses key=value items into explicit ringdown
// parameters. Both tau_ms and freq_hz are required; unknown or duplicate
// keys are rejected.
func parseCustomParams(items []string) (tauMS, freqHz float64, err error) {
	params := make(map[string]float64, len(items))
	for _, item := range items {
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			return 0, 0, fmt.Errorf("%w: expected key=value, got %q", ringdown.ErrInvalidParameter, item)
		}
		key = strings.TrimSpace(key)
		if key != customKeyTau && key != customKeyFreq {
			return 0, 0, fmt.Errorf("%w: unknown parameter %q (expected %s, %s)",
				ringdown.ErrInvalidParameter, key, customKeyTau, customKeyFreq)
		}
		if _, dup := params[key]; dup {
			return 0, 0, fmt.Errorf("%w: duplicate parameter %q", ringdown.ErrInvalidParameter, key)
		}
		v, parseErr := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if parseErr != nil {
			return 0, 0, fmt.Errorf("%w: %s is not numeric: %q", ringdown.ErrInvalidParameter, key, value)
		}
		params[key] = v
	}

	var missing []string
	for _, key := range []string{customKeyFreq, customKeyTau} {
		if _, ok := params[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return 0, 0, fmt.Errorf("%w: missing required parameter(s): %s",
			ringdown.ErrInvalidParameter, strings.Join(missing, ", "))
	}

	return params[customKeyTau], params[customKeyFreq], nil
}

// buildSelection resolves the requested catalogue events and, when custom
// parameter items are present, appends an event built from them.
func buildSelection(cat ringdown.Catalogue, names, customItems []string, label string) ([]ringdown.Event, error) {
	events := make([]ringdown.Event, 0, len(names)+1)
	for _, name := range names {
		ev, err := cat.Resolve(name)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	if len(customItems) > 0 {
		tauMS, freqHz, err := parseCustomParams(customItems)
		if err != nil {
			return nil, err
		}
		ev, err := ringdown.NewCustomEvent(label, tauMS, freqHz)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	return events, nil
}

// sonifyPath derives the output path for one event's waveform. With a
// single event the base path is used as-is; with several, the event name
// is appended before the extension.
func sonifyPath(base, eventName string, multiple bool) string {
	if !multiple {
		return base
	}
	ext := filepath.Ext(base)
	if ext == "" {
		ext = ".wav"
	}
	return strings.TrimSuffix(base, ext) + "-" + eventName + ext
}

// writeWAV encodes float samples in [-1, 1] as a 16-bit PCM mono WAV file.
func writeWAV(path string, samples []float64, sampleRate, bitDepth int) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create WAV file: %w", err)
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		data[i] = int(s * maxInt16)
	}

	enc := wav.NewEncoder(out, sampleRate, bitDepth, sonifyChannels, wavAudioFormatPCM)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: sonifyChannels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		_ = out.Close()
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return out.Close()
}
