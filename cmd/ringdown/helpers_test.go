package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ringdown "github.com/gwphen/go-ringdown"
	"github.com/gwphen/go-ringdown/internal/waveform"
)

func TestParseCustomParams_Valid(t *testing.T) {
	tauMS, freqHz, err := parseCustomParams([]string{"tau_ms=4.0", "freq_hz=251"})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, tauMS, 1e-12)
	assert.InDelta(t, 251.0, freqHz, 1e-12)
}

func TestParseCustomParams_WhitespaceTolerant(t *testing.T) {
	tauMS, freqHz, err := parseCustomParams([]string{" tau_ms = 4.0", "freq_hz= 251 "})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, tauMS, 1e-12)
	assert.InDelta(t, 251.0, freqHz, 1e-12)
}

func TestParseCustomParams_Errors(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"MissingBoth", []string{}, "missing required parameter(s): freq_hz, tau_ms"},
		{"MissingFreq", []string{"tau_ms=4.0"}, "missing required parameter(s): freq_hz"},
		{"NoEquals", []string{"tau_ms"}, "expected key=value"},
		{"UnknownKey", []string{"tau_ms=4.0", "freq_hz=251", "mass=60"}, "unknown parameter"},
		{"Duplicate", []string{"tau_ms=4.0", "tau_ms=5.0", "freq_hz=251"}, "duplicate parameter"},
		{"NonNumeric", []string{"tau_ms=four", "freq_hz=251"}, "not numeric"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseCustomParams(tt.items)
			require.ErrorIs(t, err, ringdown.ErrInvalidParameter)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuildSelection_CatalogueAndCustom(t *testing.T) {
	cat := ringdown.Builtin()

	events, err := buildSelection(cat,
		[]string{"GW150914", "GW190521"},
		[]string{"tau_ms=4.5", "freq_hz=230"},
		"Posterior")
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "GW150914", events[0].Name)
	assert.Equal(t, "GW190521", events[1].Name)
	assert.Equal(t, "Posterior", events[2].Name)
}

func TestBuildSelection_UnknownEvent(t *testing.T) {
	_, err := buildSelection(ringdown.Builtin(), []string{"GW_NONEXISTENT"}, nil, "")
	require.ErrorIs(t, err, ringdown.ErrUnknownEvent)
}

func TestBuildSelection_InvalidCustom(t *testing.T) {
	_, err := buildSelection(ringdown.Builtin(), nil, []string{"tau_ms=0", "freq_hz=251"}, "")
	require.ErrorIs(t, err, ringdown.ErrInvalidParameter)
}

func TestBuildSelection_Empty(t *testing.T) {
	events, err := buildSelection(ringdown.Builtin(), nil, nil, "")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestSonifyPath(t *testing.T) {
	assert.Equal(t, "out.wav", sonifyPath("out.wav", "GW150914", false))
	assert.Equal(t, "out-GW150914.wav", sonifyPath("out.wav", "GW150914", true))
	assert.Equal(t, "out-GW150914.wav", sonifyPath("out", "GW150914", true))
}

func TestWriteWAV_ValidFile(t *testing.T) {
	samples, err := waveform.Damped(0.004, 251, sonifySampleRate, 0)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ringdown.wav")
	require.NoError(t, writeWAV(path, samples, sonifySampleRate, sonifyBitDepth))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoder := wav.NewDecoder(f)
	require.True(t, decoder.IsValidFile(), "output is not a valid WAV file")

	format := decoder.Format()
	assert.Equal(t, sonifySampleRate, format.SampleRate)
	assert.Equal(t, sonifyChannels, format.NumChannels)
}
