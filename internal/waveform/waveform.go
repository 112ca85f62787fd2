// Package waveform synthesizes audible ringdown waveforms.
//
// A ringdown is a damped sinusoid h(t) = exp(-t/tau) * sin(2*pi*f*t).
// Published dominant-mode frequencies (roughly 150-300 Hz) fall inside
// the audible band, so the synthesized signal can be written out directly
// without frequency shifting.
package waveform

import (
	"errors"
	"fmt"
	"math"
)

// DefaultDecayWindows is the default signal duration in units of the
// damping time. After 8 tau the envelope has fallen below 4e-4 of its
// peak, inaudible at 16-bit depth.
const DefaultDecayWindows = 8.0

// ErrInvalidParams indicates non-positive or non-finite synthesis
// parameters.
var ErrInvalidParams = errors.New("invalid waveform parameters")

// Damped synthesizes the damped sinusoid exp(-t/tau)*sin(2*pi*freq*t)
// sampled at sampleRate. tau is in seconds, freq and sampleRate in hertz.
// durationSec sets the signal length; pass 0 to default to
// DefaultDecayWindows damping times. Peak amplitude never exceeds 1.
func Damped(tau, freq, sampleRate, durationSec float64) ([]float64, error) {
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"tau", tau},
		{"freq", freq},
		{"sample rate", sampleRate},
	} {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) || p.value <= 0 {
			return nil, fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalidParams, p.name, p.value)
		}
	}
	if durationSec < 0 || math.IsNaN(durationSec) || math.IsInf(durationSec, 0) {
		return nil, fmt.Errorf("%w: duration must be non-negative and finite, got %v", ErrInvalidParams, durationSec)
	}

	if durationSec == 0 {
		durationSec = DefaultDecayWindows * tau
	}

	n := int(math.Ceil(durationSec * sampleRate))
	if n < 1 {
		n = 1
	}

	omega := 2 * math.Pi * freq
	signal := make([]float64, n)
	for i := range signal {
		t := float64(i) / sampleRate
		signal[i] = math.Exp(-t/tau) * math.Sin(omega*t)
	}

	return signal, nil
}
