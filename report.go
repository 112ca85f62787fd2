package ringdown

import (
	"fmt"
	"strings"
)

// Report is the flat, display-ready form of one computed event. Numeric
// fields are in conventional reporting units; conversion from SI happens
// here and nowhere else. The struct marshals directly to the JSON output
// format.
type Report struct {
	Event             string  `json:"event"`
	TauMS             float64 `json:"tau_ms"`
	FreqHz            float64 `json:"freq_hz"`
	DiffusivityM2PerS float64 `json:"diffusivity_m2_per_s"`
	SpeedMPerS        float64 `json:"speed_m_per_s"`
	WavelengthM       float64 `json:"wavelength_m"`
	Reference         string  `json:"reference,omitempty"`
}

// NewReport converts an event and its derived quantities into reporting
// units.
func NewReport(ev Event, d Derived) Report {
	return Report{
		Event:             ev.Name,
		TauMS:             float64(ev.Tau) * millisecondsPerSecond,
		FreqHz:            float64(ev.Freq),
		DiffusivityM2PerS: d.Diffusivity.Value(),
		SpeedMPerS:        float64(d.Speed),
		WavelengthM:       float64(d.Wavelength),
		Reference:         ev.Reference,
	}
}

// Text renders the report as a human-readable multi-line summary with
// fixed display precision.
func (r Report) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Event: %s\n", r.Event)
	if r.Reference != "" {
		fmt.Fprintf(&b, "Reference: %s\n", r.Reference)
	}
	fmt.Fprintf(&b, "Tau_220: %.3f ms\n", r.TauMS)
	fmt.Fprintf(&b, "Freq_220: %.1f Hz\n", r.FreqHz)
	fmt.Fprintf(&b, "Diffusivity (D = c^2 tau): %.3e m^2/s\n", r.DiffusivityM2PerS)
	fmt.Fprintf(&b, "Characteristic speed: %.6e m/s\n", r.SpeedMPerS)
	fmt.Fprintf(&b, "Implied wavelength: %.3e m", r.WavelengthM)
	return b.String()
}
