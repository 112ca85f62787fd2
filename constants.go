package ringdown

// Unit conversion factors applied at the display and input boundaries.
// Internal arithmetic stays in SI.
const (
	millisecondsPerSecond = 1000.0
	secondsPerMillisecond = 1.0 / millisecondsPerSecond
)

// Default labels for user-supplied parameter sets.
const (
	// DefaultCustomName labels an event built from explicit parameters
	// when the caller does not provide a name.
	DefaultCustomName = "Custom"

	// DefaultCustomReference records the provenance of explicit
	// parameters, typically summary statistics of an external posterior.
	DefaultCustomReference = "User-specified posterior sample"
)

// Built-in catalogue literals: dominant-mode damping times and frequencies
// from the discovery publications.
const (
	gw150914TauMS  = 4.0
	gw150914FreqHz = 251.0
	gw150914Ref    = "Abbott et al. (2016, PRL 116, 061102)"

	gw170104TauMS  = 5.0
	gw170104FreqHz = 200.0
	gw170104Ref    = "Abbott et al. (2017, PRL 118, 221101)"

	gw190521TauMS  = 5.5
	gw190521FreqHz = 190.0
	gw190521Ref    = "Abbott et al. (2020, PRL 125, 101102)"
)
