package main

// Custom parameter keys accepted by -custom.
const (
	customKeyTau  = "tau_ms"
	customKeyFreq = "freq_hz"
)

// Sonification output format.
const (
	sonifySampleRate  = 44100 // CD quality sample rate
	sonifyBitDepth    = 16
	sonifyChannels    = 1 // mono
	wavAudioFormatPCM = 1 // WAV format tag for linear PCM

	maxInt16 = 32767.0
)

// Display conversion.
const (
	millisecondsPerSecond = 1000.0
)

// Process exit codes.
const (
	exitFailure = 1 // lookup, validation, unit, or I/O error
	exitUsage   = 2 // no events selected or malformed flags
)
