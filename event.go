package ringdown

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"
)

// Common errors returned by the package.
var (
	// ErrUnknownEvent indicates a catalogue lookup for a name that is
	// not present.
	ErrUnknownEvent = errors.New("unknown ringdown event")

	// ErrInvalidParameter indicates a physical parameter that is
	// missing, non-finite, or outside its valid range.
	ErrInvalidParameter = errors.New("invalid ringdown parameter")

	// ErrUnitMismatch indicates a dimensional inconsistency during
	// quantity arithmetic.
	ErrUnitMismatch = errors.New("unit dimension mismatch")
)

// Event holds the phenomenological parameters of one observed or
// hypothetical ringdown. Values are stored as SI quantities; use
// [NewCustomEvent] to construct one from conventional reporting units.
type Event struct {
	// Name identifies the event, e.g. "GW150914".
	Name string

	// Tau is the damping time of the dominant (2,2) quasinormal mode.
	Tau unit.Time

	// Freq is the oscillation frequency of the same mode.
	Freq unit.Frequency

	// Reference records where the parameters come from, either a
	// publication or a note on user-supplied values.
	Reference string
}

// NewCustomEvent builds an event from explicit parameters in reporting
// units (milliseconds, hertz). An empty name is replaced by
// [DefaultCustomName]. The returned event is validated.
func NewCustomEvent(name string, tauMS, freqHz float64) (Event, error) {
	if name == "" {
		name = DefaultCustomName
	}

	ev := Event{
		Name:      name,
		Tau:       unit.Time(tauMS * secondsPerMillisecond),
		Freq:      unit.Frequency(freqHz),
		Reference: DefaultCustomReference,
	}

	if err := ev.Validate(); err != nil {
		return Event{}, err
	}
	return ev, nil
}

// Validate checks that the event parameters are physically admissible.
func (e Event) Validate() error {
	if err := validatePositive("tau_220", float64(e.Tau)); err != nil {
		return err
	}
	return validatePositive("freq_220", float64(e.Freq))
}

// msTime converts a damping time in milliseconds to an SI quantity.
func msTime(ms float64) unit.Time {
	return unit.Time(ms * secondsPerMillisecond)
}

// hz wraps a frequency in hertz as a dimensioned quantity.
func hz(f float64) unit.Frequency {
	return unit.Frequency(f)
}

func validatePositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParameter, field, v)
	}
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidParameter, field, v)
	}
	return nil
}
