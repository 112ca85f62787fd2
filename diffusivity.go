package ringdown

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"
	"gonum.org/v1/gonum/unit/constant"
)

// diffusivityDims are the expected dimensions of D = c^2 * tau,
// length squared over time.
var diffusivityDims = unit.Dimensions{
	unit.LengthDim: 2,
	unit.TimeDim:   -1,
}

// Derived holds the quantities computed from one event. Nothing here is
// stored; every field follows from the event parameters and the speed of
// light.
type Derived struct {
	// Diffusivity is the informational diffusivity D = c^2 * tau in
	// m²/s. It carries its dimensions explicitly since gonum defines no
	// named type for L²T⁻¹.
	Diffusivity *unit.Unit

	// Speed is the characteristic propagation speed of the telegraph
	// model, v = sqrt(D / tau).
	Speed unit.Velocity

	// Wavelength is the length scale implied by the mode frequency,
	// lambda = v / f.
	Wavelength unit.Length
}

// Derive computes the diffusivity, characteristic speed, and implied
// wavelength for a validated event. The function is pure and
// deterministic; all arithmetic is performed on dimensioned quantities so
// that a formula error is reported as [ErrUnitMismatch] rather than
// producing a number with silently wrong units.
func Derive(ev Event) (Derived, error) {
	if err := ev.Validate(); err != nil {
		return Derived{}, err
	}

	// D = c^2 * tau. Unit.Mul mutates its receiver, so each chain
	// starts from a fresh Unit.
	diff := constant.LightSpeedInVacuum.Unit().
		Mul(constant.LightSpeedInVacuum).
		Mul(ev.Tau)
	if !unit.DimensionsMatch(diff, unit.New(1, diffusivityDims)) {
		return Derived{}, fmt.Errorf("%w: diffusivity has dimensions %v", ErrUnitMismatch, diff.Dimensions())
	}

	// v = sqrt(D / tau), the telegraph propagation speed. Carried
	// through the general algebra rather than shortcut to c.
	vSquared := constant.LightSpeedInVacuum.Unit().
		Mul(constant.LightSpeedInVacuum).
		Mul(ev.Tau).
		Div(ev.Tau)
	vRoot, err := sqrtUnit(vSquared)
	if err != nil {
		return Derived{}, fmt.Errorf("characteristic speed: %w", err)
	}

	var speed unit.Velocity
	if err := speed.From(vRoot); err != nil {
		return Derived{}, fmt.Errorf("%w: characteristic speed: %v", ErrUnitMismatch, err)
	}

	// lambda = v / f.
	var wavelength unit.Length
	if err := wavelength.From(speed.Unit().Div(ev.Freq)); err != nil {
		return Derived{}, fmt.Errorf("%w: wavelength: %v", ErrUnitMismatch, err)
	}

	return Derived{
		Diffusivity: diff,
		Speed:       speed,
		Wavelength:  wavelength,
	}, nil
}

// sqrtUnit returns the square root of a dimensioned quantity. The
// quantity must be non-negative and every dimension exponent must be
// even, otherwise the root is not expressible in integer dimensions.
func sqrtUnit(u *unit.Unit) (*unit.Unit, error) {
	if u.Value() < 0 {
		return nil, fmt.Errorf("%w: square root of negative quantity %v", ErrInvalidParameter, u.Value())
	}

	dims := u.Dimensions()
	halved := make(unit.Dimensions, len(dims))
	for dim, exp := range dims {
		if exp%2 != 0 {
			return nil, fmt.Errorf("%w: square root of odd dimension exponent in %v", ErrUnitMismatch, dims)
		}
		halved[dim] = exp / 2
	}

	return unit.New(math.Sqrt(u.Value()), halved), nil
}
