// Package ringdown computes the informational diffusivity of
// gravitational-wave ringdown signals in pure Go.
//
// The package implements the telegraph-equation reinterpretation of black
// hole ringdown, in which the exponential damping of the dominant (2,2)
// quasinormal mode is read as a diffusive transport process with
// coefficient D = c^2 * tau, where tau is the mode damping time.
//
// # Features
//
//   - Built-in catalogue of published ringdown parameters (GW150914,
//     GW170104, GW190521) with literature references
//   - Optional catalogue extension from a YAML file for additional events
//     or posterior samples
//   - Dimensioned arithmetic throughout via gonum's unit package, so
//     dimensional mistakes surface as errors instead of silently wrong
//     numbers
//   - Text and JSON report rendering with conversion to conventional
//     reporting units (ms, Hz, m²/s) only at the display boundary
//   - Ringdown sonification helpers for writing audible damped-sinusoid
//     waveforms
//
// # Quick Start
//
// Evaluate a catalogued event:
//
//	cat := ringdown.Builtin()
//	ev, err := cat.Resolve("GW150914")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := ringdown.Summarize(ev)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Text())
//
// Or supply explicit parameters, for example the summary statistics of an
// externally computed posterior:
//
//	ev, err := ringdown.NewCustomEvent("", 4.0, 251)
//
// # Physics
//
// All derived quantities follow from two inputs, the damping time tau and
// frequency f of the (2,2) mode:
//
//	D      = c^2 * tau        informational diffusivity, m²/s
//	v      = sqrt(D / tau)    characteristic propagation speed
//	lambda = v / f            implied length scale
//
// For D = c^2 tau the characteristic speed reduces identically to c; the
// computation carries it through the general telegraph algebra as a
// consistency check on the model rather than assuming the result.
//
// # Errors
//
// Failures are classified by three sentinel errors, testable with
// [errors.Is]: [ErrUnknownEvent] for catalogue misses,
// [ErrInvalidParameter] for non-positive or non-finite inputs, and
// [ErrUnitMismatch] for dimensional inconsistencies in quantity
// arithmetic.
//
// # Thread Safety
//
// A [Catalogue] is never mutated after construction and is safe for
// concurrent readers. All computations are pure functions of their
// arguments.
package ringdown
