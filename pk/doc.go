// Package pk implements the blood/breath alcohol pharmacokinetic simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - dose.go: ingestion events and their resolution into absorbed ethanol mass
//   - options.go: kinetic constants and the elimination-law variants
//   - simulate.go: the fixed-step integration loop producing the BAC trajectory
//
// # Architecture
//
// A simulation is a pure function call: the caller builds a Subject, a
// ModelOptions value, a Catalog and a list of DoseEvents, then invokes Simulate
// with a time Grid. The engine resolves each dose into an analytic first-order
// absorption input, integrates the central-compartment concentration with an
// explicit Euler scheme under the selected elimination law, and converts the
// resulting BAC series to BrAC through the temperature-corrected blood:breath
// ratio. The engine holds no state between calls: identical inputs always
// produce identical output.
//
// # Key Interfaces
//
// EliminationLaw is the single extension point: Saturable (Michaelis-Menten),
// ZeroOrder and FirstOrder each carry only their own parameters, so an
// inconsistent parameter set (e.g. a Km with first-order kinetics) cannot be
// expressed.
//
// All failures wrap one of two sentinels, ErrValidation or ErrConfiguration,
// and are raised before integration begins, never mid-computation.
package pk
