// Package overclock applies GregTech machine overclocking rules to recipes.
//
// An [Engine] resolves each recipe's machine against the machine catalog and
// dispatches it to its family's algorithm:
//
//	standard           4x EU/t and 1/2 duration per tier above the recipe's own
//	perfect            4x EU/t and 1/4 duration per tier
//	heat               blast furnace rules: coil heat discounts and perfect steps
//	coil-speed         standard, then divided by the coil's speed multiplier
//	parallel           GT++ multiblocks with per-machine speed, discount and parallels
//	fixed-parallel     GT++ multiblocks with a fixed parallel cap
//	output-multiplier  standard, then outputs scaled by (tier+2)*2
//	chem-plant         always fails with UNIMPLEMENTED
//
// Machines not in the catalog use the standard family.
//
// Basic usage:
//
//	e, err := overclock.NewEngine(overclock.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	r := &recipe.Recipe{Machine: "assembler", UserVoltage: "HV", EUt: 30, Duration: 200}
//	if _, err := e.Overclock(r); err != nil {
//	    return err
//	}
//	// r.EUt == 480, r.Duration == 50
//
// Overclock mutates the recipe in place and leaves it untouched on error.
// Failures are StructuredErrors from pkg/errors with code CONFIGURATION,
// NEGATIVE_OVERCLOCK or UNIMPLEMENTED. GT++ step-by-step diagnostics are
// logged at debug level and never change results.
//
// The Engine also serves the HTTP API through HandleOverclock, HandleBatch,
// HandleMachines and HandleTiers.
package overclock
