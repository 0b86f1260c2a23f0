// Package recipe defines the recipe entity that overclocking transforms.
//
// # Core Types
//
// Recipe: one crafting recipe run in a machine at a selected tier
//
//	type Recipe struct {
//	    Machine     string               // machine identifier, e.g. "EBF"
//	    UserVoltage string               // selected tier name, e.g. "HV"
//	    EUt         float64              // energy per tick
//	    Duration    float64              // ticks
//	    Inputs      IngredientCollection // scaled by the parallel count
//	    Outputs     IngredientCollection
//	    Coils       string               // heat-aware and coil-speed machines only
//	    Heat        *int                 // heat-aware machines only
//	}
//
// IngredientCollection: ordered ingredients with in-place integer scaling
//
//	outputs.Scale(6) // every quantity × 6
//
// Book: the on-disk list of recipes
//
//	recipes:
//	  - machine: electric blast furnace
//	    user_voltage: HV
//	    eut: 120
//	    dur: 400
//	    coils: tungstensteel
//	    heat: 1801
//	    inputs:
//	      - {name: titanium dust, quantity: 1}
//	    outputs:
//	      - {name: hot titanium ingot, quantity: 1}
//
// A Recipe is owned by one caller at a time; the overclock engine mutates it
// in place and never retains it.
package recipe
