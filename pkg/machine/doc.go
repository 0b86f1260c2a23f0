// Package machine holds the machine constant tables and the dispatch registry.
//
// The tables ship embedded in the binary (data/machines.yaml) and are parsed
// once on first use:
//
//	cat, err := machine.Load()
//	b := cat.Resolve("EBF")         // Binding{Family: FamilyHeat}
//	b = cat.Resolve("assembler")    // unregistered, Binding{Family: FamilyStandard}
//	coil, ok := cat.Coil("kanthal") // Coil{Heat: 2701, Speed: 1.0}
//
// Machine names are matched exactly. Synonyms such as "EBF" and
// "electric blast furnace" resolve to identical bindings.
//
// A Catalog is never mutated after Parse returns, so one instance is shared by
// every concurrent overclock.
package machine
