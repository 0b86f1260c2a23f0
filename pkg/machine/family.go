package machine

import (
	"fmt"
	"strings"
)

// Family is the overclock law a machine follows.
type Family string

// Supported families.
const (
	FamilyStandard         Family = "standard"
	FamilyPerfect          Family = "perfect"
	FamilyHeat             Family = "heat"
	FamilyCoilSpeed        Family = "coil-speed"
	FamilyParallel         Family = "parallel"
	FamilyFixedParallel    Family = "fixed-parallel"
	FamilyChemPlant        Family = "chem-plant"
	FamilyOutputMultiplier Family = "output-multiplier"
)

var families = []Family{
	FamilyStandard,
	FamilyPerfect,
	FamilyHeat,
	FamilyCoilSpeed,
	FamilyParallel,
	FamilyFixedParallel,
	FamilyChemPlant,
	FamilyOutputMultiplier,
}

// Families returns every supported family.
func Families() []Family {
	out := make([]Family, len(families))
	copy(out, families)
	return out
}

// ParseFamily parses a family name.
func ParseFamily(s string) (Family, error) {
	f := Family(strings.ToLower(strings.TrimSpace(s)))
	if f.IsValid() {
		return f, nil
	}
	names := make([]string, len(families))
	for i, fam := range families {
		names[i] = string(fam)
	}
	return "", fmt.Errorf("invalid family: %q (supported values: %s)", s, strings.Join(names, ", "))
}

// IsValid reports whether f is a supported family.
func (f Family) IsValid() bool {
	for _, fam := range families {
		if f == fam {
			return true
		}
	}
	return false
}

func (f Family) String() string {
	return string(f)
}
