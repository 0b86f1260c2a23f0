// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tier

import (
	"fmt"
	"sort"
	"strings"
)

// Tier is an ordered voltage tier. The zero value is LV.
type Tier int

// Tier constants in ascending order of supplied power.
const (
	LV Tier = iota
	MV
	HV
	EV
	IV
	LuV
	ZPM
	UV
	UHV
)

var names = [...]string{"LV", "MV", "HV", "EV", "IV", "LuV", "ZPM", "UV", "UHV"}

// ceilings holds the inclusive EU/t limit of each tier, indexed by Tier.
var ceilings = [...]float64{32, 128, 512, 2048, 8192, 32768, 131072, 524288, 2097152}

// Count is the number of defined tiers.
const Count = len(names)

// Parse parses a tier name such as "HV" or "luv".
func Parse(s string) (Tier, error) {
	trimmed := strings.TrimSpace(s)
	for i, n := range names {
		if strings.EqualFold(n, trimmed) {
			return Tier(i), nil
		}
	}
	return LV, fmt.Errorf("invalid tier: %q (supported values: %s)", s, strings.Join(Names(), ", "))
}

// Names returns all tier names in ascending order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names[:])
	return out
}

// All returns all tiers in ascending order.
func All() []Tier {
	out := make([]Tier, Count)
	for i := range out {
		out[i] = Tier(i)
	}
	return out
}

// IsValid reports whether t is a defined tier.
func (t Tier) IsValid() bool {
	return t >= 0 && int(t) < Count
}

// Index returns the zero-based position of the tier.
func (t Tier) Index() int {
	return int(t)
}

// Ceiling returns the maximum EU/t the tier can supply.
func (t Tier) Ceiling() float64 {
	if !t.IsValid() {
		return 0
	}
	return ceilings[t]
}

// String returns the tier name, or "tier(N)" for indexes outside the table.
func (t Tier) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return names[t]
}

// ForPower returns the lowest tier whose ceiling covers eut. Fractional power
// just above a ceiling (32.5 EU/t) still counts toward that tier.
// Power above the top ceiling yields Tier(Count), which is not a valid tier
// but still orders above every real one.
func ForPower(eut float64) Tier {
	return ForPowerScaled(eut, 1)
}

// ForPowerScaled is ForPower against the tier cutoffs multiplied by factor.
// A cutoff is the first EU/t that no longer fits a tier (ceiling+1), so the
// scaled search admits everything strictly below (ceiling+1)*factor.
func ForPowerScaled(eut, factor float64) Tier {
	i := sort.Search(Count, func(i int) bool {
		return (ceilings[i]+1)*factor > eut
	})
	return Tier(i)
}
